// Package snapshot renders sketches headlessly: a scripted selection, N simulated frames, one image
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render/raster"
	"github.com/lixenwraith/gridsketch/render/renderer"
	"github.com/lixenwraith/gridsketch/render/vector"
	"github.com/lixenwraith/gridsketch/selection"
)

var (
	// ErrFormat is returned for output paths that are neither .png nor .svg
	ErrFormat = errors.New("unsupported snapshot format")
	// ErrSize is returned for surfaces or frame counts outside the accepted range
	ErrSize = errors.New("snapshot size out of range")
)

// Epoch is the wall clock the first simulated frame sees
// Frames advance it by parameter.FrameInterval, so output is reproducible for a seed
var Epoch = time.Unix(0, 0)

// Options describes one headless render
type Options struct {
	Config config.Config
	Width  float64
	Height float64
	// Frames is the number of Update calls before drawing, the last index drawn is Frames
	Frames int
	Seed   uint64
	// Selection is restored before the first frame, current defaults to the last set
	Selection selection.Snapshot
	// Caption is drawn by the PNG backend only
	Caption string
}

// Validate checks dimensions, grid size and frame count
func (o Options) Validate() error {
	if !(o.Width >= 1) || !(o.Height >= 1) || o.Width > parameter.SnapshotMaxDimension || o.Height > parameter.SnapshotMaxDimension {
		return fmt.Errorf("%w: %vx%v", ErrSize, o.Width, o.Height)
	}
	c := o.Config
	if c.Columns < parameter.ColumnsMin || c.Columns > parameter.ColumnsMax ||
		c.Rows < parameter.RowsMin || c.Rows > parameter.RowsMax {
		return fmt.Errorf("%w: %dx%d grid", ErrSize, c.Columns, c.Rows)
	}
	if o.Frames < 0 || o.Frames > parameter.SnapshotMaxFrames {
		return fmt.Errorf("%w: %d frames", ErrSize, o.Frames)
	}
	return nil
}

// Simulate builds the sketch and runs it to the final frame
func Simulate(o Options) (*engine.Sketch, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	s := engine.New(o.Config, engine.WithSeed(o.Seed))
	s.Resize(o.Width, o.Height)

	if len(o.Selection.Sets) > 0 {
		if err := s.Restore(o.Selection); err != nil {
			return nil, err
		}
	}

	now := Epoch
	for i := 1; i <= o.Frames; i++ {
		s.Update(engine.Frame{Index: uint64(i), Now: now})
		now = now.Add(parameter.FrameInterval)
	}
	return s, nil
}

// Raster simulates and draws the final frame with the gg backend, caption included
func Raster(o Options) (*raster.Surface, error) {
	s, err := Simulate(o)
	if err != nil {
		return nil, err
	}
	surface, err := raster.New(o.Width, o.Height)
	if err != nil {
		return nil, err
	}
	renderer.Frame(renderer.NewPipeline(s), s, surface)
	surface.Caption(o.Caption)
	return surface, nil
}

// PNG renders through the gg raster backend
func PNG(w io.Writer, o Options) error {
	surface, err := Raster(o)
	if err != nil {
		return err
	}
	return surface.EncodePNG(w)
}

// SVG renders through the svgo vector backend
func SVG(w io.Writer, o Options) error {
	s, err := Simulate(o)
	if err != nil {
		return err
	}
	surface := vector.New(w, o.Width, o.Height)
	renderer.Frame(renderer.NewPipeline(s), s, surface)
	surface.Close()
	return nil
}

// WriteFile picks the backend from the file extension
func WriteFile(path string, o Options) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		surface, err := Raster(o)
		if err != nil {
			return err
		}
		return surface.SavePNG(path)
	case ".svg":
		if err := SVG(&buf, o); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrFormat, path)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ScriptedSelection turns parsed sets into a snapshot whose current set is the last one
func ScriptedSelection(sets [][]int) selection.Snapshot {
	if len(sets) == 0 {
		return selection.Snapshot{}
	}
	return selection.Snapshot{Current: len(sets) - 1, Sets: sets}
}
