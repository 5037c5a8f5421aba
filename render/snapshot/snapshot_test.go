package snapshot

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/selection"
)

func testOptions() Options {
	cfg := config.Default()
	cfg.Columns = 4
	cfg.Rows = 3
	cfg.CellSizePercent = 20
	return Options{
		Config:    cfg,
		Width:     120,
		Height:    90,
		Frames:    30,
		Seed:      5,
		Selection: ScriptedSelection([][]int{{0, 5}, {11}}),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		ok     bool
	}{
		{"Defaults", func(*Options) {}, true},
		{"Zero width", func(o *Options) { o.Width = 0 }, false},
		{"Huge height", func(o *Options) { o.Height = 1e6 }, false},
		{"Negative frames", func(o *Options) { o.Frames = -1 }, false},
		{"Too many frames", func(o *Options) { o.Frames = 1 << 20 }, false},
		{"No frames", func(o *Options) { o.Frames = 0 }, true},
		{"NaN width", func(o *Options) { o.Width = math.NaN() }, false},
		{"NaN height", func(o *Options) { o.Height = math.NaN() }, false},
		{"Too many columns", func(o *Options) { o.Config.Columns = 20000 }, false},
		{"Too many rows", func(o *Options) { o.Config.Rows = parameter.RowsMax + 1 }, false},
		{"No columns", func(o *Options) { o.Config.Columns = 0 }, false},
		{"Largest grid", func(o *Options) {
			o.Config.Columns = parameter.ColumnsMax
			o.Config.Rows = parameter.RowsMax
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testOptions()
			tt.mutate(&o)
			err := o.Validate()
			if (err == nil) != tt.ok {
				t.Fatalf("Validate = %v, ok %v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrSize) {
				t.Errorf("err = %v, want ErrSize", err)
			}
		})
	}
}

func TestRestoredCellsAreRevealed(t *testing.T) {
	o := testOptions()
	o.Frames = 0
	s, err := Simulate(o)
	if err != nil {
		t.Fatal(err)
	}
	for _, cell := range []int{0, 5, 11} {
		if v := s.Reveal().Value(cell); v != 1 {
			t.Errorf("reveal(%d) = %v, want 1", cell, v)
		}
	}
	if v := s.Reveal().Value(1); v != 0 {
		t.Errorf("reveal of unselected cell = %v", v)
	}
}

func TestSimulateRestoresSelectionAndRuns(t *testing.T) {
	s, err := Simulate(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	sel := s.Selection()
	if sel.Len() != 2 || sel.Current() != 1 || !sel.IsSelected(5) {
		t.Errorf("selection = %v current %d", sel.Sets(), sel.Current())
	}
	if s.FrameIndex() != 30 {
		t.Errorf("frame = %d, want 30", s.FrameIndex())
	}

	o := testOptions()
	o.Selection = ScriptedSelection([][]int{{99}})
	if _, err := Simulate(o); !errors.Is(err, selection.ErrInvalidSnapshot) {
		t.Errorf("out of range cell: err = %v", err)
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	a, _ := Simulate(testOptions())
	b, _ := Simulate(testOptions())
	if a.Particles().Len() != b.Particles().Len() {
		t.Fatalf("particle counts differ: %d vs %d", a.Particles().Len(), b.Particles().Len())
	}
	for i := 0; i < a.Particles().Len(); i++ {
		if a.Particles().At(i).Pos != b.Particles().At(i).Pos {
			t.Fatalf("particle %d differs", i)
		}
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	o := testOptions()
	o.Caption = "4x3"
	if err := PNG(&buf, o); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 90 {
		t.Errorf("image = %v", b)
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, testOptions()); err != nil {
		t.Fatal(err)
	}
	dec := xml.NewDecoder(&buf)
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("malformed svg: %v", err)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.SVG"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, testOptions()); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if err := WriteFile(filepath.Join(dir, "out.gif"), testOptions()); !errors.Is(err, ErrFormat) {
		t.Errorf("gif: err = %v", err)
	}
}
