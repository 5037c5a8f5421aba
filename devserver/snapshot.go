package devserver

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lixenwraith/gridsketch/render/snapshot"
	"github.com/lixenwraith/gridsketch/selection"
)

const (
	snapshotWidth  = 800
	snapshotHeight = 600
	snapshotFrames = 120
)

// SnapshotOptions reads snapshot options from query parameters over the server defaults
// Recognized: columns, rows, cellsize, width, height, frames, seed, select
func (s *Server) SnapshotOptions(q url.Values) (snapshot.Options, error) {
	o := snapshot.Options{
		Config: s.defaults,
		Width:  snapshotWidth,
		Height: snapshotHeight,
		Frames: snapshotFrames,
		Seed:   1,
	}

	var err error
	intParam := func(name string, dst *int) {
		if v := q.Get(name); v != "" && err == nil {
			n, perr := strconv.Atoi(v)
			if perr != nil {
				err = fmt.Errorf("%s: %w", name, perr)
				return
			}
			*dst = n
		}
	}
	floatParam := func(name string, dst *float64) {
		if v := q.Get(name); v != "" && err == nil {
			f, perr := strconv.ParseFloat(v, 64)
			if perr != nil {
				err = fmt.Errorf("%s: %w", name, perr)
				return
			}
			*dst = f
		}
	}

	intParam("columns", &o.Config.Columns)
	intParam("rows", &o.Config.Rows)
	floatParam("cellsize", &o.Config.CellSizePercent)
	floatParam("width", &o.Width)
	floatParam("height", &o.Height)
	intParam("frames", &o.Frames)
	if v := q.Get("seed"); v != "" && err == nil {
		o.Seed, err = strconv.ParseUint(v, 10, 64)
	}
	if err != nil {
		return o, err
	}

	sets, err := selection.ParseSets(q.Get("select"))
	if err != nil {
		return o, err
	}
	o.Selection = snapshot.ScriptedSelection(sets)
	return o, o.Validate()
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	o, err := s.SnapshotOptions(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := snapshot.PNG(&buf, o); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, selection.ErrInvalidSnapshot) {
			status = http.StatusBadRequest
		}
		log.Printf("snapshot: %v", err)
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}
