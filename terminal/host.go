package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
	"github.com/lixenwraith/gridsketch/render/renderer"
)

// statusTTL is how long a status message stays on the bottom line
const statusTTL = 2 * time.Second

// Host runs the interactive loop: input events between frames, one Update and render per tick
type Host struct {
	screen   tcell.Screen
	store    *config.Store
	sketch   *engine.Sketch
	pipeline *render.Orchestrator
	surface  *Surface

	configPath string
	copy       func(string) error

	frame    uint64
	paused   bool
	pointerX float64
	pointerY float64
	inside   bool
	pressed  bool

	status     string
	statusTime time.Time
	now        func() time.Time
}

// HostOption configures a Host
type HostOption func(*Host)

// WithSketchOptions passes options to the engine
func WithSketchOptions(opts ...engine.Option) HostOption {
	return func(h *Host) {
		h.sketch = engine.New(h.store.Load(), opts...)
	}
}

// WithConfigPath enables saving the current configuration with 's'
func WithConfigPath(path string) HostOption {
	return func(h *Host) {
		h.configPath = path
	}
}

// WithClipboard replaces the system clipboard writer
func WithClipboard(fn func(string) error) HostOption {
	return func(h *Host) {
		if fn != nil {
			h.copy = fn
		}
	}
}

// WithClock replaces the wall clock feeding particle lifetimes
func WithClock(now func() time.Time) HostOption {
	return func(h *Host) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHost prepares a host on an initialized screen
func NewHost(screen tcell.Screen, store *config.Store, opts ...HostOption) *Host {
	h := &Host{
		screen: screen,
		store:  store,
		copy:   clipboard.WriteAll,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.sketch == nil {
		h.sketch = engine.New(store.Load())
	}
	h.pipeline = renderer.NewPipeline(h.sketch)

	cols, rows := screen.Size()
	h.surface = NewSurface(cols, rows)
	h.sketch.Resize(h.surface.Size())
	screen.EnableMouse()
	return h
}

// Sketch exposes the simulation driven by the host
func (h *Host) Sketch() *engine.Sketch {
	return h.sketch
}

// Run processes events and renders at the frame interval until quit or ctx is done
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.Step()
		}
	}
}

// Step advances and draws one frame
func (h *Host) Step() {
	now := h.now()
	h.sketch.SetConfig(h.store.Load())
	if !h.paused {
		h.frame++
		h.sketch.Update(engine.Frame{
			Index:     h.frame,
			Now:       now,
			PointerX:  h.pointerX,
			PointerY:  h.pointerY,
			PointerIn: h.inside,
		})
	}
	renderer.Frame(h.pipeline, h.sketch, h.surface)
	h.surface.Flush(h.screen)
	h.drawStatus(now)
	h.screen.Show()
}

// HandleEvent applies one input event, false means quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		h.handleMouse(ev)

	case *tcell.EventResize:
		cols, rows := h.screen.Size()
		h.surface.Resize(cols, rows)
		h.sketch.Resize(h.surface.Size())
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	cols, rows := h.surface.Cells()
	h.inside = col >= 0 && col < cols && row >= 0 && row < rows
	h.pointerX, h.pointerY = h.surface.CellCenter(col, row)

	down := ev.Buttons()&tcell.Button1 != 0
	if down && !h.pressed {
		modifier := ev.Modifiers()&(tcell.ModShift|tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0
		change := h.sketch.Click(h.pointerX, h.pointerY, modifier)
		log.Printf("click (%d,%d) modifier=%v: %s", col, row, modifier, change)
	}
	h.pressed = down
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		h.adjust(config.StepColumns(-1))
	case tcell.KeyRight:
		h.adjust(config.StepColumns(1))
	case tcell.KeyUp:
		h.adjust(config.StepRows(-1))
	case tcell.KeyDown:
		h.adjust(config.StepRows(1))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'c':
			cfg := h.adjust(config.ToggleCircle())
			h.setStatus(fmt.Sprintf("circles %v", cfg.ShowCircle))
		case '+', '=':
			h.adjust(config.StepCellSize(0.5))
		case '-':
			h.adjust(config.StepCellSize(-0.5))
		case '[':
			h.adjust(config.StepCrosshairSpeed(-0.5))
		case ']':
			h.adjust(config.StepCrosshairSpeed(0.5))
		case 'x':
			h.sketch.Reset()
			h.setStatus("cleared")
		case 'y':
			h.copySelection()
		case 's':
			h.saveConfig()
		case ' ':
			h.paused = !h.paused
			if h.paused {
				h.setStatus("paused")
			} else {
				h.setStatus("running")
			}
		}
	}
	return true
}

func (h *Host) adjust(fn func(*config.Config)) config.Config {
	cfg := h.store.Update(fn)
	h.sketch.SetConfig(cfg)
	return cfg
}

func (h *Host) copySelection() {
	data, err := h.sketch.Selection().MarshalJSON()
	if err == nil {
		err = h.copy(string(data))
	}
	if err != nil {
		log.Printf("copy selection: %v", err)
		h.setStatus("copy failed")
		return
	}
	h.setStatus("selection copied")
}

func (h *Host) saveConfig() {
	if h.configPath == "" {
		h.setStatus("no config path")
		return
	}
	if err := config.Save(h.configPath, h.store.Load()); err != nil {
		log.Printf("save config: %v", err)
		h.setStatus("save failed")
		return
	}
	h.setStatus("saved " + h.configPath)
}

func (h *Host) setStatus(msg string) {
	h.status = msg
	h.statusTime = h.now()
}

// drawStatus writes the summary line over the bottom row
func (h *Host) drawStatus(now time.Time) {
	cols, rows := h.surface.Cells()
	if rows == 0 {
		return
	}
	sel := h.sketch.Selection()
	cfg := h.sketch.Config()
	sim := h.sketch.Particles()
	stats := sim.Stats()
	line := fmt.Sprintf(" %dx%d sets %d cells %d pt %d cap %d exp %d ",
		cfg.Columns, cfg.Rows, sel.Len(), sel.Count(), sim.Len(), stats.Captured, stats.Expired)
	if h.status != "" && now.Sub(h.statusTime) < statusTTL {
		line += " " + h.status + " "
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		h.screen.SetContent(x, rows-1, r, nil, style)
		x++
	}
}
