// Package window hosts the sketch in a desktop window or browser canvas through ebiten
package window

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/render"
	"github.com/lixenwraith/gridsketch/render/renderer"
)

// Input is the host input sampled for one tick
type Input struct {
	X, Y     float64
	Inside   bool
	Clicked  bool
	Modifier bool
	// Keys pressed this tick
	Keys []ebiten.Key
}

// Game implements ebiten.Game over a sketch
type Game struct {
	store    *config.Store
	sketch   *engine.Sketch
	pipeline *render.Orchestrator
	surface  *Surface

	frame  uint64
	paused bool
	width  int
	height int
	now    func() time.Time
	keys   []ebiten.Key
}

// NewGame builds a game reading its configuration from store
func NewGame(store *config.Store, opts ...engine.Option) *Game {
	s := engine.New(store.Load(), opts...)
	return &Game{
		store:    store,
		sketch:   s,
		pipeline: renderer.NewPipeline(s),
		surface:  NewSurface(),
		now:      time.Now,
	}
}

// Sketch exposes the simulation driven by the game
func (g *Game) Sketch() *engine.Sketch {
	return g.sketch
}

// Update samples ebiten input and advances one frame
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	in := Input{
		X:       float64(x),
		Y:       float64(y),
		Inside:  x >= 0 && y >= 0 && x < g.width && y < g.height,
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Modifier: ebiten.IsKeyPressed(ebiten.KeyShift) ||
			ebiten.IsKeyPressed(ebiten.KeyControl) ||
			ebiten.IsKeyPressed(ebiten.KeyMeta),
		Keys: g.keys,
	}
	return g.Apply(in)
}

// Apply handles one tick of input then steps the sketch
// Returns ebiten.Termination on quit
func (g *Game) Apply(in Input) error {
	for _, k := range in.Keys {
		if !g.handleKey(k) {
			return ebiten.Termination
		}
	}
	g.sketch.SetConfig(g.store.Load())

	if in.Clicked && in.Inside {
		change := g.sketch.Click(in.X, in.Y, in.Modifier)
		log.Printf("click (%.0f,%.0f) modifier=%v: %s", in.X, in.Y, in.Modifier, change)
	}
	if g.paused {
		return nil
	}
	g.frame++
	g.sketch.Update(engine.Frame{
		Index:     g.frame,
		Now:       g.now(),
		PointerX:  in.X,
		PointerY:  in.Y,
		PointerIn: in.Inside,
	})
	return nil
}

func (g *Game) handleKey(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyQ:
		return false
	case ebiten.KeyArrowLeft:
		g.store.Update(config.StepColumns(-1))
	case ebiten.KeyArrowRight:
		g.store.Update(config.StepColumns(1))
	case ebiten.KeyArrowUp:
		g.store.Update(config.StepRows(-1))
	case ebiten.KeyArrowDown:
		g.store.Update(config.StepRows(1))
	case ebiten.KeyC:
		g.store.Update(config.ToggleCircle())
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
		g.store.Update(config.StepCellSize(0.5))
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		g.store.Update(config.StepCellSize(-0.5))
	case ebiten.KeyBracketLeft:
		g.store.Update(config.StepCrosshairSpeed(-0.5))
	case ebiten.KeyBracketRight:
		g.store.Update(config.StepCrosshairSpeed(0.5))
	case ebiten.KeyX:
		g.sketch.Reset()
	case ebiten.KeySpace:
		g.paused = !g.paused
	}
	return true
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	renderer.Frame(g.pipeline, g.sketch, g.surface)
}

// Layout keeps one surface unit per device-independent pixel and resizes the sketch with the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.sketch.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and blocks until it closes
func Run(g *Game, title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
