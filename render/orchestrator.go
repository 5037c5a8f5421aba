package render

import "fmt"

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
	name     string
}

// Orchestrator runs registered renderers in priority order
type Orchestrator struct {
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an empty pipeline
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
		name:     fmt.Sprintf("%T", r),
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Len returns the number of registered renderers
func (o *Orchestrator) Len() int {
	return len(o.renderers)
}

// RenderFrame runs every visible renderer against s
// Pen state and translation are restored after each renderer
// A Tagger surface is tagged with each renderer's type name before it draws
func (o *Orchestrator) RenderFrame(ctx Context, s Surface) {
	tagger, _ := s.(Tagger)
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		if tagger != nil {
			tagger.SetTag(entry.name)
		}
		s.Push()
		entry.renderer.Render(ctx, s)
		s.Pop()
	}
}
