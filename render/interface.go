package render

// Surface is the drawing target a frame is rendered onto
// Coordinates are surface units with the origin at the top-left, y pointing down
type Surface interface {
	Size() (width, height float64)

	// Background clears the whole surface, ignoring the current translation
	Background(c RGB)

	Fill(c RGB, alpha float64)
	NoFill()
	Stroke(c RGB, alpha float64)
	NoStroke()
	StrokeWeight(w float64)

	// Push saves pen state and translation, Pop restores the last pushed state
	Push()
	Pop()
	Translate(dx, dy float64)

	Rect(x, y, w, h float64)
	// Circle is centered at (cx, cy) with diameter d
	Circle(cx, cy, d float64)
	Line(x1, y1, x2, y2 float64)
}

// Renderer draws one layer of the frame
type Renderer interface {
	Render(ctx Context, s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Tagger is implemented by surfaces that attribute drawing to layers
type Tagger interface {
	SetTag(tag string)
}
