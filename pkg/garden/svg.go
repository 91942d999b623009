package garden

import (
	"bytes"
	"fmt"
	"html"
)

// Element is a drawing primitive a Scene can hold.
type Element interface {
	render(buf *bytes.Buffer)
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       string
}

// Path is an SVG path with round line caps. Fill should be "none" for pure
// strokes; Opacity applies to the stroke.
type Path struct {
	D       string
	Stroke  string
	Width   float64
	Fill    string
	Opacity float64
}

// Circle is a filled circle with fill opacity.
type Circle struct {
	CX, CY, R float64
	Fill      string
	Opacity   float64
}

// Text is a centered, bold text label.
type Text struct {
	X, Y    float64
	Content string
	Size    float64
	Fill    string
}

func (r Rect) render(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" />`+"\n",
		r.X, r.Y, r.W, r.H, r.Fill)
}

func (p Path) render(buf *bytes.Buffer) {
	fill := p.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(buf, `<path d="%s" stroke="%s" stroke-width="%.1f" fill="%s" stroke-linecap="round" stroke-opacity="%.2f" />`+"\n",
		p.D, p.Stroke, p.Width, fill, p.Opacity)
}

func (c Circle) render(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f" />`+"\n",
		c.CX, c.CY, c.R, c.Fill, c.Opacity)
}

func (t Text) render(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" font-family="Segoe UI, Helvetica, Arial, sans-serif" font-size="%.0f" fill="%s" text-anchor="middle" font-weight="bold">%s</text>`+"\n",
		t.X, t.Y, t.Size, t.Fill, html.EscapeString(t.Content))
}

// Scene accumulates drawing primitives in paint order and serializes them
// exactly once into a complete SVG document. Append-only: elements are never
// reordered or removed.
type Scene struct {
	width   float64
	height  float64
	palette Palette
	elems   []Element
}

// NewScene creates an empty scene with the given canvas size and palette.
func NewScene(width, height float64, p Palette) *Scene {
	return &Scene{width: width, height: height, palette: p}
}

// Add appends an element. Later elements paint over earlier ones.
func (s *Scene) Add(e Element) {
	s.elems = append(s.elems, e)
}

// Elements returns the primitives added so far, in paint order.
func (s *Scene) Elements() []Element {
	return s.elems
}

// Finalize serializes the scene: header, sky gradient and glow filter defs,
// background, then every element in order. The scene itself is not consumed;
// calling Finalize twice yields identical bytes.
func (s *Scene) Finalize() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		s.width, s.height, s.width, s.height)

	fmt.Fprintf(&buf, `<defs>
<linearGradient id="sky" x1="0%%" y1="0%%" x2="0%%" y2="100%%">
<stop offset="0%%" style="stop-color:%s;stop-opacity:1" />
<stop offset="100%%" style="stop-color:%s;stop-opacity:1" />
</linearGradient>
<filter id="glow" x="-20%%" y="-20%%" width="140%%" height="140%%">
<feGaussianBlur stdDeviation="2" result="coloredBlur"/>
<feMerge>
<feMergeNode in="coloredBlur"/>
<feMergeNode in="SourceGraphic"/>
</feMerge>
</filter>
</defs>
`, s.palette.SkyTop, s.palette.SkyBottom)

	Rect{W: s.width, H: s.height, Fill: "url(#sky)"}.render(&buf)

	for _, e := range s.elems {
		e.render(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
