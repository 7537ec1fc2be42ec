package stroke

import "math"

// markerOutline is the pen width of the cursor ring.
const markerOutline = 2

// Marker is the cursor-following ring that shows the current tool size
// while no stroke is active. It is never committed.
type Marker struct {
	At    Point
	Style *Style
}

// Radius is half the tool line width, never less than one pixel.
func (m Marker) Radius() float64 {
	if m.Style == nil {
		return 1
	}
	return math.Max(1, m.Style.LineWidth/2)
}

func (m Marker) Render(surface Surface) {
	if m.Style == nil {
		return
	}
	surface.Push()
	defer surface.Pop()

	surface.SetLineWidth(markerOutline)
	surface.SetColor(m.Style.StrokeColor)
	surface.DrawCircle(m.At.X, m.At.Y, m.Radius())
	surface.Stroke()
}
