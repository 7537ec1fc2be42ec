package stroke

import (
	"image/color"

	"github.com/google/uuid"
)

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Style is a visual preset. Strokes keep a pointer to the Style that was
// current when they were created, so presets must never be mutated.
type Style struct {
	Name        string
	LineWidth   float64
	StrokeColor color.Color
	FillColor   color.Color
	DotRadius   float64
}

// Surface is the drawing target a Stroke renders onto. *gg.Context
// satisfies it.
type Surface interface {
	SetColor(c color.Color)
	SetLineWidth(lineWidth float64)
	SetLineCapRound()
	SetLineJoinRound()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawCircle(x, y, r float64)
	Stroke()
	Fill()
	Push()
	Pop()
}

// Stroke is one pointer-down to pointer-up drawing action.
type Stroke struct {
	ID     string
	Points []Point
	Style  *Style
	frozen bool
}

// New starts a stroke with a single point.
func New(start Point, style *Style) *Stroke {
	return &Stroke{
		ID:     uuid.NewString(),
		Points: []Point{start},
		Style:  style,
	}
}

// Extend appends p. It does nothing once the stroke is frozen.
func (s *Stroke) Extend(p Point) {
	if s.frozen {
		return
	}
	s.Points = append(s.Points, p)
}

func (s *Stroke) Freeze()      { s.frozen = true }
func (s *Stroke) Frozen() bool { return s.frozen }

// IsDot reports whether the stroke renders as a dot.
func (s *Stroke) IsDot() bool {
	return len(s.Points) == 1
}

// Render draws the stroke onto surface. A single point is a filled dot;
// two or more points are a round-capped polyline.
func (s *Stroke) Render(surface Surface) {
	if len(s.Points) == 0 || s.Style == nil {
		return
	}

	surface.Push()
	defer surface.Pop()

	surface.SetLineCapRound()
	surface.SetLineJoinRound()
	surface.SetLineWidth(s.Style.LineWidth)

	if s.IsDot() {
		p := s.Points[0]
		surface.SetColor(s.Style.FillColor)
		surface.DrawCircle(p.X, p.Y, s.Style.DotRadius)
		surface.Fill()
		return
	}

	surface.SetColor(s.Style.StrokeColor)
	surface.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		surface.LineTo(p.X, p.Y)
	}
	surface.Stroke()
}
