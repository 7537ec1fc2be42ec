// Package render redraws a canvas from the committed strokes and the
// preview marker.
package render

import (
	"image/color"

	"github.com/fogleman/gg"

	"sketchpad/internal/stroke"
)

// Background is the colour the canvas is cleared to.
var Background color.Color = color.White

// Canvas is a Surface that can also be wiped. *gg.Context satisfies it.
type Canvas interface {
	stroke.Surface
	Clear()
}

// Scene is what a redraw reads. Nothing else is consulted.
type Scene interface {
	Strokes() []*stroke.Stroke
	Preview() (stroke.Marker, bool)
}

type Renderer struct {
	canvas Canvas
	scene  Scene
	frames int
}

func New(canvas Canvas, scene Scene) *Renderer {
	return &Renderer{canvas: canvas, scene: scene}
}

// NewContext creates a gg context of the given size, cleared to Background.
func NewContext(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetColor(Background)
	dc.Clear()
	return dc
}

// Redraw paints every committed stroke in log order and then the preview.
func (r *Renderer) Redraw() {
	r.frames++

	r.canvas.SetColor(Background)
	r.canvas.Clear()

	for _, s := range r.scene.Strokes() {
		s.Render(r.canvas)
	}

	if marker, ok := r.scene.Preview(); ok {
		marker.Render(r.canvas)
	}
}

// Frames counts completed redraws.
func (r *Renderer) Frames() int { return r.frames }

// strokesOnly is a Scene with no preview.
type strokesOnly []*stroke.Stroke

func (s strokesOnly) Strokes() []*stroke.Stroke      { return s }
func (s strokesOnly) Preview() (stroke.Marker, bool) { return stroke.Marker{}, false }

// Snapshot paints strokes alone onto a fresh context. The preview marker is
// never part of it.
func Snapshot(width, height int, strokes []*stroke.Stroke) *gg.Context {
	dc := NewContext(width, height)
	New(dc, strokesOnly(strokes)).Redraw()
	return dc
}

// Attach subscribes the renderer to every change on bus.
func Attach(bus *Bus, r *Renderer) {
	bus.Subscribe(func(Change) {
		r.Redraw()
	})
}
