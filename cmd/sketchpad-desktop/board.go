package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/fogleman/gg"

	"sketchpad/internal/config"
	"sketchpad/internal/history"
	"sketchpad/internal/input"
	"sketchpad/internal/render"
	"sketchpad/internal/stroke"
	"sketchpad/internal/tool"
)

// boardWidget shows the gg canvas and feeds pointer events to the
// controller. The image is stretched over the widget, so widget positions
// map linearly onto canvas pixels.
type boardWidget struct {
	widget.BaseWidget

	dc         *gg.Context
	bus        *render.Bus
	controller *input.Controller
	renderer   *render.Renderer
	image      *canvas.Image

	width, height float32

	// OnChange runs after every drawing-changed or tool-moved notification.
	OnChange func(render.Change)
}

var _ fyne.Widget = (*boardWidget)(nil)
var _ fyne.Draggable = (*boardWidget)(nil)
var _ desktop.Mouseable = (*boardWidget)(nil)
var _ desktop.Hoverable = (*boardWidget)(nil)

func newBoardWidget(cfg *config.Config) *boardWidget {
	b := &boardWidget{
		dc:     render.NewContext(cfg.CanvasWidth, cfg.CanvasHeight),
		bus:    &render.Bus{},
		width:  float32(cfg.CanvasWidth),
		height: float32(cfg.CanvasHeight),
	}
	b.controller = input.NewController(history.New(), tool.NewRegistry(cfg.Tool), b.bus)
	b.renderer = render.New(b.dc, b.controller)
	render.Attach(b.bus, b.renderer)

	b.image = canvas.NewImageFromImage(b.dc.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels
	b.image.SetMinSize(fyne.NewSize(b.width, b.height))

	b.bus.Subscribe(func(c render.Change) {
		b.image.Refresh()
		if b.OnChange != nil {
			b.OnChange(c)
		}
	})

	b.renderer.Redraw()
	b.ExtendBaseWidget(b)
	return b
}

func (b *boardWidget) Controller() *input.Controller { return b.controller }

// Snapshot is the committed drawing without the preview marker.
func (b *boardWidget) Snapshot() image.Image {
	return render.Snapshot(b.dc.Width(), b.dc.Height(), b.controller.Strokes()).Image()
}

func (b *boardWidget) Dispatch(ev input.Event) {
	b.controller.Dispatch(ev)
}

// toCanvas maps a widget position to a canvas pixel.
func (b *boardWidget) toCanvas(pos fyne.Position) stroke.Point {
	size := b.Size()
	sx, sy := float32(1), float32(1)
	if size.Width > 0 && size.Height > 0 {
		sx = b.width / size.Width
		sy = b.height / size.Height
	}
	x := min(max(pos.X*sx, 0), b.width-1)
	y := min(max(pos.Y*sy, 0), b.height-1)
	return stroke.Point{X: float64(x), Y: float64(y)}
}

func (b *boardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p := b.toCanvas(e.Position)
	b.Dispatch(input.Down(p.X, p.Y))
}

func (b *boardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p := b.toCanvas(e.Position)
	b.Dispatch(input.Up(p.X, p.Y))
}

func (b *boardWidget) MouseIn(e *desktop.MouseEvent) {
	p := b.toCanvas(e.Position)
	b.Dispatch(input.Enter(p.X, p.Y))
}

// MouseMoved only tracks the preview; while a button is held the driver
// reports motion through Dragged.
func (b *boardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.controller.State() == input.Drawing {
		return
	}
	p := b.toCanvas(e.Position)
	b.Dispatch(input.Move(p.X, p.Y))
}

func (b *boardWidget) MouseOut() {
	b.Dispatch(input.Leave())
}

func (b *boardWidget) Dragged(e *fyne.DragEvent) {
	if b.controller.State() != input.Drawing {
		return
	}
	p := b.toCanvas(e.Position)
	b.Dispatch(input.Move(p.X, p.Y))
}

// DragEnd releases a press whose MouseUp was missed, such as one dropped
// outside the window.
func (b *boardWidget) DragEnd() {
	if !b.controller.Held() {
		return
	}
	p := b.controller.Cursor()
	b.Dispatch(input.Up(p.X, p.Y))
}

func (b *boardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.image)
}
