// Package input turns pointer events and action commands into stroke and
// history mutations.
//
// The Controller is a two-state machine (Idle, Drawing) advanced by a
// single Dispatch call. It is not safe for concurrent use; front ends call
// it from their one event loop.
package input

import (
	"sketchpad/internal/history"
	"sketchpad/internal/render"
	"sketchpad/internal/stroke"
	"sketchpad/internal/tool"
)

type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Notifier receives a change after every mutating event.
type Notifier interface {
	Notify(render.Change)
}

type Controller struct {
	history *history.Manager
	tools   *tool.Registry
	notify  Notifier

	state   State
	current *stroke.Stroke
	cursor  stroke.Point

	// held is true from PointerDown to PointerUp, and survives a command
	// that ends the stroke early.
	held bool

	preview    stroke.Marker
	hasPreview bool
}

func NewController(h *history.Manager, tools *tool.Registry, n Notifier) *Controller {
	return &Controller{
		history: h,
		tools:   tools,
		notify:  n,
	}
}

// Dispatch applies one event.
func (c *Controller) Dispatch(ev Event) {
	switch ev.Type {
	case PointerDown:
		c.pointerDown(ev.At)
	case PointerMove:
		c.pointerMove(ev.At)
	case PointerUp:
		c.pointerUp(ev.At)
	case PointerEnter:
		c.pointerEnter(ev.At)
	case PointerLeave:
		c.pointerLeave()
	case SelectTool:
		c.selectTool(ev.Tool)
	case Undo:
		c.endStroke()
		if c.history.Undo() {
			Logger().Debug("undo", "strokes", c.history.Len(), "redo", c.history.RedoLen())
			c.emit(render.DrawingChanged)
		}
	case Redo:
		c.endStroke()
		if c.history.Redo() {
			Logger().Debug("redo", "strokes", c.history.Len(), "redo", c.history.RedoLen())
			c.emit(render.DrawingChanged)
		}
	case Clear:
		c.endStroke()
		c.history.Clear()
		Logger().Debug("clear")
		c.emit(render.DrawingChanged)
	default:
		Logger().Warn("ignoring event", "type", ev.Type)
	}
}

func (c *Controller) pointerDown(at stroke.Point) {
	if c.state == Drawing {
		return
	}
	c.cursor = at
	c.held = true

	// Commit on the first point: redo is cleared here, and the stroke
	// renders from the log while it grows.
	s := stroke.New(at, c.tools.Style())
	c.history.Commit(s)
	c.current = s
	c.hasPreview = false
	c.state = Drawing

	Logger().Debug("stroke started", "id", s.ID, "tool", c.tools.Current(), "x", at.X, "y", at.Y)
	c.emit(render.DrawingChanged)
}

func (c *Controller) pointerMove(at stroke.Point) {
	c.cursor = at

	if c.state == Idle {
		if c.held {
			return
		}
		c.placePreview()
		c.emit(render.ToolMoved)
		return
	}

	c.current.Extend(at)
	c.emit(render.DrawingChanged)
}

func (c *Controller) pointerUp(at stroke.Point) {
	if c.state == Idle {
		if !c.held {
			return
		}
		// The stroke was ended by a command while the button was down.
		c.cursor = at
		c.held = false
		c.placePreview()
		c.emit(render.ToolMoved)
		return
	}
	c.cursor = at
	c.held = false

	Logger().Debug("stroke finished", "id", c.current.ID, "points", len(c.current.Points))
	c.endStroke()
	c.placePreview()
	c.emit(render.DrawingChanged)
}

func (c *Controller) pointerEnter(at stroke.Point) {
	if c.state == Drawing {
		return
	}
	c.cursor = at
	if c.held {
		return
	}
	c.placePreview()
	c.emit(render.ToolMoved)
}

func (c *Controller) pointerLeave() {
	if c.state == Drawing || !c.hasPreview {
		return
	}
	c.hasPreview = false
	c.emit(render.ToolMoved)
}

func (c *Controller) selectTool(k tool.Kind) {
	if !c.tools.Select(k) {
		Logger().Warn("unknown tool", "kind", int(k))
		return
	}
	Logger().Debug("tool selected", "tool", k)

	// The live stroke keeps the style it was created with.
	if c.hasPreview {
		c.placePreview()
		c.emit(render.ToolMoved)
	}
}

// endStroke freezes the live stroke, if any, and returns to Idle.
func (c *Controller) endStroke() {
	if c.current != nil {
		c.current.Freeze()
		c.current = nil
	}
	c.state = Idle
}

func (c *Controller) placePreview() {
	c.preview = stroke.Marker{At: c.cursor, Style: c.tools.Style()}
	c.hasPreview = true
}

func (c *Controller) emit(change render.Change) {
	if c.notify != nil {
		c.notify.Notify(change)
	}
}

// Strokes returns the committed log in render order.
func (c *Controller) Strokes() []*stroke.Stroke {
	return c.history.Strokes()
}

// Preview returns the cursor marker and whether one is showing.
func (c *Controller) Preview() (stroke.Marker, bool) {
	return c.preview, c.hasPreview
}

func (c *Controller) State() State              { return c.state }
func (c *Controller) Held() bool                { return c.held }
func (c *Controller) Current() *stroke.Stroke   { return c.current }
func (c *Controller) Cursor() stroke.Point      { return c.cursor }
func (c *Controller) History() *history.Manager { return c.history }
func (c *Controller) Tools() *tool.Registry     { return c.tools }
