package input

import (
	"fmt"

	"sketchpad/internal/stroke"
	"sketchpad/internal/tool"
)

type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
	PointerEnter
	PointerLeave
	SelectTool
	Undo
	Redo
	Clear
)

var eventNames = [...]string{
	PointerDown:  "pointer-down",
	PointerMove:  "pointer-move",
	PointerUp:    "pointer-up",
	PointerEnter: "pointer-enter",
	PointerLeave: "pointer-leave",
	SelectTool:   "select-tool",
	Undo:         "undo",
	Redo:         "redo",
	Clear:        "clear",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event is one input to the controller. At is used by pointer events and
// Tool by SelectTool.
type Event struct {
	Type EventType
	At   stroke.Point
	Tool tool.Kind
}

func Down(x, y float64) Event  { return Event{Type: PointerDown, At: stroke.Point{X: x, Y: y}} }
func Move(x, y float64) Event  { return Event{Type: PointerMove, At: stroke.Point{X: x, Y: y}} }
func Up(x, y float64) Event    { return Event{Type: PointerUp, At: stroke.Point{X: x, Y: y}} }
func Enter(x, y float64) Event { return Event{Type: PointerEnter, At: stroke.Point{X: x, Y: y}} }
func Leave() Event             { return Event{Type: PointerLeave} }

func Select(k tool.Kind) Event { return Event{Type: SelectTool, Tool: k} }

// Command builds one of the Undo, Redo or Clear events.
func Command(t EventType) Event { return Event{Type: t} }
