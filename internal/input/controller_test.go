package input

import (
	"testing"

	"sketchpad/internal/history"
	"sketchpad/internal/render"
	"sketchpad/internal/stroke"
	"sketchpad/internal/tool"
)

// changeLog records notifications in order.
type changeLog struct {
	changes []render.Change
}

func (l *changeLog) Notify(c render.Change) { l.changes = append(l.changes, c) }

func (l *changeLog) last() (render.Change, bool) {
	if len(l.changes) == 0 {
		return 0, false
	}
	return l.changes[len(l.changes)-1], true
}

func newTestController() (*Controller, *changeLog) {
	log := &changeLog{}
	return NewController(history.New(), tool.NewRegistry(tool.Thin), log), log
}

func draw(c *Controller, points ...stroke.Point) {
	c.Dispatch(Down(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		c.Dispatch(Move(p.X, p.Y))
	}
	last := points[len(points)-1]
	c.Dispatch(Up(last.X, last.Y))
}

func TestPointerDownCommitsImmediately(t *testing.T) {
	c, log := newTestController()
	c.Dispatch(Enter(1, 1))
	c.Dispatch(Down(3, 4))

	if c.State() != Drawing {
		t.Fatalf("State() = %v, want drawing", c.State())
	}
	if c.History().Len() != 1 {
		t.Errorf("history Len() = %d, want 1", c.History().Len())
	}
	if c.History().Last() != c.Current() {
		t.Errorf("live stroke is not the log tail")
	}
	if _, ok := c.Preview(); ok {
		t.Errorf("preview still showing while drawing")
	}
	if got, _ := log.last(); got != render.DrawingChanged {
		t.Errorf("last change = %v, want drawing-changed", got)
	}
}

func TestStrokeLifecycle(t *testing.T) {
	c, _ := newTestController()
	c.Dispatch(Down(0, 0))
	c.Dispatch(Move(5, 5))
	c.Dispatch(Move(10, 10))
	s := c.Current()
	c.Dispatch(Up(10, 10))

	if c.State() != Idle {
		t.Errorf("State() = %v after up, want idle", c.State())
	}
	if !s.Frozen() {
		t.Errorf("stroke not frozen after up")
	}
	if len(s.Points) != 3 {
		t.Errorf("len(Points) = %d, want 3", len(s.Points))
	}

	c.Dispatch(Move(20, 20))
	if len(s.Points) != 3 {
		t.Errorf("idle move extended a committed stroke")
	}
	marker, ok := c.Preview()
	if !ok || marker.At != (stroke.Point{X: 20, Y: 20}) {
		t.Errorf("Preview() = %v, %v, want marker at (20,20)", marker, ok)
	}
}

func TestClickWithoutMoveIsDot(t *testing.T) {
	c, _ := newTestController()
	c.Dispatch(Down(7, 7))
	c.Dispatch(Up(7, 7))

	s := c.History().Last()
	if s == nil || !s.IsDot() {
		t.Fatalf("click produced %v, want a one-point stroke", s)
	}
}

func TestPreviewAfterUp(t *testing.T) {
	c, log := newTestController()
	draw(c, stroke.Point{X: 1, Y: 1}, stroke.Point{X: 9, Y: 9})

	marker, ok := c.Preview()
	if !ok || marker.At != (stroke.Point{X: 9, Y: 9}) {
		t.Errorf("Preview() = %v, %v, want marker at (9,9)", marker, ok)
	}
	if got, _ := log.last(); got != render.DrawingChanged {
		t.Errorf("up notified %v, want drawing-changed", got)
	}
}

func TestIdleMoveOnlyMovesPreview(t *testing.T) {
	c, log := newTestController()
	draw(c, stroke.Point{X: 1, Y: 1})
	before := c.History().Strokes()

	c.Dispatch(Move(30, 40))
	if got, _ := log.last(); got != render.ToolMoved {
		t.Errorf("idle move notified %v, want tool-moved", got)
	}
	after := c.History().Strokes()
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("idle move changed the log")
	}
}

func TestEnterAndLeave(t *testing.T) {
	c, log := newTestController()
	c.Dispatch(Enter(4, 5))
	if _, ok := c.Preview(); !ok {
		t.Fatalf("enter did not place a preview")
	}

	c.Dispatch(Leave())
	if _, ok := c.Preview(); ok {
		t.Errorf("leave did not clear the preview")
	}
	n := len(log.changes)
	c.Dispatch(Leave())
	if len(log.changes) != n {
		t.Errorf("second leave notified again")
	}

	c.Dispatch(Down(4, 5))
	c.Dispatch(Enter(8, 8))
	if _, ok := c.Preview(); ok {
		t.Errorf("enter while drawing placed a preview")
	}
	c.Dispatch(Leave())
	if c.State() != Drawing {
		t.Errorf("leave while drawing ended the stroke")
	}
}

func TestIgnoredTransitions(t *testing.T) {
	c, log := newTestController()
	c.Dispatch(Up(1, 1))
	if len(log.changes) != 0 || c.History().Len() != 0 {
		t.Errorf("up while idle had an effect")
	}

	c.Dispatch(Down(1, 1))
	first := c.Current()
	c.Dispatch(Down(2, 2))
	if c.Current() != first || c.History().Len() != 1 {
		t.Errorf("second down started another stroke")
	}
}

func TestSelectToolRecomputesPreview(t *testing.T) {
	c, log := newTestController()
	c.Dispatch(Enter(10, 10))
	thin, _ := c.Preview()

	c.Dispatch(Select(tool.Thick))
	thick, ok := c.Preview()
	if !ok || thick.Radius() <= thin.Radius() {
		t.Errorf("preview radius %g after thick, was %g", thick.Radius(), thin.Radius())
	}
	if thick.At != thin.At {
		t.Errorf("preview moved on tool change")
	}
	if got, _ := log.last(); got != render.ToolMoved {
		t.Errorf("tool change notified %v, want tool-moved", got)
	}
}

func TestSelectToolWithoutPreviewIsQuiet(t *testing.T) {
	c, log := newTestController()
	c.Dispatch(Select(tool.Thick))
	if len(log.changes) != 0 {
		t.Errorf("tool change without preview notified %v", log.changes)
	}
	if c.Tools().Current() != tool.Thick {
		t.Errorf("Current() = %v, want thick", c.Tools().Current())
	}
}

func TestStyleBindsAtCreation(t *testing.T) {
	c, _ := newTestController()
	c.Dispatch(Down(0, 0))
	c.Dispatch(Select(tool.Thick))
	c.Dispatch(Move(5, 5))
	c.Dispatch(Up(5, 5))

	s := c.History().Last()
	if s.Style.LineWidth != 2 {
		t.Errorf("stroke LineWidth = %g, want 2 (thin at creation)", s.Style.LineWidth)
	}

	draw(c, stroke.Point{X: 1, Y: 1}, stroke.Point{X: 2, Y: 2})
	if got := c.History().Last().Style.LineWidth; got != 8 {
		t.Errorf("next stroke LineWidth = %g, want 8", got)
	}
}

func TestNewStrokeDiscardsRedo(t *testing.T) {
	c, _ := newTestController()
	draw(c, stroke.Point{X: 0, Y: 0}, stroke.Point{X: 10, Y: 10})
	draw(c, stroke.Point{X: 5, Y: 5})
	c.Dispatch(Command(Undo))
	if c.History().RedoLen() != 1 {
		t.Fatalf("RedoLen() = %d, want 1", c.History().RedoLen())
	}

	c.Dispatch(Down(1, 1))
	if c.History().RedoLen() != 0 {
		t.Errorf("RedoLen() = %d after down, want 0", c.History().RedoLen())
	}
	c.Dispatch(Up(1, 1))
	c.Dispatch(Command(Redo))
	if c.History().Len() != 2 {
		t.Errorf("redo after new stroke changed the log, Len() = %d", c.History().Len())
	}
}

func TestCommandNotifications(t *testing.T) {
	tests := []struct {
		name    string
		strokes int
		cmd     EventType
		notify  bool
	}{
		{name: "undo empty", strokes: 0, cmd: Undo, notify: false},
		{name: "undo", strokes: 1, cmd: Undo, notify: true},
		{name: "redo empty", strokes: 1, cmd: Redo, notify: false},
		{name: "clear empty", strokes: 0, cmd: Clear, notify: true},
		{name: "clear", strokes: 2, cmd: Clear, notify: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, log := newTestController()
			for i := 0; i < tc.strokes; i++ {
				draw(c, stroke.Point{X: float64(i)})
			}
			n := len(log.changes)
			c.Dispatch(Command(tc.cmd))
			notified := len(log.changes) > n
			if notified != tc.notify {
				t.Errorf("notified = %v, want %v", notified, tc.notify)
			}
			if notified {
				if got, _ := log.last(); got != render.DrawingChanged {
					t.Errorf("change = %v, want drawing-changed", got)
				}
			}
		})
	}
}

func TestUndoWhileDrawing(t *testing.T) {
	c, _ := newTestController()
	c.Dispatch(Down(0, 0))
	live := c.Current()
	c.Dispatch(Command(Undo))

	if c.State() != Idle || c.Current() != nil {
		t.Errorf("undo did not end the live stroke")
	}
	if !live.Frozen() {
		t.Errorf("undone live stroke not frozen")
	}
	if c.History().Len() != 0 || c.History().RedoLen() != 1 {
		t.Errorf("log %d redo %d, want 0 1", c.History().Len(), c.History().RedoLen())
	}

	c.Dispatch(Move(4, 4))
	if len(live.Points) != 1 {
		t.Errorf("move after undo extended the undone stroke")
	}
}

func TestNoPreviewWhileButtonHeld(t *testing.T) {
	for _, cmd := range []EventType{Undo, Clear} {
		t.Run(cmd.String(), func(t *testing.T) {
			c, log := newTestController()
			c.Dispatch(Down(0, 0))
			c.Dispatch(Command(cmd))
			if !c.Held() {
				t.Fatalf("Held() = false after %v mid-stroke", cmd)
			}

			n := len(log.changes)
			c.Dispatch(Move(4, 4))
			c.Dispatch(Enter(5, 5))
			if _, ok := c.Preview(); ok {
				t.Errorf("preview shown while the button is held")
			}
			if len(log.changes) != n {
				t.Errorf("changes = %v, want none while held", log.changes[n:])
			}

			c.Dispatch(Up(6, 6))
			if c.Held() {
				t.Errorf("Held() = true after up")
			}
			m, ok := c.Preview()
			if !ok || m.At != (stroke.Point{X: 6, Y: 6}) {
				t.Errorf("Preview() = %v,%v, want marker at (6,6)", m.At, ok)
			}
			if got, _ := log.last(); got != render.ToolMoved {
				t.Errorf("change = %v, want tool-moved", got)
			}
			if c.History().Len() != 0 {
				t.Errorf("release after %v committed a stroke", cmd)
			}

			c.Dispatch(Move(7, 7))
			if m, _ := c.Preview(); m.At != (stroke.Point{X: 7, Y: 7}) {
				t.Errorf("preview did not follow the pointer after release")
			}
		})
	}
}

func TestScenario(t *testing.T) {
	c, _ := newTestController()
	draw(c, stroke.Point{X: 0, Y: 0}, stroke.Point{X: 10, Y: 10})
	a := c.History().Last()
	draw(c, stroke.Point{X: 5, Y: 5})
	b := c.History().Last()

	c.Dispatch(Command(Undo))
	if got := c.Strokes(); len(got) != 1 || got[0] != a {
		t.Errorf("log after undo = %v, want [A]", got)
	}
	if got := c.History().Undone(); len(got) != 1 || got[0] != b {
		t.Errorf("redo after undo = %v, want [B]", got)
	}

	draw(c, stroke.Point{X: 2, Y: 8})
	cs := c.History().Last()
	if got := c.Strokes(); len(got) != 2 || got[0] != a || got[1] != cs {
		t.Errorf("log = %v, want [A C]", got)
	}
	if c.History().RedoLen() != 0 {
		t.Errorf("B survived the new commit")
	}
}
