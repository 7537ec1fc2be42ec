package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/input"
	"sketchpad/internal/tool"
)

// toolbar holds the command buttons and the two marker buttons. The
// selected marker is drawn with high importance.
type toolbar struct {
	board *boardWidget

	undo, redo, clear *widget.Button
	markers           map[tool.Kind]*widget.Button
	export            *widget.Button

	// OnExport is called by the Export button.
	OnExport  func()
	// OnCommand runs after any other button.
	OnCommand func()
}

func newToolbar(board *boardWidget) *toolbar {
	t := &toolbar{board: board, markers: make(map[tool.Kind]*widget.Button)}

	t.undo = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), func() {
		t.run(input.Command(input.Undo))
	})
	t.redo = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), func() {
		t.run(input.Command(input.Redo))
	})
	t.clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		t.run(input.Command(input.Clear))
	})
	for _, k := range []tool.Kind{tool.Thin, tool.Thick} {
		t.markers[k] = widget.NewButton(markerLabel(k), func() {
			t.run(input.Select(k))
		})
	}
	t.export = widget.NewButtonWithIcon("Export PNG", theme.DocumentSaveIcon(), func() {
		if t.OnExport != nil {
			t.OnExport()
		}
	})

	t.sync()
	return t
}

// run dispatches ev and resyncs the buttons.
func (t *toolbar) run(ev input.Event) {
	t.board.Dispatch(ev)
	t.sync()
	if t.OnCommand != nil {
		t.OnCommand()
	}
}

func markerLabel(k tool.Kind) string {
	if k == tool.Thick {
		return "Thick Marker"
	}
	return "Thin Marker"
}

// sync updates button state from the controller.
func (t *toolbar) sync() {
	c := t.board.Controller()
	h := c.History()

	setEnabled(t.undo, h.CanUndo())
	setEnabled(t.redo, h.CanRedo())
	setEnabled(t.clear, h.CanUndo() || h.CanRedo())
	setEnabled(t.export, h.CanUndo())

	current := c.Tools().Current()
	for k, btn := range t.markers {
		want := widget.MediumImportance
		if k == current {
			want = widget.HighImportance
		}
		if btn.Importance != want {
			btn.Importance = want
			btn.Refresh()
		}
	}
}

func setEnabled(btn *widget.Button, on bool) {
	if on == !btn.Disabled() {
		return
	}
	if on {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

func (t *toolbar) object() fyne.CanvasObject {
	return container.NewHBox(
		t.undo, t.redo, t.clear,
		widget.NewSeparator(),
		t.markers[tool.Thin], t.markers[tool.Thick],
		widget.NewSeparator(),
		t.export,
	)
}
