package main

import "sketchpad/internal/input"

func (m *model) undo() {
	if !m.board.Controller().History().CanUndo() {
		m.errorMessage = "Nothing to undo"
		return
	}
	m.board.Dispatch(input.Command(input.Undo))
	m.successMessage = ""
	m.errorMessage = ""
}

func (m *model) redo() {
	if !m.board.Controller().History().CanRedo() {
		m.errorMessage = "Nothing to redo"
		return
	}
	m.board.Dispatch(input.Command(input.Redo))
	m.successMessage = ""
	m.errorMessage = ""
}

// requestClear clears at once, or asks first when confirmations are on and
// there is something to lose.
func (m *model) requestClear() {
	h := m.board.Controller().History()
	if m.config.Confirmations && (h.CanUndo() || h.CanRedo()) {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
		return
	}
	m.clear()
}

func (m *model) clear() {
	m.board.Dispatch(input.Command(input.Clear))
	m.successMessage = "Canvas cleared"
	m.errorMessage = ""
}

// runCommand applies a toolbar or key command.
func (m *model) runCommand(ev input.Event) {
	switch ev.Type {
	case input.Undo:
		m.undo()
	case input.Redo:
		m.redo()
	case input.Clear:
		m.requestClear()
	case input.SelectTool:
		m.board.Dispatch(ev)
		m.successMessage = ev.Tool.String() + " marker selected"
		m.errorMessage = ""
	}
}
