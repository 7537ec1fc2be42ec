// Package history keeps the committed stroke log and the redo stack.
//
// Any commit clears the redo stack; diverging timelines are not kept.
package history

import "sketchpad/internal/stroke"

type Manager struct {
	log  []*stroke.Stroke
	redo []*stroke.Stroke
}

func New() *Manager {
	return &Manager{
		log:  []*stroke.Stroke{},
		redo: []*stroke.Stroke{},
	}
}

// Commit appends s to the log and clears the redo stack. Strokes with no
// points are rejected and leave both sequences untouched.
func (m *Manager) Commit(s *stroke.Stroke) bool {
	if s == nil || len(s.Points) == 0 {
		return false
	}
	m.log = append(m.log, s)
	clear(m.redo)
	m.redo = m.redo[:0]
	return true
}

// Undo moves the newest stroke onto the redo stack.
func (m *Manager) Undo() bool {
	if len(m.log) == 0 {
		return false
	}

	lastIndex := len(m.log) - 1
	s := m.log[lastIndex]
	m.log[lastIndex] = nil
	m.log = m.log[:lastIndex]

	m.redo = append(m.redo, s)
	return true
}

// Redo moves the most recently undone stroke back onto the log.
func (m *Manager) Redo() bool {
	if len(m.redo) == 0 {
		return false
	}

	lastIndex := len(m.redo) - 1
	s := m.redo[lastIndex]
	m.redo[lastIndex] = nil
	m.redo = m.redo[:lastIndex]

	m.log = append(m.log, s)
	return true
}

func (m *Manager) Clear() {
	clear(m.log)
	clear(m.redo)
	m.log = m.log[:0]
	m.redo = m.redo[:0]
}

// Strokes returns the log in render order. The slice is a copy.
func (m *Manager) Strokes() []*stroke.Stroke {
	out := make([]*stroke.Stroke, len(m.log))
	copy(out, m.log)
	return out
}

// Undone returns the redo stack, most recently undone last.
func (m *Manager) Undone() []*stroke.Stroke {
	out := make([]*stroke.Stroke, len(m.redo))
	copy(out, m.redo)
	return out
}

// Last returns the newest committed stroke, or nil.
func (m *Manager) Last() *stroke.Stroke {
	if len(m.log) == 0 {
		return nil
	}
	return m.log[len(m.log)-1]
}

func (m *Manager) Len() int      { return len(m.log) }
func (m *Manager) RedoLen() int  { return len(m.redo) }
func (m *Manager) CanUndo() bool { return len(m.log) > 0 }
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }
