package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sketchpad/internal/input"
	"sketchpad/internal/tool"
)

var toolbarButtons = []toolbarButton{
	{label: "Undo", event: input.Command(input.Undo)},
	{label: "Redo", event: input.Command(input.Redo)},
	{label: "Clear", event: input.Command(input.Clear)},
	{label: "Thin Marker", event: input.Select(tool.Thin), tool: tool.Thin, isTool: true},
	{label: "Thick Marker", event: input.Select(tool.Thick), tool: tool.Thick, isTool: true},
}

var (
	buttonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")).Background(lipgloss.Color("#243141"))
	activeToolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7C3AED")).Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
)

// buttonSpans lays the toolbar out left to right, one space between
// buttons and each label padded by a space on either side.
func buttonSpans() []span {
	spans := make([]span, len(toolbarButtons))
	x := 0
	for i, btn := range toolbarButtons {
		w := len(btn.label) + 2
		spans[i] = span{start: x, end: x + w}
		x += w + 1
	}
	return spans
}

func (m *model) renderToolbar() string {
	current := m.board.Controller().Tools().Current()

	parts := make([]string, len(toolbarButtons))
	for i, btn := range toolbarButtons {
		style := buttonStyle
		if btn.isTool && btn.tool == current {
			style = activeToolStyle
		}
		parts[i] = style.Render(" " + btn.label + " ")
	}
	return strings.Join(parts, " ")
}

func (m *model) clickToolbar(x int) {
	for i, s := range buttonSpans() {
		if x >= s.start && x < s.end {
			m.runCommand(toolbarButtons[i].event)
			return
		}
	}
}

// handleMouse turns terminal mouse reports into pointer events. The canvas
// sits at column 0 below the toolbar row.
func (m *model) handleMouse(msg tea.MouseMsg) {
	bx, by := msg.X, msg.Y-canvasTop
	inside := m.board.Contains(bx, by)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if msg.Y == toolbarRow {
			m.clickToolbar(msg.X)
			return
		}
		if !inside {
			return
		}
		p := m.board.CellToCanvas(bx, by)
		if !m.pointerInside {
			m.pointerInside = true
			m.board.Dispatch(input.Enter(p.X, p.Y))
		}
		m.board.Dispatch(input.Down(p.X, p.Y))

	case tea.MouseActionMotion:
		if !inside {
			if m.pointerInside {
				m.pointerInside = false
				m.board.Dispatch(input.Leave())
			}
			return
		}
		p := m.board.CellToCanvas(bx, by)
		if !m.pointerInside {
			m.pointerInside = true
			m.board.Dispatch(input.Enter(p.X, p.Y))
		}
		m.board.Dispatch(input.Move(p.X, p.Y))

	case tea.MouseActionRelease:
		cx, cy := m.board.Clamp(bx, by)
		p := m.board.CellToCanvas(cx, cy)
		m.board.Dispatch(input.Up(p.X, p.Y))
	}
}
