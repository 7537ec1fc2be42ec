package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"sketchpad/internal/config"
	"sketchpad/internal/input"
	"sketchpad/internal/tool"
)

// logEnv names the file debug logs are written to. Logging is off when it
// is unset.
const logEnv = "SKETCHPAD_LOG"

var errNotTerminal = errors.New("sketchpad needs an interactive terminal; try sketchpad-desktop")

func main() {
	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	homeDir, _ := os.UserHomeDir()
	cfg, err := o.load(homeDir)
	if err != nil {
		log.Fatal(err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal(errNotTerminal)
	}

	logger := input.Logger()
	if path := os.Getenv(logEnv); path != "" {
		f, err := tea.LogToFile(path, "sketchpad")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		input.SetLogger(logger)
	}

	p := tea.NewProgram(
		newModel(cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func newModel(cfg *config.Config, logger *slog.Logger) model {
	return model{
		config:   cfg,
		board:    NewBoard(cfg),
		mode:     ModeNormal,
		logger:   logger,
		now:      time.Now,
		copyText: writeClipboardText,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.mode == ModeNormal && !m.help {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}

		if m.mode == ModeConfirm {
			return m.handleConfirm(msg.String())
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.config.Confirmations {
				m.mode = ModeConfirm
				m.confirmAction = ConfirmQuit
				return m, nil
			}
			return m, tea.Quit
		case "u", "ctrl+z":
			m.undo()
		case "U", "r", "ctrl+y":
			m.redo()
		case "c":
			m.requestClear()
		case "1", "t":
			m.runCommand(input.Select(tool.Thin))
		case "2", "T":
			m.runCommand(input.Select(tool.Thick))
		case "s":
			if err := m.exportPNG(); err != nil {
				m.errorMessage = err.Error()
				m.successMessage = ""
			}
		case "y":
			if err := m.copyAsText(); err != nil {
				m.errorMessage = err.Error()
				m.successMessage = ""
			}
		case "?":
			m.help = true
		case "esc":
			m.errorMessage = ""
			m.successMessage = ""
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleConfirm(key string) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	if key != "y" && key != "Y" {
		return m, nil
	}

	switch m.confirmAction {
	case ConfirmQuit:
		return m, tea.Quit
	case ConfirmClear:
		m.clear()
	}
	return m, nil
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.renderToolbar())
	b.WriteByte('\n')
	for _, line := range m.board.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) modeString() string {
	if m.mode == ModeConfirm {
		return "CONFIRM"
	}
	if m.board.Controller().State() == input.Drawing {
		return "DRAWING"
	}
	return "IDLE"
}

func (m model) statusLine() string {
	if m.mode == ModeConfirm {
		prompt := "Clear the canvas? (y/n)"
		if m.confirmAction == ConfirmQuit {
			prompt = "Quit sketchpad? (y/n)"
		}
		return errorStyle.Render(padRight(prompt, m.width))
	}

	c := m.board.Controller()
	status := fmt.Sprintf("%s | %s | strokes: %d | redo: %d | ? help",
		m.modeString(), c.Tools().Current(), c.History().Len(), c.History().RedoLen())

	switch {
	case m.errorMessage != "":
		return statusStyle.Render(status+" | ") + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		return statusStyle.Render(status+" | ") + successStyle.Render(m.successMessage)
	}
	return statusStyle.Render(padRight(status, m.width))
}

func (m model) helpView() string {
	helpLines := []string{
		"Sketchpad Help",
		"==============",
		"",
		"Drawing:",
		"--------",
		"  left drag        Draw a stroke",
		"  left click       Draw a dot",
		"  toolbar          Click Undo, Redo, Clear or a marker",
		"",
		"Markers:",
		"--------",
		"  1 / t            Thin marker",
		"  2 / T            Thick marker",
		"",
		"History:",
		"--------",
		"  u / ctrl+z       Undo last stroke",
		"  U / r / ctrl+y   Redo last undone stroke",
		"  c                Clear the canvas",
		"",
		"Output:",
		"-------",
		"  s                Export PNG",
		"  y                Copy the canvas to the clipboard as text",
		"",
		"General:",
		"  Esc              Dismiss messages",
		"  ?                Toggle this help screen",
		"  q / ctrl+c       Quit",
		"",
		"Press any key to return.",
	}
	return strings.Join(helpLines, "\n")
}
