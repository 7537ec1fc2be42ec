// Command sketchpad-desktop is the windowed front end: the same canvas,
// history and markers as the terminal sketchpad, driven by a real mouse.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/config"
	"sketchpad/internal/export"
	"sketchpad/internal/input"
	"sketchpad/internal/render"
)

const logEnv = "SKETCHPAD_LOG"

// window ties the board, toolbar and status label together.
type window struct {
	config  *config.Config
	board   *boardWidget
	toolbar *toolbar
	status  *widget.Label
	logger  *slog.Logger
	now     func() time.Time
}

func newWindow(cfg *config.Config, logger *slog.Logger) *window {
	w := &window{
		config: cfg,
		board:  newBoardWidget(cfg),
		status: widget.NewLabel(""),
		logger: logger,
		now:    time.Now,
	}
	w.toolbar = newToolbar(w.board)
	w.toolbar.OnExport = func() {
		if err := w.exportPNG(); err != nil {
			w.status.SetText(err.Error())
		}
	}
	w.toolbar.OnCommand = w.updateStatus
	w.board.OnChange = func(render.Change) {
		w.toolbar.sync()
		w.updateStatus()
	}
	w.updateStatus()
	return w
}

func (w *window) updateStatus() {
	c := w.board.Controller()
	w.status.SetText(fmt.Sprintf("%s marker | strokes: %d | redo: %d",
		c.Tools().Current(), c.History().Len(), c.History().RedoLen()))
}

func (w *window) exportPNG() error {
	if w.board.Controller().History().Len() == 0 {
		return fmt.Errorf("nothing to export")
	}
	path, err := w.config.SavePath(export.Filename(w.now()))
	if err != nil {
		return err
	}
	if err := export.PNG(path, w.board.Snapshot(), w.config.Caption); err != nil {
		return err
	}
	w.logger.Info("exported png", "path", path)
	w.status.SetText("Exported " + path)
	return nil
}

func (w *window) content() fyne.CanvasObject {
	return container.NewBorder(w.toolbar.object(), w.status, nil, nil, container.NewCenter(w.board))
}

// shortcuts binds ctrl+Z and ctrl+Y to undo and redo.
func (w *window) shortcuts(c fyne.Canvas) {
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		w.board.Dispatch(input.Command(input.Undo))
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		w.board.Dispatch(input.Command(input.Redo))
	})
}

func main() {
	logger := input.Logger()
	if os.Getenv(logEnv) != "" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		input.SetLogger(logger)
	}

	cfg := config.Load()
	a := app.New()
	win := a.NewWindow("Sketchpad")

	w := newWindow(cfg, logger)
	win.SetContent(w.content())
	w.shortcuts(win.Canvas())
	win.ShowAndRun()
}
