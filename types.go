package main

import (
	"log/slog"
	"time"

	"sketchpad/internal/config"
	"sketchpad/internal/input"
	"sketchpad/internal/tool"
)

type model struct {
	width          int
	height         int
	config         *config.Config
	board          *Board
	mode           Mode
	help           bool
	confirmAction  ConfirmAction
	pointerInside  bool
	errorMessage   string
	successMessage string
	logger         *slog.Logger

	now      func() time.Time
	copyText func(string) error
}

// toolbarButton is a clickable label on the toolbar row.
type toolbarButton struct {
	label  string
	event  input.Event
	tool   tool.Kind
	isTool bool
}

// span is a half-open column range [start, end).
type span struct {
	start, end int
}
