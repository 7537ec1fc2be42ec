package main

import (
	"fmt"
	"strings"

	"sketchpad/internal/export"
)

func (m *model) exportPNG() error {
	if m.board.Controller().History().Len() == 0 {
		return fmt.Errorf("nothing to export")
	}

	filename := export.Filename(m.now())
	path, err := m.config.SavePath(filename)
	if err != nil {
		return err
	}
	if err := export.PNG(path, m.board.Snapshot(), m.config.Caption); err != nil {
		return err
	}

	m.logger.Info("exported png", "path", path)
	m.successMessage = "Exported " + path
	m.errorMessage = ""
	return nil
}

func (m *model) copyAsText() error {
	text := m.board.Text()
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to copy")
	}
	if err := m.copyText(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	m.logger.Info("copied canvas as text", "bytes", len(text))
	m.successMessage = "Canvas copied to clipboard"
	m.errorMessage = ""
	return nil
}
