package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"

	"sketchpad/internal/config"
	"sketchpad/internal/export"
	"sketchpad/internal/history"
	"sketchpad/internal/input"
	"sketchpad/internal/render"
	"sketchpad/internal/stroke"
	"sketchpad/internal/tool"
)

// Board is the drawing surface as the terminal sees it: a gg raster shown
// as half-block cells, cellPixels wide and 2*cellPixels tall.
type Board struct {
	dc         *gg.Context
	bus        *render.Bus
	controller *input.Controller
	renderer   *render.Renderer

	cols, rows int
	cellPixels int

	lines []string
	dirty bool
}

func NewBoard(cfg *config.Config) *Board {
	cell := cfg.CellPixels
	if cell < 1 {
		cell = 1
	}

	b := &Board{
		dc:         render.NewContext(cfg.CanvasWidth, cfg.CanvasHeight),
		bus:        &render.Bus{},
		cellPixels: cell,
		cols:       int(math.Ceil(float64(cfg.CanvasWidth) / float64(cell))),
		rows:       int(math.Ceil(float64(cfg.CanvasHeight) / float64(2*cell))),
		dirty:      true,
	}
	b.controller = input.NewController(history.New(), tool.NewRegistry(cfg.Tool), b.bus)
	b.renderer = render.New(b.dc, b.controller)
	render.Attach(b.bus, b.renderer)
	b.bus.Subscribe(func(render.Change) { b.dirty = true })

	b.renderer.Redraw()
	return b
}

func (b *Board) Dispatch(ev input.Event) {
	b.controller.Dispatch(ev)
}

func (b *Board) Controller() *input.Controller { return b.controller }
func (b *Board) Size() (cols, rows int)        { return b.cols, b.rows }

// Snapshot is the committed drawing without the preview marker.
func (b *Board) Snapshot() image.Image {
	return render.Snapshot(b.dc.Width(), b.dc.Height(), b.controller.Strokes()).Image()
}

// Contains reports whether cell (x, y), relative to the board origin, is
// on the canvas.
func (b *Board) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.cols && y < b.rows
}

// Clamp pulls (x, y) onto the nearest board cell.
func (b *Board) Clamp(x, y int) (int, int) {
	x = max(0, min(x, b.cols-1))
	y = max(0, min(y, b.rows-1))
	return x, y
}

// CellToCanvas maps a board cell to the canvas pixel at its centre.
func (b *Board) CellToCanvas(x, y int) stroke.Point {
	c := float64(b.cellPixels)
	return stroke.Point{
		X: (float64(x) + 0.5) * c,
		Y: (float64(y) + 0.5) * 2 * c,
	}
}

// Text is the committed drawing as plain half-block characters.
func (b *Board) Text() string {
	return export.Text(b.Snapshot(), b.cols, b.rows)
}

// Lines returns the coloured rows of the canvas, re-rasterised only after
// a change notification.
func (b *Board) Lines() []string {
	if !b.dirty && b.lines != nil {
		return b.lines
	}

	small := export.Cells(b.dc.Image(), b.cols, b.rows)
	lines := make([]string, 0, b.rows)

	var row strings.Builder
	for y := 0; y < b.rows; y++ {
		row.Reset()

		runStart := 0
		var runFg, runBg string
		for x := 0; x <= b.cols; x++ {
			var fg, bg string
			if x < b.cols {
				fg = hexColor(small.At(x, 2*y))
				bg = hexColor(small.At(x, 2*y+1))
				if x == 0 {
					runFg, runBg = fg, bg
				}
				if fg == runFg && bg == runBg {
					continue
				}
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(runFg)).
				Background(lipgloss.Color(runBg))
			row.WriteString(style.Render(strings.Repeat("▀", x-runStart)))
			runStart, runFg, runBg = x, fg, bg
		}
		lines = append(lines, row.String())
	}

	b.lines = lines
	b.dirty = false
	return lines
}

func hexColor(c color.Color) string {
	r, g, bl, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8)
}
