package export

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// inkLevel is the grey value below which a half cell counts as drawn.
const inkLevel = 192

// Cells shrinks img so that each terminal cell maps to two pixels stacked
// vertically: pixel (x, 2y) is the top half of cell (x, y) and (x, 2y+1)
// the bottom half.
func Cells(img image.Image, cols, rows int) *image.NRGBA {
	if cols <= 0 || rows <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	return imaging.Resize(img, cols, rows*2, imaging.Box)
}

// Ink reports whether c is dark enough to show as a drawn half cell.
func Ink(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < inkLevel
}

// TextRows renders img as half-block characters, one string per row with
// trailing blanks trimmed.
func TextRows(img image.Image, cols, rows int) []string {
	small := Cells(img, cols, rows)
	lines := make([]string, 0, rows)

	var line strings.Builder
	for y := 0; y < rows && 2*y+1 < small.Bounds().Dy(); y++ {
		line.Reset()
		for x := 0; x < cols; x++ {
			top := Ink(small.At(x, 2*y))
			bottom := Ink(small.At(x, 2*y+1))
			switch {
			case top && bottom:
				line.WriteRune('█')
			case top:
				line.WriteRune('▀')
			case bottom:
				line.WriteRune('▄')
			default:
				line.WriteByte(' ')
			}
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines
}

// Text joins TextRows into a single block.
func Text(img image.Image, cols, rows int) string {
	return strings.Join(TextRows(img, cols, rows), "\n")
}
