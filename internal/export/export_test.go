package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fogleman/gg"
)

func blockImage() image.Image {
	dc := gg.NewContext(8, 8)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)
	dc.DrawRectangle(0, 0, 4, 4)
	dc.Fill()
	dc.DrawRectangle(4, 4, 4, 4)
	dc.Fill()
	return dc.Image()
}

func TestTextRows(t *testing.T) {
	rows := TextRows(blockImage(), 2, 1)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0] != "▀▄" {
		t.Errorf("rows[0] = %q, want %q", rows[0], "▀▄")
	}
}

func TestTextRowsBlank(t *testing.T) {
	dc := gg.NewContext(8, 8)
	dc.SetColor(color.White)
	dc.Clear()
	if got := Text(dc.Image(), 2, 1); got != "" {
		t.Errorf("Text(blank) = %q, want empty", got)
	}
	if got := TextRows(dc.Image(), 0, 0); len(got) != 0 {
		t.Errorf("TextRows with no cells = %v", got)
	}
}

func TestInk(t *testing.T) {
	tests := []struct {
		c    color.Color
		want bool
	}{
		{color.Black, true},
		{color.White, false},
		{color.Gray{Y: 128}, true},
		{color.Gray{Y: 230}, false},
	}
	for _, tc := range tests {
		if got := Ink(tc.c); got != tc.want {
			t.Errorf("Ink(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 10, 14, 9, 5, 7, 0, time.UTC)
	if got := Filename(ts); got != "sketch-20261014-090507.png" {
		t.Errorf("Filename = %q", got)
	}
}

func TestPNG(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		height  int
	}{
		{name: "plain", caption: "", height: 8},
		{name: "captioned", caption: "hi", height: 8 + captionHeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.png")
			if err := PNG(path, blockImage(), tc.caption); err != nil {
				t.Fatalf("PNG: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := img.Bounds().Dy(); got != tc.height {
				t.Errorf("height = %d, want %d", got, tc.height)
			}
		})
	}
}

func TestPNGErrors(t *testing.T) {
	if err := PNG(filepath.Join(t.TempDir(), "x.png"), image.NewRGBA(image.Rect(0, 0, 0, 0)), ""); err == nil {
		t.Errorf("PNG(empty) = nil, want error")
	}
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "x.png")
	if err := PNG(missing, blockImage(), ""); err == nil {
		t.Errorf("PNG to missing directory = nil, want error")
	}
}
