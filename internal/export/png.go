package export

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	captionHeight = 20
	captionSize   = 12.0
)

// Filename is the default PNG name for a snapshot taken at t.
func Filename(t time.Time) string {
	return "sketch-" + t.Format("20060102-150405") + ".png"
}

// Compose returns img with caption drawn in a band above it. An empty
// caption returns img unchanged.
func Compose(img image.Image, caption string) (image.Image, error) {
	if caption == "" {
		return img, nil
	}

	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy()+captionHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(caption, float64(b.Dx())/2, captionHeight/2, 0.5, 0.5)
	dc.DrawImage(img, 0, captionHeight)

	return dc.Image(), nil
}

// PNG writes img, with an optional caption, to path.
func PNG(path string, img image.Image, caption string) error {
	if img.Bounds().Empty() {
		return fmt.Errorf("nothing to export")
	}

	out, err := Compose(img, caption)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, out); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
