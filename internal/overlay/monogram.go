package overlay

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Monogram renders text as a standalone glyph image on a transparent
// square of the given size, for runs where no artwork file is available.
// The text is centered and sized to roughly two thirds of the square.
func Monogram(text string, size int, fg color.Color) (*image.NRGBA, error) {
	if text == "" {
		return nil, fmt.Errorf("monogram text is empty")
	}
	fc, err := face(float64(size) * 0.66)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: fc,
	}

	width := drawer.MeasureString(text).Ceil()
	metrics := fc.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	baseline := (size+ascent-descent)/2 - 1

	drawer.Dot = fixed.P((size-width)/2, baseline)
	drawer.DrawString(text)
	return img, nil
}
