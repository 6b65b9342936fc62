package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawLabel draws a small centered caption near the bottom edge of the
// icon, with a one-pixel shadow so it stays legible on the textured
// background. The caption baseline sits at half the bottom padding.
func DrawLabel(dst *image.RGBA, text string, fg color.Color, padPx int) error {
	if text == "" {
		return nil
	}
	b := dst.Bounds()
	fc, err := face(float64(b.Dx()) * 0.04)
	if err != nil {
		return err
	}

	baseline := b.Max.Y - padPx/2
	shadow := color.NRGBA{A: 160}
	drawTextAt(dst, text, fc, shadow, baseline+1, 1)
	drawTextAt(dst, text, fc, fg, baseline, 0)
	return nil
}

func drawTextAt(dst *image.RGBA, text string, fc font.Face, fg color.Color, baseline, xOffset int) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: fc,
	}
	width := drawer.MeasureString(text).Ceil()
	x := (dst.Bounds().Dx()-width)/2 + xOffset
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}
