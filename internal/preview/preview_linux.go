//go:build linux && cgo

package preview

import (
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// Show blits img to the Linux framebuffer, nearest-neighbor scaled to the
// display size, so the result can be checked on appliance hardware without
// copying the file anywhere.
func Show(img image.Image) error {
	dev, err := fb.Open("/dev/fb0")
	if err != nil {
		return fmt.Errorf("open framebuffer: %w", err)
	}
	defer dev.Close()

	sb := img.Bounds()
	db := dev.Bounds()
	for y := 0; y < db.Dy(); y++ {
		sy := sb.Min.Y + y*sb.Dy()/db.Dy()
		for x := 0; x < db.Dx(); x++ {
			sx := sb.Min.X + x*sb.Dx()/db.Dx()
			r, g, b, _ := img.At(sx, sy).RGBA()
			dev.Set(db.Min.X+x, db.Min.Y+y, color.RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: 0xFF,
			})
		}
	}
	return nil
}
