//go:build !linux || !cgo

package preview

import (
	"errors"
	"image"
)

// Show is only implemented for the Linux framebuffer.
func Show(img image.Image) error {
	return errors.New("framebuffer preview is only available on linux")
}
