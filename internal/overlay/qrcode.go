package overlay

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"

	"github.com/forgelab/iconpress/internal/compose"
	"github.com/forgelab/iconpress/internal/compose/layout"
)

// qrFraction is the QR stamp's edge length relative to the canvas width.
const qrFraction = 5

// StampQR renders payload as a QR code and pastes it into the bottom-right
// corner, inset by padPx. An empty payload is a no-op.
func StampQR(dst *image.RGBA, payload string, padPx int) error {
	if payload == "" {
		return nil
	}
	sizePx := dst.Bounds().Dx() / qrFraction
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("build qr code: %w", err)
	}
	img := code.Image(sizePx)

	rect := layout.AnchorBottomRight(layout.Inset(dst.Bounds(), padPx), sizePx, sizePx)
	compose.Paste(dst, img, rect)
	return nil
}
