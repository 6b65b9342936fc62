package glyph

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Load reads the glyph artwork at path. PNG sources are decoded as-is;
// SVG sources are rasterized so their larger dimension equals targetSize.
func Load(path string, targetSize int) (*image.NRGBA, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return loadSVG(path, targetSize)
	}
	return loadPNG(path)
}

func loadPNG(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open glyph: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode glyph %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

func loadSVG(path string, targetSize int) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open glyph: %w", err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, fmt.Errorf("parse svg %s: %w", path, err)
	}

	// Preserve the viewbox aspect ratio inside a targetSize bounding box.
	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		vw, vh = float64(targetSize), float64(targetSize)
	}
	scale := float64(targetSize) / vw
	if s := float64(targetSize) / vh; s < scale {
		scale = s
	}
	w := maxInt(1, int(vw*scale))
	h := maxInt(1, int(vh*scale))

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	dasher := rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, rgba, rgba.Bounds()))
	icon.Draw(dasher, 1.0)
	return ToNRGBA(rgba), nil
}

// ToNRGBA returns img as a non-premultiplied RGBA buffer, copying when the
// underlying type does not already match.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	out := image.NewNRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
