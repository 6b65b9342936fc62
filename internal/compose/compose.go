package compose

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/forgelab/iconpress/internal/compose/layout"
)

// OpaqueBounds returns the bounding box of all pixels with non-zero alpha.
// The zero rectangle means the image is fully transparent.
func OpaqueBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[row+(x-b.Min.X)*4+3] != 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// FitGlyph trims g to its opaque bounding box, scales it uniformly to fit
// the canvas minus padFrac of the canvas width on each side, and pastes it
// centered onto a copy of canvas using the glyph's alpha as mask. A fully
// transparent glyph skips the trim and is placed as-is.
func FitGlyph(canvas *image.RGBA, g *image.NRGBA, padFrac float64) *image.RGBA {
	out := image.NewRGBA(canvas.Bounds())
	copy(out.Pix, canvas.Pix)

	src := image.Image(g)
	if bb := OpaqueBounds(g); !bb.Empty() {
		src = g.SubImage(bb)
	}

	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	pad := int(float64(w) * padFrac)
	avail := layout.Inset(canvas.Bounds(), pad)

	sb := src.Bounds()
	s := layout.FitScale(avail.Dx(), avail.Dy(), sb.Dx(), sb.Dy())
	if s <= 0 {
		return out
	}
	dw := maxInt(1, int(float64(sb.Dx())*s))
	dh := maxInt(1, int(float64(sb.Dy())*s))

	dst := layout.CenterRect(image.Rect(0, 0, w, h), dw, dh)
	xdraw.CatmullRom.Scale(out, dst, src, sb, xdraw.Over, nil)
	return out
}

// Paste draws src over dst at rect, honoring src's alpha channel.
func Paste(dst *image.RGBA, src image.Image, rect image.Rectangle) {
	draw.Draw(dst, rect, src, src.Bounds().Min, draw.Over)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
