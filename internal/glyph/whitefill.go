package glyph

import "image"

// whiteThreshold is the minimum value each of R, G and B must reach for a
// pixel to count as background white.
const whiteThreshold = 245

// RemoveOuterWhite erases, in place, every near-white pixel that is
// reachable from the image border through 4-connected near-white
// neighbors. Erasing means setting alpha to zero; the color channels are
// left as-is. White pixels fully enclosed by non-white pixels are not
// touched, so intentional white detail inside the artwork survives while
// the white canvas around it is stripped.
func RemoveOuterWhite(img *image.NRGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	isWhite := func(x, y int) bool {
		o := img.PixOffset(b.Min.X+x, b.Min.Y+y)
		return img.Pix[o+3] > 0 &&
			img.Pix[o+0] >= whiteThreshold &&
			img.Pix[o+1] >= whiteThreshold &&
			img.Pix[o+2] >= whiteThreshold
	}

	visited := make([]bool, w*h)
	queue := make([]image.Point, 0, 2*(w+h))
	push := func(x, y int) {
		if !visited[y*w+x] && isWhite(x, y) {
			visited[y*w+x] = true
			queue = append(queue, image.Point{X: x, Y: y})
		}
	}

	// Seed the traversal from all four borders.
	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		img.Pix[img.PixOffset(b.Min.X+p.X, b.Min.Y+p.Y)+3] = 0
		if p.X > 0 {
			push(p.X-1, p.Y)
		}
		if p.X < w-1 {
			push(p.X+1, p.Y)
		}
		if p.Y > 0 {
			push(p.X, p.Y-1)
		}
		if p.Y < h-1 {
			push(p.X, p.Y+1)
		}
	}
}
