package texture

import (
	"image"
	"image/color"
	"math/rand/v2"
)

// Noise field parameters tuned for a subtle sandstone grain.
const (
	noiseSigma = 70.0 // stddev of the per-pixel gaussian noise, centered on mid-gray
	blurSigma  = 0.8  // gaussian blur applied to the noise field before blending
	darkFactor = 0.85 // tint toward this multiple of the base color where noise is low
	lightFac   = 1.10 // tint toward this multiple where noise is high
	darkWeight = 0.30 // maximum blend weight of the dark tint
	lightWt    = 0.15 // maximum blend weight of the light tint
)

// Sandstone returns a w x h fully opaque canvas of the base color with a
// procedural grain. The noise is freshly seeded on every call, so two
// invocations produce different (but statistically identical) textures.
func Sandstone(w, h int, base color.RGBA) *image.RGBA {
	return render(w, h, base, rand.Uint64())
}

// SandstoneSeeded is Sandstone with a fixed noise seed, for reproducible
// output.
func SandstoneSeeded(w, h int, base color.RGBA, seed uint64) *image.RGBA {
	return render(w, h, base, seed)
}

func render(w, h int, base color.RGBA, seed uint64) *image.RGBA {
	noise := blur(noiseField(w, h, seed), w, h)

	dark := scaleColor(base, darkFactor)
	light := scaleColor(base, lightFac)

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	pix := canvas.Pix
	for i, n := range noise {
		// Dark pass weighted by the noise value, then a light pass
		// weighted by its inverse. Weights are scaled down so the
		// grain stays subtle.
		wd := float64(n) / 255 * darkWeight
		wl := float64(255-n) / 255 * lightWt

		r := lerp(lerp(float64(base.R), float64(dark.R), wd), float64(light.R), wl)
		g := lerp(lerp(float64(base.G), float64(dark.G), wd), float64(light.G), wl)
		b := lerp(lerp(float64(base.B), float64(dark.B), wd), float64(light.B), wl)

		o := i * 4
		pix[o+0] = uint8(r + 0.5)
		pix[o+1] = uint8(g + 0.5)
		pix[o+2] = uint8(b + 0.5)
		pix[o+3] = 0xFF
	}
	return canvas
}

// noiseField fills a w*h grayscale buffer with gaussian noise around
// mid-gray.
func noiseField(w, h int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	field := make([]float64, w*h)
	for i := range field {
		field[i] = clampF(128+rng.NormFloat64()*noiseSigma, 0, 255)
	}
	return field
}

// blur applies a separable 3x3 gaussian (sigma blurSigma) to the field and
// returns it quantized to bytes. Edge rows/columns clamp to the border.
func blur(field []float64, w, h int) []uint8 {
	// Normalized 1D kernel for sigma 0.8: exp(-1/(2*sigma^2)) side taps.
	const side = 0.2387
	const center = 1 - 2*side

	tmp := make([]float64, len(field))
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			l, r := x-1, x+1
			if l < 0 {
				l = 0
			}
			if r >= w {
				r = w - 1
			}
			tmp[row+x] = field[row+l]*side + field[row+x]*center + field[row+r]*side
		}
	}
	out := make([]uint8, len(field))
	for y := 0; y < h; y++ {
		u, d := y-1, y+1
		if u < 0 {
			u = 0
		}
		if d >= h {
			d = h - 1
		}
		for x := 0; x < w; x++ {
			v := tmp[u*w+x]*side + tmp[y*w+x]*center + tmp[d*w+x]*side
			out[y*w+x] = uint8(clampF(v, 0, 255) + 0.5)
		}
	}
	return out
}

func scaleColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(clampF(float64(c.R)*f, 0, 255)),
		G: uint8(clampF(float64(c.G)*f, 0, 255)),
		B: uint8(clampF(float64(c.B)*f, 0, 255)),
		A: 0xFF,
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
