package glyph

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPNGRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 200})

	path := filepath.Join(t.TempDir(), "glyph.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := Load(path, 1024)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	if c := got.NRGBAAt(1, 1); c != src.NRGBAAt(1, 1) {
		t.Fatalf("pixel = %v, want %v", c, src.NRGBAAt(1, 1))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png"), 1024); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadSVGRasterizesAtTargetSize(t *testing.T) {
	const svg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50">
		<rect x="0" y="0" width="100" height="50" fill="#000000"/>
	</svg>`
	path := filepath.Join(t.TempDir(), "glyph.svg")
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path, 200)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("rasterized bounds = %v, want 200x100", b)
	}
	if a := img.NRGBAAt(100, 50).A; a == 0 {
		t.Fatal("rasterized glyph is transparent at its center")
	}
}

func TestToNRGBACopiesForeignFormats(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 100, G: 0, B: 0, A: 255})

	got := ToNRGBA(src)
	if c := got.NRGBAAt(0, 0); c.R != 100 || c.A != 255 {
		t.Fatalf("converted pixel = %v", c)
	}

	n := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if ToNRGBA(n) != n {
		t.Fatal("NRGBA input should be returned unchanged")
	}
}
