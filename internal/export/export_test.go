package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidMaster(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return img
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, solidMaster(8)); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("decoded bounds = %v, want 8x8", b)
	}
}

func TestDownscale(t *testing.T) {
	got := Downscale(solidMaster(128), 32)
	if b := got.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", b)
	}
	if c := got.NRGBAAt(16, 16); c.A != 255 {
		t.Fatalf("center pixel = %v, want opaque", c)
	}
}

func TestDownscaleNonSquareCenters(t *testing.T) {
	master := image.NewRGBA(image.Rect(0, 0, 128, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			master.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	got := Downscale(master, 32)
	if a := got.NRGBAAt(16, 2).A; a != 0 {
		t.Fatalf("top bar alpha = %d, want 0", a)
	}
	if a := got.NRGBAAt(16, 16).A; a != 255 {
		t.Fatalf("center alpha = %d, want 255", a)
	}
}

func TestWriteSizes(t *testing.T) {
	base := filepath.Join(t.TempDir(), "appicon-1024.png")
	paths, err := WriteSizes(base, solidMaster(64), []int{32, 16})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}
	for i, want := range []string{"appicon-1024-32.png", "appicon-1024-16.png"} {
		if filepath.Base(paths[i]) != want {
			t.Fatalf("paths[%d] = %s, want %s", i, filepath.Base(paths[i]), want)
		}
		if _, err := os.Stat(paths[i]); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWriteSizesRejectsBadSize(t *testing.T) {
	base := filepath.Join(t.TempDir(), "icon.png")
	if _, err := WriteSizes(base, solidMaster(64), []int{0}); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestWriteICO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.ico")
	if err := WriteICO(path, solidMaster(64), []int{32, 16}); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("ico file is empty")
	}
}

func TestWriteICORejectsOversize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.ico")
	if err := WriteICO(path, solidMaster(64), []int{512}); err == nil {
		t.Fatal("expected error for size above 256")
	}
}
