package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// WritePNG encodes img to path, creating or truncating the file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Downscale resamples master into a size x size square. Non-square masters
// are fit and centered, leaving transparent bars on the short axis.
func Downscale(master image.Image, size int) *image.NRGBA {
	sb := master.Bounds()
	scale := float64(size) / float64(sb.Dx())
	if s := float64(size) / float64(sb.Dy()); s < scale {
		scale = s
	}
	w := int(float64(sb.Dx())*scale + 0.5)
	h := int(float64(sb.Dy())*scale + 0.5)

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	dr := image.Rect((size-w)/2, (size-h)/2, (size-w)/2+w, (size-h)/2+h)
	xdraw.CatmullRom.Scale(dst, dr, master, sb, xdraw.Over, nil)
	return dst
}

// WriteSizes writes one PNG per requested size next to basePath, named
// <stem>-<size>.png, and returns the written paths.
func WriteSizes(basePath string, master image.Image, sizes []int) ([]string, error) {
	stem := strings.TrimSuffix(basePath, filepath.Ext(basePath))
	paths := make([]string, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 {
			return paths, fmt.Errorf("invalid icon size %d", size)
		}
		path := fmt.Sprintf("%s-%d.png", stem, size)
		if err := WritePNG(path, Downscale(master, size)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteICO encodes the given sizes of master into a single Windows ICO
// file. With no sizes it defaults to 256, the largest widely supported
// ICO image.
func WriteICO(path string, master image.Image, sizes []int) error {
	if len(sizes) == 0 {
		sizes = []int{256}
	}
	imgs := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 || size > 256 {
			return fmt.Errorf("ico size %d out of range (1-256)", size)
		}
		imgs = append(imgs, Downscale(master, size))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := ico.EncodeAll(f, imgs); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
