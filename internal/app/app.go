package app

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/forgelab/iconpress/internal/compose"
	"github.com/forgelab/iconpress/internal/export"
	"github.com/forgelab/iconpress/internal/glyph"
	"github.com/forgelab/iconpress/internal/overlay"
	"github.com/forgelab/iconpress/internal/preview"
	"github.com/forgelab/iconpress/internal/texture"
)

// Config carries one composition run. Size, BaseColor, PadFrac and OutPath
// are required; the rest is optional surface.
type Config struct {
	GlyphPath string // PNG or SVG source; empty means use Monogram
	Monogram  string // letter(s) rendered as the glyph when no file is given
	OutPath   string

	Size      int
	BaseColor color.RGBA
	PadFrac   float64
	Seed      uint64 // 0 = non-deterministic texture

	Label string
	QRURL string

	Sizes   []int  // extra PNG sizes derived from the master
	ICOPath string // optional Windows ICO output
	Preview bool
}

type App struct {
	Config
	Logger Logger
}

func New(cfg Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}}
}

// Run executes the pipeline and returns the path of the base output image.
// The glyph source is validated before any image work so a bad path fails
// fast.
func (a *App) Run(ctx context.Context) (string, error) {
	if a.GlyphPath == "" && a.Monogram == "" {
		return "", fmt.Errorf("no glyph source: provide a glyph file or a monogram")
	}
	if a.GlyphPath != "" {
		if _, err := os.Stat(a.GlyphPath); err != nil {
			return "", fmt.Errorf("glyph not found: %s", a.GlyphPath)
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	canvas := a.background()
	a.Logger.Infof("texture", "canvas %dx%d base=#%02X%02X%02X", a.Size, a.Size, a.BaseColor.R, a.BaseColor.G, a.BaseColor.B)

	g, err := a.glyphImage()
	if err != nil {
		return "", err
	}

	out := compose.FitGlyph(canvas, g, a.PadFrac)
	a.Logger.Infof("compose", "glyph fitted with pad fraction %.2f", a.PadFrac)

	padPx := int(float64(a.Size) * a.PadFrac)
	if err := overlay.DrawLabel(out, a.Label, color.NRGBA{R: 255, G: 255, B: 255, A: 230}, padPx); err != nil {
		return "", err
	}
	if err := overlay.StampQR(out, a.QRURL, padPx); err != nil {
		return "", err
	}

	if err := export.WritePNG(a.OutPath, out); err != nil {
		return "", err
	}
	a.Logger.Infof("export", "wrote %s", a.OutPath)

	if len(a.Sizes) > 0 {
		paths, err := export.WriteSizes(a.OutPath, out, a.Sizes)
		if err != nil {
			return "", err
		}
		a.Logger.Infof("export", "wrote %d size variants", len(paths))
	}
	if a.ICOPath != "" {
		if err := export.WriteICO(a.ICOPath, out, a.Sizes); err != nil {
			return "", err
		}
		a.Logger.Infof("export", "wrote %s", a.ICOPath)
	}

	if a.Preview {
		// Preview failure must not fail a run that already wrote its files.
		if err := preview.Show(out); err != nil {
			a.Logger.Errorf("preview", "framebuffer preview failed: %v", err)
		}
	}
	return a.OutPath, nil
}

func (a *App) background() *image.RGBA {
	if a.Seed != 0 {
		return texture.SandstoneSeeded(a.Size, a.Size, a.BaseColor, a.Seed)
	}
	return texture.Sandstone(a.Size, a.Size, a.BaseColor)
}

func (a *App) glyphImage() (*image.NRGBA, error) {
	if a.GlyphPath != "" {
		g, err := glyph.Load(a.GlyphPath, a.Size)
		if err != nil {
			return nil, err
		}
		glyph.RemoveOuterWhite(g)
		a.Logger.Infof("glyph", "loaded %s, outer white stripped", a.GlyphPath)
		return g, nil
	}
	g, err := overlay.Monogram(a.Monogram, a.Size, color.NRGBA{A: 255})
	if err != nil {
		return nil, err
	}
	a.Logger.Infof("glyph", "rendered monogram %q", a.Monogram)
	return g, nil
}
