package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/forgelab/iconpress/internal/app"
)

func main() {
	glyphPath := flag.String("glyph", "icon-glyph.png", "glyph artwork (PNG or SVG)")
	monogram := flag.String("monogram", "", "render this text as the glyph instead of loading a file")
	outPath := flag.String("out", "appicon-1024.png", "output PNG path")
	size := flag.Int("size", 1024, "canvas width and height in pixels")
	baseColor := flag.String("color", "#EFAA3A", "background base color (#RRGGBB)")
	pad := flag.Float64("pad", 0.06, "padding per side as a fraction of the canvas width")
	seed := flag.Uint64("seed", 0, "texture noise seed; 0 picks one at random")
	label := flag.String("label", "", "caption drawn near the bottom edge")
	qrURL := flag.String("qr", "", "stamp a QR code of this URL in the bottom-right corner")
	sizesArg := flag.String("sizes", "", "comma-separated extra PNG sizes, e.g. 512,256,128")
	icoPath := flag.String("ico", "", "also write a Windows ICO to this path")
	doPreview := flag.Bool("preview", false, "blit the result to /dev/fb0 (linux)")
	debug := flag.Bool("debug", false, "enable debug logging to ./iconpress-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via ICONPRESS_STDIO_LOG")
	flag.Parse()

	// Best-effort: capture all output, panics included, when requested, so
	// failed CI runs stay diagnosable.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("ICONPRESS_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./iconpress-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	base, err := parseHexColor(*baseColor)
	if err != nil {
		fatal(err)
	}
	sizes, err := parseSizes(*sizesArg)
	if err != nil {
		fatal(err)
	}

	cfg := app.Config{
		GlyphPath: *glyphPath,
		Monogram:  *monogram,
		OutPath:   *outPath,
		Size:      *size,
		BaseColor: base,
		PadFrac:   *pad,
		Seed:      *seed,
		Label:     *label,
		QRURL:     *qrURL,
		Sizes:     sizes,
		ICOPath:   *icoPath,
		Preview:   *doPreview,
	}
	if *monogram != "" {
		cfg.GlyphPath = ""
	}

	a := app.New(cfg)
	a.Logger = logger

	wrote, err := a.Run(context.Background())
	if err != nil {
		fatal(err)
	}
	fmt.Println("WROTE_BASE", wrote)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "iconpress:", err)
	os.Exit(1)
}

// parseHexColor reads a #RRGGBB string into an opaque RGBA color.
func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", p)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
