// Package imaging downscales and re-encodes photos before upload.
//
// Re-encoding is a best-effort optimization: on any decode or encode failure
// the original bytes are passed through unchanged, and the upload path does
// not care which of the two it got.
package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"math"

	"golang.org/x/image/draw"

	// Decoders for the upload formats the portal accepts.
	_ "image/gif"
	_ "image/png"
)

// Options bound the re-encoded output. Zero values fall back to defaults.
type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

const (
	DefaultMaxWidth  = 1280
	DefaultMaxHeight = 1280
	DefaultQuality   = 70
)

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = DefaultMaxHeight
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	return o
}

// Result is either the re-encoded image or the untouched original.
// Encoded reports which one; Width/Height are zero for passthrough.
type Result struct {
	Data    []byte
	Width   int
	Height  int
	Encoded bool
}

// Shrink decodes src, scales it by min(maxW/w, maxH/h, 1) so images are never
// upscaled, redraws it at the scaled size and re-encodes it as JPEG at the
// configured quality. Any failure returns the original bytes as a passthrough
// Result.
func Shrink(src []byte, opts Options) Result {
	opts = opts.withDefaults()

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return Result{Data: src}
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Result{Data: src}
	}

	scale := math.Min(
		math.Min(float64(opts.MaxWidth)/float64(w), float64(opts.MaxHeight)/float64(h)),
		1,
	)

	outW := int(math.Round(float64(w) * scale))
	outH := int(math.Round(float64(h) * scale))
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return Result{Data: src}
	}

	return Result{Data: buf.Bytes(), Width: outW, Height: outH, Encoded: true}
}
