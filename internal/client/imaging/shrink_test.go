package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestShrink_WithinBoundsKeepsDimensions(t *testing.T) {
	src := encodePNG(t, 200, 100)

	res := Shrink(src, Options{MaxWidth: 640, MaxHeight: 640})

	require.True(t, res.Encoded)
	assert.Equal(t, 200, res.Width)
	assert.Equal(t, 100, res.Height)

	w, h := decodeDims(t, res.Data)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
}

func TestShrink_OversizedPreservesAspectRatio(t *testing.T) {
	const srcW, srcH = 3000, 2000
	src := encodePNG(t, srcW, srcH)

	res := Shrink(src, Options{MaxWidth: 1280, MaxHeight: 1280})
	require.True(t, res.Encoded)

	assert.LessOrEqual(t, res.Width, 1280)
	assert.LessOrEqual(t, res.Height, 1280)

	// aspect ratio within 1px of the source
	expectedH := float64(res.Width) * float64(srcH) / float64(srcW)
	assert.LessOrEqual(t, math.Abs(expectedH-float64(res.Height)), 1.0)
}

func TestShrink_NeverUpscales(t *testing.T) {
	src := encodePNG(t, 30, 20)

	res := Shrink(src, Options{MaxWidth: 4096, MaxHeight: 4096})

	require.True(t, res.Encoded)
	assert.Equal(t, 30, res.Width)
	assert.Equal(t, 20, res.Height)
}

func TestShrink_TallImageBoundByHeight(t *testing.T) {
	src := encodePNG(t, 500, 4000)

	res := Shrink(src, Options{MaxWidth: 1000, MaxHeight: 1000})

	require.True(t, res.Encoded)
	assert.Equal(t, 1000, res.Height)
	assert.LessOrEqual(t, math.Abs(float64(res.Width)-125), 1.0)
}

func TestShrink_UndecodableFallsBackToOriginal(t *testing.T) {
	src := []byte("definitely not an image")

	res := Shrink(src, Options{})

	assert.False(t, res.Encoded)
	assert.Equal(t, src, res.Data)
}

func TestShrink_OutputIsJPEG(t *testing.T) {
	src := encodePNG(t, 64, 64)

	res := Shrink(src, Options{Quality: 80})
	require.True(t, res.Encoded)

	_, err := jpeg.Decode(bytes.NewReader(res.Data))
	assert.NoError(t, err)
}
