package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageProcessor_Validate(t *testing.T) {
	p := NewImageProcessor()

	t.Run("valid png", func(t *testing.T) {
		assert.NoError(t, p.Validate(testPNG(t, 10, 10)))
	})

	t.Run("not an image", func(t *testing.T) {
		err := p.Validate([]byte("definitely not pixels"))
		assert.Error(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		small := &ImageProcessor{maxBytes: 16}
		err := small.Validate(testPNG(t, 10, 10))
		assert.Error(t, err)
	})
}

func TestImageProcessor_Process(t *testing.T) {
	p := NewImageProcessor()

	fullRaw, thumbRaw, err := p.Process(testPNG(t, 2000, 1000))
	require.NoError(t, err)

	full, _, err := image.Decode(bytes.NewReader(fullRaw))
	require.NoError(t, err)
	assert.LessOrEqual(t, full.Bounds().Dx(), fullMaxEdge)
	assert.LessOrEqual(t, full.Bounds().Dy(), fullMaxEdge)

	thumb, _, err := image.Decode(bytes.NewReader(thumbRaw))
	require.NoError(t, err)
	assert.LessOrEqual(t, thumb.Bounds().Dx(), thumbMaxEdge)
	assert.LessOrEqual(t, thumb.Bounds().Dy(), thumbMaxEdge)
}

func TestImageProcessor_ProcessRejectsGarbage(t *testing.T) {
	p := NewImageProcessor()
	_, _, err := p.Process([]byte{0x00, 0x01, 0x02})
	assert.Error(t, err)
}
