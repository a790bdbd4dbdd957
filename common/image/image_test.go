package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSniffFormat(t *testing.T) {
	data := solidPNG(t, 10, 10)
	format, w, h, err := SniffFormat(data)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
}

func TestSniffFormatGarbage(t *testing.T) {
	_, _, _, err := SniffFormat([]byte("not an image at all"))
	assert.Error(t, err)
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(solidPNG(t, 2, 2)))
	assert.False(t, IsImage([]byte{0x00, 0x01}))
}
