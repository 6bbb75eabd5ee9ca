package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"nativeblog/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestProcess_SmallImageUntouched(t *testing.T) {
	data := pngBytes(t, 20, 10)

	res, err := Process(bytes.NewReader(data), 1<<20, 100)
	require.NoError(t, err)

	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, ".png", res.Ext)
	assert.Equal(t, 20, res.Width)
	assert.Equal(t, 10, res.Height)
	assert.False(t, res.Resized)
	assert.Equal(t, data, res.Data)
}

func TestProcess_WideImageResized(t *testing.T) {
	res, err := Process(bytes.NewReader(pngBytes(t, 400, 200)), 1<<20, 100)
	require.NoError(t, err)

	assert.True(t, res.Resized)
	assert.Equal(t, 100, res.Width)
	assert.Equal(t, 50, res.Height)

	cfg, err := png.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
}

func TestProcess_Rejects(t *testing.T) {
	_, err := Process(strings.NewReader("%PDF-1.4 not an image"), 1<<20, 100)
	assert.ErrorIs(t, err, storage.ErrInvalidFileType)

	_, err = Process(bytes.NewReader(pngBytes(t, 50, 50)), 10, 100)
	assert.ErrorIs(t, err, storage.ErrFileTooLarge)
}
