package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImagingRenderer_PreservesAspectAndFormat(t *testing.T) {
	src := encodePNG(t, 1000, 600)

	for _, width := range []int{500, 250, 100} {
		out, err := ImagingRenderer{}.Render(src, width)
		require.NoError(t, err)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, width, cfg.Width)
		assert.Equal(t, width*600/1000, cfg.Height)
	}
}

func TestImagingRenderer_JPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 300))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	out, err := ImagingRenderer{}.Render(buf.Bytes(), 100)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, cfg.Width)
}

func TestImagingRenderer_Errors(t *testing.T) {
	_, err := ImagingRenderer{}.Render([]byte("definitely not an image"), 100)
	assert.ErrorContains(t, err, "decode image")

	_, err = ImagingRenderer{}.Render(encodePNG(t, 10, 10), 0)
	assert.Error(t, err)
}
