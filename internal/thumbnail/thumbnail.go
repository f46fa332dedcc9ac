package thumbnail

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Renderer produces a resized copy of an encoded image.
type Renderer interface {
	Render(src []byte, width int) ([]byte, error)
}

// ImagingRenderer resizes with Lanczos resampling, preserving aspect ratio,
// and re-encodes in the source format. Formats imaging cannot write fall back to PNG.
type ImagingRenderer struct{}

var _ Renderer = ImagingRenderer{}

func (ImagingRenderer) Render(src []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid thumbnail width %d", width)
	}

	img, format, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	out, err := imaging.FormatFromExtension(format)
	if err != nil {
		out = imaging.PNG
	}

	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, out); err != nil {
		return nil, fmt.Errorf("encode %dpx thumbnail: %w", width, err)
	}
	return buf.Bytes(), nil
}
