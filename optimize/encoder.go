package optimize

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// Encoder writes an image in the optimizer's target format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// WebPEncoder encodes lossy WebP through libwebp.
type WebPEncoder struct {
	// Quality is the lossy quality factor, 0 to 100.
	Quality int
	// Method trades speed for size, 0 (fastest) to 6 (smallest).
	Method int
}

func (e WebPEncoder) Encode(w io.Writer, img image.Image) error {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(e.Quality))
	if err != nil {
		return fmt.Errorf("webp options: %w", err)
	}
	options.Method = e.Method

	if err := webp.Encode(w, packed(img), options); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}

// packed returns img as packed 8-bit RGBA, the layout libwebp imports.
func packed(img image.Image) image.Image {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		return img
	}
	return imaging.Clone(img)
}
