package optimize

import (
	"image"
	"slices"

	"github.com/disintegration/imaging"
)

// Mode names the pixel layout of a decoded image using the conventional
// short names (RGB, RGBA, L, P, CMYK and so on).
type Mode string

const (
	ModeRGB    Mode = "RGB"
	ModeRGBA   Mode = "RGBA"
	ModeL      Mode = "L"
	ModeI16    Mode = "I;16"
	ModeP      Mode = "P"
	ModeCMYK   Mode = "CMYK"
	ModeRGB16  Mode = "RGB;16"
	ModeRGBA16 Mode = "RGBA;16"
	ModeYCbCrA Mode = "YCbCrA"
	ModeA      Mode = "A"
)

var modeBands = map[Mode][]string{
	ModeRGB:    {"R", "G", "B"},
	ModeRGBA:   {"R", "G", "B", "A"},
	ModeL:      {"L"},
	ModeI16:    {"I"},
	ModeP:      {"P"},
	ModeCMYK:   {"C", "M", "Y", "K"},
	ModeRGB16:  {"R", "G", "B"},
	ModeRGBA16: {"R", "G", "B", "A"},
	ModeYCbCrA: {"Y", "Cb", "Cr", "A"},
	ModeA:      {"A"},
}

// Bands returns the channel names of the mode.
func (m Mode) Bands() []string {
	return modeBands[m]
}

// HasAlpha reports whether the mode declares an alpha band.
func (m Mode) HasAlpha() bool {
	return slices.Contains(m.Bands(), "A")
}

// Encodable reports whether images in this mode go to the encoder as is.
func (m Mode) Encodable() bool {
	return m == ModeRGB || m == ModeRGBA
}

// ModeOf maps a decoded image to its mode. JPEG (YCbCr) and opaque 8-bit PNG
// (RGBA) decode as RGB; PNG with alpha decodes as RGBA.
func ModeOf(img image.Image) Mode {
	switch img.(type) {
	case *image.YCbCr, *image.RGBA:
		return ModeRGB
	case *image.NRGBA:
		return ModeRGBA
	case *image.Gray:
		return ModeL
	case *image.Gray16:
		return ModeI16
	case *image.Paletted:
		return ModeP
	case *image.CMYK:
		return ModeCMYK
	case *image.RGBA64:
		return ModeRGB16
	case *image.NRGBA64:
		return ModeRGBA16
	case *image.NYCbCrA:
		return ModeYCbCrA
	case *image.Alpha:
		return ModeA
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return ModeRGB
	}
	return ModeRGBA
}

// Normalize returns img unchanged when its mode is encodable. Otherwise it
// returns a copy converted to RGBA when the source mode has an alpha band,
// or to RGB when it does not.
func Normalize(img image.Image) (image.Image, Mode) {
	mode := ModeOf(img)
	if mode.Encodable() {
		return img, mode
	}
	if mode.HasAlpha() {
		return imaging.Clone(img), ModeRGBA
	}
	return toRGB(img), ModeRGB
}

// toRGB drops any alpha information, keeping the straight color values.
func toRGB(img image.Image) *image.RGBA {
	src := imaging.Clone(img)
	dst := image.NewRGBA(src.Rect)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		dst.Pix[i+0] = src.Pix[i+0]
		dst.Pix[i+1] = src.Pix[i+1]
		dst.Pix[i+2] = src.Pix[i+2]
		dst.Pix[i+3] = 0xff
	}
	return dst
}
