package optimize

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// TargetSize returns the size a w x h image is scaled to so its width does
// not exceed maxWidth. The height is scaled with integer division and so is
// truncated, never rounded. ok is false when maxWidth is 0 or the image is
// already narrow enough.
func TargetSize(w, h, maxWidth int) (nw, nh int, ok bool) {
	if maxWidth <= 0 || w <= maxWidth {
		return w, h, false
	}
	return maxWidth, h * maxWidth / w, true
}

// Downsample scales img down to maxWidth with the Lanczos filter, keeping
// the aspect ratio. Images within the limit are returned unchanged.
func Downsample(img image.Image, maxWidth int) (image.Image, error) {
	b := img.Bounds()
	nw, nh, ok := TargetSize(b.Dx(), b.Dy(), maxWidth)
	if !ok {
		return img, nil
	}
	if nh == 0 {
		return nil, fmt.Errorf("resize %dx%d to width %d: height would be zero", b.Dx(), b.Dy(), maxWidth)
	}
	return imaging.Resize(img, nw, nh, imaging.Lanczos), nil
}
