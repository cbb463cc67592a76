package optimize

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
		wantOK       bool
	}{
		{"halve", 200, 150, 100, 100, 75, true},
		{"truncates", 1000, 999, 100, 100, 99, true},
		{"truncates small fraction", 333, 100, 100, 100, 30, true},
		{"portrait", 300, 900, 100, 100, 300, true},
		{"exactly max", 100, 50, 100, 100, 50, false},
		{"narrower", 80, 600, 100, 80, 600, false},
		{"disabled", 5000, 4000, 0, 5000, 4000, false},
		{"zero height", 1000, 5, 100, 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, ok := TargetSize(tt.w, tt.h, tt.max)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDownsample(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 301, 203))

	out, err := Downsample(img, 100)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(100, 67), out.Bounds().Size(), "203*100/301 = 67.4, truncated")
}

func TestDownsampleWithinLimit(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))

	out, err := Downsample(img, 100)
	require.NoError(t, err)
	assert.Same(t, img, out)

	out, err = Downsample(img, 0)
	require.NoError(t, err)
	assert.Same(t, img, out)
}

func TestDownsampleZeroHeight(t *testing.T) {
	_, err := Downsample(image.NewNRGBA(image.Rect(0, 0, 1000, 5)), 100)
	assert.ErrorContains(t, err, "height would be zero")
}
