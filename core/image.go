// Package core defines the value types shared by the gallery tools: indexed
// image entries, per-file optimization results and the run accumulator.
package core

import "strings"

// TargetExt is the extension every optimized image is written with.
const TargetExt = ".webp"

// galleryExts are the suffixes the index builder accepts.
var galleryExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// optimizableExts are the suffixes the optimizer re-encodes. TargetExt is
// deliberately absent so outputs are never picked up again.
var optimizableExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// IsGalleryImage reports whether a file suffix qualifies for the gallery
// index. Matching is case-insensitive.
func IsGalleryImage(suffix string) bool {
	return galleryExts[strings.ToLower(suffix)]
}

// IsOptimizable reports whether a file suffix qualifies for re-encoding.
func IsOptimizable(suffix string) bool {
	return optimizableExts[strings.ToLower(suffix)]
}
