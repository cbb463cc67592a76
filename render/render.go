// Package render defines the interface for writing a gallery manifest in
// the formats cs show offers.
package render

import (
	"io"

	"github.com/sonnes/chitrashala/manifest"
)

// Renderer writes a manifest to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, m *manifest.Manifest) error
}
