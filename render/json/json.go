// Package json renders the manifest as JSON, the same document cs index
// writes to disk.
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/chitrashala/manifest"
)

// Renderer renders a manifest to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// Render writes m to w followed by a newline.
func (r *Renderer) Render(w io.Writer, m *manifest.Manifest) error {
	if r.Indent {
		data, err := m.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(m)
}
