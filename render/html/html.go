// Package html renders the gallery manifest as a standalone HTML page styled
// with Tailwind CSS v4 (CDN). Image links follow the layout the gallery front
// end uses: images/<missionId>/<filename>?v=<generatedAtUtc>.
package html

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/sonnes/chitrashala/core"
	"github.com/sonnes/chitrashala/manifest"
)

//go:embed templates/*.html
var content embed.FS

// Renderer renders a manifest to a gallery page.
type Renderer struct {
	tmpl *template.Template

	// ImagesBase is the URL prefix of the images root, relative to the
	// page. Defaults to "images".
	ImagesBase string
}

// New creates an HTML Renderer.
func New() *Renderer {
	tmpl := template.Must(
		template.New("gallery.html").
			Funcs(funcMap()).
			ParseFS(content, "templates/*.html"),
	)
	return &Renderer{tmpl: tmpl, ImagesBase: manifest.DefaultImagesDir}
}

// pageData is the template data passed to gallery.html.
type pageData struct {
	GeneratedAt string
	ImageCount  int
	Missions    []missionData
}

// missionData is one mission section with its image URLs.
type missionData struct {
	ID     string
	Images []imageData
}

type imageData struct {
	Filename string
	URL      string
}

// Render writes the gallery page for m to w. Missions appear in manifest
// order.
func (r *Renderer) Render(w io.Writer, m *manifest.Manifest) error {
	data := pageData{
		GeneratedAt: m.GeneratedAtUTC,
		ImageCount:  m.ImageCount(),
	}
	for _, id := range m.ByMission.Keys() {
		files, _ := m.ByMission.Get(id)
		md := missionData{ID: id}
		for _, f := range files {
			md.Images = append(md.Images, imageData{
				Filename: f,
				URL:      imageURL(r.ImagesBase, core.NewImageEntry(id, f), m.GeneratedAtUTC),
			})
		}
		data.Missions = append(data.Missions, md)
	}
	return r.tmpl.ExecuteTemplate(w, "gallery.html", data)
}

// imageURL builds the link to one image. The version query busts browser
// caches whenever the manifest is regenerated.
func imageURL(base string, e core.ImageEntry, version string) string {
	segs := strings.Split(e.Path(), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	u := base + "/" + strings.Join(segs, "/")
	if version != "" {
		u += "?v=" + url.QueryEscape(version)
	}
	return u
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"plural": func(n int, word string) string {
			if n == 1 {
				return word
			}
			return word + "s"
		},
	}
}
