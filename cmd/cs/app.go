package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sonnes/chitrashala/render"
	htmlrender "github.com/sonnes/chitrashala/render/html"
	jsonrender "github.com/sonnes/chitrashala/render/json"
	"github.com/sonnes/chitrashala/render/terminal"
)

// app holds the renderer registry used by cs show. Each factory receives
// whether terminal styling is wanted.
type app struct {
	renderers map[string]func(color bool) render.Renderer
}

func newApp() *app {
	return &app{
		renderers: map[string]func(color bool) render.Renderer{
			"json": func(color bool) render.Renderer {
				if color {
					return terminal.JSONRenderer{}
				}
				return &jsonrender.Renderer{Indent: true}
			},
			"compact":  func(bool) render.Renderer { return &jsonrender.Renderer{} },
			"missions": func(bool) render.Renderer { return terminal.MissionRenderer{} },
			"html":     func(bool) render.Renderer { return htmlrender.New() },
		},
	}
}

func (a *app) renderer(name string, color bool) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(a.formats(), ", "))
	}
	return fn(color), nil
}

func (a *app) formats() []string {
	names := make([]string, 0, len(a.renderers))
	for name := range a.renderers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
