package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexedRepo builds a repo with the given images and runs writeIndex on it.
// Returns the manifest path.
func indexedRepo(t *testing.T, files ...string) string {
	t.Helper()
	root := setupRepo(t, files...)
	require.NoError(t, writeIndex(root, fixedNow, &bytes.Buffer{}))
	return filepath.Join(root, "data", "gallery_index.json")
}

func TestShowManifestPlain(t *testing.T) {
	path := indexedRepo(t, "apollo/a.jpg", "apollo/b.png", "gemini/c.webp")

	var out bytes.Buffer
	require.NoError(t, showManifest(newApp(), path, "json", false, &out))

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(want), out.String())
}

func TestShowManifestHighlighted(t *testing.T) {
	path := indexedRepo(t, "apollo/a.jpg")

	var out bytes.Buffer
	require.NoError(t, showManifest(newApp(), path, "json", true, &out))
	assert.Contains(t, ansi.Strip(out.String()), `"missionId": "apollo"`)
}

func TestShowManifestMissions(t *testing.T) {
	path := indexedRepo(t, "apollo/a.jpg", "apollo/b.png", "gemini/c.webp")

	var out bytes.Buffer
	require.NoError(t, showManifest(newApp(), path, "missions", false, &out))
	assert.Equal(t, "apollo  2\n"+
		"gemini  1\n"+
		"2 missions, 3 images, generated 2026-10-19T12:30:45Z\n", ansi.Strip(out.String()))
}

func TestShowManifestCompact(t *testing.T) {
	path := indexedRepo(t, "m/a.jpg")

	var out bytes.Buffer
	require.NoError(t, showManifest(newApp(), path, "compact", false, &out))
	assert.Equal(t, `{"generatedAtUtc":"2026-10-19T12:30:45Z","byMission":{"m":["a.jpg"]},"allImages":[{"missionId":"m","filename":"a.jpg"}]}`+"\n", out.String())
}

func TestShowManifestHTML(t *testing.T) {
	path := indexedRepo(t, "m/a.jpg")

	var out bytes.Buffer
	require.NoError(t, showManifest(newApp(), path, "html", false, &out))
	assert.Contains(t, out.String(), `src="images/m/a.jpg?v=2026-10-19T12%3A30%3A45Z"`)
}

func TestShowManifestMissing(t *testing.T) {
	err := showManifest(newApp(), filepath.Join(t.TempDir(), "gallery_index.json"), "json", false, &bytes.Buffer{})
	assert.ErrorContains(t, err, "run cs index first")
}

func TestShowManifestUnknownFormat(t *testing.T) {
	path := indexedRepo(t, "m/a.jpg")

	err := showManifest(newApp(), path, "yaml", false, &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown output format "yaml" (want one of compact, html, json, missions)`)
}
