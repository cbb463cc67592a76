// Package manifest builds and stores the gallery index (gallery_index.json):
// every qualifying image under images/<missionId>/, grouped by mission.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sonnes/chitrashala/core"
	"github.com/sonnes/chitrashala/scan"
)

const (
	// DefaultImagesDir is the images root, relative to the invocation root.
	DefaultImagesDir = "images"

	// TimeFormat is the layout of GeneratedAtUTC.
	TimeFormat = "2006-01-02T15:04:05Z"
)

// DefaultPath is the manifest location, relative to the invocation root.
var DefaultPath = filepath.Join("data", "gallery_index.json")

// Manifest is the gallery index document.
type Manifest struct {
	GeneratedAtUTC string            `json:"generatedAtUtc"`
	ByMission      Missions          `json:"byMission"`
	AllImages      []core.ImageEntry `json:"allImages"`
}

// New returns an empty manifest stamped with now, truncated to the second.
func New(now time.Time) *Manifest {
	return &Manifest{
		GeneratedAtUTC: now.UTC().Format(TimeFormat),
		AllImages:      []core.ImageEntry{},
	}
}

// Build scans root for mission directories and returns the manifest of their
// images. Only files directly inside each mission directory are considered.
// A missing root yields an empty manifest, not an error.
func Build(root string, now time.Time) (*Manifest, error) {
	m := New(now)

	entries, err := scan.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("images root not found", "root", root)
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read images root: %w", err)
	}

	var missions []scan.Entry
	for _, e := range entries {
		if e.IsDir() {
			missions = append(missions, e)
		}
	}
	slices.SortFunc(missions, func(a, b scan.Entry) int {
		return scan.CompareFold(a.Name, b.Name)
	})

	for _, mission := range missions {
		files, err := missionImages(mission.Path)
		if err != nil {
			return nil, fmt.Errorf("read mission %s: %w", mission.Name, err)
		}
		if len(files) == 0 {
			log.Debug("mission has no images", "mission", mission.Name)
			continue
		}
		m.add(mission.Name, files)
	}

	return m, nil
}

// missionImages returns the qualifying file names in dir, sorted
// case-insensitively.
func missionImages(dir string) ([]string, error) {
	entries, err := scan.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsFile() || !core.IsGalleryImage(e.Suffix()) {
			log.Debug("ignoring entry", "path", e.Path)
			continue
		}
		names = append(names, e.Name)
	}
	slices.SortFunc(names, scan.CompareFold)
	return names, nil
}

func (m *Manifest) add(missionID string, files []string) {
	m.ByMission.Set(missionID, files)
	for _, f := range files {
		m.AllImages = append(m.AllImages, core.NewImageEntry(missionID, f))
	}
}

// MissionCount returns the number of missions with at least one image.
func (m *Manifest) MissionCount() int {
	return m.ByMission.Len()
}

// ImageCount returns the total number of indexed images.
func (m *Manifest) ImageCount() int {
	return len(m.AllImages)
}

// Validate checks that AllImages and ByMission describe the same images and
// that no mission is listed without images.
func (m *Manifest) Validate() error {
	total := 0
	for _, k := range m.ByMission.Keys() {
		files, _ := m.ByMission.Get(k)
		if len(files) == 0 {
			return fmt.Errorf("mission %q has no images", k)
		}
		total += len(files)
	}
	if total != len(m.AllImages) {
		return fmt.Errorf("allImages has %d entries, byMission lists %d", len(m.AllImages), total)
	}
	return nil
}

// ReadFile reads a manifest from disk. A missing file returns an error
// satisfying errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if m.AllImages == nil {
		m.AllImages = []core.ImageEntry{}
	}
	return &m, nil
}

// Marshal encodes the manifest as 2-space indented JSON with a trailing
// newline. HTML characters are not escaped.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the manifest to disk atomically using a temporary file and
// rename, replacing any previous manifest. Parent directories are created.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".gallery_index-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
