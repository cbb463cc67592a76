package terminal

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/sonnes/chitrashala/manifest"
)

// HighlightJSON writes src with ANSI syntax highlighting.
func HighlightJSON(w io.Writer, src string) error {
	return quick.Highlight(w, src, "json", "terminal256", "dracula")
}

// Missions lists each mission with its image count, in manifest order,
// followed by a totals line.
func Missions(w io.Writer, m *manifest.Manifest) {
	keys := m.ByMission.Keys()

	width := 0
	for _, k := range keys {
		width = max(width, lipgloss.Width(k))
	}

	for _, k := range keys {
		files, _ := m.ByMission.Get(k)
		pad := width - lipgloss.Width(k)
		fmt.Fprintf(w, "%s%*s  %s\n", styleTitle.Render(k), pad, "", styleStat.Render(fmt.Sprintf("%d", len(files))))
	}

	fmt.Fprintln(w, styleMeta.Render(fmt.Sprintf("%d missions, %d images, generated %s",
		m.MissionCount(), m.ImageCount(), m.GeneratedAtUTC)))
}

// JSONRenderer writes the indented manifest with syntax highlighting.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, m *manifest.Manifest) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	return HighlightJSON(w, string(data))
}

// MissionRenderer writes the mission listing, see Missions.
type MissionRenderer struct{}

func (MissionRenderer) Render(w io.Writer, m *manifest.Manifest) error {
	Missions(w, m)
	return nil
}
