package json

import (
	"bytes"
	"testing"
	"time"

	"github.com/sonnes/chitrashala/core"
	"github.com/sonnes/chitrashala/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest() *manifest.Manifest {
	m := manifest.New(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	m.ByMission.Set("b&c", []string{"1.jpg"})
	m.AllImages = append(m.AllImages, core.NewImageEntry("b&c", "1.jpg"))
	return m
}

func TestRenderCompact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Renderer{}).Render(&buf, testManifest()))

	assert.Equal(t, `{"generatedAtUtc":"2026-05-01T00:00:00Z","byMission":{"b&c":["1.jpg"]},"allImages":[{"missionId":"b&c","filename":"1.jpg"}]}`+"\n", buf.String())
}

func TestRenderIndent(t *testing.T) {
	m := testManifest()

	var buf bytes.Buffer
	require.NoError(t, (&Renderer{Indent: true}).Render(&buf, m))

	want, err := m.Marshal()
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())
}
