package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/steelform/internal/geometry"
)

func plateData() ProfileDiagramData {
	outline := geometry.Outline{Parts: []geometry.Polygon{{Outer: geometry.Ring{{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 10}, {X: 0, Y: 10}}}}}
	return ProfileDiagramData{
		Title:     "PL10x200",
		Outline:   outline,
		Area:      outline.Area(),
		Perimeter: outline.Perimeter(),
		Weight:    15.7,
	}
}

func TestDrawASCIIProfile(t *testing.T) {
	out := DrawASCIIProfile(plateData(), 40)
	assert.Contains(t, out, "PL10x200")
	assert.Contains(t, out, "│"+strings.Repeat("█", 40)+"│")
	assert.Contains(t, out, "200.0 mm wide × 10.0 mm high")

	assert.Empty(t, DrawASCIIProfile(ProfileDiagramData{Title: "empty"}, 40))
	assert.Empty(t, DrawASCIIProfile(plateData(), 2))
}

func TestDrawASCIIProfileHollow(t *testing.T) {
	data := ProfileDiagramData{
		Title: "□100x4",
		Outline: geometry.Outline{Parts: []geometry.Polygon{{
			Outer: geometry.Ring{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}},
			Holes: []geometry.Ring{{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}},
		}}},
	}
	out := DrawASCIIProfile(data, 20)
	assert.Contains(t, out, "│██"+strings.Repeat(" ", 16)+"██│")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("SECTION PROPERTIES", []string{"Area: 2000.00 mm²", "Weight: 15.700 kg/m"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
	assert.Contains(t, out, "mm²")
}

func TestExportProfileDiagram(t *testing.T) {
	dir := t.TempDir()

	svg := filepath.Join(dir, "sketch", "plate.svg")
	require.NoError(t, ExportProfileDiagram(plateData(), svg))
	info, err := os.Stat(svg)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	noExt := filepath.Join(dir, "plate")
	require.NoError(t, ExportProfileDiagram(plateData(), noExt))
	_, err = os.Stat(noExt + ".png")
	assert.NoError(t, err)

	err = ExportProfileDiagram(ProfileDiagramData{Title: "nothing"}, filepath.Join(dir, "x.png"))
	assert.Error(t, err)
}
