package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/steelform/internal/gb"
	"github.com/alexiusacademia/steelform/internal/profile"
)

func TestRectangle(t *testing.T) {
	o := single(rect(0, 0, 200, 10))
	assert.InDelta(t, 2000, o.Area(), 1e-9)
	assert.InDelta(t, 420, o.Perimeter(), 1e-9)

	c := o.Centroid()
	assert.InDelta(t, 100, c.X, 1e-9)
	assert.InDelta(t, 5, c.Y, 1e-9)

	min, max := o.Bounds()
	assert.Equal(t, Point{0, 0}, min)
	assert.Equal(t, Point{200, 10}, max)

	assert.True(t, o.Contains(Point{100, 5}))
	assert.False(t, o.Contains(Point{100, 11}))
	assert.InDelta(t, 200, o.WidthAtY(5), 1e-9)
}

func TestHollowSection(t *testing.T) {
	o := Outline{Parts: []Polygon{{Outer: rect(0, 0, 50, 100), Holes: []Ring{rect(4, 4, 46, 96)}}}}
	assert.InDelta(t, 50*100-42*92, o.Area(), 1e-9)
	assert.InDelta(t, 300, o.Perimeter(), 1e-9, "bores are not outer surface")
	assert.False(t, o.Contains(Point{25, 50}))
	assert.True(t, o.Contains(Point{2, 50}))
	assert.InDelta(t, 8, o.WidthAtY(50), 1e-9)
}

func parse(t *testing.T, text string) profile.Profile {
	t.Helper()
	p, err := profile.NewParser(gb.NewTables()).Parse(text)
	require.NoError(t, err)
	return p
}

func TestOutlineOf(t *testing.T) {
	tests := []struct {
		text      string
		area      float64
		perimeter float64
	}{
		{"L50x5", (50 + 50 - 5) * 5, 200},
		{"L63x40x5", (63 + 40 - 5) * 5, 2 * (63 + 40)},
		{"[100x48x5.3x8.5", 100*5.3 + 2*(48-5.3)*8.5, 2*100 + 4*48 - 2*5.3},
		{"2[100x48x5.3x8.5", 2 * (100*5.3 + 2*(48-5.3)*8.5), 2 * (2*100 + 4*48 - 2*5.3)},
		{"HN200x100x5.5x8", 2*100*8 + (200-16)*5.5, 2*200 + 4*100 - 2*5.5},
		{"T200x8/150x10", 150*10 + 190*8, 2 * (200 + 150)},
		{"□100x50x4", 100*50 - 92*42, 300},
		{"□20", 400, 80},
		{"PL10x200", 2000, 420},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			o := OutlineOf(parse(t, tt.text))
			assert.InDelta(t, tt.area, o.Area(), 1e-9)
			assert.InDelta(t, tt.perimeter, o.Perimeter(), 1e-9)
		})
	}
}

func TestPairedChannelsTouch(t *testing.T) {
	for _, text := range []string{"2[10", "[]10"} {
		o := OutlineOf(parse(t, text))
		require.Len(t, o.Parts, 2)

		min, max := o.Bounds()
		assert.InDelta(t, 0, min.X, 1e-9, text)
		assert.InDelta(t, 96, max.X, 1e-9, text)
		assert.InDelta(t, 48, o.Centroid().X, 1e-9, text)
	}
}

func TestCircularOutline(t *testing.T) {
	o := OutlineOf(parse(t, "Φ89x4"))
	want := math.Pi * (89 - 4) * 4
	assert.InEpsilon(t, want, o.Area(), 1e-3)
	assert.InEpsilon(t, math.Pi*89, o.Perimeter(), 1e-3)

	c := o.Centroid()
	assert.InDelta(t, 44.5, c.X, 1e-9)
	assert.InDelta(t, 44.5, c.Y, 1e-9)
}

func TestBulbFlatSketch(t *testing.T) {
	o := OutlineOf(parse(t, "HP200x10"))
	require.Len(t, o.Parts, 1)
	_, max := o.Bounds()
	assert.Equal(t, 200.0, max.Y)
	assert.Positive(t, o.Area())
}
