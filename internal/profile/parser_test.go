package profile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/steelform/internal/gb"
	"github.com/alexiusacademia/steelform/internal/profile"
)

func newParser() *profile.Parser {
	return profile.NewParser(gb.NewTables())
}

func TestParseShapes(t *testing.T) {
	p := newParser()

	tests := []struct {
		text        string
		shape       profile.ShapeType
		variant     string
		dims        []float64
		designation string
	}{
		{"L50x50x5", profile.Angle, profile.VariantEqual, []float64{50, 50, 5}, ""},
		{"L50x5", profile.Angle, profile.VariantEqual, []float64{50, 50, 5}, ""},
		{"∠63x40x5", profile.Angle, profile.VariantUnequal, []float64{63, 40, 5}, ""},
		{"L40x63x5", profile.Angle, profile.VariantUnequal, []float64{63, 40, 5}, ""},
		{"[10", profile.Channel, profile.VariantSingle, []float64{100, 48, 5.3, 8.5}, "10"},
		{"2[20a", profile.Channel, profile.VariantBackToBack, []float64{200, 73, 7, 11}, "20a"},
		{"][10", profile.Channel, profile.VariantBackToBack, []float64{100, 48, 5.3, 8.5}, "10"},
		{"[]10", profile.Channel, profile.VariantFaceToFace, []float64{100, 48, 5.3, 8.5}, "10"},
		{"[100x48x5.3x8.5", profile.Channel, profile.VariantSingle, []float64{100, 48, 5.3, 8.5}, ""},
		{"I10", profile.IBeam, profile.VariantStandard, []float64{100, 68, 4.5, 7.6}, "10"},
		{"I20a", profile.IBeam, profile.VariantSeriesA, []float64{200, 100, 7, 11.4}, "20a"},
		{"I25b", profile.IBeam, profile.VariantSeriesB, []float64{250, 118, 10, 13}, "25b"},
		{"I200x100x7x11.4", profile.IBeam, profile.VariantDimensioned, []float64{200, 100, 7, 11.4}, ""},
		{"HN200x100x5.5x8", profile.HBeam, profile.VariantHN, []float64{200, 100, 5.5, 8}, ""},
		{"HW200x200x8x12", profile.HBeam, profile.VariantHW, []float64{200, 200, 8, 12}, ""},
		{"H300x200x8x12", profile.HBeam, profile.VariantWelded, []float64{300, 200, 8, 12}, ""},
		{"TN100x100x5.5x8", profile.TSection, profile.VariantTN, []float64{100, 5.5, 100, 8}, ""},
		{"T200x8/150x10", profile.TSection, profile.VariantWelded, []float64{200, 8, 150, 10}, ""},
		{"C160x60x20x3", profile.LippedChannel, profile.VariantLipped, []float64{160, 60, 20, 3}, ""},
		{"Φ89x4", profile.CircularTube, profile.VariantPipe, []float64{89, 4}, ""},
		{"D20", profile.RoundBar, profile.VariantRoundBar, []float64{20}, ""},
		{"φ20", profile.RoundBar, profile.VariantRoundBar, []float64{20}, ""},
		{"□100x50x4", profile.RectangularTube, profile.VariantRectangular, []float64{100, 50, 4}, ""},
		{"□100x4", profile.RectangularTube, profile.VariantSquare, []float64{100, 100, 4}, ""},
		{"SHS100x100x4", profile.RectangularTube, profile.VariantSquare, []float64{100, 100, 4}, ""},
		{"□20", profile.SquareBar, profile.VariantSquareBar, []float64{20}, ""},
		{"PL10x200", profile.Plate, profile.VariantPL, []float64{10, 200}, ""},
		{"-200x10", profile.Plate, profile.VariantStrip, []float64{10, 200}, ""},
		{"FB50x5", profile.FlatBar, profile.VariantFlatBar, []float64{50, 5}, ""},
		{"F5x50", profile.FlatBar, profile.VariantFlatBar, []float64{50, 5}, ""},
		{"HP200x10", profile.BulbFlat, profile.VariantBulbFlat, []float64{200, 10}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := p.Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, got.Shape())
			assert.Equal(t, tt.variant, got.Variant())
			if diff := cmp.Diff(tt.dims, got.Dimensions()); diff != "" {
				t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.designation, got.Designation())
			assert.Equal(t, tt.text, got.Raw())
		})
	}
}

func TestParseNormalizesInput(t *testing.T) {
	p := newParser()

	tests := []struct {
		text string
		want string
	}{
		{"Ｌ５０×５", "L50x5"},
		{"  l 50 * 5 ", "L50x5"},
		{"Ø89*4", "Φ89x4"},
		{"⌀89×4", "Φ89x4"},
		{"口100x4", "□100x4"},
		{"［２０ａ", "[20a"},
		{"hn200X100X5.5X8", "HN200x100x5.5x8"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := p.Parse(tt.text)
			require.NoError(t, err)
			want, err := p.Parse(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v, want %v", got, want)
		})
	}
}

func TestParseFailures(t *testing.T) {
	p := newParser()

	tests := []struct {
		text   string
		reason string
	}{
		{"???", "no profile grammar matches"},
		{"", "empty text"},
		{"   ", "empty text"},
		{"L50x0x5", "must be positive"},
		{"L50x5x50", "leg thickness"},
		{"[99", "no standard channel"},
		{"I99z", "no profile grammar matches"},
		{"Φ10x5", "wall thickness"},
		{"HN200x100x120x8", "web thickness"},
		{"banana", "no profile grammar matches"},
		{"L" + strings.Repeat("9", 400) + "x50x5", "dimension out of range"},
		{"PL10x" + strings.Repeat("9", 400), "dimension out of range"},
		{"HN" + strings.Repeat("9", 400) + "x100x5.5x8", "dimension out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := p.Parse(tt.text)
			require.Error(t, err)
			assert.True(t, got.IsZero())
			assert.True(t, errors.Is(err, profile.ErrMismatchedProfileText))

			var me *profile.MismatchError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.text, me.Text)
			assert.Contains(t, me.Reason, tt.reason)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	p := newParser()
	for _, text := range []string{"L63x40x5", "2[20a", "HN200x100x5.5x8", "Φ89x4", "???"} {
		a, errA := p.Parse(text)
		b, errB := p.Parse(text)
		assert.True(t, a.Equal(b), text)
		assert.Equal(t, errA, errB, text)
	}
}

func TestGrammarsCoverEveryShape(t *testing.T) {
	p := newParser()
	covered := make(map[profile.ShapeType]bool)
	for _, s := range p.GrammarShapes() {
		covered[s] = true
	}
	for _, s := range profile.Shapes() {
		assert.True(t, covered[s], "no grammar for %s", s)
	}
	assert.Len(t, p.Grammars(), len(p.GrammarShapes()))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "l50x5", profile.Normalize(" Ｌ５０×５ "))
	assert.Equal(t, "φ89x4", profile.Normalize("Φ 89 * 4"))
	assert.Equal(t, "", profile.Normalize("\t "))
}
