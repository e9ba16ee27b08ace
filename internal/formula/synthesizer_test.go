package formula

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/steelform/internal/gb"
	"github.com/alexiusacademia/steelform/internal/geometry"
	"github.com/alexiusacademia/steelform/internal/profile"
)

// designations holds one or more parseable texts per shape.
var designations = []string{
	"L50x50x5", "L63x40x5",
	"[10", "2[20a", "[]10", "[100x48x5.3x8.5",
	"I20a", "I200x100x7x11.4",
	"HN200x100x5.5x8", "H300x200x8x12",
	"TN100x100x5.5x8", "T200x8/150x10",
	"C160x60x20x3",
	"Φ89x4", "Φ20",
	"□100x50x4", "□100x4",
	"□20",
	"PL10x200", "-200x10",
	"FB50x5",
	"HP200x10",
}

type fixture struct {
	parser *profile.Parser
	synth  *Synthesizer
}

func newFixture() fixture {
	tables := gb.NewTables()
	return fixture{parser: profile.NewParser(tables), synth: NewSynthesizer(tables)}
}

func (f fixture) parse(t *testing.T, text string) profile.Profile {
	t.Helper()
	p, err := f.parser.Parse(text)
	require.NoError(t, err, text)
	return p
}

func option(gt GenerationType, acc Accuracy) GenerationOption {
	opt := DefaultOption()
	opt.Type = gt
	opt.Accuracy = acc
	return opt
}

func TestEqualAngleArea(t *testing.T) {
	f := newFixture()
	p := f.parse(t, "L50x50x5")

	opt := option(UnitArea, Precisely)
	full := f.synth.Synthesize(p, opt)
	assert.Equal(t, "=(50+(50-5)+50+(50-5)+2*5)/1000", full)
	for _, v := range []string{"50", "5"} {
		assert.Contains(t, full, v)
	}

	opt.ExcludeTopSurface = true
	assert.Equal(t, "=(50+(50-5)+50+2*5)/1000", f.synth.Synthesize(p, opt))

	area, ok := f.synth.Area(p, Precisely, false)
	require.True(t, ok)
	assert.InDelta(t, 0.2, area.Value(), 1e-12)
}

func TestExcludeTopRemovesOneTerm(t *testing.T) {
	f := newFixture()

	for _, text := range designations {
		p := f.parse(t, text)
		for _, acc := range []Accuracy{Roughly, Precisely} {
			terms, ok := surfaceTerms(p, acc)
			if !ok {
				continue
			}
			tops := 0
			for _, tm := range terms {
				if tm.top {
					tops++
				}
			}
			if HasTopSurface(p.Shape()) {
				assert.Equal(t, 1, tops, "%s %s", text, acc)
				assert.Len(t, withoutTop(terms), len(terms)-1)
			} else {
				assert.Zero(t, tops, "%s %s", text, acc)
			}

			opt := option(UnitArea, acc)
			with := f.synth.Synthesize(p, opt)
			opt.ExcludeTopSurface = true
			without := f.synth.Synthesize(p, opt)
			if HasTopSurface(p.Shape()) {
				assert.NotEqual(t, with, without, "%s %s", text, acc)
			} else {
				assert.Equal(t, with, without, "%s %s", text, acc)
			}
		}
	}
}

func TestPiStyleOnlyChangesToken(t *testing.T) {
	f := newFixture()

	for _, text := range designations {
		p := f.parse(t, text)
		for _, gt := range []GenerationType{UnitArea, UnitWeight} {
			for _, acc := range []Accuracy{Roughly, Precisely, GBData} {
				opt := option(gt, acc)
				opt.Pi = PiFunc
				fn := f.synth.Synthesize(p, opt)
				opt.Pi = PiNum
				num := f.synth.Synthesize(p, opt)
				assert.Equal(t, strings.ReplaceAll(fn, "PI()", gb.PiLiteral), num, "%s %s %s", text, gt, acc)
			}
		}
	}

	p := f.parse(t, "Φ89x4")
	opt := option(UnitArea, Precisely)
	assert.Equal(t, "=PI()*89/1000", f.synth.Synthesize(p, opt))
	opt.Pi = PiNum
	assert.Equal(t, "=3.14*89/1000", f.synth.Synthesize(p, opt))
}

func TestSynthesizeIsPure(t *testing.T) {
	f := newFixture()
	for _, text := range designations {
		p := f.parse(t, text)
		for _, gt := range []GenerationType{UnitArea, UnitWeight, Stiffener} {
			opt := option(gt, Precisely)
			assert.Equal(t, f.synth.Synthesize(p, opt), f.synth.Synthesize(p, opt))
		}
	}
}

func TestUnsupportedCombinationsAreEmpty(t *testing.T) {
	f := newFixture()

	tests := []struct {
		text string
		opt  GenerationOption
	}{
		{"PL10x200", option(UnitWeight, GBData)},
		{"PL10x200", option(UnitArea, GBData)},
		{"Φ89x4", option(UnitWeight, GBData)},
		{"HP200x10", option(UnitArea, Precisely)},
		{"HP200x10", option(UnitArea, GBData)},
		{"HP200x10", option(UnitWeight, Precisely)},
		{"L51x51x5", option(UnitWeight, GBData)},
	}
	for _, tt := range tests {
		p := f.parse(t, tt.text)
		assert.Empty(t, f.synth.Synthesize(p, tt.opt), "%s %s %s", tt.text, tt.opt.Type, tt.opt.Accuracy)
	}

	assert.Empty(t, f.synth.Synthesize(profile.Profile{}, DefaultOption()))
}

func TestGBData(t *testing.T) {
	f := newFixture()

	tests := []struct {
		text       string
		opt        GenerationOption
		excludeTop bool
		want       string
		value      float64
	}{
		{"[20a", option(UnitWeight, GBData), false, "=22.637", 22.637},
		{"2[20a", option(UnitWeight, GBData), false, "=2*22.637", 45.274},
		{"L50x5", option(UnitWeight, GBData), false, "=3.77", 3.77},
		{"L50x5", option(UnitArea, GBData), false, "=0.196", 0.196},
		{"HP200x10", option(UnitWeight, GBData), false, "=19.3", 19.3},
		{"HN200x100x5.5x8", option(UnitArea, GBData), false, "=0.775", 0.775},
		{"[10", option(UnitArea, GBData), true, "=0.365-48/1000", 0.317},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			p := f.parse(t, tt.text)
			tt.opt.ExcludeTopSurface = tt.excludeTop
			assert.Equal(t, tt.want, f.synth.Synthesize(p, tt.opt))

			var (
				got Formula
				ok  bool
			)
			if tt.opt.Type == UnitArea {
				got, ok = f.synth.Area(p, GBData, tt.excludeTop)
			} else {
				got, ok = f.synth.Weight(p, GBData)
			}
			require.True(t, ok)
			assert.InDelta(t, tt.value, got.Value(), 1e-9)
		})
	}
}

func TestFormulaText(t *testing.T) {
	f := newFixture()

	tests := []struct {
		text string
		opt  GenerationOption
		want string
	}{
		{"L50x5", option(UnitWeight, Precisely), "=(50+50-5)*5*7.85/1000"},
		{"L50x5", option(UnitArea, Roughly), "=(2*50+50+50)/1000"},
		{"Φ20", option(UnitWeight, Roughly), "=0.00617*20^2"},
		{"Φ20", option(UnitWeight, Precisely), "=PI()*20^2/4*7.85/1000"},
		{"PL10x200", option(UnitWeight, Roughly), "=0.00785*10*200"},
		{"2[100x48x5.3x8.5", option(UnitArea, Roughly), "=2*(2*100+48+3*48)/1000"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, f.synth.Synthesize(f.parse(t, tt.text), tt.opt))
		})
	}
}

func TestPreciseFormulasMatchGeometry(t *testing.T) {
	f := newFixture()

	for _, text := range designations {
		p := f.parse(t, text)
		if p.Shape() == profile.BulbFlat {
			continue
		}
		t.Run(text, func(t *testing.T) {
			outline := geometry.OutlineOf(p)
			tol := 1e-9
			if p.Shape() == profile.CircularTube || p.Shape() == profile.RoundBar {
				tol = 1e-3
			}

			area, ok := f.synth.Area(p, Precisely, false)
			require.True(t, ok)
			assert.InEpsilon(t, outline.Perimeter()/1000, area.Value(), tol)

			weight, ok := f.synth.Weight(p, Precisely)
			require.True(t, ok)
			assert.InEpsilon(t, gb.WeightPerMetre(outline.Area()), weight.Value(), tol)
		})
	}
}

func TestPiEvaluatesExactly(t *testing.T) {
	f := newFixture()
	area, ok := f.synth.Area(f.parse(t, "Φ89x4"), Precisely, false)
	require.True(t, ok)
	assert.InDelta(t, math.Pi*89/1000, area.Value(), 1e-15)
}
