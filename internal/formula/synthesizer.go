// Package formula synthesizes spreadsheet formula text for unit surface area
// and unit weight of steel profiles, and canonical stiffener designations.
package formula

import (
	"github.com/alexiusacademia/steelform/internal/gb"
	"github.com/alexiusacademia/steelform/internal/profile"
)

// Synthesizer is stateless apart from the read-only standard tables and is
// safe for concurrent use.
type Synthesizer struct {
	tables *gb.Tables
}

// NewSynthesizer returns a synthesizer reading GB data from tables.
func NewSynthesizer(tables *gb.Tables) *Synthesizer {
	return &Synthesizer{tables: tables}
}

// Synthesize renders the text to write for p. An empty string means there is
// nothing to write: the shape has no formula for the requested tier.
func (s *Synthesizer) Synthesize(p profile.Profile, opt GenerationOption) string {
	if p.IsZero() {
		return ""
	}
	switch opt.Type {
	case UnitArea:
		f, ok := s.Area(p, opt.Accuracy, opt.ExcludeTopSurface)
		if !ok {
			return ""
		}
		return f.Text(opt.Pi)
	case UnitWeight:
		f, ok := s.Weight(p, opt.Accuracy)
		if !ok {
			return ""
		}
		return f.Text(opt.Pi)
	case Stiffener:
		return Canonical(p, opt.TruncatedRounding)
	}
	return ""
}

// Area builds the outer surface formula in m²/m.
func (s *Synthesizer) Area(p profile.Profile, acc Accuracy, excludeTop bool) (Formula, bool) {
	switch acc {
	case Roughly, Precisely:
		terms, ok := surfaceTerms(p, acc)
		if !ok {
			return Formula{}, false
		}
		if excludeTop {
			terms = withoutTop(terms)
		}
		return Formula{expr: scale(p.Multiplier(), div(sum{terms: terms}, n(1000)))}, true
	case GBData:
		row, ok := s.row(p)
		if !ok || !row.HasSurface() {
			return Formula{}, false
		}
		var e Expr = n(row.Surface)
		if excludeTop && HasTopSurface(p.Shape()) {
			terms, _ := surfaceTerms(p, Precisely)
			for _, t := range terms {
				if t.top {
					e = sub(e, div(t.expr, n(1000)))
					break
				}
			}
		}
		return Formula{expr: scale(p.Multiplier(), e)}, true
	}
	return Formula{}, false
}

// Weight builds the unit weight formula in kg/m.
func (s *Synthesizer) Weight(p profile.Profile, acc Accuracy) (Formula, bool) {
	var e Expr
	switch acc {
	case Roughly:
		e = roughWeight(p)
	case Precisely:
		if area := sectionArea(p); area != nil {
			e = div(mul(area, n(gb.Density)), n(1000))
		}
	case GBData:
		if row, ok := s.row(p); ok {
			e = n(row.Weight)
		}
	}
	if e == nil {
		return Formula{}, false
	}
	return Formula{expr: scale(p.Multiplier(), e)}, true
}

// row finds the standard table entry for p, by designation when the text
// named one and by dimensions otherwise.
func (s *Synthesizer) row(p profile.Profile) (gb.Section, bool) {
	var fam gb.Family
	switch p.Shape() {
	case profile.Angle:
		fam = gb.FamilyAngle
	case profile.Channel:
		fam = gb.FamilyChannel
	case profile.IBeam:
		fam = gb.FamilyIBeam
	case profile.HBeam:
		fam = gb.FamilyHBeam
	case profile.BulbFlat:
		fam = gb.FamilyBulbFlat
	default:
		return gb.Section{}, false
	}
	if d := p.Designation(); d != "" {
		return s.tables.ByDesignation(fam, d)
	}
	return s.tables.ByDims(fam, p.Dimensions()...)
}

func withoutTop(terms []term) []term {
	out := make([]term, 0, len(terms))
	for _, t := range terms {
		if !t.top {
			out = append(out, t)
		}
	}
	return out
}
