package formula

import (
	"math"
	"strings"

	"github.com/alexiusacademia/steelform/internal/gb"
	"github.com/alexiusacademia/steelform/internal/profile"
)

// roundHalf rounds to the nearest 0.5 mm. A value that would round to zero
// is kept as is.
func roundHalf(v float64) float64 {
	r := math.Round(v*2) / 2
	if r <= 0 {
		return v
	}
	return r
}

// truncated rounds every dimension of p to 0.5 mm. When the rounded section
// is no longer a valid profile (a wall rounded up to half the width), the
// exact dimensions are kept.
func truncated(p profile.Profile) []float64 {
	dims := p.Dimensions()
	for i, v := range dims {
		dims[i] = roundHalf(v)
	}
	if _, err := profile.New(p.Shape(), p.Variant(), dims, p.Designation(), p.Raw()); err != nil {
		return p.Dimensions()
	}
	return dims
}

// Canonical renders the normalized stiffener designation of p. With
// truncate, dimensions are rounded to the nearest 0.5 mm unless rounding
// would make the section invalid. Series
// designations ("[20a", "I25b") are kept verbatim. Parsing the result yields
// an equal profile.
func Canonical(p profile.Profile, truncate bool) string {
	if p.IsZero() {
		return ""
	}
	dims := p.Dimensions()
	if truncate {
		dims = truncated(p)
	}
	f := gb.FormatNumber

	switch p.Shape() {
	case profile.Angle:
		return "L" + gb.DimsKey(dims...)
	case profile.Channel:
		prefix := "["
		switch p.Variant() {
		case profile.VariantBackToBack:
			prefix = "2["
		case profile.VariantFaceToFace:
			prefix = "[]"
		}
		if p.Designation() != "" {
			return prefix + p.Designation()
		}
		return prefix + gb.DimsKey(dims...)
	case profile.IBeam:
		if p.Designation() != "" {
			return "I" + p.Designation()
		}
		return "I" + gb.DimsKey(dims...)
	case profile.HBeam:
		prefix := "H"
		if p.Variant() != profile.VariantWelded {
			prefix = p.Variant()
		}
		return prefix + gb.DimsKey(dims...)
	case profile.TSection:
		h, tw, b, tf := dims[0], dims[1], dims[2], dims[3]
		if p.Variant() == profile.VariantWelded {
			return "T" + f(h) + "x" + f(tw) + "/" + f(b) + "x" + f(tf)
		}
		return p.Variant() + gb.DimsKey(h, b, tw, tf)
	case profile.LippedChannel:
		return "C" + gb.DimsKey(dims...)
	case profile.CircularTube, profile.RoundBar:
		return "Φ" + gb.DimsKey(dims...)
	case profile.RectangularTube, profile.SquareBar:
		return "□" + gb.DimsKey(dims...)
	case profile.Plate:
		if p.Variant() == profile.VariantStrip {
			return "-" + gb.DimsKey(dims...)
		}
		return "PL" + gb.DimsKey(dims...)
	case profile.FlatBar:
		return "FB" + gb.DimsKey(dims...)
	case profile.BulbFlat:
		return "HP" + gb.DimsKey(dims...)
	}
	return strings.TrimSpace(p.Raw())
}
