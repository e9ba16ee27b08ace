package profile

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/alexiusacademia/steelform/internal/gb"
)

// Classifier labels. Each shape's ordered list is returned by Variants and
// drives the category registry, so the order here is the UI order.
const (
	VariantEqual       = "Equal"
	VariantUnequal     = "Unequal"
	VariantSingle      = "Single"
	VariantBackToBack  = "Back-to-back"
	VariantFaceToFace  = "Face-to-face"
	VariantStandard    = "Standard"
	VariantSeriesA     = "Series a"
	VariantSeriesB     = "Series b"
	VariantSeriesC     = "Series c"
	VariantDimensioned = "Dimensioned"
	VariantHW          = "HW"
	VariantHM          = "HM"
	VariantHN          = "HN"
	VariantHT          = "HT"
	VariantWelded      = "Welded"
	VariantTW          = "TW"
	VariantTM          = "TM"
	VariantTN          = "TN"
	VariantLipped      = "Lipped"
	VariantPipe        = "Pipe"
	VariantRoundBar    = "Round bar"
	VariantSquare      = "Square"
	VariantRectangular = "Rectangular"
	VariantSquareBar   = "Square bar"
	VariantPL          = "PL"
	VariantStrip       = "Strip"
	VariantFlatBar     = "Flat bar"
	VariantBulbFlat    = "Bulb flat"
)

var variants = [numShapes][]string{
	Angle:           {VariantEqual, VariantUnequal},
	Channel:         {VariantSingle, VariantBackToBack, VariantFaceToFace},
	IBeam:           {VariantStandard, VariantSeriesA, VariantSeriesB, VariantSeriesC, VariantDimensioned},
	HBeam:           {VariantHW, VariantHM, VariantHN, VariantHT, VariantWelded},
	TSection:        {VariantTW, VariantTM, VariantTN, VariantWelded},
	LippedChannel:   {VariantLipped},
	CircularTube:    {VariantPipe},
	RoundBar:        {VariantRoundBar},
	RectangularTube: {VariantSquare, VariantRectangular},
	SquareBar:       {VariantSquareBar},
	Plate:           {VariantPL, VariantStrip},
	FlatBar:         {VariantFlatBar},
	BulbFlat:        {VariantBulbFlat},
}

// Variants returns the ordered classifier labels of a shape.
func Variants(s ShapeType) []string {
	if !s.Valid() {
		return nil
	}
	return slices.Clone(variants[s])
}

// Profile is a parsed steel section designation. The zero value is not a
// valid profile; use New or Parser.Parse.
type Profile struct {
	shape       ShapeType
	variant     string
	dims        []float64
	designation string
	raw         string
}

// New validates and builds a profile. Errors are *MismatchError carrying raw.
func New(shape ShapeType, variant string, dims []float64, designation, raw string) (Profile, error) {
	if !shape.Valid() {
		return Profile{}, mismatch(raw, "unknown shape %d", int(shape))
	}
	if !slices.Contains(variants[shape], variant) {
		return Profile{}, mismatch(raw, "%s has no classifier %q", shape, variant)
	}
	if len(dims) != shape.DimensionCount() {
		return Profile{}, mismatch(raw, "%s needs %d dimensions, got %d", shape, shape.DimensionCount(), len(dims))
	}
	for i, d := range dims {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return Profile{}, mismatch(raw, "dimension %s out of range", dimensionNames[shape][i])
		}
		if d <= 0 {
			return Profile{}, mismatch(raw, "dimension %s must be positive", dimensionNames[shape][i])
		}
	}
	if reason := checkGeometry(shape, dims); reason != "" {
		return Profile{}, mismatch(raw, "%s", reason)
	}
	return Profile{
		shape:       shape,
		variant:     variant,
		dims:        slices.Clone(dims),
		designation: designation,
		raw:         raw,
	}, nil
}

func checkGeometry(shape ShapeType, d []float64) string {
	switch shape {
	case Angle:
		if d[2] >= min(d[0], d[1]) {
			return "leg thickness must be smaller than both legs"
		}
	case Channel, IBeam, HBeam:
		if d[2] >= d[1] {
			return "web thickness must be smaller than flange width"
		}
		if 2*d[3] >= d[0] {
			return "flanges must be thinner than half the depth"
		}
	case TSection:
		if d[3] >= d[0] {
			return "flange thickness must be smaller than depth"
		}
		if d[1] >= d[2] {
			return "web thickness must be smaller than flange width"
		}
	case LippedChannel:
		if d[3] >= d[2] {
			return "thickness must be smaller than the lip"
		}
		if 2*d[2] >= d[0] {
			return "lips must be shorter than half the depth"
		}
		if 2*d[3] >= d[1] {
			return "thickness must be smaller than half the flange width"
		}
	case CircularTube:
		if 2*d[1] >= d[0] {
			return "wall thickness must be smaller than the radius"
		}
	case RectangularTube:
		if 2*d[2] >= min(d[0], d[1]) {
			return "wall thickness must be smaller than half of each side"
		}
	case BulbFlat:
		if d[1] >= d[0] {
			return "web thickness must be smaller than height"
		}
	}
	return ""
}

// Shape returns the section family.
func (p Profile) Shape() ShapeType { return p.shape }

// Variant returns the classifier label.
func (p Profile) Variant() string { return p.variant }

// Dimensions returns a copy of the dimensions in mm.
func (p Profile) Dimensions() []float64 { return slices.Clone(p.dims) }

// Dim returns dimension i.
func (p Profile) Dim(i int) float64 { return p.dims[i] }

// Designation is the standard table designation ("20a", "10") when the text
// named a table entry instead of listing dimensions.
func (p Profile) Designation() string { return p.designation }

// Raw is the original cell text.
func (p Profile) Raw() string { return p.raw }

// IsZero reports whether p was never constructed.
func (p Profile) IsZero() bool { return p.dims == nil }

// Multiplier is 2 for paired channels and 1 otherwise.
func (p Profile) Multiplier() int {
	if p.shape == Channel && p.variant != VariantSingle {
		return 2
	}
	return 1
}

// Equal compares shape, classifier, dimensions and designation. Raw text is ignored.
func (p Profile) Equal(o Profile) bool {
	return p.shape == o.shape &&
		p.variant == o.variant &&
		p.designation == o.designation &&
		slices.Equal(p.dims, o.dims)
}

func (p Profile) String() string {
	if p.IsZero() {
		return "<invalid profile>"
	}
	parts := make([]string, len(p.dims))
	for i, d := range p.dims {
		parts[i] = fmt.Sprintf("%s=%s", dimensionNames[p.shape][i], gb.FormatNumber(d))
	}
	return fmt.Sprintf("%s(%s; %s)", p.shape, p.variant, strings.Join(parts, ", "))
}
