package profile

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/alexiusacademia/steelform/internal/gb"
)

const num = `(\d+(?:\.\d+)?)`

// dimsPattern builds "prefix n x n x ... $" with n captured numbers.
func dimsPattern(prefix string, n int) *regexp.Regexp {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = num
	}
	return regexp.MustCompile("^" + prefix + strings.Join(parts, "x") + "$")
}

// grammar is one shorthand form of one shape. build receives the submatches
// of re against the normalized text and the raw text for error reporting.
type grammar struct {
	shape ShapeType
	name  string
	re    *regexp.Regexp
	build func(m []string, raw string) (Profile, error)
}

// Parser turns designation text into profiles. It is immutable after
// NewParser and safe for concurrent use.
type Parser struct {
	tables   *gb.Tables
	grammars []grammar
}

// NewParser builds the ordered grammar table. Grammars that resolve series
// numbers ("[20a", "I25b") read from tables.
func NewParser(tables *gb.Tables) *Parser {
	p := &Parser{tables: tables}
	p.grammars = p.buildGrammars()
	return p
}

// Tables returns the standard tables the parser resolves designations against.
func (p *Parser) Tables() *gb.Tables { return p.tables }

// Parse converts text into a Profile. The error is always a *MismatchError.
// Grammars are tried in priority order; the first that yields a valid
// profile wins. When grammars match but every candidate is dimensionally
// invalid, the first invalid reason is reported.
func (p *Parser) Parse(text string) (Profile, error) {
	norm := Normalize(text)
	if norm == "" {
		return Profile{}, mismatch(text, "empty text")
	}

	var invalid error
	for _, g := range p.grammars {
		m := g.re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		prof, err := g.build(m, text)
		if err != nil {
			if invalid == nil {
				invalid = err
			}
			continue
		}
		return prof, nil
	}
	if invalid != nil {
		return Profile{}, invalid
	}
	return Profile{}, mismatch(text, "no profile grammar matches %q", norm)
}

// Grammars lists the grammar names in priority order, for diagnostics.
func (p *Parser) Grammars() []string {
	names := make([]string, len(p.grammars))
	for i, g := range p.grammars {
		names[i] = g.name
	}
	return names
}

// GrammarShapes lists the shape each grammar produces, in priority order.
func (p *Parser) GrammarShapes() []ShapeType {
	shapes := make([]ShapeType, len(p.grammars))
	for i, g := range p.grammars {
		shapes[i] = g.shape
	}
	return shapes
}

func (p *Parser) buildGrammars() []grammar {
	return []grammar{
		{shape: BulbFlat, name: "bulb flat HPhxt", re: dimsPattern("hp", 2), build: simple(BulbFlat, VariantBulbFlat)},
		{shape: TSection, name: "split tee TWhxbxtwxtf", re: dimsPattern("(tw|tm|tn)", 4), build: buildSplitTee},
		{shape: HBeam, name: "H-beam Hhxbxtwxtf", re: dimsPattern("(hw|hm|hn|ht|h)", 4), build: buildHBeam},
		{shape: FlatBar, name: "flat bar FBbxt", re: dimsPattern("fb?", 2), build: buildFlatBar},
		{shape: Plate, name: "plate PLtxb", re: dimsPattern("(pl|-)", 2), build: buildPlate},
		{shape: LippedChannel, name: "lipped channel Chxbxcxt", re: dimsPattern("c", 4), build: simple(LippedChannel, VariantLipped)},
		{shape: Channel, name: "channel [No.", re: regexp.MustCompile(`^(\[\]|\]\[|2\[|\[)(\d+(?:\.\d+)?[abc]?)$`), build: p.buildChannelNumber},
		{shape: Channel, name: "channel [hxbxtwxtf", re: dimsPattern(`(\[\]|\]\[|2\[|\[)`, 4), build: buildChannelDims},
		{shape: IBeam, name: "I-beam INo.", re: regexp.MustCompile(`^i(\d+(?:\.\d+)?)([abc]?)$`), build: p.buildIBeamNumber},
		{shape: IBeam, name: "I-beam Ihxbxtwxtf", re: dimsPattern("i", 4), build: simple(IBeam, VariantDimensioned)},
		{shape: TSection, name: "welded tee Thxtw/bxtf", re: regexp.MustCompile("^t" + num + "x" + num + "/" + num + "x" + num + "$"), build: simple(TSection, VariantWelded)},
		{shape: CircularTube, name: "tube φDxt", re: dimsPattern("(?:φ|d)", 2), build: simple(CircularTube, VariantPipe)},
		{shape: RoundBar, name: "round bar φd", re: dimsPattern("(?:φ|d)", 1), build: simple(RoundBar, VariantRoundBar)},
		{shape: RectangularTube, name: "rectangular tube □hxbxt", re: dimsPattern("(?:□|rhs|shs)", 3), build: buildRectTube},
		{shape: RectangularTube, name: "square tube □axt", re: dimsPattern("(?:□|shs)", 2), build: buildSquareTube},
		{shape: SquareBar, name: "square bar □a", re: dimsPattern("□", 1), build: simple(SquareBar, VariantSquareBar)},
		{shape: Angle, name: "angle Laxbxt", re: dimsPattern("(?:∠|l)", 3), build: buildAngle},
		{shape: Angle, name: "equal angle Laxt", re: dimsPattern("(?:∠|l)", 2), build: buildEqualAngle},
	}
}

// numbers converts the numeric submatches, skipping the first skip groups.
// Digit runs beyond float64 range are reported as a mismatch.
func numbers(m []string, skip int, raw string) ([]float64, error) {
	out := make([]float64, 0, len(m)-1-skip)
	for _, s := range m[1+skip:] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, mismatch(raw, "dimension out of range")
		}
		out = append(out, v)
	}
	return out, nil
}

func simple(shape ShapeType, variant string) func([]string, string) (Profile, error) {
	return func(m []string, raw string) (Profile, error) {
		d, err := numbers(m, 0, raw)
		if err != nil {
			return Profile{}, err
		}
		return New(shape, variant, d, "", raw)
	}
}

func buildSplitTee(m []string, raw string) (Profile, error) {
	d, err := numbers(m, 1, raw) // h, b, tw, tf
	if err != nil {
		return Profile{}, err
	}
	return New(TSection, strings.ToUpper(m[1]), []float64{d[0], d[2], d[1], d[3]}, "", raw)
}

func buildHBeam(m []string, raw string) (Profile, error) {
	d, err := numbers(m, 1, raw)
	if err != nil {
		return Profile{}, err
	}
	variant := VariantWelded
	if m[1] != "h" {
		variant = strings.ToUpper(m[1])
	}
	return New(HBeam, variant, d, "", raw)
}

func buildFlatBar(m []string, raw string) (Profile, error) {
	d, err := numbers(m, 0, raw)
	if err != nil {
		return Profile{}, err
	}
	return New(FlatBar, VariantFlatBar, []float64{max(d[0], d[1]), min(d[0], d[1])}, "", raw)
}

func buildPlate(m []string, raw string) (Profile, error) {
	d, err := numbers(m, 1, raw)
	if err != nil {
		return Profile{}, err
	}
	variant := VariantPL
	if m[1] == "-" {
		variant = VariantStrip
	}
	return New(Plate, variant, []float64{min(d[0], d[1]), max(d[0], d[1])}, "", raw)
}

func channelVariant(prefix string) string {
	switch prefix {
	case "2[", "][":
		return VariantBackToBack
	case "[]":
		return VariantFaceToFace
	}
	return VariantSingle
}

func (p *Parser) buildChannelNumber(m []string, raw string) (Profile, error) {
	row, ok := p.tables.ByDesignation(gb.FamilyChannel, m[2])
	if !ok {
		return Profile{}, mismatch(raw, "no standard channel [%s", m[2])
	}
	return New(Channel, channelVariant(m[1]), row.Dims, row.Designation, raw)
}

func buildChannelDims(m []string, raw string) (Profile, error) {
	d, err := numbers(m, 1, raw)
	if err != nil {
		return Profile{}, err
	}
	return New(Channel, channelVariant(m[1]), d, "", raw)
}

func (p *Parser) buildIBeamNumber(m []string, raw string) (Profile, error) {
	row, ok := p.tables.ByDesignation(gb.FamilyIBeam, m[1]+m[2])
	if !ok {
		return Profile{}, mismatch(raw, "no standard I-beam I%s%s", m[1], m[2])
	}
	variant := VariantStandard
	switch m[2] {
	case "a":
		variant = VariantSeriesA
	case "b":
		variant = VariantSeriesB
	case "c":
		variant = VariantSeriesC
	}
	return New(IBeam, variant, row.Dims, row.Designation, raw)
}

func buildRectTube(m []string, raw string) (Profile, error) {
	d, err := numbers(m, 0, raw)
	if err != nil {
		return Profile{}, err
	}
	variant := VariantRectangular
	if d[0] == d[1] {
		variant = VariantSquare
	}
	return New(RectangularTube, variant, d, "", raw)
}

func buildSquareTube(m []string, raw string) (Profile, error) {
	d, err := numbers(m, 0, raw)
	if err != nil {
		return Profile{}, err
	}
	return New(RectangularTube, VariantSquare, []float64{d[0], d[0], d[1]}, "", raw)
}

func buildAngle(m []string, raw string) (Profile, error) {
	d, err := numbers(m, 0, raw)
	if err != nil {
		return Profile{}, err
	}
	legs := d[:2]
	sort.Sort(sort.Reverse(sort.Float64Slice(legs)))
	variant := VariantUnequal
	if legs[0] == legs[1] {
		variant = VariantEqual
	}
	return New(Angle, variant, d, "", raw)
}

func buildEqualAngle(m []string, raw string) (Profile, error) {
	d, err := numbers(m, 0, raw)
	if err != nil {
		return Profile{}, err
	}
	return New(Angle, VariantEqual, []float64{d[0], d[0], d[1]}, "", raw)
}
