package category

import (
	"regexp"
	"strings"

	"github.com/alexiusacademia/steelform/internal/profile"
)

// coarseRule recognises a shape family from the shape of the text alone,
// without validating dimensions.
type coarseRule struct {
	re      *regexp.Regexp
	shape   profile.ShapeType
	variant func(m []string, nums []string) string
}

var numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

func fixed(label string) func([]string, []string) string {
	return func([]string, []string) string { return label }
}

func upperGroup(m []string, _ []string) string { return strings.ToUpper(m[1]) }

func legs(_ []string, nums []string) string {
	if len(nums) < 3 || nums[0] == nums[1] {
		return profile.VariantEqual
	}
	return profile.VariantUnequal
}

func sides(_ []string, nums []string) string {
	if len(nums) >= 3 && nums[0] != nums[1] {
		return profile.VariantRectangular
	}
	return profile.VariantSquare
}

func channelSide(m []string, _ []string) string {
	switch m[1] {
	case "2[", "][":
		return profile.VariantBackToBack
	case "[]":
		return profile.VariantFaceToFace
	}
	return profile.VariantSingle
}

func ibeamSeries(m []string, _ []string) string {
	switch {
	case strings.Contains(m[0], "x"):
		return profile.VariantDimensioned
	case strings.HasSuffix(m[0], "a"):
		return profile.VariantSeriesA
	case strings.HasSuffix(m[0], "b"):
		return profile.VariantSeriesB
	case strings.HasSuffix(m[0], "c"):
		return profile.VariantSeriesC
	}
	return profile.VariantStandard
}

// Same priority order as the parser grammars.
var coarseRules = []coarseRule{
	{regexp.MustCompile(`^hp\d`), profile.BulbFlat, fixed(profile.VariantBulbFlat)},
	{regexp.MustCompile(`^(tw|tm|tn)\d`), profile.TSection, upperGroup},
	{regexp.MustCompile(`^(hw|hm|hn|ht)\d`), profile.HBeam, upperGroup},
	{regexp.MustCompile(`^h\d`), profile.HBeam, fixed(profile.VariantWelded)},
	{regexp.MustCompile(`^fb?\d`), profile.FlatBar, fixed(profile.VariantFlatBar)},
	{regexp.MustCompile(`^pl\d`), profile.Plate, fixed(profile.VariantPL)},
	{regexp.MustCompile(`^-\d[\d.]*x\d`), profile.Plate, fixed(profile.VariantStrip)},
	{regexp.MustCompile(`^c\d[\d.]*x`), profile.LippedChannel, fixed(profile.VariantLipped)},
	{regexp.MustCompile(`^(\[\]|\]\[|2\[|\[)\d`), profile.Channel, channelSide},
	{regexp.MustCompile(`^i\d[\dx.]*[abc]?$`), profile.IBeam, ibeamSeries},
	{regexp.MustCompile(`^t\d[\d.x]*/`), profile.TSection, fixed(profile.VariantWelded)},
	{regexp.MustCompile(`^(φ|d)\d[\d.]*x`), profile.CircularTube, fixed(profile.VariantPipe)},
	{regexp.MustCompile(`^(φ|d)\d[\d.]*$`), profile.RoundBar, fixed(profile.VariantRoundBar)},
	{regexp.MustCompile(`^(□|rhs|shs)\d[\d.]*x`), profile.RectangularTube, sides},
	{regexp.MustCompile(`^□\d[\d.]*$`), profile.SquareBar, fixed(profile.VariantSquareBar)},
	{regexp.MustCompile(`^(∠|l)\d`), profile.Angle, legs},
}

func coarseClassify(norm string) (profile.ShapeType, string, bool) {
	if norm == "" {
		return 0, "", false
	}
	for _, rule := range coarseRules {
		m := rule.re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		return rule.shape, rule.variant(m, numberRe.FindAllString(norm, -1)), true
	}
	return 0, "", false
}
