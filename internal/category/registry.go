package category

import (
	"slices"

	"github.com/alexiusacademia/steelform/internal/profile"
)

// CategoryInfo is one registry entry: a shape family, its display label and
// its ordered classifiers.
type CategoryInfo struct {
	Shape       profile.ShapeType
	Label       string
	Classifiers []string
}

var labels = map[profile.ShapeType]string{
	profile.Angle:           "Angle",
	profile.Channel:         "Channel",
	profile.IBeam:           "I-beam",
	profile.HBeam:           "H-beam",
	profile.TSection:        "T-section",
	profile.LippedChannel:   "Lipped channel",
	profile.CircularTube:    "Circular tube",
	profile.RoundBar:        "Round bar",
	profile.RectangularTube: "Rectangular tube",
	profile.SquareBar:       "Square bar",
	profile.Plate:           "Plate",
	profile.FlatBar:         "Flat bar",
	profile.BulbFlat:        "Bulb flat",
}

type classifierKey struct {
	shape profile.ShapeType
	label string
}

type position struct {
	category   int
	classifier int
}

// Registry is the immutable category table. Build it once with NewRegistry
// and share it; indexes stay aligned for the life of the value.
type Registry struct {
	parser     *profile.Parser
	categories []CategoryInfo
	byShape    map[profile.ShapeType]int
	byLabel    map[string]int
	positions  map[classifierKey]position
}

// NewRegistry builds one entry per shape in enumeration order. Classify uses
// parser so that every parseable text classifies to the parsed shape.
func NewRegistry(parser *profile.Parser) *Registry {
	r := &Registry{
		parser:    parser,
		byShape:   make(map[profile.ShapeType]int),
		byLabel:   make(map[string]int),
		positions: make(map[classifierKey]position),
	}
	for ci, shape := range profile.Shapes() {
		info := CategoryInfo{
			Shape:       shape,
			Label:       labels[shape],
			Classifiers: profile.Variants(shape),
		}
		r.categories = append(r.categories, info)
		r.byShape[shape] = ci
		r.byLabel[info.Label] = ci
		for ki, label := range info.Classifiers {
			r.positions[classifierKey{shape, label}] = position{ci, ki}
		}
	}
	return r
}

// All returns the categories in index order. The slice is a deep copy.
func (r *Registry) All() []CategoryInfo {
	out := make([]CategoryInfo, len(r.categories))
	for i, c := range r.categories {
		c.Classifiers = slices.Clone(c.Classifiers)
		out[i] = c
	}
	return out
}

// Len is the number of categories.
func (r *Registry) Len() int { return len(r.categories) }

// Category returns the entry for a shape.
func (r *Registry) Category(shape profile.ShapeType) (CategoryInfo, bool) {
	i, ok := r.byShape[shape]
	if !ok {
		return CategoryInfo{}, false
	}
	c := r.categories[i]
	c.Classifiers = slices.Clone(c.Classifiers)
	return c, true
}

// ByLabel resolves a category by its display label or shape name.
func (r *Registry) ByLabel(label string) (int, bool) {
	if i, ok := r.byLabel[label]; ok {
		return i, true
	}
	if shape, ok := profile.ParseShapeType(label); ok {
		i, ok := r.byShape[shape]
		return i, ok
	}
	return 0, false
}

// Index resolves a (shape, classifier) pair to its category and classifier
// indexes.
func (r *Registry) Index(shape profile.ShapeType, classifier string) (category, classifierIndex int, ok bool) {
	pos, ok := r.positions[classifierKey{shape, classifier}]
	if !ok {
		return 0, 0, false
	}
	return pos.category, pos.classifier, true
}

// Label returns the display labels at a position.
func (r *Registry) Label(category, classifier int) (string, string, bool) {
	if category < 0 || category >= len(r.categories) {
		return "", "", false
	}
	c := r.categories[category]
	if classifier < 0 || classifier >= len(c.Classifiers) {
		return "", "", false
	}
	return c.Label, c.Classifiers[classifier], true
}

// Classify resolves text to its shape and classifier. Text the parser
// accepts classifies to the parsed shape and variant. Otherwise a coarser
// match on prefixes and separators is tried, so "L50x0x5" still reports an
// angle.
func (r *Registry) Classify(text string) (profile.ShapeType, string, bool) {
	if p, err := r.parser.Parse(text); err == nil {
		return p.Shape(), p.Variant(), true
	}
	return coarseClassify(profile.Normalize(text))
}

// Locate combines Classify and Index.
func (r *Registry) Locate(text string) (category, classifier int, ok bool) {
	shape, label, ok := r.Classify(text)
	if !ok {
		return 0, 0, false
	}
	return r.Index(shape, label)
}
