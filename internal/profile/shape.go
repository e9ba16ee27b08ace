package profile

// ShapeType is the closed set of supported steel cross-section families.
type ShapeType int

const (
	Angle ShapeType = iota
	Channel
	IBeam
	HBeam
	TSection
	LippedChannel
	CircularTube
	RoundBar
	RectangularTube
	SquareBar
	Plate
	FlatBar
	BulbFlat

	numShapes
)

var shapeNames = [numShapes]string{
	Angle:           "Angle",
	Channel:         "Channel",
	IBeam:           "IBeam",
	HBeam:           "HBeam",
	TSection:        "TSection",
	LippedChannel:   "LippedChannel",
	CircularTube:    "CircularTube",
	RoundBar:        "RoundBar",
	RectangularTube: "RectangularTube",
	SquareBar:       "SquareBar",
	Plate:           "Plate",
	FlatBar:         "FlatBar",
	BulbFlat:        "BulbFlat",
}

// Dimension names per shape, in Profile.Dimensions order (all mm).
var dimensionNames = [numShapes][]string{
	Angle:           {"a", "b", "t"},
	Channel:         {"h", "b", "tw", "tf"},
	IBeam:           {"h", "b", "tw", "tf"},
	HBeam:           {"h", "b", "tw", "tf"},
	TSection:        {"h", "tw", "b", "tf"},
	LippedChannel:   {"h", "b", "c", "t"},
	CircularTube:    {"D", "t"},
	RoundBar:        {"d"},
	RectangularTube: {"h", "b", "t"},
	SquareBar:       {"a"},
	Plate:           {"t", "b"},
	FlatBar:         {"b", "t"},
	BulbFlat:        {"h", "t"},
}

// Shapes returns every shape type in enumeration order.
func Shapes() []ShapeType {
	out := make([]ShapeType, numShapes)
	for i := range out {
		out[i] = ShapeType(i)
	}
	return out
}

// Valid reports whether s is a member of the enumeration.
func (s ShapeType) Valid() bool {
	return s >= 0 && s < numShapes
}

func (s ShapeType) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return shapeNames[s]
}

// DimensionCount is the fixed number of dimensions a profile of this shape carries.
func (s ShapeType) DimensionCount() int {
	if !s.Valid() {
		return 0
	}
	return len(dimensionNames[s])
}

// DimensionNames returns the symbol of each dimension.
func (s ShapeType) DimensionNames() []string {
	if !s.Valid() {
		return nil
	}
	names := make([]string, len(dimensionNames[s]))
	copy(names, dimensionNames[s])
	return names
}

// ParseShapeType resolves a shape by its String name.
func ParseShapeType(name string) (ShapeType, bool) {
	for i, n := range shapeNames {
		if n == name {
			return ShapeType(i), true
		}
	}
	return 0, false
}
