package gb

// Material and rendering constants shared by the formula tiers.

const (
	// Density of carbon structural steel, g/cm³ (GB/T 700 / GB/T 1591 design value).
	// A cross-section area in mm² times Density/1000 gives kg/m.
	Density = 7.85

	// PiLiteral is the π token used when formulas are rendered with a numeric π.
	PiLiteral = "3.14"

	// Shop factors used by the rough weight tier.
	RoundBarFactor = 0.00617 // kg/m per d² (mm), π/4 · 7.85/1000
	TubeFactor     = 0.02466 // kg/m per (D-t)·t (mm), π · 7.85/1000
	PlateFactor    = 0.00785 // kg/m per mm², 7.85/1000
)

// WeightPerMetre converts a cross-section area in mm² to kg/m.
func WeightPerMetre(areaMM2 float64) float64 {
	return areaMM2 * Density / 1000
}
