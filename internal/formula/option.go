package formula

import (
	"fmt"
	"strings"
)

// GenerationType selects what is written for a cell.
type GenerationType int

const (
	UnitArea GenerationType = iota
	UnitWeight
	Stiffener
)

// Accuracy selects the formula family.
type Accuracy int

const (
	Roughly Accuracy = iota
	Precisely
	GBData
)

// PiStyle selects how π is written.
type PiStyle int

const (
	PiFunc PiStyle = iota // PI()
	PiNum                 // 3.14
)

// Offset is the row/column delta from a source cell to the cell that
// receives the result. The engine carries it for the host and never
// interprets it.
type Offset struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// GenerationOption is the per-action configuration of the synthesizer and
// its host.
type GenerationOption struct {
	Type              GenerationType `yaml:"type"`
	Accuracy          Accuracy       `yaml:"accuracy"`
	Pi                PiStyle        `yaml:"pi_style"`
	ExcludeTopSurface bool           `yaml:"exclude_top_surface"`
	TruncatedRounding bool           `yaml:"truncated_rounding"`
	TargetOffset      Offset         `yaml:"target_offset"`
	OverwriteExisting bool           `yaml:"overwrite_existing"`
}

// DefaultOption writes a precise area formula with PI() one column to the right.
func DefaultOption() GenerationOption {
	return GenerationOption{
		Type:         UnitArea,
		Accuracy:     Precisely,
		Pi:           PiFunc,
		TargetOffset: Offset{Row: 0, Col: 1},
	}
}

var (
	generationNames = []string{"area", "weight", "stiffener"}
	accuracyNames   = []string{"roughly", "precisely", "gb"}
	piNames         = []string{"func", "num"}
)

var (
	generationAliases = map[string]GenerationType{
		"area": UnitArea, "unitarea": UnitArea, "unit-area": UnitArea, "unit_area": UnitArea,
		"weight": UnitWeight, "unitweight": UnitWeight, "unit-weight": UnitWeight, "unit_weight": UnitWeight,
		"stiffener": Stiffener,
	}
	accuracyAliases = map[string]Accuracy{
		"roughly": Roughly, "rough": Roughly,
		"precisely": Precisely, "precise": Precisely,
		"gb": GBData, "gbdata": GBData, "gb-data": GBData, "gb_data": GBData,
	}
	piAliases = map[string]PiStyle{
		"func": PiFunc, "function": PiFunc, "pi()": PiFunc,
		"num": PiNum, "number": PiNum, "numeric": PiNum,
	}
)

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func (g GenerationType) String() string { return name(generationNames, int(g)) }
func (a Accuracy) String() string       { return name(accuracyNames, int(a)) }
func (p PiStyle) String() string        { return name(piNames, int(p)) }

// ParseGenerationType accepts "area", "weight", "stiffener" and common spellings.
func ParseGenerationType(s string) (GenerationType, error) {
	if g, ok := generationAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return g, nil
	}
	return 0, fmt.Errorf("unknown generation type %q (want %s)", s, strings.Join(generationNames, ", "))
}

// ParseAccuracy accepts "roughly", "precisely", "gb" and common spellings.
func ParseAccuracy(s string) (Accuracy, error) {
	if a, ok := accuracyAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown accuracy %q (want %s)", s, strings.Join(accuracyNames, ", "))
}

// ParsePiStyle accepts "func" or "num".
func ParsePiStyle(s string) (PiStyle, error) {
	if p, ok := piAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown pi style %q (want %s)", s, strings.Join(piNames, ", "))
}

// Text encoding, used by the YAML options file.

func (g GenerationType) MarshalText() ([]byte, error) { return []byte(g.String()), nil }
func (a Accuracy) MarshalText() ([]byte, error)       { return []byte(a.String()), nil }
func (p PiStyle) MarshalText() ([]byte, error)        { return []byte(p.String()), nil }

func (g *GenerationType) UnmarshalText(b []byte) (err error) {
	*g, err = ParseGenerationType(string(b))
	return err
}

func (a *Accuracy) UnmarshalText(b []byte) (err error) {
	*a, err = ParseAccuracy(string(b))
	return err
}

func (p *PiStyle) UnmarshalText(b []byte) (err error) {
	*p, err = ParsePiStyle(string(b))
	return err
}

// Flag values (pflag.Value).

func (g *GenerationType) Set(s string) error { return g.UnmarshalText([]byte(s)) }
func (a *Accuracy) Set(s string) error       { return a.UnmarshalText([]byte(s)) }
func (p *PiStyle) Set(s string) error        { return p.UnmarshalText([]byte(s)) }

func (*GenerationType) Type() string { return "type" }
func (*Accuracy) Type() string       { return "accuracy" }
func (*PiStyle) Type() string        { return "pi" }
