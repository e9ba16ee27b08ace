package gb

import (
	"strconv"
	"strings"
)

// Family identifies one of the standard section tables.
type Family int

const (
	FamilyAngle     Family = iota // GB/T 706 hot-rolled angles
	FamilyChannel                 // GB/T 706 hot-rolled channels
	FamilyIBeam                   // GB/T 706 hot-rolled I-beams
	FamilyHBeam                   // GB/T 11263 hot-rolled H-sections
	FamilyBulbFlat                // GB/T 9945 bulb flats
)

func (f Family) String() string {
	switch f {
	case FamilyAngle:
		return "angle"
	case FamilyChannel:
		return "channel"
	case FamilyIBeam:
		return "I-beam"
	case FamilyHBeam:
		return "H-beam"
	case FamilyBulbFlat:
		return "bulb flat"
	}
	return "unknown"
}

// Section is one row of a standard table.
type Section struct {
	Designation string    // "50x5", "20a", "HN200x100x5.5x8", "200x10"
	Dims        []float64 // mm, in the order used by the matching profile shape
	Area        float64   // cross-section area, cm²
	Weight      float64   // theoretical weight, kg/m
	Surface     float64   // outer surface, m²/m (0 when not tabulated)
}

// HasSurface reports whether the table lists an outer surface value.
func (s Section) HasSurface() bool { return s.Surface > 0 }

// Tables is the read-only set of standard section tables. Build it once with
// NewTables and share it.
type Tables struct {
	rows      map[Family][]Section
	byName    map[Family]map[string]Section
	byDims    map[Family]map[string]Section
	nameAlias map[Family]map[string]string
}

// NewTables builds the lookup indexes over the embedded table data.
func NewTables() *Tables {
	t := &Tables{
		rows: map[Family][]Section{
			FamilyAngle:    angleRows,
			FamilyChannel:  channelRows,
			FamilyIBeam:    ibeamRows,
			FamilyHBeam:    hbeamRows,
			FamilyBulbFlat: bulbFlatRows,
		},
		byName: make(map[Family]map[string]Section),
		byDims: make(map[Family]map[string]Section),
		nameAlias: map[Family]map[string]string{
			FamilyChannel: {"16b": "16", "18b": "18", "20b": "20", "22b": "22"},
		},
	}
	for fam, rows := range t.rows {
		t.byName[fam] = make(map[string]Section, len(rows))
		t.byDims[fam] = make(map[string]Section, len(rows))
		for _, r := range rows {
			t.byName[fam][strings.ToLower(r.Designation)] = r
			t.byDims[fam][DimsKey(r.Dims...)] = r
		}
	}
	return t
}

// ByDesignation looks up a row by its table designation (case-insensitive).
func (t *Tables) ByDesignation(f Family, designation string) (Section, bool) {
	key := strings.ToLower(designation)
	if alias, ok := t.nameAlias[f][key]; ok {
		key = alias
	}
	s, ok := t.byName[f][key]
	return s, ok
}

// ByDims looks up a row whose dimensions equal dims exactly.
func (t *Tables) ByDims(f Family, dims ...float64) (Section, bool) {
	s, ok := t.byDims[f][DimsKey(dims...)]
	return s, ok
}

// Rows returns a copy of a family's rows in table order.
func (t *Tables) Rows(f Family) []Section {
	rows := t.rows[f]
	out := make([]Section, len(rows))
	copy(out, rows)
	return out
}

// DimsKey renders dimensions as "a x b x c" without trailing zeros, e.g. "50x50x5".
func DimsKey(dims ...float64) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = FormatNumber(d)
	}
	return strings.Join(parts, "x")
}

// FormatNumber renders a dimension with the shortest exact decimal form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
