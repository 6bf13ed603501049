package montage

import (
	"regexp"
	"strings"
)

// Hemisphere locates a label relative to the midline: odd columns are on
// the subject's left, even columns on the right, z labels on the midline.
type Hemisphere int

const (
	Midline Hemisphere = iota
	LeftHemisphere
	RightHemisphere
)

func (h Hemisphere) String() string {
	switch h {
	case LeftHemisphere:
		return "left"
	case RightHemisphere:
		return "right"
	default:
		return "midline"
	}
}

// Label is a canonical electrode label decomposed into its nomenclature
// parts: a row prefix (Fp, AF, FCC, T, ...), a column (z, 1..10, with h
// for intermediate positions) and the hemisphere the column implies.
type Label struct {
	Raw        string
	Row        string
	Column     string
	Hemisphere Hemisphere
}

// Half reports whether the label sits on an intermediate 5% column.
func (l Label) Half() bool {
	return strings.HasSuffix(l.Column, "h")
}

// labelRE splits a label into row prefix and column. Rows are an uppercase
// sequence with an optional lowercase tail (Fp, AFp, OI); columns are z or
// 1..10 with an optional h suffix.
var labelRE = regexp.MustCompile(`^([A-Z]+p?)(z|10h?|[1-9]h?)$`)

// ParseLabel decomposes a canonical 10-05 electrode label. Labels outside
// the canonical set, including landmarks and aliases, yield an
// [UnknownLabelError]; resolve aliases with [Canonical] first if needed.
func ParseLabel(s string) (Label, error) {
	if !isCanonical(s) {
		return Label{}, &UnknownLabelError{Label: s}
	}
	m := labelRE.FindStringSubmatch(s)
	if m == nil {
		return Label{}, &UnknownLabelError{Label: s}
	}
	col := m[2]
	hemi := Midline
	if col != "z" {
		// First digit decides the side; 10 is even.
		switch col {
		case "10", "10h":
			hemi = RightHemisphere
		default:
			if (col[0]-'0')%2 == 1 {
				hemi = LeftHemisphere
			} else {
				hemi = RightHemisphere
			}
		}
	}
	return Label{Raw: s, Row: m[1], Column: col, Hemisphere: hemi}, nil
}

// ValidLabel reports whether s names a position the system can resolve:
// a canonical label, a landmark, or an alias.
func ValidLabel(s string) bool {
	if isCanonical(s) {
		return true
	}
	switch s {
	case LabelNAS, LabelLPA, LabelRPA:
		return true
	}
	_, ok := aliases[s]
	return ok
}
