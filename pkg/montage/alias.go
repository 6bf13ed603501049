package montage

// aliases maps legacy and peripheral electrode names to the canonical
// label closest to their nominal position. A1/A2 (earlobes) map to the
// preauricular landmarks, M1/M2 (mastoids) to TP9/TP10, and T3/T4/T5/T6
// are the pre-1991 names of T7/T8/P7/P8.
var aliases = map[string]string{
	"A1": LabelLPA,
	"A2": LabelRPA,
	"M1": "TP9",
	"M2": "TP10",
	"T3": "T7",
	"T4": "T8",
	"T5": "P7",
	"T6": "P8",
}

// Aliases returns the alias table (alias → canonical label) as a copy.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// Canonical resolves an alias to its canonical label, or returns the input
// unchanged when it is not an alias.
func Canonical(label string) string {
	if c, ok := aliases[label]; ok {
		return c
	}
	return label
}
