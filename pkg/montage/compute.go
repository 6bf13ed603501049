package montage

import (
	"fmt"
	"sort"

	"github.com/neurolab/eegpos/pkg/sphere"
)

// Cardinal anchor positions on the unit sphere (RAS orientation).
var (
	anchorFront = sphere.Point{X: 0, Y: 1, Z: 0}
	anchorRight = sphere.Point{X: 1, Y: 0, Z: 0}
	anchorBack  = sphere.Point{X: 0, Y: -1, Z: 0}
	anchorLeft  = sphere.Point{X: -1, Y: 0, Z: 0}
	anchorTop   = sphere.Point{X: 0, Y: 0, Z: 1}
)

// Options configures [Compute]. The zero value computes the full 10-05
// system with the Nz equator, landmarks included, in derivation order.
type Options struct {
	// Density selects the electrode system. Empty means 10-05.
	Density Density

	// Equator selects which label ring sits at z = 0. Empty means
	// Nz-T10-Iz-T9.
	Equator Equator

	// Names, when non-empty, selects exactly these electrodes instead of a
	// density roster. Aliases are allowed and keep their requested name in
	// the result. Overrides Density and DropLandmarks.
	Names []string

	// DropLandmarks omits the NAS/LPA/RPA fiducials from the result.
	DropLandmarks bool

	// Sort orders the result lexicographically by label instead of by
	// derivation order.
	Sort bool
}

// Compute derives electrode positions for the requested system. The result
// is a self-contained immutable table; errors leave no partial state
// behind. Computation is deterministic: equal options yield bit-identical
// tables.
func Compute(opts Options) (*System, error) {
	density := opts.Density
	if density == "" {
		density = Density1005
	}
	if _, err := SystemLabels(density); err != nil {
		return nil, err
	}
	equator := opts.Equator
	if equator == "" {
		equator = EquatorNz
	}
	if _, err := ParseEquator(string(equator)); err != nil {
		return nil, err
	}

	full, index, err := buildTable(equator)
	if err != nil {
		return nil, err
	}

	var points []NamedPoint
	if len(opts.Names) > 0 {
		points, err = selectNames(full, index, opts.Names)
		if err != nil {
			return nil, err
		}
	} else {
		points, err = selectDensity(full, density, opts.DropLandmarks)
		if err != nil {
			return nil, err
		}
	}

	if opts.Sort {
		sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })
	}
	return newSystem(density, equator, points), nil
}

// buildTable executes the derivation plan for an equator convention and
// returns all 345 canonical positions plus the three landmarks, in the
// order they were placed.
func buildTable(eq Equator) ([]NamedPoint, map[string]int, error) {
	anc := anchorsFor(eq)
	points := []NamedPoint{
		{Label: anc.front, Point: anchorFront},
		{Label: anc.right, Point: anchorRight},
		{Label: anc.back, Point: anchorBack},
		{Label: anc.left, Point: anchorLeft},
		{Label: anc.top, Point: anchorTop},
	}
	index := make(map[string]int, 348)
	for i, p := range points {
		index[p.Label] = i
	}

	for _, st := range planFor(eq) {
		if _, ok := index[st.label]; ok {
			continue
		}
		a, b, aux, err := resolveStep(points, index, st)
		if err != nil {
			return nil, nil, err
		}
		p, err := sphere.FindPointAtFraction(a, b, aux, st.frac)
		if err != nil {
			return nil, nil, fmt.Errorf("derive %s: %w", st.label, err)
		}
		index[st.label] = len(points)
		points = append(points, NamedPoint{Label: st.label, Point: p})
	}

	// Fiducials share coordinates with their nearest canonical labels.
	for _, lm := range []struct{ label, from string }{
		{LabelNAS, "Nz"},
		{LabelLPA, "T9"},
		{LabelRPA, "T10"},
	} {
		i, ok := index[lm.from]
		if !ok {
			return nil, nil, fmt.Errorf("landmark %s: source %s not derived", lm.label, lm.from)
		}
		index[lm.label] = len(points)
		points = append(points, NamedPoint{Label: lm.label, Point: points[i].Point})
	}

	return points, index, nil
}

func resolveStep(points []NamedPoint, index map[string]int, st step) (a, b, aux sphere.Point, err error) {
	for _, ref := range []struct {
		label string
		dst   *sphere.Point
	}{{st.a, &a}, {st.b, &b}, {st.aux, &aux}} {
		i, ok := index[ref.label]
		if !ok {
			return a, b, aux, fmt.Errorf("derive %s: anchor %s not yet placed", st.label, ref.label)
		}
		*ref.dst = points[i].Point
	}
	return a, b, aux, nil
}

// selectDensity filters the full table down to a density roster plus
// landmarks, preserving derivation order.
func selectDensity(full []NamedPoint, d Density, dropLandmarks bool) ([]NamedPoint, error) {
	roster, err := SystemLabels(d)
	if err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(roster)+3)
	for _, l := range roster {
		want[l] = true
	}
	if !dropLandmarks {
		for _, l := range Landmarks() {
			want[l] = true
		}
	}
	out := make([]NamedPoint, 0, len(want))
	for _, p := range full {
		if want[p.Label] {
			out = append(out, p)
		}
	}
	return out, nil
}

// selectNames resolves an explicit selection. Each requested name keeps its
// spelling in the result even when it is an alias; two names resolving to
// the same position are rejected.
func selectNames(full []NamedPoint, index map[string]int, names []string) ([]NamedPoint, error) {
	out := make([]NamedPoint, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		canonical := Canonical(name)
		i, ok := index[canonical]
		if !ok {
			return nil, &UnknownLabelError{Label: name}
		}
		if first, dup := seen[canonical]; dup {
			return nil, &AliasCollisionError{First: first, Second: name, Canonical: canonical}
		}
		seen[canonical] = name
		out = append(out, NamedPoint{Label: name, Point: full[i].Point})
	}
	return out, nil
}
