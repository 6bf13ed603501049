package montage

import (
	"github.com/neurolab/eegpos/pkg/sphere"
)

// NamedPoint pairs an electrode label with its position on the unit sphere.
type NamedPoint struct {
	Label string
	Point sphere.Point
}

// FlatPoint pairs an electrode label with its 2D projection.
type FlatPoint struct {
	Label string
	X, Y  float64
}

// System is an immutable, ordered table of electrode positions produced by
// [Compute]. Order is deterministic: derivation order, or lexicographic
// when sorting was requested.
type System struct {
	density Density
	equator Equator
	points  []NamedPoint
	index   map[string]int
}

func newSystem(d Density, eq Equator, points []NamedPoint) *System {
	idx := make(map[string]int, len(points))
	for i, p := range points {
		idx[p.Label] = i
	}
	return &System{density: d, equator: eq, points: points, index: idx}
}

// Density returns the density level the system was computed for.
func (s *System) Density() Density { return s.density }

// Equator returns the equator convention the system was computed with.
func (s *System) Equator() Equator { return s.equator }

// Len returns the number of positions in the system.
func (s *System) Len() int { return len(s.points) }

// Labels returns the labels in table order.
func (s *System) Labels() []string {
	out := make([]string, len(s.points))
	for i, p := range s.points {
		out[i] = p.Label
	}
	return out
}

// Points returns the full table in order.
func (s *System) Points() []NamedPoint {
	return append([]NamedPoint(nil), s.points...)
}

// Get returns the position of an exact label present in the table.
func (s *System) Get(label string) (sphere.Point, bool) {
	i, ok := s.index[label]
	if !ok {
		return sphere.Point{}, false
	}
	return s.points[i].Point, true
}

// Lookup resolves label through the alias table and returns its position.
// Labels absent from the table yield an [UnknownLabelError].
func (s *System) Lookup(label string) (sphere.Point, error) {
	if p, ok := s.Get(label); ok {
		return p, nil
	}
	if p, ok := s.Get(Canonical(label)); ok {
		return p, nil
	}
	return sphere.Point{}, &UnknownLabelError{Label: label}
}

// Project returns the stereographic 2D projection of every position in
// table order. Projection stops at the first point that coincides with the
// pole; with the default pole this cannot happen for scalp positions, which
// never reach the bottom of the sphere.
func (s *System) Project(pole sphere.Point) ([]FlatPoint, error) {
	out := make([]FlatPoint, len(s.points))
	for i, p := range s.points {
		flat, err := sphere.Project(p.Point, pole)
		if err != nil {
			return nil, err
		}
		out[i] = FlatPoint{Label: p.Label, X: flat.X, Y: flat.Y}
	}
	return out, nil
}
