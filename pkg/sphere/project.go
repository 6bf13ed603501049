package sphere

import "math"

// Point2 is a point in the 2D projection plane.
type Point2 struct {
	X, Y float64
}

// DefaultPole is the standard projection pole for scalp maps: the point
// opposite the vertex. Projecting from here maps Cz to the origin and the
// equator to the unit circle, with anterior up and the right hemisphere at
// positive X.
var DefaultPole = Point{0, 0, -1}

// Project returns the stereographic projection of the unit-sphere point p
// from the given pole onto the plane through the origin perpendicular to
// the pole axis.
//
// The pole itself has no image; a point whose direction (near-)coincides
// with the pole yields a [PoleCoincidenceError]. A degenerate (zero) pole
// yields a [DegenerateVectorError].
func Project(p, pole Point) (Point2, error) {
	q, err := pole.Normalize()
	if err != nil {
		return Point2{}, err
	}

	// Denominator of the projective map. It vanishes exactly when p sits
	// at the pole.
	denom := 1 - p.Dot(q)
	if math.Abs(denom) < 1e-9 {
		return Point2{}, &PoleCoincidenceError{P: p, Pole: pole}
	}

	e1, e2 := planeBasis(q)
	t := 1 / denom
	img := q.Add(p.Sub(q).Scale(t))
	return Point2{X: img.Dot(e1), Y: img.Dot(e2)}, nil
}

// planeBasis returns an orthonormal basis (e1, e2) of the plane
// perpendicular to the unit pole axis q. The basis is chosen so that for
// the default pole (0,0,-1) it is ((1,0,0), (0,1,0)), i.e. projected X/Y
// line up with anatomical X/Y.
func planeBasis(q Point) (Point, Point) {
	e1 := Point{0, 0, 1}.Cross(q)
	if n, err := e1.Normalize(); err == nil {
		e1 = n
	} else {
		// Pole on the Z axis.
		e1 = Point{1, 0, 0}
	}
	return e1, e1.Cross(q)
}
