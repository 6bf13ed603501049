package sphere

import "math"

// FindPointAtFraction returns the point at the given fraction of arc length
// from a to b, measured along the circle through a, b, and c. The auxiliary
// point c disambiguates which of the two arcs between a and b is meant and
// which circle to travel on; the arc is the one passing on c's side.
//
// frac = 0 returns a exactly and frac = 1 returns b exactly. Fractions
// outside [0, 1] extrapolate along the same circle with the same arc-length
// parameterization.
//
// If the three points do not determine a unique circle (two coincide, or
// all three are collinear) a [DegenerateContourError] is returned.
func FindPointAtFraction(a, b, c Point, frac float64) (Point, error) {
	// Endpoints are exact, not a trigonometric round trip.
	switch frac {
	case 0:
		return a, nil
	case 1:
		return b, nil
	}

	if a == b || a == c || b == c {
		return Point{}, &DegenerateContourError{A: a, B: b, C: c}
	}

	// Unit normal of the plane through a, b, c. A near-zero cross product
	// means the points are collinear and span no plane.
	n, err := c.Sub(a).Cross(b.Sub(a)).Normalize()
	if err != nil {
		return Point{}, &DegenerateContourError{A: a, B: b, C: c}
	}

	// Center of the circle: the origin projected onto the plane. Electrode
	// contours are planar cuts of the origin-centered sphere, so the cut
	// circle's center is the foot of the perpendicular from the origin.
	center := n.Scale(n.Dot(a))

	// In-plane frame: u from center toward a, v perpendicular in-plane,
	// oriented so that c lies at positive v (angles grow toward c).
	u := a.Sub(center)
	v := n.Cross(u)
	if c.Sub(center).Dot(v) < 0 {
		v = v.Scale(-1)
	}

	// Angle swept from a to b, going through c's side.
	bc := b.Sub(center)
	theta := math.Atan2(bc.Dot(v), bc.Dot(u))
	if theta < 0 {
		theta += 2 * math.Pi
	}

	phi := frac * theta
	sin, cos := math.Sincos(phi)
	return center.Add(u.Scale(cos)).Add(v.Scale(sin)), nil
}
