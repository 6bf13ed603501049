package sphere

import (
	"fmt"
	"math"
)

// epsilon is the squared-length threshold below which a vector is treated
// as degenerate for direction-dependent operations.
const epsilon = 1e-12

// Point is a point (or free vector) in 3D cartesian space.
type Point struct {
	X, Y, Z float64
}

// ============================================================================
// Errors
// ============================================================================

// DegenerateVectorError reports a (near-)zero-length vector passed to an
// operation that requires a direction.
type DegenerateVectorError struct {
	Op string
	P  Point
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("sphere: %s: degenerate zero-length vector %v", e.Op, e.P)
}

// DegenerateContourError reports three points that do not determine a unique
// circle: at least two coincide, or all three are collinear.
type DegenerateContourError struct {
	A, B, C Point
}

func (e *DegenerateContourError) Error() string {
	return fmt.Sprintf("sphere: points %v, %v, %v do not define a circle", e.A, e.B, e.C)
}

// PoleCoincidenceError reports a point too close to the projection pole for
// stereographic projection to be defined.
type PoleCoincidenceError struct {
	P    Point
	Pole Point
}

func (e *PoleCoincidenceError) Error() string {
	return fmt.Sprintf("sphere: point %v coincides with projection pole %v", e.P, e.Pole)
}

// ============================================================================
// Vector operations
// ============================================================================

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Dot returns the dot product p · q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p × q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the euclidean length of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Normalize returns p scaled to unit length. It returns a
// [DegenerateVectorError] if p has (near-)zero length.
func (p Point) Normalize() (Point, error) {
	n2 := p.Dot(p)
	if n2 < epsilon {
		return Point{}, &DegenerateVectorError{Op: "normalize", P: p}
	}
	return p.Scale(1 / math.Sqrt(n2)), nil
}

// AngleBetween returns the angle between p and q in radians, in [0, π].
// Either vector being (near-)zero yields a [DegenerateVectorError].
func (p Point) AngleBetween(q Point) (float64, error) {
	pn, err := p.Normalize()
	if err != nil {
		return 0, err
	}
	qn, err := q.Normalize()
	if err != nil {
		return 0, err
	}
	// Clamp against rounding drift before acos.
	d := max(-1, min(1, pn.Dot(qn)))
	return math.Acos(d), nil
}

// RotateAround rotates p by angle radians around the given axis using the
// Rodrigues rotation formula. The axis need not be unit length but must be
// non-degenerate.
func (p Point) RotateAround(axis Point, angle float64) (Point, error) {
	k, err := axis.Normalize()
	if err != nil {
		return Point{}, err
	}
	sin, cos := math.Sincos(angle)
	term1 := p.Scale(cos)
	term2 := k.Cross(p).Scale(sin)
	term3 := k.Scale(k.Dot(p) * (1 - cos))
	return term1.Add(term2).Add(term3), nil
}

// Lerp returns the linear interpolation between p and q at parameter t.
// The result is generally off the sphere; see [Slerp] for arc interpolation.
func Lerp(p, q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// Slerp returns the spherical linear interpolation between unit vectors p
// and q at parameter t, following the shorter great-circle arc. Antipodal
// inputs have no unique shortest arc and yield a [DegenerateContourError];
// use [FindPointAtFraction] with an auxiliary point instead.
func Slerp(p, q Point, t float64) (Point, error) {
	omega, err := p.AngleBetween(q)
	if err != nil {
		return Point{}, err
	}
	sinOmega := math.Sin(omega)
	if math.Abs(sinOmega) < 1e-9 {
		if omega < 1 {
			// Nearly identical directions.
			return Lerp(p, q, t), nil
		}
		return Point{}, &DegenerateContourError{A: p, B: q, C: q}
	}
	wp := math.Sin((1-t)*omega) / sinOmega
	wq := math.Sin(t*omega) / sinOmega
	return p.Scale(wp).Add(q.Scale(wq)), nil
}
