package sphere

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func pointsAlmostEqual(p, q Point) bool {
	return almostEqual(p.X, q.X) && almostEqual(p.Y, q.Y) && almostEqual(p.Z, q.Z)
}

func TestVectorArithmetic(t *testing.T) {
	p := Point{1, 2, 3}
	q := Point{-4, 5, 0.5}

	if got, want := p.Add(q), (Point{-3, 7, 3.5}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := p.Sub(q), (Point{5, -3, 2.5}); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := p.Scale(2), (Point{2, 4, 6}); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
	if got, want := p.Dot(q), -4.0+10+1.5; !almostEqual(got, want) {
		t.Errorf("Dot = %v, want %v", got, want)
	}
}

func TestCross(t *testing.T) {
	x := Point{1, 0, 0}
	y := Point{0, 1, 0}
	z := Point{0, 0, 1}

	if got := x.Cross(y); got != z {
		t.Errorf("x × y = %v, want %v", got, z)
	}
	if got := y.Cross(x); got != z.Scale(-1) {
		t.Errorf("y × x = %v, want %v", got, z.Scale(-1))
	}
	if got := x.Cross(x); got != (Point{}) {
		t.Errorf("x × x = %v, want zero", got)
	}
}

func TestNormalize(t *testing.T) {
	p := Point{3, 4, 0}
	n, err := p.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if want := (Point{0.6, 0.8, 0}); !pointsAlmostEqual(n, want) {
		t.Errorf("Normalize = %v, want %v", n, want)
	}
	if !almostEqual(n.Norm(), 1) {
		t.Errorf("norm after Normalize = %v, want 1", n.Norm())
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	var degErr *DegenerateVectorError
	if _, err := (Point{}).Normalize(); !errors.As(err, &degErr) {
		t.Fatalf("Normalize(zero) error = %v, want DegenerateVectorError", err)
	}
	if _, err := (Point{1e-9, 0, 0}).Normalize(); !errors.As(err, &degErr) {
		t.Fatalf("Normalize(tiny) error = %v, want DegenerateVectorError", err)
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"orthogonal", Point{1, 0, 0}, Point{0, 1, 0}, math.Pi / 2},
		{"parallel", Point{2, 0, 0}, Point{5, 0, 0}, 0},
		{"antiparallel", Point{0, 0, 1}, Point{0, 0, -3}, math.Pi},
		{"diagonal", Point{1, 0, 0}, Point{1, 1, 0}, math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.AngleBetween(tt.q)
			if err != nil {
				t.Fatalf("AngleBetween: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("AngleBetween = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := (Point{1, 0, 0}).AngleBetween(Point{}); err == nil {
		t.Error("AngleBetween with zero vector: want error, got nil")
	}
}

func TestRotateAround(t *testing.T) {
	// Quarter turn of x around z lands on y.
	got, err := (Point{1, 0, 0}).RotateAround(Point{0, 0, 1}, math.Pi/2)
	if err != nil {
		t.Fatalf("RotateAround: %v", err)
	}
	if want := (Point{0, 1, 0}); !pointsAlmostEqual(got, want) {
		t.Errorf("RotateAround = %v, want %v", got, want)
	}

	// Rotation preserves length for a non-unit axis too.
	p := Point{1, 2, 3}
	got, err = p.RotateAround(Point{0, 4, 0}, 1.234)
	if err != nil {
		t.Fatalf("RotateAround: %v", err)
	}
	if !almostEqual(got.Norm(), p.Norm()) {
		t.Errorf("rotation changed length: %v -> %v", p.Norm(), got.Norm())
	}

	if _, err := p.RotateAround(Point{}, 1); err == nil {
		t.Error("RotateAround with zero axis: want error, got nil")
	}
}

func TestLerp(t *testing.T) {
	p := Point{0, 0, 0}
	q := Point{2, 4, 6}
	if got, want := Lerp(p, q, 0.5), (Point{1, 2, 3}); !pointsAlmostEqual(got, want) {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
	if got := Lerp(p, q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := Lerp(p, q, 1); !pointsAlmostEqual(got, q) {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
}

func TestSlerp(t *testing.T) {
	p := Point{1, 0, 0}
	q := Point{0, 1, 0}

	mid, err := Slerp(p, q, 0.5)
	if err != nil {
		t.Fatalf("Slerp: %v", err)
	}
	s := math.Sqrt2 / 2
	if want := (Point{s, s, 0}); !pointsAlmostEqual(mid, want) {
		t.Errorf("Slerp(0.5) = %v, want %v", mid, want)
	}
	if !almostEqual(mid.Norm(), 1) {
		t.Errorf("Slerp result off the sphere: norm = %v", mid.Norm())
	}

	if _, err := Slerp(p, p.Scale(-1), 0.5); err == nil {
		t.Error("Slerp of antipodal points: want error, got nil")
	}
}
