package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PeriodicDisplacement returns p-q reduced to the nearest periodic image of an
// orthorhombic box with edge lengths bounds. All bounds components must be
// non-zero.
func PeriodicDisplacement(p, q, bounds r3.Vec) (d r3.Vec) {
	d = r3.Sub(p, q)
	d.X -= math.Round(d.X/bounds.X) * bounds.X
	d.Y -= math.Round(d.Y/bounds.Y) * bounds.Y
	d.Z -= math.Round(d.Z/bounds.Z) * bounds.Z
	return
}

// PeriodicDistance is the minimum image distance between p and q.
func PeriodicDistance(p, q, bounds r3.Vec) float64 {
	return r3.Norm(PeriodicDisplacement(p, q, bounds))
}

// Angle returns the angle at vertex c2 of the triangle (c1, c2, c3), using the
// minimum image distances between the three points and the law of cosines.
// The cosine is clamped into [-1, 1] so nearly colinear points give 0 or Pi
// rather than NaN.
func Angle(c1, c2, c3, bounds r3.Vec) float64 {
	var (
		a = PeriodicDistance(c1, c3, bounds) // opposite the vertex
		b = PeriodicDistance(c1, c2, bounds)
		c = PeriodicDistance(c2, c3, bounds)
	)
	cosA := (b*b + c*c - a*a) / (2 * b * c)
	return math.Abs(math.Acos(clamp(cosA, -1, 1)))
}

// MidPoint is the Euclidean midpoint of p and q.
func MidPoint(p, q r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(p, q))
}

func clamp(x, lo, hi float64) float64 {
	// NaN passes through
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
