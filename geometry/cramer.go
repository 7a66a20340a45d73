package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var ErrSingular = errors.New("singular 3x3 system")

// Matrix3 is a dense row major 3x3 matrix.
type Matrix3 [3][3]float64

// NewMatrix3FromRows builds a matrix whose rows are r0, r1 and r2.
func NewMatrix3FromRows(r0, r1, r2 r3.Vec) Matrix3 {
	return Matrix3{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}
}

// Det is the determinant by the rule of Sarrus.
func (m Matrix3) Det() float64 {
	return m[0][0]*m[1][1]*m[2][2] + m[0][1]*m[1][2]*m[2][0] + m[0][2]*m[1][0]*m[2][1] -
		m[0][2]*m[1][1]*m[2][0] - m[0][0]*m[1][2]*m[2][1] - m[0][1]*m[1][0]*m[2][2]
}

// replaceColumn returns a copy of m with column j set to v.
func (m Matrix3) replaceColumn(j int, v [3]float64) (mr Matrix3) {
	mr = m
	for i := 0; i < 3; i++ {
		mr[i][j] = v[i]
	}
	return
}

// Solve3x3 solves m x = rhs with Cramer's rule. No singularity check is
// made: a zero determinant yields Inf or NaN components.
func Solve3x3(m Matrix3, rhs [3]float64) r3.Vec {
	var (
		det = m.Det()
		dx  = m.replaceColumn(0, rhs).Det()
		dy  = m.replaceColumn(1, rhs).Det()
		dz  = m.replaceColumn(2, rhs).Det()
	)
	return r3.Vec{X: dx / det, Y: dy / det, Z: dz / det}
}

// SolveCramer is Solve3x3 with a singularity check, |det(m)| must exceed tol.
func SolveCramer(m Matrix3, rhs [3]float64, tol float64) (x r3.Vec, err error) {
	if det := m.Det(); math.Abs(det) <= tol || math.IsNaN(det) {
		err = ErrSingular
		return
	}
	x = Solve3x3(m, rhs)
	return
}
