// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"fmt"
	"slices"

	"cogentcore.org/colorspace/base/errors"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
)

// Matrix3 is a 3x3 matrix stored in row-major order,
// sharing the layout of [f64.Mat3].
type Matrix3 f64.Mat3

// Mat3 returns a new [Matrix3] from the given elements,
// in row-major order.
func Mat3(a, b, c, d, e, f, g, h, i float64) Matrix3 {
	return Matrix3{a, b, c, d, e, f, g, h, i}
}

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Diagonal returns a matrix with the given vector on its diagonal.
func Diagonal(v Vector3) Matrix3 {
	return Matrix3{v.X, 0, 0, 0, v.Y, 0, 0, 0, v.Z}
}

// Matrix3FromColumns returns a matrix whose columns are the given vectors.
func Matrix3FromColumns(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	}
}

// At returns the element at the given row and column.
func (m Matrix3) At(row, col int) float64 {
	return m[row*3+col]
}

// Row returns the given row as a vector.
func (m Matrix3) Row(i int) Vector3 {
	return Vector3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Column returns the given column as a vector.
func (m Matrix3) Column(i int) Vector3 {
	return Vector3{m[i], m[3+i], m[6+i]}
}

// MulVector3 returns m·v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mul returns the matrix product m·other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*other[j] + m[i*3+1]*other[3+j] + m[i*3+2]*other[6+j]
		}
	}
	return r
}

// ScaleColumns returns the matrix with each column multiplied
// by the corresponding component of s, which is m·diag(s).
func (m Matrix3) ScaleColumns(s Vector3) Matrix3 {
	return Matrix3{
		m[0] * s.X, m[1] * s.Y, m[2] * s.Z,
		m[3] * s.X, m[4] * s.Y, m[5] * s.Z,
		m[6] * s.X, m[7] * s.Y, m[8] * s.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Determinant calculates and returns the determinant of this matrix.
func (m Matrix3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// maxCondition is the condition number above which a matrix
// is treated as singular.
const maxCondition = 1e12

// Dense returns a new [mat.Dense] with the elements of the matrix.
func (m Matrix3) Dense() *mat.Dense {
	return mat.NewDense(3, 3, slices.Clone(m[:]))
}

// Matrix3FromDense returns a new [Matrix3] from the given 3x3 matrix.
func Matrix3FromDense(d mat.Matrix) Matrix3 {
	var m Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i*3+j] = d.At(i, j)
		}
	}
	return m
}

// lu returns the LU factorization of the matrix. It returns an
// [errors.Degenerate] error if the matrix is singular or too badly
// conditioned to invert.
func (m Matrix3) lu(op string) (*mat.LU, error) {
	for _, v := range m {
		if !Finite(v) {
			return nil, errors.NewKind(errors.Degenerate, op, m.String(), "matrix is not finite")
		}
	}
	var lu mat.LU
	lu.Factorize(m.Dense())
	if c := lu.Cond(); !(c < maxCondition) {
		return nil, errors.NewKind(errors.Degenerate, op, m.String(), fmt.Sprintf("singular matrix (condition %g)", c))
	}
	return &lu, nil
}

// Inverse returns the inverse of this matrix. It returns an
// [errors.Degenerate] error if the matrix is singular.
func (m Matrix3) Inverse() (Matrix3, error) {
	lu, err := m.lu("Matrix3.Inverse")
	if err != nil {
		return Matrix3{}, err
	}
	var inv mat.Dense
	if err := lu.SolveTo(&inv, false, mat.NewDiagDense(3, []float64{1, 1, 1})); err != nil {
		return Matrix3{}, errors.Errorf(errors.Degenerate, "Matrix3.Inverse", m.String(), err)
	}
	return Matrix3FromDense(&inv), nil
}

// MustInverse returns the inverse of a matrix known to be invertible,
// such as one of the fixed transforms in this module. It panics otherwise.
func (m Matrix3) MustInverse() Matrix3 {
	return errors.Must1(m.Inverse())
}

// Solve returns x such that m·x = b.
func (m Matrix3) Solve(b Vector3) (Vector3, error) {
	lu, err := m.lu("Matrix3.Solve")
	if err != nil {
		return Vector3{}, err
	}
	bv := b.Vec3()
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(3, bv[:])); err != nil {
		return Vector3{}, errors.Errorf(errors.Degenerate, "Matrix3.Solve", m.String(), err)
	}
	return Vector3FromVec3(f64.Vec3(x.RawVector().Data)), nil
}

func (m Matrix3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
