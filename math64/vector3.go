// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Vector3 is a 3D vector with X, Y and Z components.
// In color code it holds tristimulus and cone-response triplets.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float64) Vector3 {
	return Vector3{X: scalar, Y: scalar, Z: scalar}
}

// Vector3FromVec3 returns a new [Vector3] from the given [f64.Vec3].
func Vector3FromVec3(v f64.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

// Vec3 returns the vector as a [f64.Vec3].
func (v Vector3) Vec3() f64.Vec3 {
	return f64.Vec3{v.X, v.Y, v.Z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Dim returns the component at the given index (0 = X, 1 = Y, 2 = Z).
func (v Vector3) Dim(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Add adds other vector to this one and returns the result vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts other vector from this one and returns the result vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies each component of this vector by the corresponding one from other.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div divides each component of this vector by the corresponding one from other.
// Components of the result whose quotient is not finite are 0.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{SafeDiv(v.X, other.X), SafeDiv(v.Y, other.Y), SafeDiv(v.Z, other.Z)}
}

// MulScalar multiplies each component of this vector by the scalar s.
func (v Vector3) MulScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar divides each component of this vector by the scalar s.
func (v Vector3) DivScalar(s float64) Vector3 {
	return v.MulScalar(1 / s)
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the length of this vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Sum returns the sum of the components.
func (v Vector3) Sum() float64 {
	return v.X + v.Y + v.Z
}

// Max returns the largest component.
func (v Vector3) Max() float64 {
	return max(v.X, v.Y, v.Z)
}

// Min returns the smallest component.
func (v Vector3) Min() float64 {
	return min(v.X, v.Y, v.Z)
}

// Apply returns the vector with f applied to each component.
func (v Vector3) Apply(f func(float64) float64) Vector3 {
	return Vector3{f(v.X), f(v.Y), f(v.Z)}
}

// Sanitize returns the vector with NaN and infinite components set to 0.
func (v Vector3) Sanitize() Vector3 {
	return v.Apply(Sanitize)
}

// IsFinite reports whether all components are finite.
func (v Vector3) IsFinite() bool {
	return Finite(v.X) && Finite(v.Y) && Finite(v.Z)
}
