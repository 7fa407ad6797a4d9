package xform

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Matrix32 is the float32 counterpart of Matrix, for GPU-bound pipelines
// and other memory-constrained uses. Storage is an f32.Mat3, row-major,
// addressed by the same M* index constants as Matrix.
//
// Arithmetic on Matrix32 promotes to float64 internally and rounds once
// per element, so results match computing in Matrix and converting back:
//
//	a.Multiply(b) == a.ToFloat64().Multiply(b.ToFloat64()).ToFloat32()
type Matrix32 f32.Mat3

// Identity32 returns the identity transformation matrix.
func Identity32() Matrix32 {
	return Matrix32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// ToFloat32 converts m to a Matrix32, rounding each element.
func (m Matrix) ToFloat32() Matrix32 {
	var r Matrix32
	for i, v := range m {
		r[i] = float32(v)
	}
	return r
}

// ToFloat64 converts m to a Matrix. The conversion is exact.
func (m Matrix32) ToFloat64() Matrix {
	var r Matrix
	for i, v := range m {
		r[i] = float64(v)
	}
	return r
}

// muladd32 computes a*b + c*d with float64 intermediates, rounding the
// sum once.
func muladd32(a, b, c, d float32) float32 {
	return float32(float64(a)*float64(b) + float64(c)*float64(d))
}

// Multiply multiplies two matrices (m * other). In the combined transform
// other applies first, as with Matrix.Multiply.
func (m Matrix32) Multiply(other Matrix32) Matrix32 {
	if m.HasPerspective() || other.HasPerspective() {
		return m.ToFloat64().Multiply(other.ToFloat64()).ToFloat32()
	}
	return Matrix32{
		muladd32(m[0], other[0], m[1], other[3]),
		muladd32(m[0], other[1], m[1], other[4]),
		float32(float64(m[0])*float64(other[2]) + float64(m[1])*float64(other[5]) + float64(m[2])),
		muladd32(m[3], other[0], m[4], other[3]),
		muladd32(m[3], other[1], m[4], other[4]),
		float32(float64(m[3])*float64(other[2]) + float64(m[4])*float64(other[5]) + float64(m[5])),
		0, 0, 1,
	}
}

// MapPoint applies the transformation to a point. The computation runs
// in float64.
func (m Matrix32) MapPoint(p Point) Point {
	return m.ToFloat64().MapPoint(p)
}

// Kind classifies m element by element, as Matrix.Kind does.
func (m Matrix32) Kind() Kind {
	return m.ToFloat64().Kind()
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix32) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 &&
		m[3] == 0 && m[4] == 1 && m[5] == 0 &&
		m[6] == 0 && m[7] == 0 && m[8] == 1
}

// HasPerspective returns true if the bottom row differs from | 0 0 1 |.
func (m Matrix32) HasPerspective() bool {
	return m[6] != 0 || m[7] != 0 || m[8] != 1
}

// ApproxEqual returns true if every element of m and other agrees to
// within epsilon, sized for float32 precision. NaN elements never agree.
func (m Matrix32) ApproxEqual(other Matrix32) bool {
	const epsilon = 1e-5
	for i := range m {
		if !(math.Abs(float64(m[i])-float64(other[i])) <= epsilon) {
			return false
		}
	}
	return true
}

// Uniform returns the matrix laid out for a WGSL mat3x3<f32> uniform:
// column-major, each column padded to 16 bytes.
func (m Matrix32) Uniform() [12]float32 {
	return [12]float32{
		m[0], m[3], m[6], 0,
		m[1], m[4], m[7], 0,
		m[2], m[5], m[8], 0,
	}
}
