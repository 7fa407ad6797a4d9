package xform

import (
	"fmt"
	"math"
)

// Matrix represents a 2D transformation matrix.
// It uses a full 3x3 matrix in row-major order:
//
//	| ScaleX  SkewX  TransX |
//	| SkewY   ScaleY TransY |
//	| Persp0  Persp1 Persp2 |
//
// This represents the transformation:
//
//	x' = (ScaleX*x + SkewX*y + TransX) / w
//	y' = (SkewY*x + ScaleY*y + TransY) / w
//	w  =  Persp0*x + Persp1*y + Persp2
//
// Affine matrices keep the bottom row at | 0 0 1 |, so w stays 1 and no
// division happens. Elements are addressed by the M* index constants.
type Matrix [9]float64

// Element indices into a Matrix.
const (
	MScaleX = iota // horizontal scale
	MSkewX         // horizontal skew
	MTransX        // horizontal translation
	MSkewY         // vertical skew
	MScaleY        // vertical scale
	MTransY        // vertical translation
	MPersp0        // perspective x-weight
	MPersp1        // perspective y-weight
	MPersp2        // perspective bias
)

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// ScaleAbout creates a scaling matrix with a fixed pivot point.
// The pivot (px, py) maps to itself.
func ScaleAbout(sx, sy, px, py float64) Matrix {
	return Matrix{
		sx, 0, px - sx*px,
		0, sy, py - sy*py,
		0, 0, 1,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// RotateAbout creates a rotation matrix with a fixed pivot point.
// The pivot (px, py) maps to itself.
func RotateAbout(angle, px, py float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		cos, -sin, px - cos*px + sin*py,
		sin, cos, py - sin*px - cos*py,
		0, 0, 1,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		1, x, 0,
		y, 1, 0,
		0, 0, 1,
	}
}

// Multiply multiplies two matrices (m * other). In the combined transform
// other applies first:
//
//	m.Multiply(other).MapPoint(p) == m.MapPoint(other.MapPoint(p))
//
// When neither operand has a perspective component the bottom row is known,
// so the product needs only six multiply-accumulate pairs and the result
// stays exactly affine.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.HasPerspective() || other.HasPerspective() {
		return m.multiplyGeneral(other)
	}
	return Matrix{
		m[0]*other[0] + m[1]*other[3],
		m[0]*other[1] + m[1]*other[4],
		m[0]*other[2] + m[1]*other[5] + m[2],
		m[3]*other[0] + m[4]*other[3],
		m[3]*other[1] + m[4]*other[4],
		m[3]*other[2] + m[4]*other[5] + m[5],
		0, 0, 1,
	}
}

// multiplyGeneral is the full 3x3 product, used when either operand
// carries perspective.
func (m Matrix) multiplyGeneral(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[3] + m[2]*other[6],
		m[0]*other[1] + m[1]*other[4] + m[2]*other[7],
		m[0]*other[2] + m[1]*other[5] + m[2]*other[8],
		m[3]*other[0] + m[4]*other[3] + m[5]*other[6],
		m[3]*other[1] + m[4]*other[4] + m[5]*other[7],
		m[3]*other[2] + m[4]*other[5] + m[5]*other[8],
		m[6]*other[0] + m[7]*other[3] + m[8]*other[6],
		m[6]*other[1] + m[7]*other[4] + m[8]*other[7],
		m[6]*other[2] + m[7]*other[5] + m[8]*other[8],
	}
}

// PreTranslate returns m with a translation applied before it:
// m * Translate(tx, ty).
func (m Matrix) PreTranslate(tx, ty float64) Matrix {
	r := m
	r[2] = m[0]*tx + m[1]*ty + m[2]
	r[5] = m[3]*tx + m[4]*ty + m[5]
	r[8] = m[6]*tx + m[7]*ty + m[8]
	return r
}

// PostTranslate returns m with a translation applied after it:
// Translate(tx, ty) * m.
func (m Matrix) PostTranslate(tx, ty float64) Matrix {
	if m.HasPerspective() {
		return Translate(tx, ty).Multiply(m)
	}
	r := m
	r[2] += tx
	r[5] += ty
	return r
}

// PreScale returns m with a scale applied before it: m * Scale(sx, sy).
// Only the first two columns change, so this is cheaper than a full
// Multiply.
func (m Matrix) PreScale(sx, sy float64) Matrix {
	r := m
	r[0] *= sx
	r[3] *= sx
	r[6] *= sx
	r[1] *= sy
	r[4] *= sy
	r[7] *= sy
	return r
}

// PostScale returns m with a scale applied after it: Scale(sx, sy) * m.
func (m Matrix) PostScale(sx, sy float64) Matrix {
	r := m
	r[0] *= sx
	r[1] *= sx
	r[2] *= sx
	r[3] *= sy
	r[4] *= sy
	r[5] *= sy
	return r
}

// PreRotate returns m with a rotation applied before it:
// m * Rotate(angle).
func (m Matrix) PreRotate(angle float64) Matrix {
	return m.Multiply(Rotate(angle))
}

// PostRotate returns m with a rotation applied after it:
// Rotate(angle) * m.
func (m Matrix) PostRotate(angle float64) Matrix {
	return Rotate(angle).Multiply(m)
}

// MapPoint applies the transformation to a point.
func (m Matrix) MapPoint(p Point) Point {
	if m.HasPerspective() {
		w := 1 / (m[6]*p.X + m[7]*p.Y + m[8])
		return Point{
			X: (m[0]*p.X + m[1]*p.Y + m[2]) * w,
			Y: (m[3]*p.X + m[4]*p.Y + m[5]) * w,
		}
	}
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// MapPoints applies the transformation to each point in pts, in place.
func (m Matrix) MapPoints(pts []Point) {
	for i, p := range pts {
		pts[i] = m.MapPoint(p)
	}
}

// MapVector applies the transformation to a vector, ignoring translation
// and perspective.
func (m Matrix) MapVector(v Point) Point {
	return Point{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[3]*v.X + m[4]*v.Y,
	}
}

// Invert returns the inverse matrix. The second return value is false if
// the matrix is not invertible, in which case the identity matrix is
// returned.
func (m Matrix) Invert() (Matrix, bool) {
	if !m.HasPerspective() {
		det := m[0]*m[4] - m[1]*m[3]
		invDet := 1 / det
		if invDet == 0 || math.IsInf(invDet, 0) || math.IsNaN(invDet) {
			return Identity(), false
		}
		return Matrix{
			m[4] * invDet,
			-m[1] * invDet,
			(m[1]*m[5] - m[2]*m[4]) * invDet,
			-m[3] * invDet,
			m[0] * invDet,
			(m[2]*m[3] - m[0]*m[5]) * invDet,
			0, 0, 1,
		}, true
	}

	det := m.Determinant()
	invDet := 1 / det
	if invDet == 0 || math.IsInf(invDet, 0) || math.IsNaN(invDet) {
		return Identity(), false
	}
	return Matrix{
		(m[4]*m[8] - m[5]*m[7]) * invDet,
		(m[2]*m[7] - m[1]*m[8]) * invDet,
		(m[1]*m[5] - m[2]*m[4]) * invDet,
		(m[5]*m[6] - m[3]*m[8]) * invDet,
		(m[0]*m[8] - m[2]*m[6]) * invDet,
		(m[2]*m[3] - m[0]*m[5]) * invDet,
		(m[3]*m[7] - m[4]*m[6]) * invDet,
		(m[1]*m[6] - m[0]*m[7]) * invDet,
		(m[0]*m[4] - m[1]*m[3]) * invDet,
	}, true
}

// Determinant returns the determinant of the full 3x3 matrix.
// A determinant of zero means the matrix is not invertible.
// A negative determinant means the transformation flips orientation.
func (m Matrix) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 &&
		m[3] == 0 && m[4] == 1 && m[5] == 0 &&
		m[6] == 0 && m[7] == 0 && m[8] == 1
}

// IsTranslation returns true if the matrix is at most a translation.
func (m Matrix) IsTranslation() bool {
	return m[0] == 1 && m[1] == 0 &&
		m[3] == 0 && m[4] == 1 &&
		m[6] == 0 && m[7] == 0 && m[8] == 1
}

// HasPerspective returns true if the bottom row differs from | 0 0 1 |.
func (m Matrix) HasPerspective() bool {
	return m[6] != 0 || m[7] != 0 || m[8] != 1
}

// ApproxEqual returns true if every element of m and other agrees to
// within epsilon. NaN elements never agree. Use plain == for exact
// comparison.
func (m Matrix) ApproxEqual(other Matrix) bool {
	const epsilon = 1e-9
	for i := range m {
		if !(math.Abs(m[i]-other[i]) <= epsilon) {
			return false
		}
	}
	return true
}

// ScaleFactor returns the maximum scale factor of the transformation.
// This is useful for determining effective stroke width after transform.
func (m Matrix) ScaleFactor() float64 {
	sx := math.Sqrt(m[0]*m[0] + m[3]*m[3])
	sy := math.Sqrt(m[1]*m[1] + m[4]*m[4])
	if sx > sy {
		return sx
	}
	return sy
}

// Translation returns the translation components of the matrix.
func (m Matrix) Translation() (x, y float64) {
	return m[2], m[5]
}

// String returns the matrix in row-major order, rows separated by
// semicolons.
func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
