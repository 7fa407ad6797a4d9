package bench

import (
	"math/rand"
	"testing"

	"github.com/gogpu/xform"
)

// sink absorbs benchmark results so the compiler cannot eliminate the
// measured work.
var sink int

// keep feeds pred into sink.
func keep(pred bool) {
	if pred {
		sink++
	}
}

// fill9 fills a with pseudo-random values in [-1, 1).
func fill9[T float32 | float64](rng *rand.Rand, a *[9]T) {
	for i := range a {
		a[i] = T(rng.Float64()*2 - 1)
	}
}

// muladdmul32 computes a*b + c*d entirely in float32. The explicit
// conversions round each product to float32 before the add, which also
// stops the compiler from fusing product and add into one instruction
// with a wider intermediate.
func muladdmul32(a, b, c, d float32) float32 {
	return float32(a*b) + float32(c*d)
}

// muladdmul32p computes a*b + c*d with float64 intermediates, rounding
// back to float32 once.
func muladdmul32p(a, b, c, d float32) float32 {
	return float32(float64(a)*float64(b) + float64(c)*float64(d))
}

// muladdmul64 computes a*b + c*d in float64.
func muladdmul64(a, b, c, d float64) float64 {
	return a*b + c*d
}

// concatF32 concatenates two affine matrices, b applied first, in float32
// arithmetic throughout. Only the affine six of each input are read; the
// output bottom row is forced to 0, 0, 1.
func concatF32(r, a, b *[9]float32) {
	r[0] = muladdmul32(a[0], b[0], a[1], b[3])
	r[1] = muladdmul32(a[0], b[1], a[1], b[4])
	r[2] = muladdmul32(a[0], b[2], a[1], b[5]) + a[2]
	r[3] = muladdmul32(a[3], b[0], a[4], b[3])
	r[4] = muladdmul32(a[3], b[1], a[4], b[4])
	r[5] = muladdmul32(a[3], b[2], a[4], b[5]) + a[5]
	r[6] = 0
	r[7] = 0
	r[8] = 1
}

// concatF32Promoted is concatF32 with each multiply-accumulate pair
// promoted to float64. The trailing translation add stays in float32, so
// the kernel isolates the cost of widening just the products.
func concatF32Promoted(r, a, b *[9]float32) {
	r[0] = muladdmul32p(a[0], b[0], a[1], b[3])
	r[1] = muladdmul32p(a[0], b[1], a[1], b[4])
	r[2] = muladdmul32p(a[0], b[2], a[1], b[5]) + a[2]
	r[3] = muladdmul32p(a[3], b[0], a[4], b[3])
	r[4] = muladdmul32p(a[3], b[1], a[4], b[4])
	r[5] = muladdmul32p(a[3], b[2], a[4], b[5]) + a[5]
	r[6] = 0
	r[7] = 0
	r[8] = 1
}

// concatF64 concatenates in float64 throughout.
func concatF64(r, a, b *[9]float64) {
	r[0] = muladdmul64(a[0], b[0], a[1], b[3])
	r[1] = muladdmul64(a[0], b[1], a[1], b[4])
	r[2] = muladdmul64(a[0], b[2], a[1], b[5]) + a[2]
	r[3] = muladdmul64(a[3], b[0], a[4], b[3])
	r[4] = muladdmul64(a[3], b[1], a[4], b[4])
	r[5] = muladdmul64(a[3], b[2], a[4], b[5]) + a[5]
	r[6] = 0
	r[7] = 0
	r[8] = 1
}

// benchEquals measures whole-matrix equality comparison and kind
// classification on identity matrices.
func benchEquals(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m0 := xform.Identity()
		m1 := xform.Identity()
		m2 := xform.Identity()
		keep(m0 == m1)
		keep(m1 == m2)
		keep(m2 == m0)
		keep(m0.Kind() != 0)
		keep(m1.Kind() != 0)
		keep(m2.Kind() != 0)
	}
}

// benchScale measures PreScale on three prepared matrices: the identity,
// a pure scale, and a pure translation.
func benchScale(b *testing.B) {
	const s = 1.5
	m0 := xform.Identity()
	m1 := xform.Scale(s, s)
	m2 := xform.Translate(s, s)
	b.ResetTimer()
	b.ReportAllocs()
	var r0, r1, r2 xform.Matrix
	for i := 0; i < b.N; i++ {
		r0 = m0.PreScale(s, s)
		r1 = m1.PreScale(s, s)
		r2 = m2.PreScale(s, s)
	}
	keep(r0[0] != 0)
	keep(r1[0] != 0)
	keep(r2[0] != 0)
}

// benchConcatF32 measures the affine concat kernel in float32.
func benchConcatF32(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	var ma, mb, mr [9]float32
	fill9(rng, &ma)
	fill9(rng, &mb)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		concatF32(&mr, &ma, &mb)
	}
	keep(mr[0] != 0)
}

// benchConcatF32Promoted measures the concat kernel with float64
// intermediates feeding float32 storage.
func benchConcatF32Promoted(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	var ma, mb, mr [9]float32
	fill9(rng, &ma)
	fill9(rng, &mb)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		concatF32Promoted(&mr, &ma, &mb)
	}
	keep(mr[0] != 0)
}

// benchConcatF64 measures the concat kernel in float64.
func benchConcatF64(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	var ma, mb, mr [9]float64
	fill9(rng, &ma)
	fill9(rng, &mb)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		concatF64(&mr, &ma, &mb)
	}
	keep(mr[0] != 0)
}

func init() {
	Register("matrix_equals", benchEquals)
	Register("matrix_scale", benchScale)
	Register("matrix_concat_f32", benchConcatF32)
	Register("matrix_concat_f32promoted", benchConcatF32Promoted)
	Register("matrix_concat_f64", benchConcatF64)
}
