// Package bench provides registered micro-benchmarks for the core xform
// operations.
//
// Benchmarks register themselves under stable names (matrix_equals,
// matrix_scale, matrix_concat_f32, ...) and run either under the standard
// go test -bench harness or standalone through Run, which wraps
// testing.Benchmark. The standalone path backs the cmd/xformbench runner.
//
// The concat benchmarks measure the same 3x3 affine kernel under three
// numeric strategies: float32 arithmetic throughout, float32 storage with
// float64 intermediates, and float64 throughout. Results back the
// precision choice documented on xform.Matrix32.
package bench
