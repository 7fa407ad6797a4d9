// Package xform provides 2D transformation matrices for Go.
//
// # Overview
//
// xform is a small transform library designed to sit under the GoGPU 2D
// graphics stack. It provides a full 3x3 matrix type (Matrix) covering
// translate, scale, rotate, shear and perspective, a float32 counterpart
// (Matrix32) for GPU-bound pipelines, and the supporting Point and Rect
// geometry.
//
// # Quick Start
//
//	import "github.com/gogpu/xform"
//
//	// Compose a transform: scale, then move.
//	m := xform.Translate(100, 50).Multiply(xform.Scale(2, 2))
//
//	// Apply it.
//	p := m.MapPoint(xform.Pt(10, 10)) // (120, 70)
//
//	// Classify it.
//	k := m.Kind() // KindTranslate|KindScale
//
// # Precision
//
// Matrix stores float64 coefficients. Matrix32 stores float32 but performs
// each multiply-accumulate with float64 intermediates, rounding once per
// element. The bench package carries the micro-benchmarks that back this
// choice; cmd/xformbench runs them standalone.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Matrix, Matrix32, Kind, Point, Rect
//   - bench: registered micro-benchmarks for the core operations
//   - script: Lua bindings for driving transforms from scripts
//   - cmd: xformbench (benchmark runner), xformlua (script runner)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package xform

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
