package xform

import "strings"

// Kind is a bitmask classifying the components a Matrix carries.
// The zero Kind means the matrix is the identity.
type Kind uint8

const (
	// KindTranslate is set when the matrix translates.
	KindTranslate Kind = 1 << iota
	// KindScale is set when the matrix scales.
	KindScale
	// KindAffine is set when the matrix skews or rotates.
	KindAffine
	// KindPerspective is set when the bottom row differs from | 0 0 1 |.
	KindPerspective
)

// Kind classifies m element by element. The result is recomputed on every
// call; Matrix carries no cached state.
func (m Matrix) Kind() Kind {
	var k Kind
	if m[2] != 0 || m[5] != 0 {
		k |= KindTranslate
	}
	if m[0] != 1 || m[4] != 1 {
		k |= KindScale
	}
	if m[1] != 0 || m[3] != 0 {
		k |= KindAffine
	}
	if m[6] != 0 || m[7] != 0 || m[8] != 1 {
		k |= KindPerspective
	}
	return k
}

// String returns the set bits joined by "|", or "identity" for the
// zero Kind.
func (k Kind) String() string {
	if k == 0 {
		return "identity"
	}
	var parts []string
	if k&KindTranslate != 0 {
		parts = append(parts, "translate")
	}
	if k&KindScale != 0 {
		parts = append(parts, "scale")
	}
	if k&KindAffine != 0 {
		parts = append(parts, "affine")
	}
	if k&KindPerspective != 0 {
		parts = append(parts, "perspective")
	}
	return strings.Join(parts, "|")
}
