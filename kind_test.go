package xform

import "testing"

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want Kind
	}{
		{"identity", Identity(), 0},
		{"scale 1,1", Scale(1, 1), 0},
		{"translation", Translate(10, 20), KindTranslate},
		{"scale", Scale(2, 3), KindScale},
		{"shear", Shear(0.5, 0), KindAffine},
		{"rotation", Rotate(0.5), KindScale | KindAffine},
		{"scale and translate", Scale(2, 3).Multiply(Translate(10, 20)), KindTranslate | KindScale},
		{"perspective only", Matrix{1, 0, 0, 0, 1, 0, 0.1, 0, 1}, KindPerspective},
		{"perspective bias", Matrix{1, 0, 0, 0, 1, 0, 0, 0, 2}, KindPerspective},
		{"zero matrix", Matrix{}, KindScale | KindPerspective},
		{"everything", Matrix{2, 0.5, 10, 0.5, 3, 20, 0.1, 0.2, 1},
			KindTranslate | KindScale | KindAffine | KindPerspective},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Kind(); got != tt.want {
				t.Errorf("%v.Kind() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		name string
		k    Kind
		want string
	}{
		{"identity", 0, "identity"},
		{"translate", KindTranslate, "translate"},
		{"scale", KindScale, "scale"},
		{"affine", KindAffine, "affine"},
		{"perspective", KindPerspective, "perspective"},
		{"translate scale", KindTranslate | KindScale, "translate|scale"},
		{"all", KindTranslate | KindScale | KindAffine | KindPerspective,
			"translate|scale|affine|perspective"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
			}
		})
	}
}

func TestKindIdentityIsZero(t *testing.T) {
	// The zero Kind is the identity classification, so a freshly built
	// identity matrix reports no bits at all.
	if k := Identity().Kind(); k != 0 {
		t.Errorf("Identity().Kind() = %v, want 0", k)
	}
	if k := Translate(0, 0).Kind(); k != 0 {
		t.Errorf("Translate(0,0).Kind() = %v, want 0", k)
	}
}
