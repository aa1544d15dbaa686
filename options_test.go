package colorfx

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := newOptions(nil)
	if o.mode != ModeCombined {
		t.Errorf("mode = %v, want combined", o.mode)
	}
	if o.inverse != InverseParametric {
		t.Errorf("inverse = %v, want parametric", o.inverse)
	}
	if o.tint != TintDiagonalBlend {
		t.Errorf("tint = %v, want blend", o.tint)
	}
	if o.preservation != 1 {
		t.Errorf("preservation = %v, want 1", o.preservation)
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	o := newOptions([]Option{
		WithMode(ModeSepia),
		WithInverseStrategy(InverseExact),
		WithTintStrategy(TintInterpolate),
		WithNeutralPreservation(0.25),
		nil,
		WithNeutralPreservation(0.5),
	})
	if o.mode != ModeSepia || o.inverse != InverseExact || o.tint != TintInterpolate {
		t.Errorf("options = %+v", o)
	}
	if o.preservation != 0.5 {
		t.Errorf("preservation = %v, want last value 0.5", o.preservation)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{ModeCombined.String(), "combined"},
		{ModeSepia.String(), "sepia"},
		{Mode(99).String(), "unknown"},
		{InverseParametric.String(), "parametric"},
		{InverseExact.String(), "exact"},
		{InverseStrategy(99).String(), "unknown"},
		{TintDiagonalBlend.String(), "blend"},
		{TintInterpolate.String(), "lerp"},
		{TintStrategy(99).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
