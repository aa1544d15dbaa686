package colorfx

import (
	"math"
	"testing"
)

// assertEffectRows checks that alpha and homogeneous rows are untouched.
func assertEffectRows(t *testing.T, name string, m ColorMatrix) {
	t.Helper()
	id := Identity()
	if m[3] != id[3] || m[4] != id[4] {
		t.Errorf("%s: alpha/homogeneous rows = %v %v, want identity rows", name, m[3], m[4])
	}
	for i := range 3 {
		if m[i][3] != 0 {
			t.Errorf("%s: row %d mixes alpha (%v)", name, i, m[i][3])
		}
	}
}

func TestNeutralValuesAreIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    ColorMatrix
	}{
		{"Brightness(1)", Brightness(1)},
		{"Contrast(1)", Contrast(1)},
		{"Saturation(1)", Saturation(1)},
		{"HueRotate(0)", HueRotate(0)},
		{"Sepia(0)", Sepia(0)},
		{"SepiaInverse(0)", SepiaInverse(0)},
		{"TintBoost(0)", TintBoost(0)},
		{"Tint a=0 blend", Tint(TintColor{R: 155, G: 111, B: 25}, TintDiagonalBlend, 1)},
		{"Tint a=0 lerp", Tint(TintColor{R: 155, G: 111, B: 25}, TintInterpolate, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.m != Identity() {
				t.Errorf("%s = %v, want identity", tt.name, tt.m)
			}
		})
	}
}

func TestEffectsPreserveAlphaRows(t *testing.T) {
	tint := TintColor{R: 10, G: 200, B: 90, A: 0.7}
	for name, m := range map[string]ColorMatrix{
		"brightness":   Brightness(1.3),
		"contrast":     Contrast(0.7),
		"saturation":   Saturation(1.8),
		"hue":          HueRotate(210),
		"tint blend":   Tint(tint, TintDiagonalBlend, 1),
		"tint lerp":    Tint(tint, TintInterpolate, 1),
		"sepia":        Sepia(0.6),
		"sepiaInverse": SepiaInverse(0.6),
	} {
		assertEffectRows(t, name, m)
	}
}

func TestBrightness(t *testing.T) {
	m := Brightness(0.5)
	for i := range 3 {
		if m[i][i] != 0.5 {
			t.Errorf("Brightness(0.5)[%d][%d] = %v, want 0.5", i, i, m[i][i])
		}
		if m[i][4] != 0 {
			t.Errorf("Brightness(0.5) offset[%d] = %v, want 0", i, m[i][4])
		}
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		v, in, want float64
	}{
		{1.5, 0.5, 0.5},
		{1.5, 1, 1.25},
		{0.5, 0, 0.25},
		{0, 0.9, 0.5},
	}
	for _, tt := range tests {
		got := Contrast(tt.v).Transform(RGB(tt.in, tt.in, tt.in))
		if math.Abs(got.R-tt.want) > 1e-12 || math.Abs(got.B-tt.want) > 1e-12 {
			t.Errorf("Contrast(%v) on %v = %v, want %v", tt.v, tt.in, got.R, tt.want)
		}
	}
}

func TestSaturationZeroCollapsesToAverage(t *testing.T) {
	m := Saturation(0)
	for i := range 3 {
		for j := range 3 {
			if math.Abs(m[i][j]-1.0/3) > 1e-15 {
				t.Errorf("Saturation(0)[%d][%d] = %v, want 1/3", i, j, m[i][j])
			}
		}
	}

	c := RGB(0.9, 0.3, 0.0)
	got := m.Transform(c)
	avg := (c.R + c.G + c.B) / 3
	for _, ch := range []float64{got.R, got.G, got.B} {
		if math.Abs(ch-avg) > 1e-12 {
			t.Errorf("Saturation(0) channel = %v, want average %v", ch, avg)
		}
	}
}

func TestSaturationShortCircuit(t *testing.T) {
	if Saturation(1+5e-7) != Identity() {
		t.Error("Saturation within 1e-6 of 1 should be identity")
	}
	if Saturation(1+1e-3) == Identity() {
		t.Error("Saturation(1.001) should not be identity")
	}
}

func TestHueRotate(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
	}{
		{"full turn", 360},
		{"negative full turn", -360},
		{"two turns", 720},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HueRotate(tt.angle); !got.ApproxEqual(Identity(), tolerance) {
				t.Errorf("HueRotate(%v) = %v, want identity", tt.angle, got)
			}
		})
	}

	if !HueRotate(360).ApproxEqual(HueRotate(0), tolerance) {
		t.Error("HueRotate(360) != HueRotate(0)")
	}
}

func TestHueRotatePreservesNeutrals(t *testing.T) {
	for _, angle := range []float64{30, 90, 180, 275} {
		m := HueRotate(angle)
		for _, gray := range []float64{0, 0.25, 0.5, 1} {
			c := RGB(gray, gray, gray)
			if got := m.Transform(c); got.Distance(c) > 1e-12 {
				t.Errorf("HueRotate(%v) moved neutral %v to %+v", angle, gray, got)
			}
		}
	}
}

func TestHueRotateComposes(t *testing.T) {
	got := HueRotate(40).Multiply(HueRotate(80))
	if !got.ApproxEqual(HueRotate(120), 1e-12) {
		t.Errorf("HueRotate(40)*HueRotate(80) = %v, want HueRotate(120)", got)
	}
	// 120 degrees cycles the primaries.
	if got := HueRotate(120).Transform(RGB(1, 0, 0)); got.Distance(RGB(0, 1, 0)) > 1e-12 {
		t.Errorf("HueRotate(120) red = %+v, want green", got)
	}
}

func TestTintDiagonalBlend(t *testing.T) {
	red := TintColor{R: 255, G: 0, B: 0, A: 1}

	// Full preservation discounts intensity to 0.7.
	m := Tint(red, TintDiagonalBlend, 1)
	want := [3]float64{1, 0.3, 0.3}
	for i := range 3 {
		if math.Abs(m[i][i]-want[i]) > 1e-12 {
			t.Errorf("blend diag[%d] = %v, want %v", i, m[i][i], want[i])
		}
	}
	for i := range 3 {
		for j := range 3 {
			if i != j && m[i][j] != 0 {
				t.Errorf("blend [%d][%d] = %v, want 0", i, j, m[i][j])
			}
		}
	}
}

func TestTintInterpolate(t *testing.T) {
	tint := TintColor{R: 255, G: 127.5, B: 0, A: 0.5}
	m := Tint(tint, TintInterpolate, 1)
	want := [3]float64{1, 0.75, 0.5}
	for i := range 3 {
		if math.Abs(m[i][i]-want[i]) > 1e-12 {
			t.Errorf("lerp diag[%d] = %v, want %v", i, m[i][i], want[i])
		}
	}
}

func TestTintStrategiesAgreeWithoutPreservation(t *testing.T) {
	tint := TintColor{R: 155, G: 111, B: 25, A: 0.6}
	a := Tint(tint, TintDiagonalBlend, 0)
	b := Tint(tint, TintInterpolate, 0)
	if !a.ApproxEqual(b, 1e-12) {
		t.Errorf("blend = %v, lerp = %v, want equal when preservation is 0", a, b)
	}
}

func TestTintBoost(t *testing.T) {
	if got := TintBoost(0.4); got != Brightness(1.2) {
		t.Errorf("TintBoost(0.4) = %v, want Brightness(1.2)", got)
	}
	if got := TintBoost(-0.4); got != Brightness(0.8) {
		t.Errorf("TintBoost(-0.4) = %v, want Brightness(0.8)", got)
	}
}

func TestSepiaFull(t *testing.T) {
	m := Sepia(1)
	want := ColorMatrix{
		{0.393, 0.769, 0.189, 0, 0},
		{0.349, 0.686, 0.168, 0, 0},
		{0.272, 0.534, 0.131, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1},
	}
	if m != want {
		t.Errorf("Sepia(1) = %v, want %v", m, want)
	}
}

func TestSepiaInverseFull(t *testing.T) {
	m := SepiaInverse(1)
	for i := range 3 {
		for j := range 3 {
			if m[i][j] != sepiaInverseBlock[i][j] {
				t.Errorf("SepiaInverse(1)[%d][%d] = %v, want %v", i, j, m[i][j], sepiaInverseBlock[i][j])
			}
		}
	}
}

func TestSepiaRoundTripExact(t *testing.T) {
	sample := Color{R: 0.5, G: 0.4, B: 0.3, A: 1}
	for _, s := range []float64{0, 0.5, 1} {
		fwd := Sepia(s)
		inv, ok := fwd.Invert()
		if !ok {
			t.Fatalf("Sepia(%v) reported singular", s)
		}
		if got := inv.Transform(fwd.Transform(sample)); got.Distance(sample) > 1e-3 {
			t.Errorf("s=%v: round trip = %+v, want %+v", s, got, sample)
		}
	}
}

func BenchmarkHueRotate(b *testing.B) {
	for b.Loop() {
		_ = HueRotate(137)
	}
}
