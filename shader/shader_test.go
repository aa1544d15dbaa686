package shader

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/colorfx"
)

func TestSourceEmbedded(t *testing.T) {
	src := Source()
	if src == "" {
		t.Fatal("color matrix shader source is empty")
	}
	for _, want := range []string{VertexEntry, FragmentEntry, "mat4x4<f32>", "offset"} {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
}

func TestCompile(t *testing.T) {
	prog, err := Compile()
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("Compile() = %v", err)
	}

	if len(prog.SPIRV) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	if prog.SPIRV[0] != 0x07230203 {
		t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x07230203", prog.SPIRV[0])
	}
	if prog.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", prog.Format)
	}
}

func readFloat(buf []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
}

func TestUniformsIdentity(t *testing.T) {
	buf := Uniforms(colorfx.Identity().Values())
	if len(buf) != UniformSize {
		t.Fatalf("len = %d, want %d", len(buf), UniformSize)
	}
	for i := range 16 {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if got := readFloat(buf, i); got != want {
			t.Errorf("mat[%d] = %v, want %v", i, got, want)
		}
	}
	for i := 16; i < 20; i++ {
		if got := readFloat(buf, i); got != 0 {
			t.Errorf("offset[%d] = %v, want 0", i-16, got)
		}
	}
}

func TestUniformsLayout(t *testing.T) {
	var values [20]float64
	for i := range values {
		values[i] = float64(i + 1)
	}
	buf := Uniforms(values)

	// Column-major: element (row, col) of the 4x4 block lives at col*4+row.
	for row := range 4 {
		for col := range 4 {
			want := float32(values[row*5+col])
			if got := readFloat(buf, col*4+row); got != want {
				t.Errorf("m[%d][%d] = %v, want %v", row, col, got, want)
			}
		}
		if got, want := readFloat(buf, 16+row), float32(values[row*5+4]); got != want {
			t.Errorf("offset[%d] = %v, want %v", row, got, want)
		}
	}
}

func TestUniformsContrastOffset(t *testing.T) {
	buf := Uniforms(colorfx.Contrast(2).Values())
	// Contrast 2 shifts RGB by (1-2)/2 and leaves alpha alone.
	for row, want := range []float32{-0.5, -0.5, -0.5, 0} {
		if got := readFloat(buf, 16+row); got != want {
			t.Errorf("offset[%d] = %v, want %v", row, got, want)
		}
	}
}

func BenchmarkUniforms(b *testing.B) {
	values := colorfx.HueRotate(45).Values()
	for b.Loop() {
		Uniforms(values)
	}
}
