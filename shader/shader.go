// Package shader provides the GPU form of a color matrix filter: an
// embedded WGSL program compiled to SPIR-V with naga and the uniform buffer
// layout that feeds it.
//
// Creating devices and pipelines is left to the host. The package only
// produces the shader module code, its target format and the uniform
// bytes for a given matrix.
package shader

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

//go:embed shaders/colormatrix.wgsl
var colorMatrixWGSL string

// Entry points of the color matrix program.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// UniformSize is the size in bytes of the uniform buffer: a column-major
// mat4x4<f32> followed by a vec4<f32> offset.
const UniformSize = 80

// Source returns the WGSL source of the color matrix program.
func Source() string {
	return colorMatrixWGSL
}

// Program is a compiled color matrix shader.
type Program struct {
	// SPIRV is the shader module code as little-endian 32-bit words.
	SPIRV []uint32
	// Format is the color target format the fragment stage writes.
	Format gputypes.TextureFormat
}

// Compile compiles the embedded WGSL program to SPIR-V.
func Compile() (*Program, error) {
	spirvBytes, err := naga.Compile(colorMatrixWGSL)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to compile: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return &Program{
		SPIRV:  code,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}, nil
}

// Uniforms packs row-major color matrix values into the uniform buffer
// layout. The alpha row of the 4x4 part maps to the last matrix row and
// the fifth column becomes the offset vector.
func Uniforms(values [20]float64) []byte {
	buf := make([]byte, UniformSize)
	// WGSL matrices are column-major: column c holds m[0..3][c].
	for col := range 4 {
		for row := range 4 {
			putFloat(buf, (col*4+row)*4, values[row*5+col])
		}
	}
	for row := range 4 {
		putFloat(buf, 64+row*4, values[row*5+4])
	}
	return buf
}

func putFloat(buf []byte, off int, v float64) {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(v)))
}
