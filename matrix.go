package colorfx

import (
	"math"
	"strconv"
	"strings"
)

// Size is the dimension of a homogeneous color matrix.
const Size = 5

// singularEpsilon is the smallest pivot magnitude Invert accepts.
const singularEpsilon = 1e-10

// ColorMatrix is a 5x5 homogeneous affine transform over (R, G, B, A, 1).
//
//	[R']   [m00 m01 m02 m03 m04]   [R]
//	[G']   [m10 m11 m12 m13 m14]   [G]
//	[B'] = [m20 m21 m22 m23 m24] * [B]
//	[A']   [m30 m31 m32 m33 m34]   [A]
//	[1 ]   [m40 m41 m42 m43 m44]   [1]
//
// Rows and columns 0-2 are the color channels, 3 is alpha and 4 is the
// homogeneous offset term. Effect matrices built by this package keep
// rows 3 and 4 as identity rows, so alpha is never mixed.
//
// ColorMatrix is a value type: every operation returns a new matrix.
type ColorMatrix [Size][Size]float64

// Identity returns the 5x5 identity matrix.
func Identity() ColorMatrix {
	var m ColorMatrix
	for i := range Size {
		m[i][i] = 1
	}
	return m
}

// Multiply returns the standard matrix product m * other.
//
// When the product is applied to a color vector, other is applied first.
func (m ColorMatrix) Multiply(other ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for i := range Size {
		for j := range Size {
			var sum float64
			for k := range Size {
				sum += m[i][k] * other[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// Add returns the elementwise sum m + other.
func (m ColorMatrix) Add(other ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for i := range Size {
		for j := range Size {
			r[i][j] = m[i][j] + other[i][j]
		}
	}
	return r
}

// Invert returns the inverse of m computed by Gauss-Jordan elimination
// with partial pivoting on the augmented matrix [m | I].
//
// If a pivot magnitude falls below 1e-10 after row selection, m is treated
// as singular: Invert logs a warning and returns the identity matrix with
// ok set to false. A broken filter is worse than a no-op filter, so the
// caller always receives a usable transform.
func (m ColorMatrix) Invert() (inv ColorMatrix, ok bool) {
	var aug [Size][2 * Size]float64
	for i := range Size {
		copy(aug[i][:Size], m[i][:])
		aug[i][Size+i] = 1
	}

	for col := range Size {
		// Pick the remaining row with the largest magnitude in this column.
		pivotRow := col
		for k := col + 1; k < Size; k++ {
			if math.Abs(aug[k][col]) > math.Abs(aug[pivotRow][col]) {
				pivotRow = k
			}
		}
		if pivotRow != col {
			aug[col], aug[pivotRow] = aug[pivotRow], aug[col]
		}

		pivot := aug[col][col]
		if math.Abs(pivot) < singularEpsilon {
			Logger().Warn("colorfx: singular color matrix, using identity",
				"column", col, "pivot", pivot)
			return Identity(), false
		}

		for j := range 2 * Size {
			aug[col][j] /= pivot
		}

		for k := range Size {
			if k == col {
				continue
			}
			factor := aug[k][col]
			if factor == 0 {
				continue
			}
			for j := range 2 * Size {
				aug[k][j] -= factor * aug[col][j]
			}
		}
	}

	for i := range Size {
		copy(inv[i][:], aug[i][Size:])
	}
	return inv, true
}

// Multiply returns a * b.
func Multiply(a, b ColorMatrix) ColorMatrix {
	return a.Multiply(b)
}

// Add returns the elementwise sum a + b.
func Add(a, b ColorMatrix) ColorMatrix {
	return a.Add(b)
}

// Inverse returns the inverse of m, or the identity matrix if m is singular.
// Use [ColorMatrix.Invert] to learn whether the fallback was taken.
func Inverse(m ColorMatrix) ColorMatrix {
	inv, _ := m.Invert()
	return inv
}

// Lerp interpolates elementwise between a (t=0) and b (t=1). Entries equal
// in a and b are copied exactly.
func Lerp(a, b ColorMatrix, t float64) ColorMatrix {
	var r ColorMatrix
	for i := range Size {
		for j := range Size {
			if a[i][j] == b[i][j] {
				r[i][j] = a[i][j]
				continue
			}
			r[i][j] = (1-t)*a[i][j] + t*b[i][j]
		}
	}
	return r
}

// Values returns the first four rows of m in row-major order, the 4x5
// layout consumed by color-matrix filter primitives such as feColorMatrix.
// The homogeneous row is dropped.
func (m ColorMatrix) Values() [20]float64 {
	var v [20]float64
	for i := range 4 {
		copy(v[i*Size:(i+1)*Size], m[i][:])
	}
	return v
}

// FromValues rebuilds a 5x5 matrix from a 4x5 row-major list, restoring the
// homogeneous row.
func FromValues(v [20]float64) ColorMatrix {
	var m ColorMatrix
	for i := range 4 {
		copy(m[i][:], v[i*Size:(i+1)*Size])
	}
	m[4][4] = 1
	return m
}

// Transform applies m to the color vector (r, g, b, a, 1).
// Components are not clamped.
func (m ColorMatrix) Transform(c Color) Color {
	v := [Size]float64{c.R, c.G, c.B, c.A, 1}
	var out [4]float64
	for i := range 4 {
		for k := range Size {
			out[i] += m[i][k] * v[k]
		}
	}
	return Color{R: out[0], G: out[1], B: out[2], A: out[3]}
}

// ApproxEqual reports whether every element of m is within tol of other.
func (m ColorMatrix) ApproxEqual(other ColorMatrix, tol float64) bool {
	for i := range Size {
		for j := range Size {
			if math.Abs(m[i][j]-other[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m ColorMatrix) IsIdentity() bool {
	return m == Identity()
}

// String formats m as five bracketed rows.
func (m ColorMatrix) String() string {
	var sb strings.Builder
	for i := range Size {
		sb.WriteByte('[')
		for j := range Size {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(m[i][j], 'g', 6, 64))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
