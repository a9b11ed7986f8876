// Package mueller constructs and composes Mueller matrices, the 4×4 operators
// describing how an interaction changes the polarization state of a beam.
//
// Polarization states are Stokes vectors. A Stokes vector only means something
// together with the direction of travel and a reference basis vector
// orthogonal to it, which defines "horizontal". The state is observed from the
// sensor, looking back along the direction of travel. Neither the direction
// nor the basis is stored here: callers carry them alongside every Matrix and
// use the RotateMuellerBasis family to line frames up before multiplying.
//
// Stokes vectors are Matrix values with only the first column populated, so
// every operator composes with them through Mul.
package mueller

import "github.com/lukaszgryglicki/polarize/internal/num"

// Matrix is a 4×4 Mueller matrix (row-major).
type Matrix[T num.Float[T]] struct {
	M [4][4]T
}

func Zero[T num.Float[T]]() Matrix[T] { return Matrix[T]{} }

func Identity[T num.Float[T]]() Matrix[T] {
	var R Matrix[T]
	one := num.Const[T](1)
	for i := 0; i < 4; i++ {
		R.M[i][i] = one
	}
	return R
}

func (A Matrix[T]) Mul(B Matrix[T]) Matrix[T] {
	var R Matrix[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := A.M[r][0].Mul(B.M[0][c])
			for k := 1; k < 4; k++ {
				sum = sum.Add(A.M[r][k].Mul(B.M[k][c]))
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Matrix[T]) Transpose() Matrix[T] {
	var R Matrix[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

func (A Matrix[T]) Add(B Matrix[T]) Matrix[T] {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			A.M[r][c] = A.M[r][c].Add(B.M[r][c])
		}
	}
	return A
}

// Scale multiplies every entry by s.
func (A Matrix[T]) Scale(s T) Matrix[T] {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			A.M[r][c] = A.M[r][c].Mul(s)
		}
	}
	return A
}

// Apply transforms the Stokes vector s. It is Mul under a name that reads
// better at call sites acting on a beam.
func (A Matrix[T]) Apply(s Matrix[T]) Matrix[T] { return A.Mul(s) }

// Values extracts one lane as plain float64s.
func (A Matrix[T]) Values(lane int) [4][4]float64 {
	var out [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = A.M[r][c].Lane(lane)
		}
	}
	return out
}

// Lane extracts one lane as a scalar matrix.
func (A Matrix[T]) Lane(lane int) Matrix[num.Scalar] {
	var R Matrix[num.Scalar]
	v := A.Values(lane)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = num.Scalar(v[r][c])
		}
	}
	return R
}
