package mueller

import "github.com/lukaszgryglicki/polarize/internal/num"

// RotatedElement expresses M, defined in a frame rotated counter-clockwise by
// theta, in the caller's frame: Rᵀ·M·R with R = Rotator(theta).
func RotatedElement[T num.Float[T]](theta T, M Matrix[T]) Matrix[T] {
	R := Rotator(theta)
	return R.Transpose().Mul(M).Mul(R)
}

// Reverse flips the direction of propagation. It is also how a reference
// frame is reflected. Reverse(Reverse(M)) == M.
func Reverse[T num.Float[T]](M Matrix[T]) Matrix[T] {
	for c := 0; c < 4; c++ {
		M.M[2][c] = M.M[2][c].Neg()
		M.M[3][c] = M.M[3][c].Neg()
	}
	return M
}
