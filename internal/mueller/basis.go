package mueller

import "github.com/lukaszgryglicki/polarize/internal/num"

// StokesBasis returns the implicit reference basis of a Stokes vector
// travelling along the unit direction w. It is one arbitrary choice; callers
// that need the same frame across a path must carry the basis explicitly.
func StokesBasis[T num.Float[T]](w num.Vector3[T]) num.Vector3[T] {
	s, _ := num.CoordinateSystem(w)
	return s
}

// RotateStokesBasis returns the matrix that re-expresses a Stokes vector
// travelling along forward from basisCurrent into basisTarget. Both bases
// must be orthogonal to forward; this is not checked.
//
// Example: horizontal light [1,1,0,0] in basis [1,0,0] reads as +45° light
// [1,0,1,0] in basis [1/√2,-1/√2,0] when travelling along +z.
func RotateStokesBasis[T num.Float[T]](forward, basisCurrent, basisTarget num.Vector3[T]) Matrix[T] {
	theta := num.UnitAngle(basisCurrent.Norm(), basisTarget.Norm())
	flip := forward.Dot(basisCurrent.Cross(basisTarget)).Lt(num.Const[T](0))
	theta = num.Select(flip, theta.Neg(), theta)
	return Rotator(theta)
}

// RotateMuellerBasis re-expresses M, which maps inBasisCurrent to
// outBasisCurrent, as a matrix mapping inBasisTarget to outBasisTarget.
// The input and output frames rotate independently.
func RotateMuellerBasis[T num.Float[T]](M Matrix[T],
	inForward, inBasisCurrent, inBasisTarget num.Vector3[T],
	outForward, outBasisCurrent, outBasisTarget num.Vector3[T]) Matrix[T] {
	Rin := RotateStokesBasis(inForward, inBasisCurrent, inBasisTarget)
	Rout := RotateStokesBasis(outForward, outBasisCurrent, outBasisTarget)
	return Rout.Mul(M).Mul(Rin.Transpose())
}

// RotateMuellerBasisCollinear is RotateMuellerBasis for a matrix whose input
// and output share one direction and one basis.
func RotateMuellerBasisCollinear[T num.Float[T]](M Matrix[T], forward, basisCurrent, basisTarget num.Vector3[T]) Matrix[T] {
	R := RotateStokesBasis(forward, basisCurrent, basisTarget)
	return R.Mul(M).Mul(R.Transpose())
}
