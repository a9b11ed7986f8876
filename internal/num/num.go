// Package num holds the numeric types the polarization code is written
// against. Every routine is generic over a Float, which is either a single
// value (Scalar) or Width lanes evaluated in lockstep (Packet).
//
// Comparisons return masks of the same type whose lanes are 1 (true) or 0
// (false). Per-lane divergence is never a branch: it is a Select.
package num

// Width is the lane count of a Packet.
const Width = 8

// Float is the arithmetic required from a scalar type.
type Float[T any] interface {
	// Const ignores its receiver and broadcasts v to every lane.
	Const(v float64) T

	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Abs() T
	Sqrt() T
	Min(T) T
	SinCos() (sin, cos T)
	Asin() T
	// Atan2 returns atan2(receiver, x) per lane.
	Atan2(x T) T

	Eq(T) T
	Lt(T) T
	// Blend is called on a mask; lanes set to 1 take onTrue, the rest onFalse.
	Blend(onTrue, onFalse T) T

	Lanes() int
	Lane(i int) float64
}

// Const broadcasts v into a T.
func Const[T Float[T]](v float64) T {
	var z T
	return z.Const(v)
}

// Select picks onTrue where mask is set and onFalse elsewhere.
func Select[T Float[T]](mask, onTrue, onFalse T) T {
	return mask.Blend(onTrue, onFalse)
}

// Not inverts a mask.
func Not[T Float[T]](mask T) T { return Const[T](1).Sub(mask) }

// Ge is the a >= b mask.
func Ge[T Float[T]](a, b T) T { return Not(a.Lt(b)) }

// Gt is the a > b mask.
func Gt[T Float[T]](a, b T) T { return b.Lt(a) }

func Sqr[T Float[T]](x T) T { return x.Mul(x) }

// Half returns x/2.
func Half[T Float[T]](x T) T { return x.Mul(Const[T](0.5)) }

// And combines two masks.
func And[T Float[T]](a, b T) T { return a.Mul(b) }
