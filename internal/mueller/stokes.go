package mueller

import "github.com/lukaszgryglicki/polarize/internal/num"

// Stokes builds a Stokes vector: intensity i, horizontal minus vertical q,
// +45° minus -45° u, right minus left circular v.
func Stokes[T num.Float[T]](i, q, u, v T) Matrix[T] {
	var S Matrix[T]
	S.M[0][0], S.M[1][0], S.M[2][0], S.M[3][0] = i, q, u, v
	return S
}

// Unpolarized is a Stokes vector of natural light with intensity i.
func Unpolarized[T num.Float[T]](i T) Matrix[T] {
	var z T
	return Stokes(i, z, z, z)
}

// Column0 returns the Stokes components held in the first column.
func (A Matrix[T]) Column0() [4]T {
	return [4]T{A.M[0][0], A.M[1][0], A.M[2][0], A.M[3][0]}
}

// safeRatio is num/den, or 0 where den is 0.
func safeRatio[T num.Float[T]](n, den T) T {
	var z T
	zero := den.Eq(z)
	return num.Select(zero, z, n.Div(num.Select(zero, num.Const[T](1), den)))
}

// DegreeOfPolarization is √(q²+u²+v²)/i; 0 for a dark beam.
func DegreeOfPolarization[T num.Float[T]](S Matrix[T]) T {
	s := S.Column0()
	return safeRatio(num.Sqr(s[1]).Add(num.Sqr(s[2])).Add(num.Sqr(s[3])).Sqrt(), s[0])
}

// DegreeOfLinearPolarization is √(q²+u²)/i; 0 for a dark beam.
func DegreeOfLinearPolarization[T num.Float[T]](S Matrix[T]) T {
	s := S.Column0()
	return safeRatio(num.Sqr(s[1]).Add(num.Sqr(s[2])).Sqrt(), s[0])
}

// AngleOfLinearPolarization is ½·atan2(u, q), in (-π/2, π/2].
func AngleOfLinearPolarization[T num.Float[T]](S Matrix[T]) T {
	s := S.Column0()
	return num.Half(s[2].Atan2(s[1]))
}
