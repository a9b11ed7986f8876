package mueller

import "github.com/lukaszgryglicki/polarize/internal/num"

// Canonical optical elements. Formulas follow E. Collett, "Polarized Light",
// chapter 5.

// Depolarizer is an ideal depolarizer: every input leaves as unpolarized light
// with intensity scaled by value.
func Depolarizer[T num.Float[T]](value T) Matrix[T] {
	var R Matrix[T]
	R.M[0][0] = value
	return R
}

// Absorber attenuates by value without touching the polarization.
func Absorber[T num.Float[T]](value T) Matrix[T] {
	return Identity[T]().Scale(value)
}

// LinearPolarizer transmits linear polarization at 0°. value=1 is the ideal
// polarizer, which passes half of an unpolarized beam.
func LinearPolarizer[T num.Float[T]](value T) Matrix[T] {
	var z T
	a := num.Half(value)
	return Matrix[T]{M: [4][4]T{
		{a, a, z, z},
		{a, a, z, z},
		{z, z, z, z},
		{z, z, z, z},
	}}
}

// LinearRetarder delays the field component along the slow axis by phase
// radians; the fast axis is vertical. phase=π/2 is a quarter-wave plate and
// phase=π a half-wave plate.
func LinearRetarder[T num.Float[T]](phase T) Matrix[T] {
	var z T
	one := num.Const[T](1)
	s, c := phase.SinCos()
	return Matrix[T]{M: [4][4]T{
		{one, z, z, z},
		{z, one, z, z},
		{z, z, c, s.Neg()},
		{z, z, s, c},
	}}
}

// Diattenuator attenuates the field components at 0° and 90° by x and y.
func Diattenuator[T num.Float[T]](x, y T) Matrix[T] {
	var z T
	a := num.Half(x.Add(y))
	b := num.Half(x.Sub(y))
	c := x.Mul(y).Sqrt()
	return Matrix[T]{M: [4][4]T{
		{a, b, z, z},
		{b, a, z, z},
		{z, z, c, z},
		{z, z, z, c},
	}}
}

// Rotator rotates the reference frame counter-clockwise by theta radians, as
// seen from the sensor. Horizontal light [1,1,0,0] becomes -45° light
// [1,0,-1,0] under a +45° rotator.
func Rotator[T num.Float[T]](theta T) Matrix[T] {
	var z T
	one := num.Const[T](1)
	s, c := theta.Mul(num.Const[T](2)).SinCos()
	return Matrix[T]{M: [4][4]T{
		{one, z, z, z},
		{z, c, s, z},
		{z, s.Neg(), c, z},
		{z, z, z, one},
	}}
}

// LinearPolarizerAt is a linear polarizer whose transmission axis sits at
// theta radians from horizontal.
func LinearPolarizerAt[T num.Float[T]](theta, value T) Matrix[T] {
	return RotatedElement(theta, LinearPolarizer(value))
}

// LinearRetarderAt is a linear retarder with its fast axis rotated by theta.
func LinearRetarderAt[T num.Float[T]](theta, phase T) Matrix[T] {
	return RotatedElement(theta, LinearRetarder(phase))
}

// CircularPolarizer passes only right (or left) circular polarization.
func CircularPolarizer[T num.Float[T]](right bool, value T) Matrix[T] {
	var z T
	a := num.Half(value)
	h := a
	if !right {
		h = a.Neg()
	}
	return Matrix[T]{M: [4][4]T{
		{a, z, z, h},
		{z, z, z, z},
		{z, z, z, z},
		{h, z, z, a},
	}}
}
