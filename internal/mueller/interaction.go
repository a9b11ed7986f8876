package mueller

import (
	"github.com/lukaszgryglicki/polarize/internal/fresnel"
	"github.com/lukaszgryglicki/polarize/internal/num"
)

// grazingCos is the incidence cosine below which the transmission unit
// conversion factor is treated as zero.
const grazingCos = 1e-8

// SpecularReflection is the Mueller matrix of a specular reflection at an
// interface with complex relative index eta (conductors). cosThetaI is the
// cosine between the surface normal and the incident ray. The matrix is
// expressed in the s-polarization basis on both sides.
func SpecularReflection[T num.Float[T]](cosThetaI T, eta num.Complex[T]) Matrix[T] {
	aS, aP, _, _, _ := fresnel.PolarizedComplex(cosThetaI, eta)
	return reflection(aS, aP)
}

// SpecularReflectionReal is SpecularReflection for a real index (dielectrics).
// A value of eta above 1 means the normal points into the less dense side.
func SpecularReflectionReal[T num.Float[T]](cosThetaI, eta T) Matrix[T] {
	aS, aP, _, _, _ := fresnel.Polarized(cosThetaI, eta)
	return reflection(aS, aP)
}

func reflection[T num.Float[T]](aS, aP num.Complex[T]) Matrix[T] {
	var z T
	sinDelta, cosDelta := fresnel.SinCosArgDiff(aS, aP)

	rS, rP := aS.AbsSqr(), aP.AbsSqr()
	a := num.Half(rS.Add(rP))
	b := num.Half(rS.Sub(rP))
	c := rS.Mul(rP).Sqrt()

	// The phase difference is 0/0 when either amplitude vanishes.
	degenerate := c.Eq(z)
	sinDelta = num.Select(degenerate, z, sinDelta)
	cosDelta = num.Select(degenerate, z, cosDelta)

	cc, cs := c.Mul(cosDelta), c.Mul(sinDelta)
	return Matrix[T]{M: [4][4]T{
		{a, b, z, z},
		{b, a, z, z},
		{z, z, cc, cs},
		{z, z, cs.Neg(), cc},
	}}
}

// SpecularTransmission is the Mueller matrix of a specular transmission
// through a dielectric interface with real relative index eta. The result
// includes the radiance unit conversion across the interface, so it is zero
// for total internal reflection and for grazing incidence.
func SpecularTransmission[T num.Float[T]](cosThetaI, eta T) Matrix[T] {
	var z T
	one := num.Const[T](1)
	aS, aP, cosThetaT, etaIT, etaTI := fresnel.Polarized(cosThetaI, eta)

	ratio := num.Select(num.Gt(cosThetaI.Abs(), num.Const[T](grazingCos)), cosThetaT.Div(cosThetaI), z)
	factor := etaIT.Neg().Mul(ratio)

	// Transmission amplitudes.
	aSR := aS.Re.Add(one)
	aPR := one.Sub(aP.Re).Mul(etaTI)

	tS, tP := num.Sqr(aSR), num.Sqr(aPR)
	a := num.Half(factor.Mul(tS.Add(tP)))
	b := num.Half(factor.Mul(tS.Sub(tP)))
	c := factor.Mul(tS.Mul(tP).Sqrt())

	return Matrix[T]{M: [4][4]T{
		{a, b, z, z},
		{b, a, z, z},
		{z, z, c, z},
		{z, z, z, c},
	}}
}
