// Package fresnel solves the Fresnel equations for the complex s- and
// p-polarized amplitudes at a planar interface.
//
// Conventions: cosThetaI is measured against the surface normal; a negative
// value means the ray arrives from the inside. eta is the relative index
// (inside over outside), so eta > 1 means the normal points into the less
// dense medium. The p amplitude uses the sign convention in which both
// amplitudes agree at normal incidence.
package fresnel

import "github.com/lukaszgryglicki/polarize/internal/num"

// Polarized returns the reflection amplitudes for a real relative index.
//
// cosThetaT is the signed cosine of the refracted ray (opposite in sign to
// cosThetaI, zero under total internal reflection). etaIT and etaTI are the
// relative indices oriented along and against the incident side.
func Polarized[T num.Float[T]](cosThetaI, eta T) (aS, aP num.Complex[T], cosThetaT, etaIT, etaTI T) {
	zero, one := num.Const[T](0), num.Const[T](1)

	outside := num.Ge(cosThetaI, zero)
	rcpEta := one.Div(eta)
	etaIT = num.Select(outside, eta, rcpEta)
	etaTI = num.Select(outside, rcpEta, eta)

	// Snell's law, squared.
	cosTSqr := one.Sub(num.Sqr(etaTI).Mul(one.Sub(num.Sqr(cosThetaI))))
	cosT := num.Real(cosTSqr).Sqrt()

	aS, aP = amplitudes(num.Real(cosThetaI.Abs()), num.Real(etaIT), cosT)

	matched := eta.Eq(one)
	aS = selectC(matched, num.Complex[T]{}, aS)
	aP = selectC(matched, num.Complex[T]{}, aP)

	cosThetaT = num.Select(num.Ge(cosTSqr, zero), signNeg(cosT.Re, cosThetaI), zero)
	return aS, aP, cosThetaT, etaIT, etaTI
}

// PolarizedComplex returns the reflection amplitudes for a complex relative
// index (conductors). The transmitted quantities are those of the evanescent
// wave and are only meaningful for the real part.
func PolarizedComplex[T num.Float[T]](cosThetaI T, eta num.Complex[T]) (aS, aP num.Complex[T], cosThetaT T, etaIT, etaTI num.Complex[T]) {
	zero, one := num.Const[T](0), num.Const[T](1)

	outside := num.Ge(cosThetaI, zero)
	rcpEta := eta.Rcp()
	etaIT = selectC(outside, eta, rcpEta)
	etaTI = selectC(outside, rcpEta, eta)

	sinTSqr := etaTI.Mul(etaTI).Scale(one.Sub(num.Sqr(cosThetaI)))
	cosT := num.Real(one).Sub(sinTSqr).Sqrt()

	aS, aP = amplitudes(num.Real(cosThetaI.Abs()), etaIT, cosT)

	matched := num.And(eta.Re.Eq(one), eta.Im.Eq(zero))
	aS = selectC(matched, num.Complex[T]{}, aS)
	aP = selectC(matched, num.Complex[T]{}, aP)

	cosThetaT = signNeg(cosT.Re, cosThetaI)
	return aS, aP, cosThetaT, etaIT, etaTI
}

func amplitudes[T num.Float[T]](cosI, etaIT, cosT num.Complex[T]) (aS, aP num.Complex[T]) {
	etCosT := etaIT.Mul(cosT)
	etCosI := etaIT.Mul(cosI)
	aS = cosI.Sub(etCosT).Div(cosI.Add(etCosT))
	aP = cosT.Sub(etCosI).Div(cosT.Add(etCosI))
	return aS, aP
}

// SinCosArgDiff returns sin and cos of arg(a) - arg(b) without evaluating
// either argument. The result is NaN when a or b is zero.
func SinCosArgDiff[T num.Float[T]](a, b num.Complex[T]) (sin, cos T) {
	norm := num.Const[T](1).Div(a.AbsSqr().Mul(b.AbsSqr()).Sqrt())
	v := a.Mul(b.Conj()).Scale(norm)
	return v.Im, v.Re
}

// Reflectance is the unpolarized reflectance (|aS|² + |aP|²)/2.
func Reflectance[T num.Float[T]](cosThetaI, eta T) T {
	aS, aP, _, _, _ := Polarized(cosThetaI, eta)
	return num.Half(aS.AbsSqr().Add(aP.AbsSqr()))
}

// F0 is the reflectance at normal incidence, ((eta-1)/(eta+1))².
func F0[T num.Float[T]](eta T) T {
	one := num.Const[T](1)
	return num.Sqr(eta.Sub(one).Div(eta.Add(one)))
}

// signNeg returns |x| with the sign opposite to ref; +0 counts as positive.
func signNeg[T num.Float[T]](x, ref T) T {
	x = x.Abs()
	return num.Select(ref.Lt(num.Const[T](0)), x, x.Neg())
}

func selectC[T num.Float[T]](mask T, onTrue, onFalse num.Complex[T]) num.Complex[T] {
	return num.Complex[T]{
		Re: num.Select(mask, onTrue.Re, onFalse.Re),
		Im: num.Select(mask, onTrue.Im, onFalse.Im),
	}
}
