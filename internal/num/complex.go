package num

// Complex is a complex number whose parts are lanes of T.
type Complex[T Float[T]] struct {
	Re, Im T
}

// C builds re + i·im.
func C[T Float[T]](re, im T) Complex[T] { return Complex[T]{Re: re, Im: im} }

// Real builds re + 0i.
func Real[T Float[T]](re T) Complex[T] { return Complex[T]{Re: re} }

func (a Complex[T]) Add(b Complex[T]) Complex[T] { return Complex[T]{a.Re.Add(b.Re), a.Im.Add(b.Im)} }
func (a Complex[T]) Sub(b Complex[T]) Complex[T] { return Complex[T]{a.Re.Sub(b.Re), a.Im.Sub(b.Im)} }
func (a Complex[T]) Scale(s T) Complex[T]        { return Complex[T]{a.Re.Mul(s), a.Im.Mul(s)} }
func (a Complex[T]) Conj() Complex[T]            { return Complex[T]{a.Re, a.Im.Neg()} }

func (a Complex[T]) Mul(b Complex[T]) Complex[T] {
	return Complex[T]{
		Re: a.Re.Mul(b.Re).Sub(a.Im.Mul(b.Im)),
		Im: a.Re.Mul(b.Im).Add(a.Im.Mul(b.Re)),
	}
}

func (a Complex[T]) Div(b Complex[T]) Complex[T] {
	d := b.AbsSqr()
	return Complex[T]{
		Re: a.Re.Mul(b.Re).Add(a.Im.Mul(b.Im)).Div(d),
		Im: a.Im.Mul(b.Re).Sub(a.Re.Mul(b.Im)).Div(d),
	}
}

// Rcp returns 1/a.
func (a Complex[T]) Rcp() Complex[T] {
	d := a.AbsSqr()
	return Complex[T]{a.Re.Div(d), a.Im.Neg().Div(d)}
}

// AbsSqr is the squared modulus |a|².
func (a Complex[T]) AbsSqr() T { return Sqr(a.Re).Add(Sqr(a.Im)) }

func (a Complex[T]) Abs() T { return a.AbsSqr().Sqrt() }

// Arg is the phase angle in (-π, π].
func (a Complex[T]) Arg() T { return a.Im.Atan2(a.Re) }

// Sqrt is the principal square root; Sqrt(-x) = i·√x for x > 0.
func (a Complex[T]) Sqrt() Complex[T] {
	zero := Const[T](0)
	n := a.Abs()
	t1 := Half(n.Add(a.Re.Abs())).Sqrt()
	t2 := Half(a.Im).Div(t1)

	re := Select(Ge(a.Re, zero), t1, t2.Abs())
	im := Select(Ge(a.Re, zero), t2, Select(a.Im.Lt(zero), t1.Neg(), t1))
	isZero := n.Eq(zero)
	return Complex[T]{Select(isZero, zero, re), Select(isZero, zero, im)}
}
