package num

import "math"

// Packet is Width lanes of float32 or float64 evaluated together. Lanes never
// interact: every method is the Scalar operation applied lane by lane.
type Packet[E ~float32 | ~float64] [Width]E

// Splat returns a packet with every lane set to v.
func Splat[E ~float32 | ~float64](v E) Packet[E] {
	var p Packet[E]
	for i := range p {
		p[i] = v
	}
	return p
}

func (p Packet[E]) apply(f func(float64) float64) Packet[E] {
	for i, v := range p {
		p[i] = E(f(float64(v)))
	}
	return p
}

func (p Packet[E]) zip(q Packet[E], f func(a, b float64) float64) Packet[E] {
	for i := range p {
		p[i] = E(f(float64(p[i]), float64(q[i])))
	}
	return p
}

func (p Packet[E]) Const(v float64) Packet[E] { return Splat(E(v)) }

func (p Packet[E]) Add(q Packet[E]) Packet[E] {
	for i := range p {
		p[i] += q[i]
	}
	return p
}

func (p Packet[E]) Sub(q Packet[E]) Packet[E] {
	for i := range p {
		p[i] -= q[i]
	}
	return p
}

func (p Packet[E]) Mul(q Packet[E]) Packet[E] {
	for i := range p {
		p[i] *= q[i]
	}
	return p
}

func (p Packet[E]) Div(q Packet[E]) Packet[E] {
	for i := range p {
		p[i] /= q[i]
	}
	return p
}

func (p Packet[E]) Neg() Packet[E] {
	for i := range p {
		p[i] = -p[i]
	}
	return p
}

func (p Packet[E]) Abs() Packet[E]  { return p.apply(math.Abs) }
func (p Packet[E]) Sqrt() Packet[E] { return p.apply(math.Sqrt) }
func (p Packet[E]) Asin() Packet[E] { return p.apply(math.Asin) }

func (p Packet[E]) Min(q Packet[E]) Packet[E] { return p.zip(q, math.Min) }

func (p Packet[E]) Atan2(x Packet[E]) Packet[E] { return p.zip(x, math.Atan2) }

func (p Packet[E]) SinCos() (Packet[E], Packet[E]) {
	var s, c Packet[E]
	for i, v := range p {
		sv, cv := math.Sincos(float64(v))
		s[i], c[i] = E(sv), E(cv)
	}
	return s, c
}

func (p Packet[E]) Eq(q Packet[E]) Packet[E] {
	for i := range p {
		p[i] = E(mask(p[i] == q[i]))
	}
	return p
}

func (p Packet[E]) Lt(q Packet[E]) Packet[E] {
	for i := range p {
		p[i] = E(mask(p[i] < q[i]))
	}
	return p
}

func (p Packet[E]) Blend(onTrue, onFalse Packet[E]) Packet[E] {
	for i := range p {
		if p[i] != 0 {
			onFalse[i] = onTrue[i]
		}
	}
	return onFalse
}

func (Packet[E]) Lanes() int           { return Width }
func (p Packet[E]) Lane(i int) float64 { return float64(p[i]) }
