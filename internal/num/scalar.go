package num

import "math"

// Scalar is a single-lane Float.
type Scalar float64

func mask(b bool) Scalar {
	if b {
		return 1
	}
	return 0
}

func (Scalar) Const(v float64) Scalar { return Scalar(v) }

func (a Scalar) Add(b Scalar) Scalar { return a + b }
func (a Scalar) Sub(b Scalar) Scalar { return a - b }
func (a Scalar) Mul(b Scalar) Scalar { return a * b }
func (a Scalar) Div(b Scalar) Scalar { return a / b }
func (a Scalar) Neg() Scalar         { return -a }
func (a Scalar) Abs() Scalar         { return Scalar(math.Abs(float64(a))) }
func (a Scalar) Sqrt() Scalar        { return Scalar(math.Sqrt(float64(a))) }
func (a Scalar) Min(b Scalar) Scalar { return Scalar(math.Min(float64(a), float64(b))) }
func (a Scalar) Asin() Scalar        { return Scalar(math.Asin(float64(a))) }

func (a Scalar) SinCos() (Scalar, Scalar) {
	s, c := math.Sincos(float64(a))
	return Scalar(s), Scalar(c)
}

func (a Scalar) Atan2(x Scalar) Scalar { return Scalar(math.Atan2(float64(a), float64(x))) }

func (a Scalar) Eq(b Scalar) Scalar { return mask(a == b) }
func (a Scalar) Lt(b Scalar) Scalar { return mask(a < b) }

func (a Scalar) Blend(onTrue, onFalse Scalar) Scalar {
	if a != 0 {
		return onTrue
	}
	return onFalse
}

func (Scalar) Lanes() int         { return 1 }
func (a Scalar) Lane(int) float64 { return float64(a) }
