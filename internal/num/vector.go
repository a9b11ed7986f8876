package num

import "math"

// Vector3 is a direction in 3D space.
type Vector3[T Float[T]] struct {
	X, Y, Z T
}

// V3 builds a Vector3 from its components.
func V3[T Float[T]](x, y, z T) Vector3[T] { return Vector3[T]{x, y, z} }

func (a Vector3[T]) Add(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X.Add(b.X), a.Y.Add(b.Y), a.Z.Add(b.Z)}
}

func (a Vector3[T]) Sub(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X.Sub(b.X), a.Y.Sub(b.Y), a.Z.Sub(b.Z)}
}

func (v Vector3[T]) Mul(s T) Vector3[T] { return Vector3[T]{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)} }
func (v Vector3[T]) Neg() Vector3[T]    { return Vector3[T]{v.X.Neg(), v.Y.Neg(), v.Z.Neg()} }

// Dot returns the dot product between two vectors.
func (a Vector3[T]) Dot(b Vector3[T]) T {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
}

// Cross returns a × b.
func (a Vector3[T]) Cross(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		a.Y.Mul(b.Z).Sub(a.Z.Mul(b.Y)),
		a.Z.Mul(b.X).Sub(a.X.Mul(b.Z)),
		a.X.Mul(b.Y).Sub(a.Y.Mul(b.X)),
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector3[T]) Len() T { return v.Dot(v).Sqrt() }

// Norm returns a unit-length version of the vector.
// Zero-length lanes are returned unchanged.
func (v Vector3[T]) Norm() Vector3[T] {
	l := v.Len()
	zero := Const[T](0)
	inv := Select(l.Eq(zero), Const[T](1), Const[T](1).Div(l))
	return v.Mul(inv)
}

// CoordinateSystem completes the unit vector n to an orthonormal basis
// (s, t, n) with s × t = n.
//
// Duff et al., "Building an Orthonormal Basis, Revisited", JCGT 2017.
func CoordinateSystem[T Float[T]](n Vector3[T]) (s, t Vector3[T]) {
	one := Const[T](1)
	sign := Select(n.Z.Lt(Const[T](0)), one.Neg(), one)
	a := one.Neg().Div(sign.Add(n.Z))
	b := n.X.Mul(n.Y).Mul(a)

	s = Vector3[T]{
		sign.Mul(Sqr(n.X)).Mul(a).Add(one),
		sign.Mul(b),
		sign.Mul(n.X).Neg(),
	}
	t = Vector3[T]{
		b,
		sign.Add(Sqr(n.Y).Mul(a)),
		n.Y.Neg(),
	}
	return s, t
}

// UnitAngle is the angle between unit vectors a and b. It avoids acos, which
// loses precision for nearly parallel or antiparallel inputs.
func UnitAngle[T Float[T]](a, b Vector3[T]) T {
	one := Const[T](1)
	dot := a.Dot(b)
	sign := Select(dot.Lt(Const[T](0)), one.Neg(), one)
	temp := Const[T](2).Mul(Half(b.Sub(a.Mul(sign)).Len()).Min(one).Asin())
	return Select(Ge(dot, Const[T](0)), temp, Const[T](math.Pi).Sub(temp))
}
