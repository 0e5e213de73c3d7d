package spatial

import "math"

// Vec3 is a 3D vector, used throughout found for positions, rays, and
// rotation axes.
type Vec3 struct {
	X, Y, Z float64
}

// Magnitude returns the length of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// MagnitudeSq returns the squared length of v.
func (v Vec3) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns the unit vector in the direction of v.
func (v Vec3) Normalize() Vec3 {
	m := v.Magnitude()
	return Vec3{v.X / m, v.Y / m, v.Z / m}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v divided by divisor.
func (v Vec3) Div(divisor float64) Vec3 {
	return Vec3{v.X / divisor, v.Y / divisor, v.Z / divisor}
}

// Cross returns the cross product v x other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Outer returns the outer product v ⊗ other as a Mat3.
func (v Vec3) Outer(other Vec3) Mat3 {
	return NewMat3(
		v.X*other.X, v.X*other.Y, v.X*other.Z,
		v.Y*other.X, v.Y*other.Y, v.Y*other.Z,
		v.Z*other.X, v.Z*other.Y, v.Z*other.Z,
	)
}

// MulMat3 returns the product of Mat3 m (applied on the left) with v.
func (v Vec3) MulMat3(m Mat3) Vec3 {
	return Vec3{
		v.X*m.At(0, 0) + v.Y*m.At(0, 1) + v.Z*m.At(0, 2),
		v.X*m.At(1, 0) + v.Y*m.At(1, 1) + v.Z*m.At(1, 2),
		v.X*m.At(2, 0) + v.Y*m.At(2, 1) + v.Z*m.At(2, 2),
	}
}

// MidpointVec3 returns the midpoint of a and b.
func MidpointVec3(a, b Vec3) Vec3 {
	return Vec3{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2}
}

// Midpoint3 returns the centroid of three vectors.
func Midpoint3(a, b, c Vec3) Vec3 {
	return Vec3{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3, (a.Z + b.Z + c.Z) / 3}
}

// DistanceVec3 returns the distance between a and b.
func DistanceVec3(a, b Vec3) float64 {
	return a.Sub(b).Magnitude()
}

// Angle returns the angle in radians between a and b, normalizing both first.
func Angle(a, b Vec3) float64 {
	return AngleUnit(a.Normalize(), b.Normalize())
}

// AngleUnit returns the angle in radians between unit vectors a and b. The
// caller must ensure a and b are already unit vectors; AngleUnit does not
// renormalize.
func AngleUnit(a, b Vec3) float64 {
	dot := a.Dot(b)
	switch {
	case dot >= 1:
		return 0
	case dot <= -1:
		return math.Pi - 1e-7
	default:
		return math.Acos(dot)
	}
}
