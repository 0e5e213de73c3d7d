// Package spatial provides the vector, matrix, quaternion, Euler-angle, and
// camera-projection primitives that the rest of found's pipelines build on.
package spatial

import "math"

// Vec2 is an immutable 2D vector, typically used for pixel coordinates.
type Vec2 struct {
	X, Y float64
}

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// MagnitudeSq returns the squared length of v.
func (v Vec2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v.
func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	return Vec2{v.X / m, v.Y / m}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Orthogonal returns a vector perpendicular to v.
func (v Vec2) Orthogonal() Vec2 {
	return Vec2{-v.Y, v.X}
}

// MidpointVec2 returns the midpoint of a and b.
func MidpointVec2(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// DistanceVec2 returns the distance between a and b.
func DistanceVec2(a, b Vec2) float64 {
	return a.Sub(b).Magnitude()
}
