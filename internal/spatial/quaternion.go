package spatial

import "math"

// Quaternion represents a rotation as (Real, I, J, K). A unit quaternion and
// its negation represent the same rotation; Canonicalize picks the
// representative with Real >= 0.
type Quaternion struct {
	Real, I, J, K float64
}

// NewAxisAngle returns the quaternion representing a rotation of theta
// radians about axis.
func NewAxisAngle(axis Vec3, theta float64) Quaternion {
	s, c := math.Sincos(theta / 2)
	return Quaternion{
		Real: c,
		I:    axis.X * s,
		J:    axis.Y * s,
		K:    axis.Z * s,
	}
}

// NewPureQuaternion returns the "pure" quaternion with v as its vector part
// and zero real part.
func NewPureQuaternion(v Vec3) Quaternion {
	return Quaternion{Real: 0, I: v.X, J: v.Y, K: v.Z}
}

// Mul returns the Hamilton product q * other, composing the two rotations.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		Real: q.Real*other.Real - q.I*other.I - q.J*other.J - q.K*other.K,
		I:    q.Real*other.I + other.Real*q.I + q.J*other.K - q.K*other.J,
		J:    q.Real*other.J + other.Real*q.J + q.K*other.I - q.I*other.K,
		K:    q.Real*other.K + other.Real*q.K + q.I*other.J - q.J*other.I,
	}
}

// Neg returns -q, the same rotation under a different sign convention.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.Real, -q.I, -q.J, -q.K}
}

// Conjugate returns the quaternion representing the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.Real, -q.I, -q.J, -q.K}
}

// Vector returns the imaginary (vector) part of q.
func (q Quaternion) Vector() Vec3 {
	return Vec3{q.I, q.J, q.K}
}

// WithVector returns a copy of q with its vector part replaced by vec.
func (q Quaternion) WithVector(vec Vec3) Quaternion {
	q.I, q.J, q.K = vec.X, vec.Y, vec.Z
	return q
}

// Rotate returns v rotated by q: q * (0, v) * q⁻¹.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	return q.Mul(NewPureQuaternion(v)).Mul(q.Conjugate()).Vector()
}

// Angle returns the rotation angle represented by q, in radians. A real part
// at or below -1 is treated as a full turn (angle 0) rather than an error.
func (q Quaternion) Angle() float64 {
	if q.Real <= -1 {
		return 0
	}
	if q.Real >= 1 {
		return 0
	}
	return 2 * math.Acos(q.Real)
}

// WithAngle returns a copy of q re-scaled to represent a rotation of newAngle
// radians about the same axis.
func (q Quaternion) WithAngle(newAngle float64) Quaternion {
	s, c := math.Sincos(newAngle / 2)
	axis := q.Vector().Normalize()
	return Quaternion{Real: c, I: axis.X * s, J: axis.Y * s, K: axis.Z * s}
}

// IsUnit reports whether q has unit magnitude within tolerance.
func (q Quaternion) IsUnit(tolerance float64) bool {
	mag2 := q.I*q.I + q.J*q.J + q.K*q.K + q.Real*q.Real
	return math.Abs(mag2-1) < tolerance
}

// Canonicalize returns the representative of q's rotation with Real >= 0.
func (q Quaternion) Canonicalize() Quaternion {
	if q.Real >= 0 {
		return q
	}
	return q.Neg()
}

// ToSpherical extracts the EulerAngles (z-y'-x'' convention) represented by
// q. q is assumed to be the conjugate-composed form produced by
// SphericalToQuaternion.
func (q Quaternion) ToSpherical() EulerAngles {
	ra := math.Atan2(2*(-q.Real*q.K+q.I*q.J), 1-2*(q.J*q.J+q.K*q.K))
	if ra < 0 {
		ra += 2 * math.Pi
	}
	de := -math.Asin(2 * (-q.Real*q.J - q.I*q.K))
	roll := -math.Atan2(2*(-q.Real*q.I+q.J*q.K), 1-2*(q.I*q.I+q.J*q.J))
	if roll < 0 {
		roll += 2 * math.Pi
	}
	return EulerAngles{RA: ra, DE: de, Roll: roll}
}

// QuaternionToDCM materializes the DCM whose columns are q's rotated basis
// vectors.
func QuaternionToDCM(q Quaternion) Mat3 {
	x := q.Rotate(Vec3{1, 0, 0})
	y := q.Rotate(Vec3{0, 1, 0})
	z := q.Rotate(Vec3{0, 0, 1})
	return NewMat3(
		x.X, y.X, z.X,
		x.Y, y.Y, z.Y,
		x.Z, y.Z, z.Z,
	)
}

// DCMToQuaternion reconstructs the quaternion represented by dcm: first a
// quaternion aligning +X with dcm's first column, then a follow-up rotation
// about the new +X aligning +Y, with sign chosen from the handedness of the
// residual Y-axis cross product.
func DCMToQuaternion(dcm Mat3) Quaternion {
	oldX := Vec3{1, 0, 0}
	newX := dcm.Column(0)
	// When newX is (anti)parallel to +X the cross product vanishes and gives
	// no axis: use the identity, or a half turn about +Z.
	xAlign := Quaternion{Real: 1}
	if cross := oldX.Cross(newX); cross.Magnitude() > 1e-12 {
		xAlign = NewAxisAngle(cross.Normalize(), AngleUnit(oldX, newX))
	} else if newX.X < 0 {
		xAlign = NewAxisAngle(Vec3{0, 0, 1}, math.Pi)
	}

	oldY := xAlign.Rotate(Vec3{0, 1, 0})
	newY := dcm.Column(1)
	rotateClockwise := oldY.Cross(newY).Dot(newX) > 0
	sign := 1.0
	if !rotateClockwise {
		sign = -1.0
	}
	yAlign := NewAxisAngle(Vec3{1, 0, 0}, AngleUnit(oldY, newY)*sign)

	return xAlign.Mul(yAlign)
}

// SphericalToQuaternion composes the z-y'-x'' rotation given by ra, de, and
// roll (yaw about Z, then -pitch about Y, then -roll about X) and returns the
// conjugate of the product. The result is unit to within 1e-5.
func SphericalToQuaternion(ra, de, roll float64) Quaternion {
	a := NewAxisAngle(Vec3{0, 0, 1}, ra)
	b := NewAxisAngle(Vec3{0, 1, 0}, -de)
	c := NewAxisAngle(Vec3{1, 0, 0}, -roll)
	return a.Mul(b).Mul(c).Conjugate()
}

// SphericalToQuaternionEuler is SphericalToQuaternion applied to an
// EulerAngles value.
func SphericalToQuaternionEuler(angles EulerAngles) Quaternion {
	return SphericalToQuaternion(angles.RA, angles.DE, angles.Roll)
}

// SphericalToSpatial converts a right-ascension/declination direction to a
// unit vector on the unit sphere.
func SphericalToSpatial(ra, de float64) Vec3 {
	return Vec3{
		X: math.Cos(ra) * math.Cos(de),
		Y: math.Sin(ra) * math.Cos(de),
		Z: math.Sin(de),
	}
}

// SpatialToSpherical converts a unit vector to a right-ascension/declination
// direction.
func SpatialToSpherical(v Vec3) (ra, de float64) {
	ra = math.Atan2(v.Y, v.X)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	de = math.Asin(v.Z)
	return ra, de
}
