// Package orbit propagates a spacecraft's position forward in time under
// two-body gravity and converts between state vectors and classical
// orbital elements.
package orbit

import (
	"math"

	"github.com/UWCubeSat/found/internal/spatial"
)

// epsilon guards the near-circular and near-equatorial degenerate cases in
// StateToElements.
const epsilon = 1e-10

// Elements are the classical two-body orbital elements: specific angular
// momentum, eccentricity, right ascension of the ascending node,
// inclination, argument of periapsis, and true anomaly.
type Elements struct {
	H    float64
	E    float64
	RA   float64
	Incl float64
	W    float64
	TA   float64
}

// StateToElements converts a position/velocity state under gravitational
// parameter mu into classical orbital elements. For a circular orbit (e
// near zero) the argument of periapsis is fixed at 0 and the true anomaly
// is measured directly from the position vector; for an equatorial orbit
// (inclination near zero) the right ascension of the ascending node is
// fixed at 0.
func StateToElements(r, v spatial.Vec3, mu float64) Elements {
	radius := r.Magnitude()
	vr := r.Dot(v) / radius

	h := r.Cross(v)
	hMag := h.Magnitude()

	incl := math.Acos(h.Z / hMag)

	k := spatial.Vec3{X: 0, Y: 0, Z: 1}
	n := k.Cross(h)
	nMag := n.Magnitude()

	ra := 0.0
	if nMag > epsilon {
		ra = math.Acos(clampUnit(n.X / nMag))
		if n.Y < 0 {
			ra = 2*math.Pi - ra
		}
	}

	eVec := r.Scale(v.Dot(v) - mu/radius).Sub(v.Scale(radius * vr)).Scale(1 / mu)
	e := eVec.Magnitude()

	w := 0.0
	if nMag > epsilon && e > epsilon {
		w = math.Acos(clampUnit(n.Dot(eVec) / (nMag * e)))
		if eVec.Z < 0 {
			w = 2*math.Pi - w
		}
	}

	var ta float64
	if e > epsilon {
		ta = math.Acos(clampUnit(eVec.Dot(r) / (e * radius)))
		if vr < 0 {
			ta = 2*math.Pi - ta
		}
	} else {
		cosTA := r.X / radius
		if r.Y >= 0 {
			ta = math.Acos(clampUnit(cosTA))
		} else {
			ta = 2*math.Pi - math.Acos(clampUnit(cosTA))
		}
	}

	return Elements{H: hMag, E: e, RA: ra, Incl: incl, W: w, TA: ta}
}

// ElementsToState reconstructs a position/velocity state from classical
// orbital elements under gravitational parameter mu.
func ElementsToState(el Elements, mu float64) (r, v spatial.Vec3) {
	cosTA, sinTA := math.Cos(el.TA), math.Sin(el.TA)
	radiusFactor := (el.H * el.H / mu) / (1 + el.E*cosTA)

	rPerifocal := spatial.Vec3{X: radiusFactor * cosTA, Y: radiusFactor * sinTA}
	vPerifocal := spatial.Vec3{
		X: -(mu / el.H) * sinTA,
		Y: (mu / el.H) * (el.E + cosTA),
	}

	cosRA, sinRA := math.Cos(el.RA), math.Sin(el.RA)
	cosIncl, sinIncl := math.Cos(el.Incl), math.Sin(el.Incl)
	cosW, sinW := math.Cos(el.W), math.Sin(el.W)

	rotation := spatial.NewMat3(
		cosRA*cosW-sinRA*sinW*cosIncl, cosRA*sinW+sinRA*cosW*cosIncl, sinRA*sinIncl,
		-sinRA*cosW-cosRA*sinW*cosIncl, -sinRA*sinW+cosRA*cosW*cosIncl, cosRA*sinIncl,
		sinW*sinIncl, -cosW*sinIncl, cosIncl,
	)

	r = rotation.MulVec3(rPerifocal)
	v = rotation.MulVec3(vPerifocal)
	return r, v
}

// AltitudeToSpecificAngularMomentum computes the specific angular momentum
// of an orbit with eccentricity e, periapsis altitude above radiusEarth,
// and gravitational parameter mu.
func AltitudeToSpecificAngularMomentum(e, altitude, mu, radiusEarth float64) float64 {
	rp := radiusEarth + altitude
	a := rp / (1 - e)
	return math.Sqrt(mu * a * (1 - e*e))
}

func clampUnit(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	default:
		return x
	}
}
