package orbit

import (
	"math"
	"testing"

	"github.com/UWCubeSat/found/internal/spatial"
	"github.com/stretchr/testify/assert"
)

func TestStateElementsRoundTrip_InclinedEllipse(t *testing.T) {
	r := spatial.Vec3{X: 7000000, Y: 1500000, Z: 2500000}
	v := spatial.Vec3{X: -1500, Y: 6800, Z: 3200}

	el := StateToElements(r, v, EarthMu)
	rBack, vBack := ElementsToState(el, EarthMu)

	assert.InDelta(t, r.X, rBack.X, 1.0)
	assert.InDelta(t, r.Y, rBack.Y, 1.0)
	assert.InDelta(t, r.Z, rBack.Z, 1.0)
	assert.InDelta(t, v.X, vBack.X, 1e-3)
	assert.InDelta(t, v.Y, vBack.Y, 1e-3)
	assert.InDelta(t, v.Z, vBack.Z, 1e-3)
}

func TestStateToElements_CircularEquatorialFallsBackCleanly(t *testing.T) {
	radius := 7000000.0
	speed := 7500.0
	r := spatial.Vec3{X: radius, Y: 0, Z: 0}
	v := spatial.Vec3{X: 0, Y: speed, Z: 0}

	el := StateToElements(r, v, EarthMu)

	assert.InDelta(t, 0, el.E, 1e-6)
	assert.InDelta(t, 0, el.W, 1e-9)
	assert.InDelta(t, 0, el.RA, 1e-9)
	assert.InDelta(t, 0, el.Incl, 1e-9)
}

func TestAltitudeToSpecificAngularMomentum_CircularMatchesRadiusSpeed(t *testing.T) {
	radiusEarth := 6378000.0
	altitude := 400000.0
	radius := radiusEarth + altitude

	h := AltitudeToSpecificAngularMomentum(0, altitude, EarthMu, radiusEarth)
	speedFromH := h / radius
	expectedCircularSpeed := math.Sqrt(EarthMu / radius)

	assert.InDelta(t, expectedCircularSpeed, speedFromH, 1e-6)
}
