package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCamera_ProjectionRoundTrip covers testable property #5: for any camera
// and any v with v.X > 0 that projects inside the sensor,
// CameraToSpatial(SpatialToCamera(v)) lies on the same ray through the
// origin as v.
func TestCamera_ProjectionRoundTrip(t *testing.T) {
	cam := NewIdealCamera(0.012, 20e-6, 1024, 1024)
	vectors := []Vec3{
		{1, 0, 0},
		{1, 0.01, -0.02},
		{5, 0.2, 0.1},
	}
	for _, v := range vectors {
		px := cam.SpatialToCamera(v)
		require.True(t, cam.InSensor(px), "vector %+v should project inside sensor", v)
		ray := cam.CameraToSpatial(px)
		// ray should be a scalar multiple of v
		scale := ray.X / v.X
		assert.InDelta(t, v.Y*scale, ray.Y, 1e-9)
		assert.InDelta(t, v.Z*scale, ray.Z, 1e-9)
	}
}

func TestCamera_InSensorInclusiveBounds(t *testing.T) {
	cam := NewIdealCamera(0.012, 20e-6, 100, 200)
	assert.True(t, cam.InSensor(Vec2{X: 0, Y: 0}))
	assert.True(t, cam.InSensor(Vec2{X: 100, Y: 200}))
	assert.False(t, cam.InSensor(Vec2{X: 100.0001, Y: 0}))
	assert.False(t, cam.InSensor(Vec2{X: -0.0001, Y: 0}))
}

func TestCamera_FovFocalLengthRoundTrip(t *testing.T) {
	cam := NewIdealCamera(0.012, 20e-6, 1024, 1024)
	fov := FocalLengthToFov(cam.FocalLength, float64(cam.XResolution), cam.PixelSize)
	fl := FovToFocalLength(fov, float64(cam.XResolution))
	// FovToFocalLength's convention omits pixel size, so compare in pixel units.
	assert.InDelta(t, cam.FocalLength/cam.PixelSize, fl, 1e-6)
}
