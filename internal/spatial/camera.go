package spatial

import "math"

// Camera models a pinhole camera. Its +X axis points away from the sensor: a
// spatial point (x, 0, 0) with x > 0 projects to the principal point.
type Camera struct {
	FocalLength float64 // meters
	PixelSize   float64 // meters
	XCenter     float64 // pixels
	YCenter     float64 // pixels
	XResolution int
	YResolution int
}

// NewCamera builds a Camera with an explicit principal point.
func NewCamera(focalLength, pixelSize, xCenter, yCenter float64, xResolution, yResolution int) Camera {
	return Camera{
		FocalLength: focalLength,
		PixelSize:   pixelSize,
		XCenter:     xCenter,
		YCenter:     yCenter,
		XResolution: xResolution,
		YResolution: yResolution,
	}
}

// NewIdealCamera builds a Camera whose principal point is the resolution
// midpoint.
func NewIdealCamera(focalLength, pixelSize float64, xResolution, yResolution int) Camera {
	return NewCamera(focalLength, pixelSize,
		float64(xResolution)/2.0, float64(yResolution)/2.0,
		xResolution, yResolution)
}

// SpatialToCamera projects a 3D point with v.X > 0 onto the sensor.
func (c Camera) SpatialToCamera(v Vec3) Vec2 {
	focalFactor := c.FocalLength / v.X / c.PixelSize
	yPixel := v.Y * focalFactor
	zPixel := v.Z * focalFactor
	return Vec2{X: -yPixel + c.XCenter, Y: -zPixel + c.YCenter}
}

// CameraToSpatial back-projects a 2D sensor point into a 3D ray with
// X-component fixed at 1. Downstream code relies on that normalization; do
// not change it.
func (c Camera) CameraToSpatial(u Vec2) Vec3 {
	xPixel := -u.X + c.XCenter
	yPixel := -u.Y + c.YCenter
	return Vec3{
		X: 1,
		Y: xPixel * c.PixelSize / c.FocalLength,
		Z: yPixel * c.PixelSize / c.FocalLength,
	}
}

// InSensor reports whether u falls within the sensor bounds (inclusive on
// both ends, so the trailing-edge pixel counts as in-sensor).
func (c Camera) InSensor(u Vec2) bool {
	return u.X >= 0 && u.X <= float64(c.XResolution) &&
		u.Y >= 0 && u.Y <= float64(c.YResolution)
}

// Fov returns the camera's horizontal field of view, in radians.
func (c Camera) Fov() float64 {
	return FocalLengthToFov(c.FocalLength, float64(c.XResolution), 1.0)
}

// FovToFocalLength returns the focal length implied by a horizontal FOV and
// resolution (pixel size cancels out of the ratio).
func FovToFocalLength(xFov, xResolution float64) float64 {
	return xResolution / 2.0 / math.Tan(xFov/2)
}

// FocalLengthToFov returns the horizontal FOV implied by a focal length,
// resolution, and pixel size.
func FocalLengthToFov(focalLength, xResolution, pixelSize float64) float64 {
	return math.Atan(xResolution/2*pixelSize/focalLength) * 2
}
