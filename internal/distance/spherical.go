// Package distance turns three or more limb points into a camera-to-Earth
// position vector, given the camera model and Earth's radius.
package distance

import (
	"math"

	"github.com/UWCubeSat/found/internal/edge"
	"github.com/UWCubeSat/found/internal/found"
	"github.com/UWCubeSat/found/internal/pipeline"
	"github.com/UWCubeSat/found/internal/spatial"
)

// PositionVector is the vector from the camera to Earth's centre, in the
// camera frame: camera -> Earth.
type PositionVector = spatial.Vec3

// SphericalDistanceDeterminationAlgorithm reconstructs the tangent circle
// of three back-projected limb rays and uses it, together with Earth's
// known radius, to recover the camera's distance from Earth's centre.
type SphericalDistanceDeterminationAlgorithm struct {
	*pipeline.FunctionStage[edge.Points, PositionVector]
	camera spatial.Camera
	radius float64
}

// NewSphericalDistanceDeterminationAlgorithm constructs the algorithm for
// the given camera model and Earth radius (metres).
func NewSphericalDistanceDeterminationAlgorithm(camera spatial.Camera, radius float64) *SphericalDistanceDeterminationAlgorithm {
	a := &SphericalDistanceDeterminationAlgorithm{camera: camera, radius: radius}
	a.FunctionStage = pipeline.NewFunctionStage(a.run)
	return a
}

func (a *SphericalDistanceDeterminationAlgorithm) run(points edge.Points) PositionVector {
	if len(points) < 3 {
		panic(found.Newf(found.InsufficientLimb, "need at least 3 limb points, got %d", len(points)))
	}

	rays := [3]spatial.Vec3{
		a.camera.CameraToSpatial(points[0]),
		a.camera.CameraToSpatial(points[1]),
		a.camera.CameraToSpatial(points[2]),
	}

	center, err := TangentCircleCenter(rays)
	if err != nil {
		panic(err)
	}
	r := a.getRadius(rays, center)
	h := a.getDistance(r)

	return center.Normalize().Scale(h)
}

// TangentCircleCenter solves for the tangent circle's centre C in
// camera-frame coordinates, given three back-projected limb rays: C lies in
// the plane spanned by the rays' differences, and is equidistant from s0/s1
// and from s1/s2. It fails with DegenerateGeometry if the rays are coplanar
// with the camera origin.
func TangentCircleCenter(spats [3]spatial.Vec3) (spatial.Vec3, error) {
	diff1 := spats[1].Sub(spats[0])
	diff2 := spats[2].Sub(spats[1])

	circleNormal := diff1.Cross(diff2)
	mid1 := spatial.MidpointVec3(spats[0], spats[1])
	mid2 := spatial.MidpointVec3(spats[1], spats[2])

	matrix := spatial.NewMat3(
		circleNormal.X, circleNormal.Y, circleNormal.Z,
		diff1.X, diff1.Y, diff1.Z,
		diff2.X, diff2.Y, diff2.Z,
	)

	if math.Abs(matrix.Det()) < 1e-12 {
		return spatial.Vec3{}, found.New(found.DegenerateGeometry, "limb rays are coplanar with the camera origin")
	}

	alpha := circleNormal.Dot(spats[0])
	beta := diff1.Dot(mid1)
	gamma := diff2.Dot(mid2)

	return matrix.Inverse().MulVec3(spatial.Vec3{X: alpha, Y: beta, Z: gamma}), nil
}

func (a *SphericalDistanceDeterminationAlgorithm) getRadius(spats [3]spatial.Vec3, center spatial.Vec3) float64 {
	return spatial.DistanceVec3(spats[0], center)
}

func (a *SphericalDistanceDeterminationAlgorithm) getDistance(r float64) float64 {
	return a.radius * math.Sqrt(r*r+1) / r
}
