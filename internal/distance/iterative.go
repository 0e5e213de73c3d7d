package distance

import (
	"math"

	"github.com/UWCubeSat/found/internal/edge"
	"github.com/UWCubeSat/found/internal/found"
	"github.com/UWCubeSat/found/internal/pipeline"
	"github.com/UWCubeSat/found/internal/spatial"
)

// IterativeSphericalDistanceDeterminationAlgorithm (ISDDA) searches for the
// tangent circle (C, r) that best fits many limb points by minimising an
// even-powered residual loss plus a radius-prior penalty, rather than
// solving the exact 3-point system SphericalDistanceDeterminationAlgorithm
// uses. Its convergence knobs are tuning parameters, not a load-bearing
// contract: callers needing a reproducible result should prefer the exact
// 3-point algorithm.
type IterativeSphericalDistanceDeterminationAlgorithm struct {
	*pipeline.FunctionStage[edge.Points, PositionVector]
	camera           spatial.Camera
	radius           float64
	lossOrder        int
	radiusPriorScale float64
	minIterations    int
	maxDistanceRatio float64
	minDiscriminationRatio float64
}

// NewIterativeSphericalDistanceDeterminationAlgorithm constructs the ISDDA
// variant. lossOrder is the (even) power of both the residual loss and the
// radius-prior penalty, radiusPriorScale weights that penalty, and
// minIterations is the least number of search rounds. The search stops once
// minIterations rounds have run and the step has shrunk below 1e-9 of |C|,
// or after 10000 rounds. maxDistanceRatio and minDiscriminationRatio are
// stored but do not affect the search.
func NewIterativeSphericalDistanceDeterminationAlgorithm(
	camera spatial.Camera,
	radius float64,
	lossOrder int,
	radiusPriorScale float64,
	minIterations int,
	maxDistanceRatio float64,
	minDiscriminationRatio float64,
) *IterativeSphericalDistanceDeterminationAlgorithm {
	a := &IterativeSphericalDistanceDeterminationAlgorithm{
		camera:                 camera,
		radius:                 radius,
		lossOrder:              lossOrder,
		radiusPriorScale:       radiusPriorScale,
		minIterations:          minIterations,
		maxDistanceRatio:       maxDistanceRatio,
		minDiscriminationRatio: minDiscriminationRatio,
	}
	a.FunctionStage = pipeline.NewFunctionStage(a.run)
	return a
}

// loss computes the even-powered residual of ray rays[i] against the
// candidate circle (center, r), plus a radius-prior penalty of the same
// order.
func (a *IterativeSphericalDistanceDeterminationAlgorithm) loss(rays []spatial.Vec3, center spatial.Vec3, r float64) float64 {
	var sum float64
	for _, ray := range rays {
		residual := spatial.DistanceVec3(ray, center) - r
		sum += math.Pow(math.Abs(residual), float64(a.lossOrder))
	}
	prior := math.Pow(math.Abs(r-a.radius), float64(a.lossOrder)) * a.radiusPriorScale
	return sum + prior
}

func (a *IterativeSphericalDistanceDeterminationAlgorithm) run(points edge.Points) PositionVector {
	if len(points) < 3 {
		panic(found.Newf(found.InsufficientLimb, "need at least 3 limb points, got %d", len(points)))
	}

	rays := make([]spatial.Vec3, len(points))
	for i, p := range points {
		rays[i] = a.camera.CameraToSpatial(p)
	}

	bestCenter, err := TangentCircleCenter([3]spatial.Vec3{rays[0], rays[1], rays[2]})
	if err != nil {
		panic(err)
	}
	bestR := spatial.DistanceVec3(rays[0], bestCenter)
	bestLoss := a.loss(rays, bestCenter, bestR)

	step := bestCenter.Magnitude() * 0.01
	if step == 0 {
		step = 1
	}
	directions := []spatial.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}

	iterations := 0
	for iterations < a.minIterations || step > bestCenter.Magnitude()*1e-9 {
		improved := false
		for _, d := range directions {
			candidate := bestCenter.Add(d.Scale(step))
			r := spatial.DistanceVec3(rays[0], candidate)
			l := a.loss(rays, candidate, r)
			if l < bestLoss {
				bestLoss = l
				bestCenter = candidate
				bestR = r
				improved = true
			}
		}
		if !improved {
			step /= 2
		}
		iterations++
		if iterations > 10000 {
			break
		}
	}

	h := a.radius * math.Sqrt(bestR*bestR+1) / bestR
	return bestCenter.Normalize().Scale(h)
}
