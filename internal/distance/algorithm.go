package distance

import (
	"github.com/UWCubeSat/found/internal/edge"
	"github.com/UWCubeSat/found/internal/pipeline"
)

// Algorithm is any stage that turns limb points into a position vector,
// letting a distance executor choose between
// SphericalDistanceDeterminationAlgorithm and
// IterativeSphericalDistanceDeterminationAlgorithm.
type Algorithm = pipeline.Stage[edge.Points, PositionVector]
