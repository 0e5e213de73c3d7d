// Package vectorize rotates a camera-frame Earth-centre vector into the
// celestial frame, composing a reference orientation with an optional
// relative orientation obtained from calibration.
package vectorize

import (
	"github.com/UWCubeSat/found/internal/distance"
	"github.com/UWCubeSat/found/internal/pipeline"
	"github.com/UWCubeSat/found/internal/spatial"
)

// VectorGenerationAlgorithm composes a reference attitude with an optional
// relative attitude, negates the input so it points Earth -> camera instead
// of camera -> Earth, and rotates by the composed attitude. The result is
// the camera's position in the celestial frame.
type VectorGenerationAlgorithm struct {
	*pipeline.FunctionStage[distance.PositionVector, distance.PositionVector]
	reference   spatial.Attitude
	relative    spatial.Attitude
	useRelative bool
}

// NewVectorGenerationAlgorithm builds the algorithm with only a reference
// orientation (the "reference-as-orientation" mode: no calibration data was
// supplied, so the reference orientation is used directly).
func NewVectorGenerationAlgorithm(reference spatial.Attitude) *VectorGenerationAlgorithm {
	a := &VectorGenerationAlgorithm{reference: reference}
	a.FunctionStage = pipeline.NewFunctionStage(a.run)
	return a
}

// NewVectorGenerationAlgorithmWithCalibration builds the algorithm with
// both a reference orientation and a relative orientation obtained from
// calibration, composed as q = q_ref * q_rel.
func NewVectorGenerationAlgorithmWithCalibration(reference, relative spatial.Attitude) *VectorGenerationAlgorithm {
	a := &VectorGenerationAlgorithm{reference: reference, relative: relative, useRelative: true}
	a.FunctionStage = pipeline.NewFunctionStage(a.run)
	return a
}

func (a *VectorGenerationAlgorithm) run(vE distance.PositionVector) distance.PositionVector {
	q := a.reference.GetQuaternion()
	if a.useRelative {
		q = q.Mul(a.relative.GetQuaternion())
	}
	earthToCamera := vE.Scale(-1)
	return q.Rotate(earthToCamera)
}
