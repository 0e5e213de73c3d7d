// Package calibrate produces the relative orientation quaternion between a
// camera's local orientation and a reference orientation.
package calibrate

import (
	"github.com/UWCubeSat/found/internal/pipeline"
	"github.com/UWCubeSat/found/internal/spatial"
)

// Orientations is the pair of Euler-angle orientations a calibration
// algorithm reconciles: the camera's own local orientation, and the
// orientation it should be measured relative to. Setting Reference to the
// zero EulerAngles makes this absolute: the camera's local orientation
// becomes the output unchanged.
type Orientations struct {
	Local     spatial.EulerAngles
	Reference spatial.EulerAngles
}

// LOSTCalibrationAlgorithm computes the relative quaternion that takes the
// reference orientation to the local one: the local orientation's quaternion
// multiplied by the conjugate of the reference orientation's.
type LOSTCalibrationAlgorithm struct {
	*pipeline.FunctionStage[Orientations, spatial.Quaternion]
}

// NewLOSTCalibrationAlgorithm constructs the calibration algorithm.
func NewLOSTCalibrationAlgorithm() *LOSTCalibrationAlgorithm {
	a := &LOSTCalibrationAlgorithm{}
	a.FunctionStage = pipeline.NewFunctionStage(a.run)
	return a
}

func (a *LOSTCalibrationAlgorithm) run(o Orientations) spatial.Quaternion {
	local := spatial.SphericalToQuaternion(o.Local.RA, o.Local.DE, o.Local.Roll)
	reference := spatial.SphericalToQuaternion(o.Reference.RA, o.Reference.DE, o.Reference.Roll)
	return local.Mul(reference.Conjugate())
}
