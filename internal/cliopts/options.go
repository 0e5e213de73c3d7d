// Package cliopts defines the flag sets for found's three subcommands,
// mirroring the flag names, defaults, and documentation strings of the
// original option tables field for field.
package cliopts

import (
	"github.com/spf13/pflag"

	"github.com/UWCubeSat/found/internal/spatial"
)

// earthMeanRadiusM is the default planetary radius, Earth's mean radius in
// metres.
const earthMeanRadiusM = 6378137.0

// earthMuSI is Earth's standard gravitational parameter, converted from the
// original's km^3/s^2 convention to the module-wide SI convention.
const earthMuSI = 398600.4418e9

// CalibrationOptions are the flags accepted by the calibration subcommand.
type CalibrationOptions struct {
	LocalOrientation     spatial.EulerAngles
	ReferenceOrientation spatial.EulerAngles
	OutputFile           string
}

// RegisterCalibrationFlags binds CalibrationOptions' fields to fs.
func RegisterCalibrationFlags(fs *pflag.FlagSet, o *CalibrationOptions) {
	fs.Var(newEulerAnglesValue(&o.LocalOrientation), "local-orientation", "The local orientation (deg)")
	fs.Var(newEulerAnglesValue(&o.ReferenceOrientation), "reference-orientation", "The reference orientation (deg)")
	fs.StringVar(&o.OutputFile, "output-file", "", "The output file (*.found)")
}

// DistanceOptions are the flags accepted by the distance subcommand.
type DistanceOptions struct {
	Image                  string
	CalibrationData        string
	ReferenceAsOrientation bool
	CameraFocalLength      float64
	CameraPixelSize        float64
	ReferenceOrientation   spatial.EulerAngles
	RelativeOrientation    spatial.EulerAngles
	PlanetaryRadius        float64
	SEDAThreshold          uint8
	SEDABorderLen          int
	SEDAOffset             float64
	DistanceAlgo           string
	ISDDAMinIterations     uint64
	ISDDADistRatio         float64
	ISDDADiscrimRatio      float64
	ISDDAPdfOrder          int
	ISDDARadiusLossOrder   int
	OutputFile             string
}

// RegisterDistanceFlags binds DistanceOptions' fields to fs.
func RegisterDistanceFlags(fs *pflag.FlagSet, o *DistanceOptions) {
	fs.StringVar(&o.Image, "image", "", "The image to process (JPG, PNG, TGA, BMP, PSD, GIF, HDR, PIC)")
	fs.StringVar(&o.CalibrationData, "calibration-data", "", "The calibration data (*.found)")
	fs.BoolVar(&o.ReferenceAsOrientation, "reference-as-orientation", false, "Use reference-orientation as the orientation of the camera")
	fs.Float64Var(&o.CameraFocalLength, "camera-focal-length", 0.012, "The camera focal length (m)")
	fs.Float64Var(&o.CameraPixelSize, "camera-pixel-size", 20e-6, "The camera pixel size (m)")
	fs.Var(newEulerAnglesValue(&o.ReferenceOrientation), "reference-orientation", "The reference orientation (deg)")
	fs.Var(newEulerAnglesValue(&o.RelativeOrientation), "relative-orientation", "The relative orientation to use (if no calibration) (deg)")
	fs.Float64Var(&o.PlanetaryRadius, "planetary-radius", earthMeanRadiusM, "The planetary radius to use (m)")
	fs.Uint8Var(&o.SEDAThreshold, "seda-threshold", 25, "Threshold for the SEDA Algorithm ([0,255])")
	fs.IntVar(&o.SEDABorderLen, "seda-border-len", 1, "The border thickness for SEDA (pixels)")
	fs.Float64Var(&o.SEDAOffset, "seda-offset", 0.0, "The edge offset for SEDA (pixels)")
	fs.StringVar(&o.DistanceAlgo, "distance-algo", "SDDA", "The distance algorithm to use (SDDA or ISDDA)")
	fs.Uint64Var(&o.ISDDAMinIterations, "isdda-min-iterations", 0, "The number of iterations for ISDDA")
	fs.Float64Var(&o.ISDDADistRatio, "isdda-dist-ratio", inf, "The distance ratio for calculated positions for ISDDA (m)")
	fs.Float64Var(&o.ISDDADiscrimRatio, "isdda-discrim-ratio", inf, "The loss discrimination ratio for ISSDA")
	fs.IntVar(&o.ISDDAPdfOrder, "isdda-pdf-order", 2, "The Probability Density Function Order for ISSDA (even int)")
	fs.IntVar(&o.ISDDARadiusLossOrder, "isdda-radius-loss-order", 4, "The Radius Loss Order ISSDA (even int)")
	fs.StringVar(&o.OutputFile, "output-file", "", "The output file (*.found)")
}

// OrbitOptions are the flags accepted by the orbit subcommand.
type OrbitOptions struct {
	PositionData string
	OutputForm   string
	TotalTime    float64
	TimeStep     float64
	Radius       float64
	Mu           float64
}

// RegisterOrbitFlags binds OrbitOptions' fields to fs.
func RegisterOrbitFlags(fs *pflag.FlagSet, o *OrbitOptions) {
	fs.StringVar(&o.PositionData, "position-data", "", "The position data (*.found)")
	fs.StringVar(&o.OutputForm, "output-form", "", "The desired form of the output")
	fs.Float64Var(&o.TotalTime, "total-time", 3600.0, "The total time to predict for (s)")
	fs.Float64Var(&o.TimeStep, "time-step", 0.01, "The time step to use (s)")
	fs.Float64Var(&o.Radius, "radius", earthMeanRadiusM, "The planetary radius to use (m)")
	fs.Float64Var(&o.Mu, "mu", earthMuSI, "The standard gravitational parameter (m^3/s^2)")
}
