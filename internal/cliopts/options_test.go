package cliopts

import (
	"math"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCalibrationFlags_ParsesEulerTriples(t *testing.T) {
	fs := pflag.NewFlagSet("calibrate", pflag.ContinueOnError)
	var o CalibrationOptions
	RegisterCalibrationFlags(fs, &o)

	err := fs.Parse([]string{
		"--local-orientation=45,0,0",
		"--reference-orientation=90,-30,0",
		"--output-file=out.found",
	})
	require.NoError(t, err)

	assert.InDelta(t, math.Pi/4, o.LocalOrientation.RA, 1e-9)
	assert.InDelta(t, math.Pi/2, o.ReferenceOrientation.RA, 1e-9)
	assert.InDelta(t, -math.Pi/6, o.ReferenceOrientation.DE, 1e-9)
	assert.Equal(t, "out.found", o.OutputFile)
}

func TestRegisterDistanceFlags_Defaults(t *testing.T) {
	fs := pflag.NewFlagSet("distance", pflag.ContinueOnError)
	var o DistanceOptions
	RegisterDistanceFlags(fs, &o)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, 0.012, o.CameraFocalLength)
	assert.Equal(t, 20e-6, o.CameraPixelSize)
	assert.Equal(t, uint8(25), o.SEDAThreshold)
	assert.Equal(t, "SDDA", o.DistanceAlgo)
	assert.True(t, math.IsInf(o.ISDDADistRatio, 1))
	assert.Equal(t, 2, o.ISDDAPdfOrder)
	assert.Equal(t, 4, o.ISDDARadiusLossOrder)
}

func TestRegisterOrbitFlags_Defaults(t *testing.T) {
	fs := pflag.NewFlagSet("orbit", pflag.ContinueOnError)
	var o OrbitOptions
	RegisterOrbitFlags(fs, &o)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, 3600.0, o.TotalTime)
	assert.Equal(t, 0.01, o.TimeStep)
	assert.Equal(t, earthMeanRadiusM, o.Radius)
	assert.Equal(t, earthMuSI, o.Mu)
}

func TestEulerAnglesValue_AcceptsSpaceSeparatedTriple(t *testing.T) {
	fs := pflag.NewFlagSet("calibrate", pflag.ContinueOnError)
	var o CalibrationOptions
	RegisterCalibrationFlags(fs, &o)

	err := fs.Parse([]string{"--local-orientation=45 0 0"})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, o.LocalOrientation.RA, 1e-9)
}

func TestEulerAnglesValue_RejectsMalformedInput(t *testing.T) {
	fs := pflag.NewFlagSet("calibrate", pflag.ContinueOnError)
	var o CalibrationOptions
	RegisterCalibrationFlags(fs, &o)

	err := fs.Parse([]string{"--local-orientation=not,a,triple"})
	require.Error(t, err)
}
