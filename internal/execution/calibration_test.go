package execution

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UWCubeSat/found/internal/cliopts"
	"github.com/UWCubeSat/found/internal/datafile"
	"github.com/UWCubeSat/found/internal/spatial"
)

func TestRunCalibration_WritesRelativeAttitude(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cal.found")
	opts := cliopts.CalibrationOptions{
		LocalOrientation:     spatial.EulerAngles{RA: math.Pi / 4},
		ReferenceOrientation: spatial.EulerAngles{RA: math.Pi / 2},
		OutputFile:           out,
	}

	err := RunCalibration(context.Background(), opts)
	require.NoError(t, err)

	df, err := datafile.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), df.Header.NumPositions)

	got := df.RelativeAttitude.ToSpherical()
	want := (7 * math.Pi) / 4
	assert.InDelta(t, math.Mod(want, 2*math.Pi), math.Mod(got.RA+2*math.Pi, 2*math.Pi), 1e-5)
}

func TestRunCalibration_RequiresOutputFile(t *testing.T) {
	err := RunCalibration(context.Background(), cliopts.CalibrationOptions{})
	assert.Error(t, err)
}
