package execution

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UWCubeSat/found/internal/cliopts"
	"github.com/UWCubeSat/found/internal/datafile"
	"github.com/UWCubeSat/found/internal/spatial"
)

func TestIsTLELine1_AcceptsValidChecksum(t *testing.T) {
	line := "1 25544U 98067A   08264.51782528 -.00002182  00000-0 -11606-4 0  2927"
	assert.True(t, isTLELine1(line))
}

func TestIsTLELine1_RejectsTextPositionLine(t *testing.T) {
	assert.False(t, isTLELine1("1.5 1000 2000 3000"))
	assert.False(t, isTLELine1("too short"))
}

func TestLoadSeedPositions_TextFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 7000000 0 0\n60 0 7000000 0\n"), 0o644))

	records, err := loadSeedPositions(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadSeedPositions_DataFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.found")
	df := datafile.New(spatial.Quaternion{}, []datafile.LocationRecord{
		{Timestamp: 0, Position: spatial.Vec3{X: 7000000}},
		{Timestamp: 60, Position: spatial.Vec3{Y: 7000000}},
	})
	require.NoError(t, datafile.WriteFile(path, df))

	records, err := loadSeedPositions(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadSeedPositions_TLEFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iss.tle")
	content := "1 25544U 98067A   08264.51782528 -.00002182  00000-0 -11606-4 0  2927\n" +
		"2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.72125391563537\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	restore := timeNow
	timeNow = func() time.Time { return time.Date(2008, 9, 20, 12, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	records, err := loadSeedPositions(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotZero(t, records[0].Position.Magnitude())
}

func TestRunOrbit_PropagatesAndWrites(t *testing.T) {
	in := filepath.Join(t.TempDir(), "positions.txt")
	require.NoError(t, os.WriteFile(in, []byte("0 7000000 0 0\n1 6999000 100000 0\n"), 0o644))
	out := filepath.Join(t.TempDir(), "orbit.found")

	opts := cliopts.OrbitOptions{
		PositionData: in,
		OutputForm:   out,
		TotalTime:    1.0,
		TimeStep:     0.5,
		Radius:       6378137,
		Mu:           3.986004418e14,
	}
	require.NoError(t, RunOrbit(context.Background(), opts))

	df, err := datafile.ReadFile(out)
	require.NoError(t, err)
	assert.NotEmpty(t, df.Positions)
}

func TestRunOrbit_RequiresInputs(t *testing.T) {
	assert.Error(t, RunOrbit(context.Background(), cliopts.OrbitOptions{}))
}
