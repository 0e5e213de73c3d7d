package orbit

import (
	"math"
	"testing"

	"github.com/UWCubeSat/found/internal/datafile"
	"github.com/UWCubeSat/found/internal/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPropagationAlgorithm_CircularOrbitConservesRadius propagates a
// near-circular low Earth orbit and checks the radius stays close to its
// initial value over a short horizon, a basic sanity check on the RK4
// integration and the two-body acceleration model.
func TestPropagationAlgorithm_CircularOrbitConservesRadius(t *testing.T) {
	radius := 6778000.0 // 400 km altitude circular orbit
	speed := math.Sqrt(EarthMu / radius)

	r0 := spatial.Vec3{X: radius, Y: 0, Z: 0}
	v0 := spatial.Vec3{X: 0, Y: speed, Z: 0}
	dt := 1.0

	records := []datafile.LocationRecord{
		{Timestamp: 0, Position: r0},
		{Timestamp: dt, Position: r0.Add(v0.Scale(dt))},
	}

	algo := NewPropagationAlgorithm(EarthMu, 60, dt)
	out := algo.Run(records)

	require.Len(t, out, 60)
	for _, rec := range out {
		assert.InDelta(t, radius, rec.Position.Magnitude(), radius*0.01)
	}
	assert.InDelta(t, dt+60*dt, out[len(out)-1].Timestamp, 1e-9)
}

func TestPropagationAlgorithm_RequiresTwoRecords(t *testing.T) {
	algo := NewPropagationAlgorithm(EarthMu, 60, 1)
	defer func() {
		r := recover()
		require.NotNil(t, r)
	}()
	algo.Run([]datafile.LocationRecord{{Timestamp: 0, Position: spatial.Vec3{}}})
}
