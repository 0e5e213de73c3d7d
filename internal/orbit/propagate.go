package orbit

import (
	"math"

	"github.com/UWCubeSat/found/internal/datafile"
	"github.com/UWCubeSat/found/internal/found"
	"github.com/UWCubeSat/found/internal/pipeline"
	"github.com/UWCubeSat/found/internal/spatial"
)

// EarthMu is Earth's standard gravitational parameter, in m^3/s^2.
const EarthMu = 3.986004418e14

// PropagationAlgorithm integrates a two-body trajectory forward from the
// last of a sequence of timed position records, using a fixed-step
// classical RK4 integrator. The initial velocity is estimated from the two
// most recent records' finite difference.
type PropagationAlgorithm struct {
	*pipeline.FunctionStage[[]datafile.LocationRecord, []datafile.LocationRecord]
	mu        float64
	totalTime float64
	dt        float64
}

// NewPropagationAlgorithm builds a propagation stage with gravitational
// parameter mu, propagating for totalTime seconds in steps of dt seconds.
func NewPropagationAlgorithm(mu, totalTime, dt float64) *PropagationAlgorithm {
	a := &PropagationAlgorithm{mu: mu, totalTime: totalTime, dt: dt}
	a.FunctionStage = pipeline.NewFunctionStage(a.run)
	return a
}

func (a *PropagationAlgorithm) run(records []datafile.LocationRecord) []datafile.LocationRecord {
	if len(records) < 2 {
		panic(found.Newf(found.InvalidArgument, "orbit propagation needs at least 2 position records, got %d", len(records)))
	}

	prev := records[len(records)-2]
	last := records[len(records)-1]
	dtSeed := last.Timestamp - prev.Timestamp
	if dtSeed == 0 {
		panic(found.New(found.InvalidArgument, "the two most recent position records share a timestamp"))
	}
	v0 := last.Position.Sub(prev.Position).Scale(1 / dtSeed)

	steps := int(math.Floor(a.totalTime / a.dt))
	positions, _ := a.propagateRV(last.Position, v0, steps)

	out := make([]datafile.LocationRecord, steps)
	for k := 1; k <= steps; k++ {
		out[k-1] = datafile.LocationRecord{
			Position:  positions[k],
			Timestamp: last.Timestamp + float64(k)*a.dt,
		}
	}
	return out
}

// propagateRV runs the fixed-step RK4 integration, returning the position
// and velocity sequence including the initial state at index 0.
func (a *PropagationAlgorithm) propagateRV(r0, v0 spatial.Vec3, steps int) (positions, velocities []spatial.Vec3) {
	positions = make([]spatial.Vec3, steps+1)
	velocities = make([]spatial.Vec3, steps+1)
	positions[0], velocities[0] = r0, v0

	for i := 0; i < steps; i++ {
		r, v := positions[i], velocities[i]

		k1 := a.firstDeriv(v)
		l1 := a.secondDeriv(r)

		k2 := a.firstDeriv(v.Add(l1.Scale(a.dt / 2)))
		l2 := a.secondDeriv(r.Add(k1.Scale(a.dt / 2)))

		k3 := a.firstDeriv(v.Add(l2.Scale(a.dt / 2)))
		l3 := a.secondDeriv(r.Add(k2.Scale(a.dt / 2)))

		k4 := a.firstDeriv(v.Add(l3.Scale(a.dt)))
		l4 := a.secondDeriv(r.Add(k3.Scale(a.dt)))

		positions[i+1] = r.Add(k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4).Scale(a.dt / 6))
		velocities[i+1] = v.Add(l1.Add(l2.Scale(2)).Add(l3.Scale(2)).Add(l4).Scale(a.dt / 6))
	}
	return positions, velocities
}

// firstDeriv is dr/dt = v.
func (a *PropagationAlgorithm) firstDeriv(v spatial.Vec3) spatial.Vec3 {
	return v
}

// secondDeriv is dv/dt = -mu*r/|r|^3, the two-body gravitational
// acceleration.
func (a *PropagationAlgorithm) secondDeriv(r spatial.Vec3) spatial.Vec3 {
	mag := r.Magnitude()
	return r.Scale(-a.mu / (mag * mag * mag))
}
