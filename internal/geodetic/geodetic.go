// Package geodetic converts a celestial-frame position into Earth-rotating
// longitude, latitude, and altitude given Greenwich Mean Sidereal Time.
package geodetic

import (
	"math"
	"time"

	gosatellite "github.com/joshuaferrara/go-satellite"

	"github.com/UWCubeSat/found/internal/pipeline"
	"github.com/UWCubeSat/found/internal/spatial"
)

// Position is a point on or above Earth's surface in geographic
// coordinates: longitude and latitude in degrees, altitude in metres.
type Position struct {
	LongitudeDeg float64
	LatitudeDeg  float64
	AltitudeM    float64
}

// Input pairs a celestial-frame position with the Greenwich Mean Sidereal
// Time, in degrees, at the moment it was observed.
type Input struct {
	Celestial spatial.Vec3
	GMSTDeg   float64
}

// ConversionAlgorithm rotates a celestial-frame vector into Earth's
// rotating frame by GMST and reports the result as longitude/latitude/altitude.
type ConversionAlgorithm struct {
	*pipeline.FunctionStage[Input, Position]
}

// NewConversionAlgorithm constructs the conversion stage.
func NewConversionAlgorithm() *ConversionAlgorithm {
	a := &ConversionAlgorithm{}
	a.FunctionStage = pipeline.NewFunctionStage(a.run)
	return a
}

func (a *ConversionAlgorithm) run(in Input) Position {
	return Convert(in.Celestial, in.GMSTDeg)
}

// Convert rotates celestial by gmstDeg about Earth's polar axis and
// returns the resulting geographic position.
func Convert(celestial spatial.Vec3, gmstDeg float64) Position {
	q := spatial.SphericalToQuaternion(gmstDeg*math.Pi/180, 0, 0)
	earthFixed := q.Rotate(celestial)

	magnitude := earthFixed.Magnitude()
	longitude := math.Atan2(earthFixed.Y, earthFixed.X) * 180 / math.Pi
	latitude := math.Asin(earthFixed.Z/magnitude) * 180 / math.Pi

	return Position{
		LongitudeDeg: longitude,
		LatitudeDeg:  latitude,
		AltitudeM:    magnitude,
	}
}

// GMSTDegrees computes the Greenwich Mean Sidereal Time, in degrees, at t.
// It reuses go-satellite's Julian-date and sidereal-time routines rather
// than duplicating the standard IAU formula.
func GMSTDegrees(t time.Time) float64 {
	jd := gosatellite.JDay(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	return gosatellite.ThetaG_JD(jd) * 180 / math.Pi
}
