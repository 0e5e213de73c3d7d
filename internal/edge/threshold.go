package edge

import (
	"math"
	"sort"

	"github.com/UWCubeSat/found/internal/pipeline"
	"github.com/UWCubeSat/found/internal/spatial"
)

// Points is an ordered sequence of pixel coordinates, polar-sorted about
// their centroid once an edge detector is done producing them.
type Points []spatial.Vec2

// SimpleEdgeDetectionAlgorithm finds Earth's limb by thresholding intensity
// into "space" and "planet", then looking for the space-to-planet
// transition across a borderLength-wide neighbourhood to the north or west
// of each planet pixel.
type SimpleEdgeDetectionAlgorithm struct {
	*pipeline.FunctionStage[*Image, Points]
	threshold    uint8
	borderLength int
	offset       float64
}

// NewSimpleEdgeDetectionAlgorithm constructs the threshold limb detector.
// threshold is the space/planet intensity cutoff, borderLength is how many
// pixels back to look for the far side of a transition, and offset biases
// the emitted limb point into space (positive) or into the disc (negative).
func NewSimpleEdgeDetectionAlgorithm(threshold uint8, borderLength int, offset float64) *SimpleEdgeDetectionAlgorithm {
	a := &SimpleEdgeDetectionAlgorithm{threshold: threshold, borderLength: borderLength, offset: offset}
	a.FunctionStage = pipeline.NewFunctionStage(a.run)
	return a
}

func (a *SimpleEdgeDetectionAlgorithm) isPlanet(img *Image, x, y int) bool {
	return img.At(x, y) > a.threshold
}

// farIsSpace reports whether the sample borderLength pixels away is space,
// treating anything past the image's edge as implicitly space.
func (a *SimpleEdgeDetectionAlgorithm) farIsSpace(img *Image, x, y int) bool {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return true
	}
	return !a.isPlanet(img, x, y)
}

func (a *SimpleEdgeDetectionAlgorithm) run(img *Image) Points {
	var points Points
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if !a.isPlanet(img, x, y) {
				continue
			}
			// A pixel can cross from space to planet in both directions at
			// once (a corner); it is still a single limb candidate, so the
			// vertical transition takes priority for the emitted offset.
			switch {
			case a.farIsSpace(img, x, y-a.borderLength):
				points = append(points, spatial.Vec2{X: float64(x), Y: float64(y) + a.offset})
			case a.farIsSpace(img, x-a.borderLength, y):
				points = append(points, spatial.Vec2{X: float64(x) - a.offset, Y: float64(y)})
			}
		}
	}
	return PolarSort(points)
}

// PolarSort orders points clockwise about their centroid, so that for any
// centroid P and any three consecutive output points A, B, C,
// angle(A, P, B) < angle(A, P, C).
func PolarSort(points Points) Points {
	if len(points) < 3 {
		return points
	}
	var centroid spatial.Vec2
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(points)))

	sort.Slice(points, func(i, j int) bool {
		ai := math.Atan2(points[i].Y-centroid.Y, points[i].X-centroid.X)
		aj := math.Atan2(points[j].Y-centroid.Y, points[j].X-centroid.X)
		return ai < aj
	})
	return points
}
