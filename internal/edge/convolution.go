package edge

import (
	"math"

	"github.com/UWCubeSat/found/internal/pipeline"
)

// Mask is a square convolution kernel, row-major.
type Mask struct {
	Size int
	Data []float64
}

// At returns the kernel weight at (x, y), both in [0, Size).
func (m Mask) At(x, y int) float64 {
	return m.Data[y*m.Size+x]
}

// SobelMask returns the horizontal Sobel gradient kernel, a reasonable
// default gradient estimator for ConvolutionEdgeDetectionAlgorithm.
func SobelMask() Mask {
	return Mask{Size: 3, Data: []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}}
}

// ConvolutionEdgeDetectionAlgorithm finds Earth's limb by convolving the
// image with a gradient mask, keeping pixels whose local gradient is an
// outlier relative to a surrounding box (box-based outlier identification),
// and gating the result by how well-defined the local edge direction is
// (the ratio of the structure tensor's eigenvalues). Its numerical
// thresholds are heuristic tuning knobs, not a load-bearing contract: callers
// needing a dependable limb detector should prefer
// SimpleEdgeDetectionAlgorithm.
type ConvolutionEdgeDetectionAlgorithm struct {
	*pipeline.FunctionStage[*Image, Points]
	boxSize        int
	mask           Mask
	eigenValueRatio float64
	threshold      float64
}

// NewConvolutionEdgeDetectionAlgorithm constructs the convolutional
// detector. boxSize is the side length of the outlier-detection
// neighbourhood, mask is the gradient kernel, eigenValueRatio bounds how
// directional the local gradient must be to count as an edge, and threshold
// is the minimum gradient magnitude, relative to the box's own statistics,
// to be considered a possible edge.
func NewConvolutionEdgeDetectionAlgorithm(boxSize int, mask Mask, eigenValueRatio, threshold float64) *ConvolutionEdgeDetectionAlgorithm {
	a := &ConvolutionEdgeDetectionAlgorithm{
		boxSize:         boxSize,
		mask:            mask,
		eigenValueRatio: eigenValueRatio,
		threshold:       threshold,
	}
	a.FunctionStage = pipeline.NewFunctionStage(a.run)
	return a
}

// convolve applies a.mask to img, clamping out-of-bounds samples to zero.
func (a *ConvolutionEdgeDetectionAlgorithm) convolve(img *Image) []float64 {
	half := a.mask.Size / 2
	out := make([]float64, img.Width*img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var sum float64
			for ky := 0; ky < a.mask.Size; ky++ {
				for kx := 0; kx < a.mask.Size; kx++ {
					sx, sy := x+kx-half, y+ky-half
					if sx < 0 || sx >= img.Width || sy < 0 || sy >= img.Height {
						continue
					}
					sum += float64(img.At(sx, sy)) * a.mask.At(kx, ky)
				}
			}
			out[y*img.Width+x] = sum
		}
	}
	return out
}

// boxIsOutlier reports whether the gradient at (x, y) exceeds, by
// a.threshold, the mean absolute gradient of the boxSize-wide neighbourhood
// centred on it.
func (a *ConvolutionEdgeDetectionAlgorithm) boxIsOutlier(gradient []float64, width, height, x, y int) bool {
	half := a.boxSize / 2
	var sum float64
	var count int
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			sx, sy := x+dx, y+dy
			if sx < 0 || sx >= width || sy < 0 || sy >= height {
				continue
			}
			sum += math.Abs(gradient[sy*width+sx])
			count++
		}
	}
	if count == 0 {
		return false
	}
	mean := sum / float64(count)
	return math.Abs(gradient[y*width+x]) > mean*(1+a.threshold)
}

// edgeDirectionIsWellDefined computes the local structure tensor over the
// boxSize-wide neighbourhood and reports whether the ratio of its smaller to
// larger eigenvalue is below eigenValueRatio, meaning the gradient has a
// clear dominant direction rather than scattering noise.
func (a *ConvolutionEdgeDetectionAlgorithm) edgeDirectionIsWellDefined(gx, gy []float64, width, height, x, y int) bool {
	half := a.boxSize / 2
	var sxx, sxy, syy float64
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			sx, sy := x+dx, y+dy
			if sx < 0 || sx >= width || sy < 0 || sy >= height {
				continue
			}
			idx := sy*width + sx
			sxx += gx[idx] * gx[idx]
			sxy += gx[idx] * gy[idx]
			syy += gy[idx] * gy[idx]
		}
	}
	trace := sxx + syy
	det := sxx*syy - sxy*sxy
	disc := math.Sqrt(math.Max(trace*trace/4-det, 0))
	lambda1 := trace/2 + disc
	lambda2 := trace/2 - disc
	if lambda1 <= 0 {
		return false
	}
	return lambda2/lambda1 <= a.eigenValueRatio
}

func (a *ConvolutionEdgeDetectionAlgorithm) run(img *Image) Points {
	gx := a.convolve(img)
	yMask := Mask{Size: a.mask.Size, Data: transposeSquare(a.mask.Data, a.mask.Size)}
	gyAlgo := &ConvolutionEdgeDetectionAlgorithm{mask: yMask}
	gy := gyAlgo.convolve(img)

	criteria := func(index uint64, im *Image) bool {
		x, y := int(index)%im.Width, int(index)/im.Width
		if !a.boxIsOutlier(gx, im.Width, im.Height, x, y) {
			return false
		}
		return a.edgeDirectionIsWellDefined(gx, gy, im.Width, im.Height, x, y)
	}

	components := ConnectedComponentsAlgorithm(img, criteria)
	var points Points
	for _, c := range components {
		points = append(points, c.Points...)
	}
	return PolarSort(points)
}

// transposeSquare transposes an n x n row-major matrix, used to derive the
// vertical gradient mask from the horizontal one.
func transposeSquare(data []float64, n int) []float64 {
	out := make([]float64, len(data))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x*n+y] = data[y*n+x]
		}
	}
	return out
}
