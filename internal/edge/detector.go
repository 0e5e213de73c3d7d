package edge

import "github.com/UWCubeSat/found/internal/pipeline"

// Detector is any stage that turns a decoded image into candidate limb
// points, letting a distance executor choose between
// SimpleEdgeDetectionAlgorithm and ConvolutionEdgeDetectionAlgorithm.
type Detector = pipeline.Stage[*Image, Points]
