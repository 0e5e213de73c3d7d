package execution

import (
	"context"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/UWCubeSat/found/internal/cliopts"
	"github.com/UWCubeSat/found/internal/datafile"
	"github.com/UWCubeSat/found/internal/distance"
	"github.com/UWCubeSat/found/internal/edge"
	"github.com/UWCubeSat/found/internal/logging"
	"github.com/UWCubeSat/found/internal/pipeline"
	"github.com/UWCubeSat/found/internal/spatial"
	"github.com/UWCubeSat/found/internal/vectorize"
)

// RunDistance decodes an image, finds Earth's limb, recovers the camera's
// distance from Earth's centre, and rotates that into the celestial frame,
// writing the resulting position vector to a data file.
func RunDistance(ctx context.Context, opts cliopts.DistanceOptions) error {
	if opts.Image == "" {
		return errors.New("distance: --image is required")
	}
	if opts.OutputFile == "" {
		return errors.New("distance: --output-file is required")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	img, err := decodeImage(opts.Image)
	if err != nil {
		return errors.Wrap(err, "distance: decoding image")
	}

	camera := spatial.NewIdealCamera(opts.CameraFocalLength, opts.CameraPixelSize, img.Width, img.Height)

	detector := edge.NewSimpleEdgeDetectionAlgorithm(opts.SEDAThreshold, opts.SEDABorderLen, opts.SEDAOffset)
	algo, err := buildDistanceAlgorithm(opts, camera)
	if err != nil {
		return errors.Wrap(err, "distance: selecting distance algorithm")
	}
	vectorizer, err := buildVectorizer(opts)
	if err != nil {
		return errors.Wrap(err, "distance: resolving orientation")
	}

	p := pipeline.NewSequential[*edge.Image](detector)
	p2, err := pipeline.AddStage(p, algo)
	if err != nil {
		return errors.Wrap(err, "distance: building pipeline")
	}
	p3, err := pipeline.AddStage(p2, vectorizer)
	if err != nil {
		return errors.Wrap(err, "distance: building pipeline")
	}
	p3, err = pipeline.Complete(p3)
	if err != nil {
		return errors.Wrap(err, "distance: building pipeline")
	}

	position, err := p3.Run(img)
	if err != nil {
		return errors.Wrap(err, "distance: running pipeline")
	}

	df := datafile.New(spatial.Quaternion{}, []datafile.LocationRecord{{Position: position}})
	if err := writeWithContext(ctx, opts.OutputFile, df); err != nil {
		return errors.Wrap(err, "distance: writing output")
	}

	logging.Log.Info().Str("output", opts.OutputFile).Msg("distance complete")
	return nil
}

// buildDistanceAlgorithm selects between the exact and iterative distance
// algorithms by opts.DistanceAlgo ("SDDA" or "ISDDA").
func buildDistanceAlgorithm(opts cliopts.DistanceOptions, camera spatial.Camera) (pipeline.WireableStage[edge.Points, distance.PositionVector], error) {
	switch opts.DistanceAlgo {
	case "", "SDDA":
		return distance.NewSphericalDistanceDeterminationAlgorithm(camera, opts.PlanetaryRadius), nil
	case "ISDDA":
		return distance.NewIterativeSphericalDistanceDeterminationAlgorithm(
			camera,
			opts.PlanetaryRadius,
			opts.ISDDAPdfOrder,
			1.0,
			int(opts.ISDDAMinIterations),
			opts.ISDDADistRatio,
			opts.ISDDADiscrimRatio,
		), nil
	default:
		return nil, errors.Errorf("unknown distance algorithm %q", opts.DistanceAlgo)
	}
}

// buildVectorizer resolves the orientation the distance vector is rotated
// into: the reference orientation alone when --reference-as-orientation is
// set; otherwise the reference orientation composed with a relative
// attitude, taken from the calibration data file when --calibration-data is
// given and from --relative-orientation when it is not.
func buildVectorizer(opts cliopts.DistanceOptions) (*vectorize.VectorGenerationAlgorithm, error) {
	reference := spatial.NewAttitudeFromQuaternion(spatial.SphericalToQuaternion(
		opts.ReferenceOrientation.RA, opts.ReferenceOrientation.DE, opts.ReferenceOrientation.Roll,
	))

	if opts.ReferenceAsOrientation {
		return vectorize.NewVectorGenerationAlgorithm(reference), nil
	}

	if opts.CalibrationData == "" {
		relative := spatial.NewAttitudeFromQuaternion(spatial.SphericalToQuaternion(
			opts.RelativeOrientation.RA, opts.RelativeOrientation.DE, opts.RelativeOrientation.Roll,
		))
		return vectorize.NewVectorGenerationAlgorithmWithCalibration(reference, relative), nil
	}

	df, err := datafile.ReadFile(opts.CalibrationData)
	if err != nil {
		return nil, errors.Wrap(err, "reading calibration data")
	}
	relative := spatial.NewAttitudeFromQuaternion(df.RelativeAttitude)
	return vectorize.NewVectorGenerationAlgorithmWithCalibration(reference, relative), nil
}

// decodeImage loads a JPG/PNG/TGA/BMP/PSD/GIF/HDR/PIC file and flattens it
// to a single-channel grayscale edge.Image.
func decodeImage(path string) (*edge.Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "decoding image")
	}

	gray := imaging.Grayscale(src)
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, _, _, _ := gray.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = uint8(math.Round(float64(r>>8)))
		}
	}
	return edge.NewImage(width, height, pixels), nil
}
