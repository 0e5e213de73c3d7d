// Package execution wires found's three algorithm pipelines to their
// command-line inputs and outputs: decoding images, loading and writing
// data files, and mapping pipeline failures onto process exit codes.
package execution

import (
	"context"

	"github.com/pkg/errors"

	"github.com/UWCubeSat/found/internal/calibrate"
	"github.com/UWCubeSat/found/internal/cliopts"
	"github.com/UWCubeSat/found/internal/datafile"
	"github.com/UWCubeSat/found/internal/logging"
	"github.com/UWCubeSat/found/internal/pipeline"
)

// RunCalibration composes a local and reference orientation into a
// relative attitude and writes it to a data file.
func RunCalibration(ctx context.Context, opts cliopts.CalibrationOptions) error {
	if opts.OutputFile == "" {
		return errors.New("calibrate: --output-file is required")
	}

	algo := calibrate.NewLOSTCalibrationAlgorithm()
	p := pipeline.NewSequential[calibrate.Orientations](algo)
	p, err := pipeline.Complete(p)
	if err != nil {
		return errors.Wrap(err, "calibrate: building pipeline")
	}

	attitude, err := p.Run(calibrate.Orientations{
		Local:     opts.LocalOrientation,
		Reference: opts.ReferenceOrientation,
	})
	if err != nil {
		return errors.Wrap(err, "calibrate: running pipeline")
	}

	df := datafile.New(attitude, nil)
	if err := writeWithContext(ctx, opts.OutputFile, df); err != nil {
		return errors.Wrap(err, "calibrate: writing output")
	}

	logging.Log.Info().Str("output", opts.OutputFile).Msg("calibration complete")
	return nil
}

func writeWithContext(ctx context.Context, path string, df *datafile.DataFile) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return datafile.WriteFile(path, df)
}
