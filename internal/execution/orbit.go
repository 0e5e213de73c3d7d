package execution

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/UWCubeSat/found/internal/cliopts"
	"github.com/UWCubeSat/found/internal/datafile"
	"github.com/UWCubeSat/found/internal/found"
	"github.com/UWCubeSat/found/internal/logging"
	"github.com/UWCubeSat/found/internal/orbit"
	"github.com/UWCubeSat/found/internal/pipeline"
	"github.com/UWCubeSat/found/internal/spatial"
)

// RunOrbit loads a seed position history (the plain timestamp/position text
// format, or, if the input's first non-blank line looks like a TLE line 1, a
// two-line element set) and propagates it forward with a fixed-step RK4
// two-body integrator, writing the predicted trajectory to opts.OutputForm.
//
// opts.OutputForm is the output data file path despite its flag name; the
// underlying field has carried a stale name since it was first added.
func RunOrbit(ctx context.Context, opts cliopts.OrbitOptions) error {
	if opts.PositionData == "" {
		return errors.New("orbit: --position-data is required")
	}
	if opts.OutputForm == "" {
		return errors.New("orbit: --output-form is required")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	seed, err := loadSeedPositions(opts.PositionData)
	if err != nil {
		return errors.Wrap(err, "orbit: loading position data")
	}

	algo := orbit.NewPropagationAlgorithm(opts.Mu, opts.TotalTime, opts.TimeStep)
	p := pipeline.NewSequential[[]datafile.LocationRecord](algo)
	p, err = pipeline.Complete(p)
	if err != nil {
		return errors.Wrap(err, "orbit: building pipeline")
	}

	predicted, err := p.Run(seed)
	if err != nil {
		return errors.Wrap(err, "orbit: running pipeline")
	}

	df := datafile.New(spatial.Quaternion{}, predicted)
	if err := writeWithContext(ctx, opts.OutputForm, df); err != nil {
		return errors.Wrap(err, "orbit: writing output")
	}

	logging.Log.Info().Str("output", opts.OutputForm).Int("positions", len(predicted)).Msg("orbit propagation complete")
	return nil
}

// loadSeedPositions dispatches between a binary .found data file, the plain
// text position format, and a TLE seed. A leading "FOUN" magic selects the
// data file path directly; otherwise the file's first non-blank line is
// inspected: a line matching the TLE line 1 checksum format selects the TLE
// path, consuming the following line as line 2 and propagating to the
// current time for an initial state, and anything else is parsed as
// timestamp/position triples.
func loadSeedPositions(path string) ([]datafile.LocationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, found.Newf(found.IOFailure, "open position data: %v", err)
	}
	defer f.Close()

	magic := make([]byte, len(datafile.Magic))
	n, err := io.ReadFull(f, magic)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, found.Newf(found.IOFailure, "read position data: %v", err)
	}
	if n == len(magic) && bytes.Equal(magic, datafile.Magic[:]) {
		df, err := datafile.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return df.Positions, nil
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, found.Newf(found.IOFailure, "rewind position data: %v", err)
	}

	scanner := bufio.NewScanner(f)
	var line1, line2 string
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		line1 = text
		break
	}
	if scanner.Scan() {
		line2 = strings.TrimSpace(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, found.Newf(found.IOFailure, "read position data: %v", err)
	}

	if isTLELine1(line1) {
		record, err := orbit.TLEInitialState(line1, line2, timeNow())
		if err != nil {
			return nil, err
		}
		return []datafile.LocationRecord{record}, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, found.Newf(found.IOFailure, "rewind position data: %v", err)
	}
	return orbit.ParseTextPositions(f)
}

// timeNow is a seam so callers needing reproducible TLE propagation can be
// tested against a fixed clock; found's CLI always wants the wall clock.
var timeNow = time.Now

// isTLELine1 reports whether line matches the fixed-column TLE line 1
// format: 69 characters, starting with "1 ", ending in a mod-10 checksum
// over the preceding digits (treating '-' as 1, ignoring other characters).
func isTLELine1(line string) bool {
	if len(line) != 69 || !strings.HasPrefix(line, "1 ") {
		return false
	}
	sum := 0
	for _, c := range line[:68] {
		switch {
		case c >= '0' && c <= '9':
			sum += int(c - '0')
		case c == '-':
			sum++
		}
	}
	want := byte('0' + sum%10)
	return line[68] == want
}
