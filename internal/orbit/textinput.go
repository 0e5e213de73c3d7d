package orbit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	gosatellite "github.com/joshuaferrara/go-satellite"

	"github.com/UWCubeSat/found/internal/datafile"
	"github.com/UWCubeSat/found/internal/found"
	"github.com/UWCubeSat/found/internal/spatial"
)

// ParseTextPositions reads the fallback text position format: one record
// per line, "timestamp posX posY posZ" separated by whitespace. A
// mis-formatted line fails the whole load.
func ParseTextPositions(r io.Reader) ([]datafile.LocationRecord, error) {
	var records []datafile.LocationRecord

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, found.Newf(found.InvalidArgument, "line %d: expected 4 whitespace-separated fields, got %d", lineNo, len(fields))
		}

		values := make([]float64, 4)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, found.Newf(found.InvalidArgument, "line %d: field %d %q is not a number", lineNo, i+1, f)
			}
			values[i] = v
		}

		records = append(records, datafile.LocationRecord{
			Timestamp: values[0],
			Position:  spatial.Vec3{X: values[1], Y: values[2], Z: values[3]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, found.Newf(found.IOFailure, "read text position file: %v", err)
	}
	if len(records) == 0 {
		return nil, found.New(found.InvalidArgument, "text position file contained no records")
	}
	return records, nil
}

// kmToM converts the kilometre-scaled output go-satellite's SGP4
// implementation produces into found's metre-scaled convention.
const kmToM = 1000

// TLEInitialState propagates a two-line element set to time t via SGP4 and
// returns the resulting position as a LocationRecord, supplementing the
// plain text position format with a TLE-seeded initial state.
func TLEInitialState(line1, line2 string, t time.Time) (datafile.LocationRecord, error) {
	sat := gosatellite.TLEToSat(line1, line2, gosatellite.GravityWGS84)

	pos, _, err := propagate(sat, t)
	if err != nil {
		return datafile.LocationRecord{}, err
	}

	return datafile.LocationRecord{
		Timestamp: float64(t.Unix()),
		Position:  spatial.Vec3{X: pos.X * kmToM, Y: pos.Y * kmToM, Z: pos.Z * kmToM},
	}, nil
}

func propagate(sat gosatellite.Satellite, t time.Time) (gosatellite.Vector3, gosatellite.Vector3, error) {
	pos, vel := gosatellite.Propagate(sat, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	if pos.X == 0 && pos.Y == 0 && pos.Z == 0 {
		return pos, vel, found.New(found.InvalidArgument, fmt.Sprintf("SGP4 propagation at %s returned a degenerate position", t))
	}
	return pos, vel, nil
}
