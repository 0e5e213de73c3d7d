package orbit

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextPositions_ValidFile(t *testing.T) {
	input := "0 100 200 300\n10.5 150 250 350\n"
	records, err := ParseTextPositions(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 0.0, records[0].Timestamp)
	assert.Equal(t, 100.0, records[0].Position.X)
	assert.Equal(t, 10.5, records[1].Timestamp)
	assert.Equal(t, 350.0, records[1].Position.Z)
}

func TestParseTextPositions_BlankLinesAreSkipped(t *testing.T) {
	input := "0 1 2 3\n\n   \n1 4 5 6\n"
	records, err := ParseTextPositions(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseTextPositions_MisformattedLineFails(t *testing.T) {
	input := "0 1 2 3\nnot enough fields\n"
	_, err := ParseTextPositions(strings.NewReader(input))
	require.Error(t, err)
}

func TestParseTextPositions_NonNumericFieldFails(t *testing.T) {
	input := "0 1 2 abc\n"
	_, err := ParseTextPositions(strings.NewReader(input))
	require.Error(t, err)
}

func TestParseTextPositions_EmptyFileFails(t *testing.T) {
	_, err := ParseTextPositions(strings.NewReader(""))
	require.Error(t, err)
}

// TestTLEInitialState_ISS uses a representative ISS two-line element set to
// confirm the SGP4 path yields a position at roughly low-Earth-orbit
// altitude (not a zero vector or an error).
func TestTLEInitialState_ISS(t *testing.T) {
	line1 := "1 25544U 98067A   21275.52068287  .00001764  00000-0  40234-4 0  9993"
	line2 := "2 25544  51.6442 127.8022 0004445 128.9442  99.8277 15.48685836304370"

	rec, err := TLEInitialState(line1, line2, time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	altitude := rec.Position.Magnitude()
	assert.Greater(t, altitude, 6_600_000.0)
	assert.Less(t, altitude, 7_200_000.0)
}
