package datafile

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/UWCubeSat/found/internal/found"
	"github.com/UWCubeSat/found/internal/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataFile() *DataFile {
	return New(
		spatial.Quaternion{Real: 0, I: 1.2346e8, J: 9.8765e8, K: 1.1111e8},
		[]LocationRecord{
			{Timestamp: 1.618e8, Position: spatial.Vec3{X: 100, Y: 200, Z: 300}},
			{Timestamp: 2.718e8, Position: spatial.Vec3{X: -100, Y: -200, Z: -300}},
		},
	)
}

// TestDataFileRoundTrip reproduces the "Datafile-roundtrip" scenario and
// testable property #6.
func TestDataFileRoundTrip(t *testing.T) {
	df := sampleDataFile()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, df))

	got, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, df.Header.Version, got.Header.Version)
	assert.Equal(t, df.Header.NumPositions, got.Header.NumPositions)
	assert.Equal(t, df.RelativeAttitude, got.RelativeAttitude)
	assert.Equal(t, df.Positions, got.Positions)
}

// TestDataFileChecksumMismatch reproduces testable property #7: flipping a
// byte in the checksummed region of the header invalidates it.
func TestDataFileChecksumMismatch(t *testing.T) {
	df := sampleDataFile()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, df))
	raw := buf.Bytes()

	raw[9] ^= 0xFF

	_, err := Read(bytes.NewReader(raw))
	require.Error(t, err)

	var fe *found.Error
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Kind == found.ChecksumMismatch || fe.Kind == found.InvalidMagic)
}

func TestDataFileInvalidMagic(t *testing.T) {
	df := sampleDataFile()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, df))
	raw := buf.Bytes()
	raw[0] = 'X'

	_, err := Read(bytes.NewReader(raw))
	require.Error(t, err)
	var fe *found.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, found.InvalidMagic, fe.Kind)
}

func TestDataFileTooShort(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{'F', 'O', 'U', 'N'}))
	require.Error(t, err)
	var fe *found.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, found.InvalidHeader, fe.Kind)
}

func TestWriteFileIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.found")
	df := sampleDataFile()

	require.NoError(t, WriteFile(path, df))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, df.Positions, got.Positions)

	entries, err := filepath.Glob(filepath.Join(dir, "*.tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file should not survive a successful write")
}

func TestDataFileUnsupportedVersion(t *testing.T) {
	df := sampleDataFile()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, df))
	raw := buf.Bytes()

	// Bump the version and recompute the checksum so only the version check
	// trips, not the checksum.
	raw[7] = 2
	var crcInput [crcSize]byte
	copy(crcInput[:], raw[0:crcSize])
	newCRC := computeCRC(crcInput)
	raw[12] = byte(newCRC >> 24)
	raw[13] = byte(newCRC >> 16)
	raw[14] = byte(newCRC >> 8)
	raw[15] = byte(newCRC)

	_, err := Read(bytes.NewReader(raw))
	require.Error(t, err)
	var fe *found.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, found.InvalidVersion, fe.Kind)
}
