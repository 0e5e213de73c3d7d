// Package datafile reads and writes found's on-disk position data files:
// a fixed header (magic, version, record count, checksum), a relative
// attitude quaternion, and a sequence of timed position records.
package datafile

import (
	"github.com/UWCubeSat/found/internal/spatial"
)

// Magic is the four-byte value every data file begins with.
var Magic = [4]byte{'F', 'O', 'U', 'N'}

// CurrentVersion is the version this package writes and the only version it
// currently reads.
const CurrentVersion uint32 = 1

// headerSize is the number of bytes preceding the first LocationRecord:
// magic (4) + version (4) + num_positions (4) + crc (4) + attitude (32).
const headerSize = 48

// crcSize is the number of header bytes the CRC is computed over: magic,
// version, and num_positions, but not the CRC field itself.
const crcSize = 12

// locationRecordSize is the on-disk size of one LocationRecord: three f64
// position components plus an f64 timestamp.
const locationRecordSize = 32

// Header is the fixed-size preamble of a data file.
type Header struct {
	Version      uint32
	NumPositions uint32
	CRC          uint32
}

// LocationRecord is a single timestamped position.
type LocationRecord struct {
	Timestamp float64
	Position  spatial.Vec3
}

// DataFile is the full contents of a position data file: a header, the
// relative attitude computed at calibration time, and the sequence of
// position records.
type DataFile struct {
	Header           Header
	RelativeAttitude spatial.Quaternion
	Positions        []LocationRecord
}

// New builds a DataFile from a relative attitude and its positions, filling
// in Header.Version and Header.NumPositions (CRC is computed at Write time).
func New(relativeAttitude spatial.Quaternion, positions []LocationRecord) *DataFile {
	return &DataFile{
		Header: Header{
			Version:      CurrentVersion,
			NumPositions: uint32(len(positions)),
		},
		RelativeAttitude: relativeAttitude,
		Positions:        positions,
	}
}
