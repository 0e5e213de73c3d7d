package datafile

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/UWCubeSat/found/internal/found"
	"github.com/UWCubeSat/found/internal/spatial"
)

// computeCRC hashes the first crcSize bytes of header (magic, version,
// num_positions) with the CRC-32 IEEE polynomial, matching the on-disk
// checksum contract.
func computeCRC(header [crcSize]byte) uint32 {
	return crc32.ChecksumIEEE(header[:])
}

// Write serialises df to w in the on-disk big-endian layout, recomputing
// Header.NumPositions and Header.CRC from df's current contents.
func Write(w io.Writer, df *DataFile) error {
	df.Header.Version = CurrentVersion
	df.Header.NumPositions = uint32(len(df.Positions))

	var crcInput [crcSize]byte
	copy(crcInput[0:4], Magic[:])
	binary.BigEndian.PutUint32(crcInput[4:8], df.Header.Version)
	binary.BigEndian.PutUint32(crcInput[8:12], df.Header.NumPositions)
	df.Header.CRC = computeCRC(crcInput)

	buf := make([]byte, headerSize+len(df.Positions)*locationRecordSize)
	copy(buf[0:4], Magic[:])
	binary.BigEndian.PutUint32(buf[4:8], df.Header.Version)
	binary.BigEndian.PutUint32(buf[8:12], df.Header.NumPositions)
	binary.BigEndian.PutUint32(buf[12:16], df.Header.CRC)
	putFloat64(buf[16:24], df.RelativeAttitude.Real)
	putFloat64(buf[24:32], df.RelativeAttitude.I)
	putFloat64(buf[32:40], df.RelativeAttitude.J)
	putFloat64(buf[40:48], df.RelativeAttitude.K)

	offset := headerSize
	for _, rec := range df.Positions {
		putFloat64(buf[offset:offset+8], rec.Position.X)
		putFloat64(buf[offset+8:offset+16], rec.Position.Y)
		putFloat64(buf[offset+16:offset+24], rec.Position.Z)
		putFloat64(buf[offset+24:offset+32], rec.Timestamp)
		offset += locationRecordSize
	}

	_, err := w.Write(buf)
	return err
}

// WriteFile atomically replaces path with df's serialized contents: it
// writes to a temporary file in the same directory and renames it into
// place, so a failed or interrupted write never leaves a truncated or
// partially-written data file at path.
func WriteFile(path string, df *DataFile) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return found.Newf(found.IOFailure, "create temp data file: %v", err)
	}
	tmpPath := tmp.Name()

	if err := Write(tmp, df); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return found.Newf(found.IOFailure, "write data file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return found.Newf(found.IOFailure, "close temp data file: %v", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return found.Newf(found.IOFailure, "rename temp data file: %v", err)
	}
	return nil
}

// Read deserializes a DataFile from r, validating the magic, the checksum,
// and the declared version.
func Read(r io.Reader) (*DataFile, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, found.New(found.InvalidHeader, "data file shorter than the 48-byte header")
		}
		return nil, found.Newf(found.IOFailure, "read data file header: %v", err)
	}

	if !bytes.Equal(header[0:4], Magic[:]) {
		return nil, found.New(found.InvalidMagic, "data file does not begin with FOUN")
	}

	version := binary.BigEndian.Uint32(header[4:8])
	if version != CurrentVersion {
		return nil, found.Newf(found.InvalidVersion, "unsupported data file version %d", version)
	}
	numPositions := binary.BigEndian.Uint32(header[8:12])
	crc := binary.BigEndian.Uint32(header[12:16])

	var crcInput [crcSize]byte
	copy(crcInput[:], header[0:crcSize])
	if computeCRC(crcInput) != crc {
		return nil, found.New(found.ChecksumMismatch, "data file header checksum does not match")
	}

	attitude := spatial.Quaternion{
		Real: getFloat64(header[16:24]),
		I:    getFloat64(header[24:32]),
		J:    getFloat64(header[32:40]),
		K:    getFloat64(header[40:48]),
	}

	positions := make([]LocationRecord, numPositions)
	record := make([]byte, locationRecordSize)
	for i := range positions {
		if _, err := io.ReadFull(r, record); err != nil {
			return nil, found.Newf(found.IOFailure, "read location record %d: %v", i, err)
		}
		positions[i] = LocationRecord{
			Position: spatial.Vec3{
				X: getFloat64(record[0:8]),
				Y: getFloat64(record[8:16]),
				Z: getFloat64(record[16:24]),
			},
			Timestamp: getFloat64(record[24:32]),
		}
	}

	return &DataFile{
		Header: Header{
			Version:      version,
			NumPositions: numPositions,
			CRC:          crc,
		},
		RelativeAttitude: attitude,
		Positions:        positions,
	}, nil
}

// ReadFile opens path and deserializes a DataFile from it.
func ReadFile(path string) (*DataFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, found.Newf(found.IOFailure, "open data file: %v", err)
	}
	defer f.Close()
	return Read(f)
}

func putFloat64(dst []byte, v float64) {
	binary.BigEndian.PutUint64(dst, math.Float64bits(v))
}

func getFloat64(src []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(src))
}
