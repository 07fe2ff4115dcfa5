package fs

import (
	"encoding/binary"

	"github.com/xichen2020/geosearch/geo"
	"github.com/xichen2020/geosearch/segment"
)

const (
	segmentDirPrefix   = "segment"
	infoFileName       = "info"
	recordsFileName    = "records"
	checkpointFileName = "checkpoint"
	segmentFileSuffix  = ".db"
	separator          = "-"

	// Each record is encoded as a doc ID followed by the x, y and z coordinates.
	recordSizeBytes = 16
)

var (
	endianness = binary.LittleEndian
)

func encodeRecord(b []byte, r segment.Record) {
	endianness.PutUint32(b, uint32(r.DocID))
	endianness.PutUint32(b[4:], uint32(r.Coordinate.X))
	endianness.PutUint32(b[8:], uint32(r.Coordinate.Y))
	endianness.PutUint32(b[12:], uint32(r.Coordinate.Z))
}

func decodeDocID(b []byte) int32 {
	return int32(endianness.Uint32(b))
}

func decodeRecord(b []byte) segment.Record {
	return segment.Record{
		DocID: decodeDocID(b),
		Coordinate: geo.CartesianCoordinate{
			X: int32(endianness.Uint32(b[4:])),
			Y: int32(endianness.Uint32(b[8:])),
			Z: int32(endianness.Uint32(b[12:])),
		},
	}
}
