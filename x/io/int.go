package io

import (
	"encoding/binary"
	"errors"
	"io"
)

var (
	errBufferTooSmall = errors.New("buffer too small")
	errValueTooLarge  = errors.New("value too large")
)

// WriteVarint writes an integer into an io.Writer.
func WriteVarint(writer io.Writer, v int64) error {
	var buf [binary.MaxVarintLen64]byte
	size := binary.PutVarint(buf[:], v)
	_, err := writer.Write(buf[:size])
	return err
}

// ReadVarint reads an integer from a byte slice.
func ReadVarint(data []byte) (n int64, bytesRead int, err error) {
	n, bytesRead = binary.Varint(data)
	if bytesRead > 0 {
		return n, bytesRead, nil
	}
	if bytesRead == 0 {
		return 0, 0, errBufferTooSmall
	}
	return 0, 0, errValueTooLarge
}

// ReadVarints reads len(dst) consecutive integers from a byte slice.
func ReadVarints(data []byte, dst ...*int64) (bytesRead int, err error) {
	for _, v := range dst {
		n, read, err := ReadVarint(data[bytesRead:])
		if err != nil {
			return 0, err
		}
		*v = n
		bytesRead += read
	}
	return bytesRead, nil
}
