package digest

import (
	"bufio"
	"io"
	"os"

	"github.com/m3db/stackadler32"
)

// FdWithDigestWriter provides a buffered writer for writing to the underlying file.
type FdWithDigestWriter interface {
	io.WriteCloser

	// Reset resets the writer to write to a new file.
	Reset(fd *os.File)

	// Digest returns the checksum of the bytes written since the last reset.
	Digest() uint32

	// Flush flushes buffered bytes to the file.
	Flush() error
}

// FileWithDigestWriter writes data to a file and computes the data checksum in a
// streaming fashion. The checksum is appended to the file on close.
type FileWithDigestWriter struct {
	fd        *os.File
	digest    stackadler32.Digest
	writer    *bufio.Writer
	digestBuf Buffer
}

// NewFdWithDigestWriter creates a new FdWithDigestWriter.
func NewFdWithDigestWriter(bufferSize int) *FileWithDigestWriter {
	return &FileWithDigestWriter{
		digest:    NewDigest(),
		writer:    bufio.NewWriterSize(nil, bufferSize),
		digestBuf: NewBuffer(),
	}
}

// Reset resets the writer.
func (w *FileWithDigestWriter) Reset(fd *os.File) {
	w.fd = fd
	w.digest = NewDigest()
	w.writer.Reset(fd)
}

// Write bytes to the underlying file.
func (w *FileWithDigestWriter) Write(b []byte) (int, error) {
	written, err := w.writer.Write(b)
	if err != nil {
		return 0, err
	}
	w.digest = w.digest.Update(b)
	return written, nil
}

// Digest returns the checksum of the bytes written since the last reset.
func (w *FileWithDigestWriter) Digest() uint32 { return w.digest.Sum32() }

// Close writes the final checksum to file, flushes what's remaining in
// the buffered writer, and closes the underlying file.
func (w *FileWithDigestWriter) Close() error {
	if w.fd == nil {
		return nil
	}
	if err := w.writeDigest(); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	err := w.fd.Close()
	w.fd = nil
	return err
}

// Flush flushes what's remaining in the buffered writes.
func (w *FileWithDigestWriter) Flush() error {
	return w.writer.Flush()
}

func (w *FileWithDigestWriter) writeDigest() error {
	w.digestBuf.WriteDigest(w.Digest())
	_, err := w.writer.Write(w.digestBuf)
	return err
}
