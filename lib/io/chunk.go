package iolib

import (
	"io"

	"github.com/pkg/errors"
)

// DefaultChunkSize is the read size used when none is given.
const DefaultChunkSize uint = 1024

// CopyChunked copies r into w with reads of at most chunkSize bytes,
// looping until r reports io.EOF. A single read is never assumed to drain r.
func CopyChunked(w io.Writer, r io.Reader, chunkSize uint) (uint, error) {
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}

	buf := make([]byte, chunkSize)
	total := uint(0)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			written, werr := WriteFull(w, buf[:n])
			total += written
			if werr != nil {
				return total, errors.Wrap(werr, "writing chunk")
			}
		}

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, errors.Wrap(err, "reading chunk")
		}
	}
}

// ReadChunked reads r until io.EOF using [CopyChunked].
func ReadChunked(r io.Reader, chunkSize uint) ([]byte, error) {
	var buf chunkBuffer
	_, err := CopyChunked(&buf, r, chunkSize)
	return buf.b, err
}

type chunkBuffer struct{ b []byte }

func (cb *chunkBuffer) Write(p []byte) (int, error) {
	cb.b = append(cb.b, p...)
	return len(p), nil
}

// EOFOnError wraps r so that any read error is reported as io.EOF.
// Bytes returned together with the error are kept.
func EOFOnError(r io.Reader) io.Reader { return &eofOnError{r: r} }

type eofOnError struct {
	r    io.Reader
	done bool
}

func (e *eofOnError) Read(p []byte) (n int, err error) {
	if e.done {
		return 0, io.EOF
	}

	n, err = e.r.Read(p)
	if err != nil {
		e.done = true
		err = io.EOF
	}
	return n, err
}
