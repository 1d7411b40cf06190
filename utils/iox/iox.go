// File: iox.go
// Title: Stream Helpers
// Description: Reads streams in fixed-size chunks and materializes whole streams
//              into memory. Temporary buffers are pooled and always returned to
//              the pool, including on error paths.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package iox

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"sync"

	mdwerror "github.com/msto63/mdwx/core/error"
)

const (
	// DefaultChunkSize is the chunk size used when none is configured
	DefaultChunkSize = 4096

	// maxPooledBufferSize keeps very large buffers out of the pool
	maxPooledBufferSize = 1 << 20
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// ReadChunks returns a sequence of successive chunks read from r. Every chunk
// holds exactly size bytes except possibly the last one, so a stream of n
// bytes yields ceil(n/size) chunks. Each chunk is a freshly allocated slice.
// A read failure is yielded once as the error of the final pair.
func ReadChunks(r io.Reader, size int) (iter.Seq2[[]byte, error], error) {
	if r == nil {
		return nil, mdwerror.ArgumentMissing("reader")
	}
	if size <= 0 {
		return nil, mdwerror.OutOfRange("size", size)
	}

	return func(yield func([]byte, error) bool) {
		for {
			chunk := make([]byte, size)
			n, err := io.ReadFull(r, chunk)
			if n > 0 && !yield(chunk[:n], nil) {
				return
			}

			switch {
			case err == nil:
			case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
				return
			default:
				yield(nil, mdwerror.Wrap(err, "error reading chunk").
					WithCode(mdwerror.CodeIOError).
					WithOperation("ReadChunks"))
				return
			}
		}
	}, nil
}

// ReadAll reads r until EOF and returns the data. An empty stream yields an
// empty, non-nil slice.
func ReadAll(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, mdwerror.ArgumentMissing("reader")
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer releaseBuffer(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, mdwerror.Wrap(err, "error reading stream").
			WithCode(mdwerror.CodeIOError).
			WithOperation("ReadAll")
	}

	data := make([]byte, buf.Len())
	copy(data, buf.Bytes())
	return data, nil
}

// ReadAllString is ReadAll returning the data as a string
func ReadAllString(r io.Reader) (string, error) {
	data, err := ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
