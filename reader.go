package qp

import (
	"errors"
	"fmt"
	"io"
)

// Reader is an io.Reader that decodes the quoted-printable text read from a
// wrapped io.Reader.
type Reader struct {
	r   io.Reader
	dec *Decoder
	in  []byte
	out readBuffer
	err error
}

type ReaderOption func(r *Reader)

// WithBufferSize sets how many bytes are read from the source at a time.
func WithBufferSize(size int) ReaderOption {
	return func(r *Reader) {
		r.in = make([]byte, max(size, 1))
	}
}

// NewReader returns a new [Reader] decoding from r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	rd := &Reader{r: r, dec: NewDecoder()}

	for _, opt := range opts {
		opt(rd)
	}
	if rd.in == nil {
		rd.in = make([]byte, defaultReadBufSize)
	}

	return rd
}

// Decoder returns the underlying [Decoder], for its counters.
func (r *Reader) Decoder() *Decoder {
	return r.dec
}

// Read reads decoded octets into p. Errors of the source are returned
// wrapped with [ErrSource] after all octets decoded before them.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	for len(r.out.window()) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}

	n = copy(p, r.out.window())
	r.out.advance(n)
	return n, nil
}

func (r *Reader) fill() {
	n, err := r.r.Read(r.in)

	r.out.compact()
	r.out.buf = r.dec.Feed(r.out.buf, r.in[:n])

	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		r.out.buf = r.dec.Finish(r.out.buf)
		r.err = io.EOF
	default:
		r.err = fmt.Errorf("[qp] read encoded input: %w: %w", ErrSource, err)
	}
}
