package qp

import (
	"fmt"
	"io"
	"sync"
)

// Writer is an io.WriteCloser that quoted-printable encodes everything
// written to it and writes the result to a wrapped io.Writer.
type Writer struct {
	w   io.Writer
	enc *Encoder
	buf []byte

	closed  bool
	writeMu sync.Mutex
}

// NewWriter returns a new [Writer].
// Writes to the returned writer are quoted-printable encoded and written to w.
//
// It is the caller's responsibility to call Close on the [Writer] when done,
// the last encoded line is held back until then.
func NewWriter(w io.Writer, opts ...EncoderOption) *Writer {
	return &Writer{
		w:   w,
		enc: NewEncoder(opts...),
	}
}

// Reset discards the [Writer] wr's state and makes it equivalent to the
// result of its original state from [NewWriter], but writing to w instead.
// This permits reusing a [Writer] rather than allocating a new one.
func (wr *Writer) Reset(w io.Writer) {
	wr.writeMu.Lock()
	defer wr.writeMu.Unlock()

	wr.w = w
	wr.enc.Reset()
	wr.closed = false
}

// Write writes a quoted-printable encoded form of p to the underlying
// [io.Writer]. The encoded bytes are not necessarily flushed until the
// [Writer] is closed.
func (wr *Writer) Write(p []byte) (n int, err error) {
	wr.writeMu.Lock()
	defer wr.writeMu.Unlock()

	if wr.closed {
		return 0, ErrClosed
	}
	if wr.w == nil {
		return 0, errWriterNil
	}

	if grow := MaxLength(len(p), wr.enc.lineLength); cap(wr.buf) < grow {
		wr.buf = make([]byte, 0, grow)
	}

	wr.buf = wr.enc.Feed(wr.buf[:0], p)
	if err := wr.emit(); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Close flushes any pending output from the encoder.
// It is an error to call Write after calling Close.
func (wr *Writer) Close() error {
	wr.writeMu.Lock()
	defer wr.writeMu.Unlock()

	if wr.closed {
		return ErrClosed
	}
	if wr.w == nil {
		return errWriterNil
	}
	wr.closed = true

	wr.buf = wr.enc.Finish(wr.buf[:0])
	return wr.emit()
}

func (wr *Writer) emit() error {
	if len(wr.buf) == 0 {
		return nil
	}
	if _, err := wr.w.Write(wr.buf); err != nil {
		return fmt.Errorf("[qp] write encoded output: %w", err)
	}
	return nil
}
