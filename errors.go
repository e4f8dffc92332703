package qp

import (
	"errors"
)

var (
	// ErrSource marks failures of the io.Reader a [Reader] pulls encoded
	// text from. The codec itself never fails: malformed input is decoded
	// leniently.
	ErrSource = errors.New("upstream source failure")

	// ErrClosed is returned when writing to a [Writer] after Close.
	ErrClosed = errors.New("writer is closed")

	errWriterNil = errors.New("writer is nil")
)
