package qp

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	for _, tc := range encoderCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := new(bytes.Buffer)
			w := NewWriter(encoded)
			_, err := io.Copy(w, iotest.OneByteReader(bytes.NewReader(tc.input)))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			require.Equal(t, string(tc.expected), encoded.String())
		})
	}
}

func TestWriterHoldsLastLine(t *testing.T) {
	encoded := new(bytes.Buffer)
	w := NewWriter(encoded)

	n, err := w.Write([]byte("foo bar "))
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Empty(t, encoded.String())

	require.NoError(t, w.Close())
	require.Equal(t, "foo bar=20", encoded.String())
}

func TestWriterClosed(t *testing.T) {
	w := NewWriter(io.Discard)
	require.NoError(t, w.Close())

	_, err := w.Write([]byte("x"))
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, w.Close(), ErrClosed)
}

func TestWriterNil(t *testing.T) {
	w := NewWriter(nil)
	_, err := w.Write([]byte("x"))
	require.ErrorIs(t, err, errWriterNil)
}

func TestWriterReset(t *testing.T) {
	first := new(bytes.Buffer)
	w := NewWriter(first, WithLineLength(10))
	_, err := w.Write([]byte("abc "))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "abc=20", first.String())

	second := new(bytes.Buffer)
	w.Reset(second)
	_, err = w.Write([]byte("0123456789abc"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "012345678=\r\n9abc", second.String())
	require.Equal(t, "abc=20", first.String())
}

func TestWriterSinkError(t *testing.T) {
	errBroken := errors.New("broken sink")
	w := NewWriter(errWriter{errBroken}, WithLineLength(0))

	_, err := w.Write([]byte("abc"))
	require.ErrorIs(t, err, errBroken)
}

type errWriter struct {
	err error
}

func (w errWriter) Write([]byte) (int, error) {
	return 0, w.err
}
