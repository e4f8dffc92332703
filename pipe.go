package qp

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// Reencode decodes the quoted-printable text read from src and writes it to
// dst encoded again with opts, typically to change the line length or to
// normalise text from a non-conformant producer. Decoding and encoding run
// concurrently.
//
// Cancelling ctx aborts the transfer, though a Read of src that is already
// blocked is not interrupted.
func Reencode(ctx context.Context, dst io.Writer, src io.Reader, opts ...EncoderOption) error {
	pr, pw := io.Pipe()

	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, func() {
		err := context.Cause(gctx)
		_ = pr.CloseWithError(err)
		_ = pw.CloseWithError(err)
	})
	defer stop()

	g.Go(func() error {
		_, err := io.Copy(pw, NewReader(src))
		_ = pw.CloseWithError(err)
		return err
	})

	g.Go(func() error {
		w := NewWriter(dst, opts...)
		if _, err := io.Copy(w, pr); err != nil {
			_ = pr.CloseWithError(err)
			return err
		}
		return w.Close()
	})

	err := g.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
