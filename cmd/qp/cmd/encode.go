package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mnightingale/qp"
)

func newEncodeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Encode input as quoted-printable text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in, out, closeAll, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeAll(); err == nil {
					err = cerr
				}
			}()

			w := qp.NewWriter(out, o.lineOption())
			n, err := io.Copy(w, in)
			if err != nil {
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}

			o.log.Debug("encoded", "consumed", n, "line_length", o.lineLength)
			return nil
		},
	}
}
