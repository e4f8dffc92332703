package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mnightingale/qp"
)

func newDecodeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Decode quoted-printable input",
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

			r := qp.NewReader(in)
			n, err := io.Copy(out, r)
			if err != nil {
				return err
			}

			o.log.Debug("decoded", "consumed", r.Decoder().Consumed(), "produced", n)
			return nil
		},
	}
}
