package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mnightingale/qp"
)

func newReencodeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reencode",
		Short: "Decode quoted-printable input and encode it again",
		Long: `Decode quoted-printable input and encode it again with the line length,
normalising escapes and whitespace from other producers.`,
		Args: cobra.NoArgs,
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

			if err := qp.Reencode(cmd.Context(), out, in, o.lineOption()); err != nil {
				return err
			}

			o.log.Debug("reencoded", "line_length", o.lineLength)
			return nil
		},
	}
}
