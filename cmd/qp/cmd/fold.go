package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mnightingale/qp"
)

func newFoldCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fold",
		Short: "Re-wrap quoted-printable input to the line length",
		Long: `Re-wrap quoted-printable input to the line length without decoding it.
Existing soft line breaks are replaced, hard line breaks are kept.
A line length of 0 selects the default of 76.`,
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

			text, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			folded := qp.Fold(string(text), o.lineLength)
			if _, err := io.WriteString(out, folded); err != nil {
				return err
			}

			o.log.Debug("folded", "consumed", len(text), "produced", len(folded), "line_length", o.lineLength)
			return nil
		},
	}
}
