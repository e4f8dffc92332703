package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mnightingale/qp"
)

// options are the flags shared by every subcommand.
type options struct {
	lineLength int
	input      string
	output     string
	verbose    bool

	log *slog.Logger
}

// NewRootCommand builds the qp command tree.
func NewRootCommand() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:           "qp",
		Short:         "Quoted-printable encoding and decoding",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if o.verbose {
				level = slog.LevelDebug
			}
			o.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&o.lineLength, "line-length", "l", qp.DefaultLineLength, "maximum encoded line length, 0 disables wrapping")
	flags.StringVarP(&o.input, "input", "i", "", "read from this file instead of stdin")
	flags.StringVarP(&o.output, "output", "o", "", "write to this file instead of stdout")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information to stderr")

	rootCmd.AddCommand(
		newEncodeCommand(o),
		newDecodeCommand(o),
		newFoldCommand(o),
		newReencodeCommand(o),
	)

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// open returns the input and output streams selected by the flags.
func (o *options) open(cmd *cobra.Command) (io.Reader, io.Writer, func() error, error) {
	var (
		in      io.Reader = cmd.InOrStdin()
		out     io.Writer = cmd.OutOrStdout()
		closers []io.Closer
	)

	closeAll := func() error {
		var first error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	if o.input != "" {
		f, err := os.Open(o.input)
		if err != nil {
			return nil, nil, nil, err
		}
		in = f
		closers = append(closers, f)
	}

	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			_ = closeAll()
			return nil, nil, nil, err
		}
		out = f
		closers = append(closers, f)
	}

	return in, out, closeAll, nil
}

// lineOption translates the line-length flag into an encoder option.
func (o *options) lineOption() qp.EncoderOption {
	return qp.WithLineLength(o.lineLength)
}
