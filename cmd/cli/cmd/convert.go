// Package cmd - convert command
package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"basecalc/core/conversion"
	"basecalc/core/output"
	"basecalc/internal/config"
	apperrors "basecalc/internal/errors"
	"basecalc/internal/logging"
)

type convertOptions struct {
	from     int
	to       int
	maxSteps int
	quiet    bool
	places   int32
	format   string
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	convertCmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value from one base to another",
		Long: `Convert a value between bases and print every step.

The value is integer digits with an optional comma and fractional digits.
A fractional part is expanded for at most --max-steps digits and truncated.

Examples:
  basecalc convert 4D2 --from 16 --to 10
  basecalc convert 10,125 --from 8 --to 2
  basecalc convert 0,1 --from 3 --to 10 --decimal 8
  basecalc convert 3247,875 --from 10 --to 2 --quiet
  basecalc convert FF --from 16 --to 8 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if !cmd.Flags().Changed("max-steps") {
				opts.maxSteps = cfg.Conversion.MaxSteps
			}
			if !cmd.Flags().Changed("decimal") {
				opts.places = cfg.Conversion.DecimalPlaces
			}
			if !cfg.Output.ShowSteps {
				opts.quiet = true
			}
			return runConvert(cmd, args[0], opts)
		},
	}

	convertCmd.Flags().IntVarP(&opts.from, "from", "f", 10, "base of the input value (2-36)")
	convertCmd.Flags().IntVarP(&opts.to, "to", "t", 2, "base to convert to (2-36)")
	convertCmd.Flags().IntVarP(&opts.maxSteps, "max-steps", "m", conversion.DefaultMaxSteps, "maximum fractional digits to produce")
	convertCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the result")
	convertCmd.Flags().Int32Var(&opts.places, "decimal", 0, "also print the decimal value rounded to this many places")
	convertCmd.Flags().StringVarP(&opts.format, "format", "o", string(output.FormatText), "output format (text, json)")

	return convertCmd
}

func runConvert(cmd *cobra.Command, input string, opts *convertOptions) error {
	startTime := time.Now()
	req := conversion.Request{
		Input:      input,
		InputBase:  opts.from,
		OutputBase: opts.to,
		MaxSteps:   opts.maxSteps,
	}

	logging.Debug("converting",
		zap.String("input", req.Input),
		zap.Int("from", req.InputBase),
		zap.Int("to", req.OutputBase),
		zap.Int("max_steps", req.MaxSteps),
	)

	trace, err := conversion.Convert(req)
	if err != nil {
		return apperrors.Classify("converting "+input, err).
			WithContext("from", opts.from).
			WithContext("to", opts.to)
	}

	logging.Debug("converted",
		zap.String("result", trace.Result()),
		zap.Int("steps", trace.Len()),
		zap.Duration("duration", time.Since(startTime)),
	)

	formatter, err := output.Get(output.Format(opts.format), output.Options{
		NoColor: config.Get().Output.NoColor,
		Quiet:   opts.quiet,
	})
	if err != nil {
		return apperrors.Wrap(apperrors.TypeInput, "selecting output", err)
	}

	result := output.NewConversion(input, opts.from, opts.to, trace)
	if opts.places > 0 {
		value, err := conversion.DecimalValue(req.Input, req.InputBase, opts.places)
		if err != nil {
			return apperrors.Classify("computing decimal value", err)
		}
		result.Decimal = value.StringFixed(opts.places)
	}
	return formatter.Render(cmd.OutOrStdout(), result)
}
