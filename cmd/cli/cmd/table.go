// Package cmd - table command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"basecalc/core/table"
	"basecalc/internal/batch"
	"basecalc/internal/config"
	apperrors "basecalc/internal/errors"
	"basecalc/internal/logging"
)

type tableOptions struct {
	file     string
	maxSteps int
}

func newTableCmd() *cobra.Command {
	opts := &tableOptions{}

	tableCmd := &cobra.Command{
		Use:   "table [value:base ...]",
		Short: "Tabulate values in each other's bases",
		Long: `Convert every value into the base of every value and print the results
as a table, one row per value and one column per base.

Values come from a batch file, the arguments, or both; file values come first.

Examples:
  basecalc table 10,1:2 7:8 0,1:3
  basecalc table --file values.hcl
  basecalc table --file values.hcl --max-steps 8 FF:16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, args, opts)
		},
	}

	tableCmd.Flags().StringVar(&opts.file, "file", "", "HCL batch file of value blocks")
	tableCmd.Flags().IntVarP(&opts.maxSteps, "max-steps", "m", table.DefaultMaxSteps, "maximum fractional digits per cell")

	return tableCmd
}

func runTable(cmd *cobra.Command, args []string, opts *tableOptions) error {
	maxSteps := config.Get().Table.MaxSteps

	report := table.New()
	if opts.file != "" {
		f, err := batch.Load(opts.file)
		if err != nil {
			return apperrors.Wrap(apperrors.TypeParsing, "reading batch file", err).
				WithContext("file", opts.file)
		}
		if report, err = f.Report(); err != nil {
			return apperrors.Classify("reading batch file", err).WithContext("file", opts.file)
		}
		maxSteps = f.Steps(maxSteps)
	}
	if cmd.Flags().Changed("max-steps") {
		maxSteps = opts.maxSteps
	}

	for _, arg := range args {
		entry, err := table.ParseEntry(arg)
		if err != nil {
			return apperrors.Wrap(apperrors.TypeInput, "parsing "+arg, err)
		}
		if err := report.Add(entry.Value, entry.Base); err != nil {
			return apperrors.Classify("parsing "+arg, err)
		}
	}

	if len(report.Entries()) == 0 {
		return apperrors.New(apperrors.TypeInput, "no values given: pass value:base arguments or --file")
	}

	logging.Debug("tabulating",
		zap.Int("values", len(report.Entries())),
		zap.Int("max_steps", maxSteps),
	)

	if err := report.Render(newWriter(cmd), maxSteps); err != nil {
		return apperrors.Classify("tabulating", err)
	}
	return nil
}
