// Package cmd provides the CLI commands for basecalc.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"basecalc/core/ui"
	"basecalc/internal/config"
	apperrors "basecalc/internal/errors"
	"basecalc/internal/logging"
)

// version is overridden at build time with -ldflags "-X basecalc/cmd/cli/cmd.version=..."
var version = "0.1.0"

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	cfgFile string
	verbose bool
	noColor bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "basecalc",
		Short: "Convert numbers between bases and show the working",
		Long: `basecalc converts numbers between bases 2 through 36 and prints every
step of the conversion: place-value expansion, repeated division, and
repeated multiplication of the fractional part.

A value is written as integer digits, optionally followed by a comma and
fractional digits. Digits above 9 are the letters A-Z.

Examples:
  basecalc convert 4D2 --from 16 --to 10
  basecalc convert 10,125 --from 8 --to 2
  basecalc table 10,1:2 7:8 0,1:3
  basecalc table --file values.hcl
  basecalc serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file, YAML or JSON (default is none)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func initConfig(opts *globalOptions) error {
	cfg := config.Default()
	if opts.cfgFile != "" {
		loaded, err := config.Load(opts.cfgFile)
		if err != nil {
			return apperrors.Wrap(apperrors.TypeConfig, "loading config", err).
				WithContext("file", opts.cfgFile)
		}
		cfg = loaded
	}
	if opts.noColor {
		cfg.Output.NoColor = true
	}
	config.Set(cfg)

	logCfg := cfg.Logging
	if opts.verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		return apperrors.Wrap(apperrors.TypeConfig, "initializing logging", err)
	}
	return nil
}

// newWriter returns a UI writer on the command's output honoring the config
func newWriter(cmd *cobra.Command) *ui.Writer {
	return ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "basecalc version %s\n", version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(config.Get())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Default().Save(path); err != nil {
				return apperrors.Wrap(apperrors.TypeConfig, "writing config", err).WithContext("file", path)
			}
			newWriter(cmd).Success("Wrote %s", path)
			return nil
		},
	})

	return configCmd
}
