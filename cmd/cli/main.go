// Package main is the entry point for the basecalc CLI.
package main

import (
	"os"

	"go.uber.org/zap"

	"basecalc/cmd/cli/cmd"
	"basecalc/core/ui"
	apperrors "basecalc/internal/errors"
	"basecalc/internal/logging"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		e := apperrors.Classify("basecalc", err)
		if e.Type == apperrors.TypeInternal {
			logging.Error("unexpected failure", zap.Error(err))
		}
		ui.NewWriter(os.Stderr, false).Error("%v", e)
		logging.Sync()
		os.Exit(e.ExitCode())
	}
	logging.Sync()
}
