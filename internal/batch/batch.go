// Package batch reads table entries from HCL files.
//
// A batch file lists the values to tabulate:
//
//	max_steps = 4
//
//	value "10,125" {
//	  base = 8
//	}
package batch

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"basecalc/core/table"
)

// File is the decoded form of a batch file
type File struct {
	MaxSteps *int    `hcl:"max_steps,optional"`
	Values   []Value `hcl:"value,block"`
}

// Value is one value block
type Value struct {
	Digits string `hcl:"digits,label"`
	Base   int    `hcl:"base"`
}

// Load reads and decodes the batch file at path
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes src; filename is used only in diagnostics
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, diagError(diags)
	}
	if f.MaxSteps != nil && *f.MaxSteps < 0 {
		return nil, fmt.Errorf("%s: max_steps must not be negative, got %d", filename, *f.MaxSteps)
	}
	return &f, nil
}

// Report builds a table report from the file's values in order
func (f *File) Report() (*table.Report, error) {
	report := table.New()
	for i, v := range f.Values {
		if err := report.Add(v.Digits, v.Base); err != nil {
			return nil, fmt.Errorf("value %d (%q): %w", i+1, v.Digits, err)
		}
	}
	return report, nil
}

// Steps returns the file's max_steps, or def when it is unset
func (f *File) Steps(def int) int {
	if f.MaxSteps == nil {
		return def
	}
	return *f.MaxSteps
}

func diagError(diags hcl.Diagnostics) error {
	var msgs []string
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		msgs = append(msgs, fmt.Sprintf("line %d: %s: %s", line, diag.Summary, diag.Detail))
	}
	return fmt.Errorf("parse error: %s", strings.Join(msgs, "; "))
}
