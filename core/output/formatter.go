// Package output renders conversion results for people and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"basecalc/core/steps"
	"basecalc/core/ui"
)

// Format represents output format type
type Format string

const (
	// FormatText is the step-by-step terminal rendering
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Conversion is the serializable form of a finished conversion
type Conversion struct {
	// Input is the value as given
	Input string `json:"input"`

	// InputBase is the base of Input
	InputBase int `json:"input_base"`

	// OutputBase is the base of Result
	OutputBase int `json:"output_base"`

	// Result is the converted value
	Result string `json:"result"`

	// Steps is the derivation, one line per entry
	Steps []string `json:"steps"`

	// Decimal is the decimal approximation when one was requested
	Decimal string `json:"decimal,omitempty"`
}

// NewConversion captures a trace
func NewConversion(input string, inputBase, outputBase int, trace steps.Trace[string]) Conversion {
	s := trace.Steps()
	if s == nil {
		s = []string{}
	}
	return Conversion{
		Input:      input,
		InputBase:  inputBase,
		OutputBase: outputBase,
		Result:     trace.Result(),
		Steps:      s,
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes c to w
	Render(w io.Writer, c Conversion) error
}

// Options tune the text formatter
type Options struct {
	NoColor bool
	Quiet   bool
}

var formatters = map[Format]func(Options) Formatter{
	FormatText: func(o Options) Formatter { return textFormatter{opts: o} },
	FormatJSON: func(Options) Formatter { return jsonFormatter{} },
}

// Get returns the formatter for f
func Get(f Format, opts Options) (Formatter, error) {
	build, ok := formatters[f]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q, expected one of %v", f, Formats())
	}
	return build(opts), nil
}

// Formats lists the supported formats
func Formats() []Format {
	all := make([]Format, 0, len(formatters))
	for f := range formatters {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

type textFormatter struct {
	opts Options
}

func (textFormatter) Format() Format { return FormatText }

func (t textFormatter) Render(w io.Writer, c Conversion) error {
	uw := ui.NewWriter(w, t.opts.NoColor)
	if t.opts.Quiet {
		uw.SetVerbosity(0)
	}
	uw.Trace(c.Steps, c.Result)
	if c.Decimal != "" {
		uw.Info("Decimal value: %s", c.Decimal)
	}
	return nil
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) Render(w io.Writer, c Conversion) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
