// Package steps pairs a computed value with the textual derivation that
// produced it.
//
// A Trace is immutable. Every transformation returns a new Trace with its own
// step slice, so a Trace can be shared and extended from several places
// without one extension showing up in another.
package steps

import (
	"fmt"
	"strings"
)

// Trace is a result together with its derivation, oldest step first
type Trace[T any] struct {
	result T
	steps  []string
}

// New creates a trace for result with the given steps
func New[T any](result T, steps ...string) Trace[T] {
	return Trace[T]{result: result, steps: clone(steps)}
}

// Result returns the computed value
func (t Trace[T]) Result() T {
	return t.result
}

// Steps returns a copy of the derivation steps
func (t Trace[T]) Steps() []string {
	return clone(t.steps)
}

// Len returns the number of steps
func (t Trace[T]) Len() int {
	return len(t.steps)
}

// Map replaces the result with valueFn(result) and appends the steps
// returned by stepsFn.
func (t Trace[T]) Map(valueFn func(T) T, stepsFn func() []string) Trace[T] {
	return Trace[T]{
		result: valueFn(t.result),
		steps:  concat(t.steps, stepsFn()),
	}
}

// Append adds steps after the existing ones
func (t Trace[T]) Append(extra ...string) Trace[T] {
	return Trace[T]{result: t.result, steps: concat(t.steps, extra)}
}

// Prepend adds steps before the existing ones
func (t Trace[T]) Prepend(extra ...string) Trace[T] {
	return Trace[T]{result: t.result, steps: concat(extra, t.steps)}
}

// AlignOn joins the steps with newlines and pads every line containing
// marker so that the marker's first occurrence lines up with the rightmost
// first occurrence among all lines. Lines without the marker are unchanged.
func (t Trace[T]) AlignOn(marker string) string {
	return AlignOn(strings.Join(t.steps, "\n"), marker)
}

// Aligned is AlignOn split back into steps, one per line.
func (t Trace[T]) Aligned(marker string) Trace[T] {
	if len(t.steps) == 0 {
		return t
	}
	return Trace[T]{result: t.result, steps: strings.Split(t.AlignOn(marker), "\n")}
}

// Render returns the steps followed by a blank line and the result
func (t Trace[T]) Render() string {
	return fmt.Sprintf("%s\n\nYielding result: %v", strings.Join(t.steps, "\n"), t.result)
}

// AlignOn pads each line of text that contains marker so the markers form a
// column at the rightmost position any line has it.
func AlignOn(text, marker string) string {
	lines := strings.Split(text, "\n")
	target := -1
	for _, line := range lines {
		if idx := strings.Index(line, marker); idx > target {
			target = idx
		}
	}
	if target < 0 {
		return text
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		idx := strings.Index(line, marker)
		if idx < 0 || idx >= target {
			sb.WriteString(line)
			continue
		}
		sb.WriteString(line[:idx])
		sb.WriteString(strings.Repeat(" ", target-idx))
		sb.WriteString(line[idx:])
	}
	return sb.String()
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
