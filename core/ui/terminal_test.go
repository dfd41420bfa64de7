package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("value", "2", "16")
	table.AddRow("4D2_16", "100 1101 0010", "4D2")
	table.AddRow("7_10", "111")
	table.Render()

	want := "value  │ 2             │ 16\n" +
		"───────┼───────────────┼────\n" +
		"4D2_16 │ 100 1101 0010 │ 4D2\n" +
		"7_10   │ 111           │ \n"
	assert.Equal(t, want, buf.String())
}

func TestTraceVerbosity(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Trace([]string{"Converting:", "1 / 2 = 0 R 1", ""}, "1")
	assert.Equal(t, "Converting:\n  1 / 2 = 0 R 1\n\n\nYielding result: 1\n", buf.String())

	buf.Reset()
	w.SetVerbosity(0)
	w.Trace([]string{"Converting:"}, "1")
	assert.Equal(t, "1\n", buf.String())
}

func TestColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	w.Success("done %d", 3)
	assert.Equal(t, Green+"✓ "+Reset+"done 3\n", buf.String())

	buf.Reset()
	w.SetVerbosity(0)
	w.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestErrorIgnoresVerbosity(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.SetVerbosity(0)
	w.Error("bad digit %q", "9")
	assert.Equal(t, "✗ bad digit \"9\"\n", buf.String())
}
