package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"basecalc/core/output"
	"basecalc/internal/config"
	apperrors "basecalc/internal/errors"
	"basecalc/internal/logging"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		config.Set(config.Default())
		logging.Set(zap.NewNop())
	})

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvertQuiet(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "7BB", "--from", "13", "--to", "10", "-q"}, "1337\n"},
		{[]string{"convert", "10,125", "--from", "8", "--to", "2", "-q"}, "1000 , 0010 1010 1\n"},
		{[]string{"convert", "3247,875", "-f", "10", "-t", "2", "-q"}, "1100 1010 1111 , 111\n"},
	}
	for _, tt := range tests {
		t.Run(tt.args[1], func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertShowsSteps(t *testing.T) {
	out, err := run(t, "convert", "7BB", "--from", "13", "--to", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Converting 7BB from base 13 to decimal as a simple number")
	assert.Contains(t, out, "Yielding result: 1337")
}

func TestConvertDecimalValue(t *testing.T) {
	out, err := run(t, "convert", "0,1", "--from", "3", "--to", "10", "--decimal", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Decimal value: 0.3333")
}

func TestConvertJSON(t *testing.T) {
	out, err := run(t, "convert", "FF", "--from", "16", "--to", "8", "--format", "json")
	require.NoError(t, err)

	var got output.Conversion
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "377", got.Result)
	assert.Equal(t, 16, got.InputBase)
	assert.NotEmpty(t, got.Steps)

	_, err = run(t, "convert", "FF", "--from", "16", "--format", "xml")
	assert.True(t, apperrors.IsType(err, apperrors.TypeInput))
}

func TestConvertErrors(t *testing.T) {
	_, err := run(t, "convert", "19", "--from", "8", "--to", "2")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeInput))

	_, err = run(t, "convert", "1", "--from", "8", "--to", "37")
	assert.True(t, apperrors.IsType(err, apperrors.TypeInput))

	_, err = run(t, "convert", "1,1", "--from", "2", "--to", "3", "--max-steps", "-1")
	assert.True(t, apperrors.IsType(err, apperrors.TypeInput))
}

func TestConvertUsesConfigSteps(t *testing.T) {
	cfgPath := writeFile(t, "basecalc.yaml", "conversion:\n  max_steps: 2\n")

	out, err := run(t, "--config", cfgPath, "convert", "0,1", "--from", "3", "--to", "2", "-q")
	require.NoError(t, err)
	// 1/3 in binary is 0.0101..., cut after two digits
	assert.Equal(t, "0 , 01\n", out)
}

func TestTableArgs(t *testing.T) {
	out, err := run(t, "table", "10,1:2", "7:8")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "value  │ 2      │ 8", lines[0])
	assert.Equal(t, "10,1_2 │ 10 , 1 │ 2 , 4", lines[2])
	assert.Equal(t, "7_8    │ 111    │ 7", lines[3])
}

func TestTableFile(t *testing.T) {
	path := writeFile(t, "values.hcl", `
max_steps = 2

value "0,1" {
  base = 3
}
`)
	out, err := run(t, "table", "--file", path, "7:8")
	require.NoError(t, err)
	assert.Contains(t, out, "0,1_3 │ 0 , 1 │ 0 , 25")
}

func TestTableErrors(t *testing.T) {
	_, err := run(t, "table")
	assert.True(t, apperrors.IsType(err, apperrors.TypeInput))

	_, err = run(t, "table", "12")
	assert.True(t, apperrors.IsType(err, apperrors.TypeInput))

	_, err = run(t, "table", "--file", writeFile(t, "bad.hcl", "value {"))
	assert.True(t, apperrors.IsType(err, apperrors.TypeParsing))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "basecalc version "+version+"\n", out)
}

func TestConfigCommands(t *testing.T) {
	cfgPath := writeFile(t, "basecalc.json", `{"table": {"max_steps": 7}}`)
	out, err := run(t, "--config", cfgPath, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "max_steps: 7")

	target := filepath.Join(t.TempDir(), "init.yaml")
	out, err = run(t, "config", "init", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+target)
	assert.FileExists(t, target)

	_, err = run(t, "--config", writeFile(t, "broken.yaml", "conversion: ["), "version")
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))
}

func TestServeRejectsUnreachableRedis(t *testing.T) {
	_, err := run(t, "serve", "--addr", "127.0.0.1:0", "--redis", "127.0.0.1:1")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))
}
