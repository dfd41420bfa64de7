package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basecalc/core/conversion"
	"basecalc/core/digit"
	"basecalc/core/rational"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Type
		code int
	}{
		{"digit", fmt.Errorf("position 1: %w", digit.ErrInvalidDigit), TypeInput, 2},
		{"base", digit.ErrInvalidBase, TypeInput, 2},
		{"steps", conversion.ErrInvalidSteps, TypeInput, 2},
		{"overflow", fmt.Errorf("fraction digit 17: %w", rational.ErrOverflow), TypeArithmetic, 3},
		{"division", rational.ErrDivisionByZero, TypeArithmetic, 3},
		{"other", stderrors.New("boom"), TypeInternal, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Classify("converting", tt.err)
			require.NotNil(t, e)
			assert.Equal(t, tt.want, e.Type)
			assert.Equal(t, tt.code, e.ExitCode())
			assert.ErrorIs(t, e, tt.err)
		})
	}
}

func TestClassifyKeepsExisting(t *testing.T) {
	orig := New(TypeConfig, "bad config")
	wrapped := fmt.Errorf("loading: %w", orig)

	assert.Same(t, orig, Classify("ignored", wrapped))
	assert.True(t, IsType(wrapped, TypeConfig))
	assert.False(t, IsType(wrapped, TypeInput))
	assert.Nil(t, Classify("nothing", nil))
}

func TestErrorString(t *testing.T) {
	e := Wrap(TypeParsing, "reading batch", stderrors.New("unexpected token"))
	assert.Equal(t, "[PARSING_ERROR] reading batch: unexpected token", e.Error())
	assert.Equal(t, "[INPUT_ERROR] no value", New(TypeInput, "no value").Error())

	e.WithContext("file", "values.hcl")
	assert.Equal(t, "values.hcl", e.Context["file"])
}
