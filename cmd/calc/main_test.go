package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/pkg/arith"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOperationCommandsText(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"add", "2", "3"}, want: "2 + 3 = 5\n"},
		{args: []string{"add", "2.5", "3.7"}, want: "2.5 + 3.7 = 6.2\n"},
		{args: []string{"subtract", "--", "-5", "3"}, want: "-5 - 3 = -8\n"},
		{args: []string{"multiply", "1000000", "1000000"}, want: "1000000 * 1000000 = 1000000000000\n"},
		{args: []string{"divide", "5", "2"}, want: "5 / 2 = 2.5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.args[0], func(t *testing.T) {
			out, err := execute(tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestOperationCommandJSON(t *testing.T) {
	out, err := execute("divide", "5", "2", "--output", "json")
	require.NoError(t, err)

	var resp calculator.CalcResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, calculator.CalcResponse{Operation: "divide", A: 5, B: 2, Result: 2.5}, resp)
}

func TestOperationCommandErrors(t *testing.T) {
	t.Run("division by zero", func(t *testing.T) {
		_, err := execute("divide", "10", "0")
		assert.True(t, errors.Is(err, arith.ErrDivisionByZero), "got %v", err)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := execute("add", "1000001", "1")
		var rangeErr *arith.RangeError
		require.True(t, errors.As(err, &rangeErr), "got %v", err)
		assert.Contains(t, err.Error(), "1000001")
	})

	t.Run("range before zero divisor", func(t *testing.T) {
		_, err := execute("divide", "1000001", "0")
		assert.False(t, errors.Is(err, arith.ErrDivisionByZero))
		assert.Contains(t, err.Error(), "outside the valid range")
	})

	t.Run("literal beyond float64", func(t *testing.T) {
		_, err := execute("add", "1e400", "1")
		var rangeErr *arith.RangeError
		require.True(t, errors.As(err, &rangeErr), "got %v", err)
		assert.ErrorContains(t, err, `invalid operand "1e400"`)
		assert.NotContains(t, err.Error(), "not a number")
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := execute("multiply", "two", "3")
		assert.ErrorContains(t, err, `invalid operand "two"`)
	})

	t.Run("wrong arg count", func(t *testing.T) {
		_, err := execute("add", "1")
		assert.Error(t, err)
	})

	t.Run("unknown output format", func(t *testing.T) {
		_, err := execute("add", "1", "2", "-o", "yaml")
		assert.ErrorContains(t, err, "unknown output format")
	})
}

func TestEvalCommand(t *testing.T) {
	out, err := execute("eval", "--", "4", "x", "-3")
	require.NoError(t, err)
	assert.Equal(t, "4 * -3 = -12\n", out)

	_, err = execute("eval", "4", "%", "3")
	assert.True(t, errors.Is(err, arith.ErrUnknownOperation), "got %v", err)
}

func TestLimitsCommand(t *testing.T) {
	out, err := execute("limits")
	require.NoError(t, err)
	assert.Equal(t, "min_value: -1000000\nmax_value: 1000000\n", out)

	out, err = execute("limits", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"min_value":-1000000,"max_value":1000000}`, out)
}
