package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorBasics(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()
	ctx := context.Background()

	cases := []struct {
		expr string
		want string
	}{
		{"2 + 2", "Result: 4"},
		{"2 + 2 * 3", "Result: 8"},
		{"(2 + 2) * 3", "Result: 12"},
		{"10 / 4", "Result: 2.5"},
		{"-5 + 3", "Result: -2"},
		{"--4", "Result: 4"},
		{"sqrt(16)", "Result: 4"},
		{"pow(2, 10)", "Result: 1024"},
		{"abs(-3.5)", "Result: 3.5"},
		{"min(2, 7)", "Result: 2"},
		{"max(2, 7)", "Result: 7"},
		{"round(2.6)", "Result: 3"},
		{"2 * pi * 0", "Result: 0"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := calc.Call(ctx, tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculatorErrors(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()
	ctx := context.Background()

	bad := []string{
		"",
		"2 +",
		"1 / 0",
		"import os",
		"__builtins__",
		"sqrt(1, 2)",
		"pow(2)",
		"nosuchfn(1)",
		"2 ** 3",
		"(1 + 2",
	}
	for _, expr := range bad {
		t.Run(expr, func(t *testing.T) {
			_, err := calc.Call(ctx, expr)
			assert.Error(t, err)
		})
	}
}

func TestCalculatorConstants(t *testing.T) {
	t.Parallel()
	got, err := evalExpression("pi")
	require.NoError(t, err)
	assert.InDelta(t, 3.14159265, got, 1e-8)

	got, err = evalExpression("e")
	require.NoError(t, err)
	assert.InDelta(t, 2.71828182, got, 1e-8)
}
