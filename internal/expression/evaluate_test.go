package expression

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDropsNames(t *testing.T) {
	got, ok := Extract("Foo (10) * Bar (0)")
	require.True(t, ok)
	assert.Equal(t, "10*0", got)

	got, ok = Extract("Apple (5) + Orange (3) + Banana (2)")
	require.True(t, ok)
	assert.Equal(t, "5+3+2", got)

	got, ok = Extract("- Apple (5) ^ Pear (2)")
	require.True(t, ok)
	assert.Equal(t, "-5^2", got)
}

func TestExtractWithoutTokens(t *testing.T) {
	for _, text := range []string{"", "apple", "Apple (x)", "Apple 5", "+ - *"} {
		_, ok := Extract(text)
		assert.False(t, ok, "text %q", text)
	}
}

func TestExtractJoinsTokensWithoutOperator(t *testing.T) {
	got, ok := Extract("Apple (5) Banana (2)")
	require.True(t, ok)
	assert.Equal(t, "52", got)
	assert.Equal(t, Number(52), Calculate("Apple (5) Banana (2)", NewEvaluator()))
}

func TestCalculateSentinels(t *testing.T) {
	ev := NewEvaluator()
	assert.Equal(t, Result{Kind: ResultNoValidInput}, Calculate("nothing here", ev))
	assert.Equal(t, NoValidInput, Calculate("", ev).String())
	assert.Equal(t, Result{Kind: ResultInvalidExpression}, Calculate("* Apple (5)", ev))
	assert.Equal(t, InvalidExpression, Calculate("Apple (5) / Zero (0)", ev).String())
}

func TestCalculateArithmetic(t *testing.T) {
	ev := NewEvaluator()
	cases := map[string]float64{
		"Foo (10) * Bar (0)":                  0,
		"Apple (5) + Orange (3) * Banana (2)": 11,
		"Apple (5) - Orange (3)":              2,
		"Two (2) ^ Ten (10)":                  1024,
		"Seven (7) / Two (2)":                 3.5,
		"Big (9000000000) * Big (9000000000)": 8.1e19,
	}
	for text, want := range cases {
		got := Calculate(text, ev)
		require.Equal(t, ResultNumber, got.Kind, "text %q", text)
		assert.InDelta(t, want, got.Value, 1e-9*(1+want), "text %q", text)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	ev := NewEvaluator()
	text := "Apple (5) + Orange (3"
	assert.Equal(t, Calculate(text, ev), Calculate(text, ev))
	assert.Equal(t, Number(5), Calculate(text, ev))
}

type failingEvaluator struct{}

func (failingEvaluator) Evaluate(string) (float64, error) {
	return 0, errors.New("boom")
}

func TestCalculateRecoversFromEvaluatorFailure(t *testing.T) {
	assert.Equal(t, Result{Kind: ResultInvalidExpression}, Calculate("Apple (5)", failingEvaluator{}))
}

func TestEvaluatorRejectsEmptyAndNonFinite(t *testing.T) {
	ev := NewEvaluator()
	_, err := ev.Evaluate("  ")
	assert.ErrorIs(t, err, ErrEmptyExpression)
	_, err = ev.Evaluate("1/0")
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "", Result{}.String())
	assert.Equal(t, "10", Number(10).String())
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.True(t, Result{Kind: ResultInvalidExpression}.IsSentinel())
	assert.False(t, Number(1).IsSentinel())
}
