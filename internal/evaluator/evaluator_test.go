package evaluator

import (
	"math"
	"testing"

	"github.com/XJIeI5/infixcalc/internal/calcerr"
	"github.com/XJIeI5/infixcalc/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		postfix string
		want    float64
	}{
		{"7", 7},
		{"2 3 +", 5},
		{"2 3 4 1 - * +", 11},
		{"8 4 / 2 /", 1},
		{"9 3 - 1 -", 5},
		{"2.5 5 +", 7.5},
	}
	for _, tt := range tests {
		t.Run(tt.postfix, func(t *testing.T) {
			got, err := Evaluate(parser.ParsePostfix(tt.postfix))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	got, err := Evaluate(parser.Postfix{"2", "0", "/"})
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = Evaluate(parser.Postfix{"0", "0", "/"})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		postfix parser.Postfix
		err     error
	}{
		{parser.Postfix{"1", "+"}, calcerr.ErrInsufficientOperands},
		{parser.Postfix{"+"}, calcerr.ErrInsufficientOperands},
		{parser.Postfix{"1", "2"}, calcerr.ErrMalformedExpression},
		{parser.Postfix{}, calcerr.ErrMalformedExpression},
		{parser.Postfix{"1", "2", "^"}, calcerr.ErrUnknownOperator},
		{parser.Postfix{"1", "("}, calcerr.ErrUnknownOperator},
	}
	for _, tt := range tests {
		t.Run(tt.postfix.String(), func(t *testing.T) {
			_, err := Evaluate(tt.postfix)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEvaluateUnknownOperatorStage(t *testing.T) {
	_, err := Evaluate(parser.Postfix{"1", "2", "^"})

	var calcErr *calcerr.Error
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, calcerr.StageEvaluation, calcErr.Stage)
	assert.Equal(t, "^", calcErr.Symbol)
}
