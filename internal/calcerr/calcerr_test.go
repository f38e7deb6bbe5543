package calcerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("evaluate: %w", NewInvalidSymbol("%", 3))

	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.NotErrorIs(t, err, ErrLeadingOperator)

	var calcErr *Error
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, "%", calcErr.Symbol)
	assert.Equal(t, 3, calcErr.Position)
}

func TestMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{NewLeadingOperator("+"), "expression must start with a number"},
		{NewTrailingOperator("/", 2), "expression must end with a number"},
		{NewConsecutiveOperator("+", "*", 3), "consecutive operators '+' and '*'"},
		{NewInvalidSymbol("1.2.3", 3), "invalid symbol '1.2.3' at position 3"},
		{NewUnmatchedParenthesis(")"), "unmatched parenthesis ')'"},
		{NewInsufficientOperands("-"), "not enough operands for '-'"},
		{NewMalformedExpression(), "not all numbers are involved in mathematical operations"},
		{NewUnknownOperator("^", StageEvaluation), "unknown operator '^'"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestStage(t *testing.T) {
	assert.Equal(t, StageValidation, ConsecutiveOperator.Stage())
	assert.Equal(t, StageConversion, UnmatchedParenthesis.Stage())
	assert.Equal(t, StageEvaluation, MalformedExpression.Stage())
	assert.Equal(t, StageEvaluation, UnknownOperator.Stage())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestErrorStageFollowsRaiser(t *testing.T) {
	assert.Equal(t, StageConversion, NewUnknownOperator("%", StageConversion).Stage)
	assert.Equal(t, StageEvaluation, NewUnknownOperator("%", StageEvaluation).Stage)
	assert.Equal(t, StageValidation, NewLeadingOperator("+").Stage)
	assert.Equal(t, StageConversion, NewUnmatchedParenthesis(")").Stage)
	assert.Equal(t, StageEvaluation, NewMalformedExpression().Stage)
}
