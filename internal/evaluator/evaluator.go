package evaluator

import (
	"strconv"

	"github.com/XJIeI5/infixcalc/internal/calcerr"
	op "github.com/XJIeI5/infixcalc/internal/operation"
	"github.com/XJIeI5/infixcalc/internal/parser"
	"github.com/informitas/stack"
)

// Evaluate computes a postfix expression with an operand stack. Division by
// zero is not an error: it yields ±Inf or NaN.
func Evaluate(postfix parser.Postfix) (float64, error) {
	locals := stack.NewStack[float64]()

	for _, lexeme := range postfix {
		if v, err := strconv.ParseFloat(lexeme, 64); err == nil {
			locals.Push(v)
			continue
		}

		operator, ok := op.Parse(lexeme)
		if !ok {
			return 0, calcerr.NewUnknownOperator(lexeme, calcerr.StageEvaluation)
		}
		if locals.Size() < 2 {
			return 0, calcerr.NewInsufficientOperands(lexeme)
		}
		second, _ := locals.Pop()
		first, _ := locals.Pop()
		locals.Push(operator.Exec(first, second))
	}

	if locals.Size() != 1 {
		return 0, calcerr.NewMalformedExpression()
	}
	res, _ := locals.Pop()
	return res, nil
}
