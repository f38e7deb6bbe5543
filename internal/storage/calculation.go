package storage

import (
	"context"
	"errors"

	"github.com/XJIeI5/infixcalc/internal/calculator"
	"github.com/XJIeI5/infixcalc/internal/evaluator"
	"github.com/XJIeI5/infixcalc/internal/parser"
)

// calcExpressions evaluates queued expressions until ctx is cancelled.
func (s *storage) calcExpressions(ctx context.Context) {
	for {
		_expr, err := s.exprQueue.Dequeue(ctx)
		if err != nil {
			return
		}
		if err := s.calculate(ctx, _expr); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			s.logger.Error("failed to store result", "id", _expr.id, "error", err)
		}
	}
}

func (s *storage) calculate(ctx context.Context, _expr expr) error {
	res, err := evaluator.Evaluate(parser.ParsePostfix(_expr.postfix))
	if err != nil {
		s.logger.Info("expression failed", "id", _expr.id, "postfix", _expr.postfix, "error", err)
		return updateExpressionState(ctx, s.db, _expr.id, stateError, "", err.Error())
	}
	s.logger.Info("expression calculated", "id", _expr.id, "postfix", _expr.postfix, "result", res)
	return updateExpressionState(ctx, s.db, _expr.id, stateOK, calculator.FormatResult(res), "")
}
