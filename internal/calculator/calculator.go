// Package calculator is the single entry point to expression evaluation:
// text goes in, a float64 or a *calcerr.Error comes out.
package calculator

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/XJIeI5/infixcalc/internal/evaluator"
	"github.com/XJIeI5/infixcalc/internal/parser"
	"github.com/XJIeI5/infixcalc/internal/token"
)

// Calculator holds no per-call state and is safe for concurrent use.
type Calculator struct {
	mode   token.Mode
	logger *slog.Logger
}

type Option func(*Calculator)

func WithMode(mode token.Mode) Option {
	return func(c *Calculator) {
		c.mode = mode
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

func New(opts ...Option) *Calculator {
	c := &Calculator{
		mode: token.ModeRuns,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) Mode() token.Mode {
	return c.mode
}

// Postfix runs the tokenize, validate and convert stages.
func (c *Calculator) Postfix(expr string) (parser.Postfix, error) {
	postfix, err := parser.ParseToPostfixMode(expr, c.mode)
	if err != nil {
		c.log().LogAttrs(context.Background(), slog.LevelDebug, "parse failed",
			slog.String("expr", expr),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return postfix, nil
}

func (c *Calculator) Evaluate(expr string) (float64, error) {
	postfix, err := c.Postfix(expr)
	if err != nil {
		return 0, err
	}
	res, err := evaluator.Evaluate(postfix)
	if err != nil {
		c.log().LogAttrs(context.Background(), slog.LevelDebug, "evaluation failed",
			slog.String("postfix", postfix.String()),
			slog.String("err", err.Error()),
		)
		return 0, err
	}
	c.log().LogAttrs(context.Background(), slog.LevelDebug, "evaluated",
		slog.String("postfix", postfix.String()),
		slog.Float64("result", res),
	)
	return res, nil
}

var defaultCalculator = New()

// Evaluate evaluates expr with the default ModeRuns calculator.
func Evaluate(expr string) (float64, error) {
	return defaultCalculator.Evaluate(expr)
}

func (c *Calculator) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// FormatResult renders a result in the shortest form that parses back to
// the same float64; infinities and NaN become "+Inf", "-Inf" and "NaN".
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
