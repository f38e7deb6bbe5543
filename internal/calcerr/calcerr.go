// Package calcerr defines the errors returned by every stage of expression
// evaluation. All of them are values of *Error tagged with a Kind.
package calcerr

import "fmt"

type Kind int

const (
	_ Kind = iota
	LeadingOperator
	TrailingOperator
	ConsecutiveOperator
	InvalidSymbol
	UnmatchedParenthesis
	InsufficientOperands
	MalformedExpression
	UnknownOperator
)

func (k Kind) String() string {
	switch k {
	case LeadingOperator:
		return "leading operator"
	case TrailingOperator:
		return "trailing operator"
	case ConsecutiveOperator:
		return "consecutive operator"
	case InvalidSymbol:
		return "invalid symbol"
	case UnmatchedParenthesis:
		return "unmatched parenthesis"
	case InsufficientOperands:
		return "insufficient operands"
	case MalformedExpression:
		return "malformed expression"
	case UnknownOperator:
		return "unknown operator"
	default:
		return "unknown"
	}
}

type Stage string

const (
	StageValidation Stage = "validation"
	StageConversion Stage = "conversion"
	StageEvaluation Stage = "evaluation"
)

// Stage reports the pipeline stage that usually detects errors of this
// kind. UnknownOperator is raised by both conversion and evaluation; the
// Stage field of *Error records which one did.
func (k Kind) Stage() Stage {
	switch k {
	case LeadingOperator, TrailingOperator, ConsecutiveOperator, InvalidSymbol:
		return StageValidation
	case UnmatchedParenthesis:
		return StageConversion
	default:
		return StageEvaluation
	}
}

// Error carries the context needed to report a failure to a user. Symbol is
// the offending lexeme, Prev the lexeme before it (consecutive operators
// only), Position the 1-based index of the offending token and Stage the
// pipeline stage that raised it.
type Error struct {
	Kind     Kind
	Stage    Stage
	Symbol   string
	Prev     string
	Position int
}

var (
	ErrLeadingOperator      = &Error{Kind: LeadingOperator}
	ErrTrailingOperator     = &Error{Kind: TrailingOperator}
	ErrConsecutiveOperator  = &Error{Kind: ConsecutiveOperator}
	ErrInvalidSymbol        = &Error{Kind: InvalidSymbol}
	ErrUnmatchedParenthesis = &Error{Kind: UnmatchedParenthesis}
	ErrInsufficientOperands = &Error{Kind: InsufficientOperands}
	ErrMalformedExpression  = &Error{Kind: MalformedExpression}
	ErrUnknownOperator      = &Error{Kind: UnknownOperator}
)

func (e *Error) Error() string {
	switch e.Kind {
	case LeadingOperator:
		return "expression must start with a number"
	case TrailingOperator:
		return "expression must end with a number"
	case ConsecutiveOperator:
		return fmt.Sprintf("consecutive operators '%s' and '%s'", e.Prev, e.Symbol)
	case InvalidSymbol:
		return fmt.Sprintf("invalid symbol '%s' at position %d", e.Symbol, e.Position)
	case UnmatchedParenthesis:
		if e.Symbol == "" {
			return "unmatched parenthesis"
		}
		return fmt.Sprintf("unmatched parenthesis '%s'", e.Symbol)
	case InsufficientOperands:
		if e.Symbol == "" {
			return "not enough operands"
		}
		return fmt.Sprintf("not enough operands for '%s'", e.Symbol)
	case MalformedExpression:
		return "not all numbers are involved in mathematical operations"
	case UnknownOperator:
		return fmt.Sprintf("unknown operator '%s'", e.Symbol)
	default:
		return "invalid expression"
	}
}

// Is reports whether target is an *Error of the same kind, so the package
// sentinels match any error of their kind regardless of its context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewLeadingOperator(symbol string) *Error {
	return &Error{Kind: LeadingOperator, Stage: LeadingOperator.Stage(), Symbol: symbol, Position: 1}
}

func NewTrailingOperator(symbol string, position int) *Error {
	return &Error{Kind: TrailingOperator, Stage: TrailingOperator.Stage(), Symbol: symbol, Position: position}
}

func NewConsecutiveOperator(prev, curr string, position int) *Error {
	return &Error{Kind: ConsecutiveOperator, Stage: ConsecutiveOperator.Stage(), Prev: prev, Symbol: curr, Position: position}
}

func NewInvalidSymbol(symbol string, position int) *Error {
	return &Error{Kind: InvalidSymbol, Stage: InvalidSymbol.Stage(), Symbol: symbol, Position: position}
}

func NewUnmatchedParenthesis(symbol string) *Error {
	return &Error{Kind: UnmatchedParenthesis, Stage: UnmatchedParenthesis.Stage(), Symbol: symbol}
}

func NewInsufficientOperands(symbol string) *Error {
	return &Error{Kind: InsufficientOperands, Stage: InsufficientOperands.Stage(), Symbol: symbol}
}

func NewMalformedExpression() *Error {
	return &Error{Kind: MalformedExpression, Stage: StageEvaluation}
}

func NewUnknownOperator(symbol string, stage Stage) *Error {
	return &Error{Kind: UnknownOperator, Stage: stage, Symbol: symbol}
}
