package op

import "math"

type Operand interface {
	Symbol() string
	Name() string
}

// Operator is a binary arithmetic operator. The set is closed: only the
// values declared in this package implement it.
type Operator interface {
	Operand
	Priority() int
	Exec(a, b float64) float64
	binary()
}

type OrderOperand interface {
	Operand
	IsStart() bool
}

// ADD
type add struct{}

func (a add) binary()        {}
func (a add) Symbol() string { return "+" }
func (a add) Name() string   { return "add" }
func (a add) Priority() int  { return priority(a) }

func (ad add) Exec(a, b float64) float64 { return apply(ad, a, b) }

// SUB
type sub struct{}

func (s sub) binary()        {}
func (s sub) Symbol() string { return "-" }
func (s sub) Name() string   { return "sub" }
func (s sub) Priority() int  { return priority(s) }

func (s sub) Exec(a, b float64) float64 { return apply(s, a, b) }

// MULT
type mult struct{}

func (m mult) binary()        {}
func (m mult) Symbol() string { return "*" }
func (m mult) Name() string   { return "mult" }
func (m mult) Priority() int  { return priority(m) }

func (m mult) Exec(a, b float64) float64 { return apply(m, a, b) }

// DIV
type div struct{}

func (d div) binary()        {}
func (d div) Symbol() string { return "/" }
func (d div) Name() string   { return "div" }
func (d div) Priority() int  { return priority(d) }

// Exec does not guard against a zero divisor: the result follows IEEE-754
// (±Inf or NaN).
func (d div) Exec(a, b float64) float64 { return apply(d, a, b) }

// OPEN PAREN
type openParen struct{}

func (p openParen) Symbol() string { return "(" }
func (p openParen) Name() string   { return "open paren" }
func (p openParen) IsStart() bool  { return true }

// CLOSE PAREN
type closeParen struct{}

func (p closeParen) Symbol() string { return ")" }
func (p closeParen) Name() string   { return "close paren" }
func (p closeParen) IsStart() bool  { return false }

func priority(o Operator) int {
	switch o.(type) {
	case mult, div:
		return 2
	case add, sub:
		return 1
	default:
		return 0
	}
}

func apply(o Operator, a, b float64) float64 {
	switch o.(type) {
	case add:
		return a + b
	case sub:
		return a - b
	case mult:
		return a * b
	case div:
		return a / b
	default:
		return math.NaN()
	}
}
