package parser

import (
	"strings"

	"github.com/XJIeI5/infixcalc/internal/calcerr"
	op "github.com/XJIeI5/infixcalc/internal/operation"
	"github.com/XJIeI5/infixcalc/internal/token"
	"github.com/informitas/stack"
)

// Postfix is an expression in reverse polish order, one lexeme per element.
type Postfix []string

func (p Postfix) String() string {
	return strings.Join(p, " ")
}

// ParsePostfix reads the space separated form produced by Postfix.String.
func ParsePostfix(s string) Postfix {
	return Postfix(strings.Fields(s))
}

// ParseToPostfix tokenizes, validates and converts infixExpr.
func ParseToPostfix(infixExpr string) (Postfix, error) {
	return ParseToPostfixMode(infixExpr, token.ModeRuns)
}

func ParseToPostfixMode(infixExpr string, mode token.Mode) (Postfix, error) {
	tokens := token.NewTokenizer(mode).Tokenize(infixExpr)
	if err := Validate(tokens); err != nil {
		return nil, err
	}
	return ToPostfix(tokens)
}

// ToPostfix converts tokens with the shunting-yard algorithm. Operators of
// equal priority leave the stack first, which makes them left-associative.
func ToPostfix(tokens []token.Token) (Postfix, error) {
	res := make(Postfix, 0, len(tokens))
	s := stack.NewStack[op.Operand]()

	for _, tok := range tokens {
		if tok.Numeric {
			res = append(res, tok.Lexeme)
			continue
		}

		switch tok.Lexeme {
		case op.OpenParen.Symbol():
			s.Push(op.OpenParen)
		case op.ClosedParen.Symbol():
			consumed, err := consumeUntilParen(s)
			if err != nil {
				return nil, err
			}
			res = append(res, consumed...)
		default:
			operator, ok := op.Parse(tok.Lexeme)
			if !ok {
				return nil, calcerr.NewUnknownOperator(tok.Lexeme, calcerr.StageConversion)
			}
			res = append(res, parseBinaryOperator(operator, s)...)
		}
	}

	for !s.IsEmpty() {
		oper, _ := s.Pop()
		if _, ok := oper.(op.OrderOperand); ok {
			return nil, calcerr.NewUnmatchedParenthesis(oper.Symbol())
		}
		res = append(res, oper.Symbol())
	}
	return res, nil
}

func parseBinaryOperator(operator op.Operator, operStack *stack.Stack[op.Operand]) []string {
	var operands []string
	for operStack.Size() > 0 {
		peek, _ := operStack.Top()
		top, ok := peek.(op.Operator)
		if !ok || top.Priority() < operator.Priority() {
			break
		}
		operStack.Pop()
		operands = append(operands, top.Symbol())
	}
	operStack.Push(operator)
	return operands
}

// consumeUntilParen pops operators up to the nearest open paren and drops
// the paren itself.
func consumeUntilParen(operStack *stack.Stack[op.Operand]) ([]string, error) {
	var consumed []string
	for {
		if operStack.IsEmpty() {
			return nil, calcerr.NewUnmatchedParenthesis(op.ClosedParen.Symbol())
		}
		oper, _ := operStack.Pop()
		if _, ok := oper.(op.OrderOperand); ok {
			return consumed, nil
		}
		consumed = append(consumed, oper.Symbol())
	}
}
