package parser

import (
	"github.com/XJIeI5/infixcalc/internal/calcerr"
	op "github.com/XJIeI5/infixcalc/internal/operation"
	"github.com/XJIeI5/infixcalc/internal/token"
)

// Validate checks the shape of a token sequence before conversion: it must
// open with a number or '(', contain only numbers, operators and
// parentheses, not end with an operator and never hold two operators in a
// row. Parenthesis balance is left to ToPostfix.
func Validate(tokens []token.Token) error {
	if len(tokens) == 0 {
		return nil
	}
	if first := tokens[0]; !first.Numeric && first.Lexeme != op.OpenParen.Symbol() {
		return calcerr.NewLeadingOperator(first.Lexeme)
	}

	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		isOper := !tok.Numeric && op.IsOperator(tok.Lexeme)
		if !tok.Numeric && !isOper && !op.IsParen(tok.Lexeme) {
			return calcerr.NewInvalidSymbol(tok.Lexeme, i+1)
		}
		if isOper && i == len(tokens)-1 {
			return calcerr.NewTrailingOperator(tok.Lexeme, i+1)
		}
		if prev := tokens[i-1]; isOper && !prev.Numeric && op.IsOperator(prev.Lexeme) {
			return calcerr.NewConsecutiveOperator(prev.Lexeme, tok.Lexeme, i+1)
		}
	}
	return nil
}
