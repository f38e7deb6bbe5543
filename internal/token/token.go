package token

import "strconv"

// Token is one lexical unit of an expression. Numeric is true iff Lexeme
// parses as a float64; Offset is the byte offset of Lexeme in the input.
type Token struct {
	Lexeme  string
	Numeric bool
	Offset  int
}

func New(lexeme string, offset int) Token {
	return Token{Lexeme: lexeme, Numeric: IsNumber(lexeme), Offset: offset}
}

func IsNumber(lexeme string) bool {
	_, err := strconv.ParseFloat(lexeme, 64)
	return err == nil
}

func (t Token) String() string {
	return t.Lexeme
}

func Lexemes(tokens []Token) []string {
	res := make([]string, 0, len(tokens))
	for _, t := range tokens {
		res = append(res, t.Lexeme)
	}
	return res
}
