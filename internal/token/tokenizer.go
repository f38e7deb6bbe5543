package token

import (
	"fmt"
	"strings"
)

// Mode selects how numeric characters are grouped into tokens.
type Mode int

const (
	// ModeRuns groups a maximal run of digits and decimal points into one
	// token, so "42" is a single number.
	ModeRuns Mode = iota
	// ModeChars emits every digit and decimal point as its own token, so
	// "42" becomes "4" and "2". Kept for compatibility with the legacy
	// calculator; such input fails later with a malformed expression error.
	ModeChars
)

func (m Mode) String() string {
	switch m {
	case ModeRuns:
		return "runs"
	case ModeChars:
		return "chars"
	default:
		return "unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "runs":
		return ModeRuns, nil
	case "chars":
		return ModeChars, nil
	default:
		return 0, fmt.Errorf("invalid tokenizer mode: %q (must be 'runs' or 'chars')", s)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

type Tokenizer struct {
	Mode Mode
}

func NewTokenizer(mode Mode) *Tokenizer {
	return &Tokenizer{Mode: mode}
}

// Tokenize scans input left to right. Whitespace and every character that
// is not a digit, '.', an operator or a parenthesis are dropped.
func (t *Tokenizer) Tokenize(input string) []Token {
	var (
		tokens []Token
		skip   int
	)
	for i := 0; i < len(input); i++ {
		if skip > 0 {
			skip--
			continue
		}
		c := input[i]
		switch {
		case isNumberChar(c):
			num := input[i : i+1]
			if t.Mode == ModeRuns {
				num = getStringNumber(input[i:])
				skip = len(num) - 1
			}
			tokens = append(tokens, New(num, i))
		case isSymbolChar(c):
			tokens = append(tokens, New(input[i:i+1], i))
		}
	}
	return tokens
}

// Tokenize splits input with the default ModeRuns tokenizer.
func Tokenize(input string) []Token {
	return (&Tokenizer{Mode: ModeRuns}).Tokenize(input)
}

func getStringNumber(expr string) string {
	end := 0
	for end < len(expr) && isNumberChar(expr[end]) {
		end++
	}
	return expr[:end]
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

func isSymbolChar(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '(', ')':
		return true
	}
	return false
}
