package op

var (
	OpenParen   = openParen{}
	ClosedParen = closeParen{}
	Add         = add{}
	Sub         = sub{}
	Mult        = mult{}
	Div         = div{}
)

var Operators = []Operator{Add, Sub, Mult, Div}

var Operands = []Operand{OpenParen, ClosedParen, Add, Sub, Mult, Div}

// Parse returns the operator written as symbol.
func Parse(symbol string) (Operator, bool) {
	for _, o := range Operators {
		if o.Symbol() == symbol {
			return o, true
		}
	}
	return nil, false
}

func IsOperator(symbol string) bool {
	_, ok := Parse(symbol)
	return ok
}

func IsParen(symbol string) bool {
	return symbol == OpenParen.Symbol() || symbol == ClosedParen.Symbol()
}

func HaveOperand(symbol string) bool {
	for _, o := range Operands {
		if o.Symbol() == symbol {
			return true
		}
	}
	return false
}
