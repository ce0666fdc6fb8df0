package frontend

import "fmt"

func (t Token) String() string {
	switch t.Kind {
	case TokenError:
		return t.Text
	case TokenEOF:
		return "EOF"
	case TokenWhitespace:
		return "WHITESPACE"
	}

	// limit to 10 characters if it's too long
	if len(t.Text) > 10 {
		return fmt.Sprintf("%.10q...", t.Text)
	}

	return fmt.Sprintf("%q", t.Text)
}

func (k TokenKind) String() string {
	switch k {
	case TokenError:
		return "Error"
	case TokenEOF:
		return "EOF"
	case TokenWhitespace:
		return "WHITESPACE"

	// literals
	case TokenInteger:
		return "Integer"

	// symbols
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"

	// operators
	case TokenPlus:
		return "Plus"
	case TokenMinus:
		return "Minus"
	}

	return ""
}

func (o Operator) String() string {
	switch o {
	case OperatorNone:
		return "None"
	case OperatorAddition:
		return "Addition"
	case OperatorSubtraction:
		return "Subtraction"
	}

	return ""
}
