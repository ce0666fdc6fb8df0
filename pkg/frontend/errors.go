package frontend

// LexError is returned when the lexer encounters an unrecognized character.
type LexError struct {
	Message string
}

func (le LexError) Error() string {
	return le.Message
}

// NewLexError creates a new instance of LexError with the given message.
func NewLexError(message string) LexError {
	return LexError{
		Message: message,
	}
}

// ParseError is returned when the token stream does not form a valid
// expression under the active parse mode.
type ParseError struct {
	Message string
}

func (pe ParseError) Error() string {
	return pe.Message
}

// NewParseError creates a new instance of ParseError with the given message.
func NewParseError(message string) ParseError {
	return ParseError{
		Message: message,
	}
}

// EvalError is returned when evaluation is requested on an incomplete
// expression node.
type EvalError struct {
	Message string
}

func (ee EvalError) Error() string {
	return ee.Message
}

// NewEvalError creates a new instance of EvalError with the given message.
func NewEvalError(message string) EvalError {
	return EvalError{
		Message: message,
	}
}
