package frontend

import (
	"fmt"
	"unicode/utf8"
)

//
// This lexer is based on the design of the lexer in the Go template engine.
// For more check this presentation by Rob Pike: https://www.youtube.com/watch?v=HxaD_trXwRE
//

// Token represents a single classified lexical fragment of the input.
// Immutable once emitted by the lexer.
type Token struct {
	Kind TokenKind
	Text string
}

// TokenKind is an arithmetic expression token type
type TokenKind int

const (
	TokenError TokenKind = iota
	TokenEOF
	TokenWhitespace

	// literals
	TokenInteger

	// symbols
	TokenLeftParen  // '('
	TokenRightParen // ')'

	// operators
	TokenPlus  // '+'
	TokenMinus // '-'
)

const eof = -1

// lexer is the expression lexer state machine responsible for tokenizing the input.
type lexer struct {
	name  string     // for error reporting
	input string     // the string being scanned right now
	start int        // start position of the current token
	pos   int        // current position in the input
	width int        // width of last rune read from the input
	items chan Token // channel of scanned tokens. tokens are emitted via this
}

// stateFn is a function that takes a lexer and returns the new stateFn
type stateFn func(*lexer) stateFn

// predFn is a function to do predicate based filtering/traversal
type predFn func(rune) bool

//
// Helper functions
//

// next returns the next rune in the input.
func (l *lexer) next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

// backup steps back one rune.
// Can be called only once per call of next.
func (l *lexer) backup() {
	l.pos -= l.width
}

// peek returns but does not consume
// the next rune in the input.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// acceptWhile consumes runes while the predFn returns true
// it returns the number of runes accepted
func (l *lexer) acceptWhile(p predFn) (count int) {
	for p(l.next()) {
		count++
	}
	l.backup()
	return count
}

// errorf returns an error token and terminates the scan by passing
// back a nil pointer that will be the next state, terminating the scan loop.
func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.items <- Token{TokenError, fmt.Sprintf(format, args...)}
	return nil
}

// emit passes a token back to the client.
func (l *lexer) emit(k TokenKind) {
	l.items <- Token{k, l.input[l.start:l.pos]}
	l.start = l.pos
}

// run starts executing the state machine.
func (l *lexer) run() {
	for state := lexExpression; state != nil; {
		state = state(l)
	}

	close(l.items) // no more tokens
}

// isWhitespace checks if a rune is a whitespace
func isWhitespace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }

// isDigit checks if the rune is a digit.
func isDigit(ch rune) bool { return (ch >= '0' && ch <= '9') }

//
// Public functions used by the consumers of the lexer.
//

// newLexer creates a new lexer and starts the state machine
func newLexer(name, input string) (*lexer, chan Token) {
	l := &lexer{
		name:  name,
		input: input,
		items: make(chan Token),
	}
	go l.run() // Concurrently run state machine.
	return l, l.items
}

// Tokenize scans the input left to right into the ordered token sequence.
// Whitespace is skipped and the terminating EOF token is dropped. An
// unrecognized rune yields a LexError.
func Tokenize(name, input string) ([]Token, error) {
	_, items := newLexer(name, input)

	var tokens []Token
	for it := range items {
		switch it.Kind {
		case TokenError:
			return nil, NewLexError(it.Text)

		case TokenWhitespace, TokenEOF:
			// skip

		default:
			tokens = append(tokens, it)
		}
	}

	return tokens, nil
}

//
// State functions - Internal
//

func lexExpression(l *lexer) stateFn {
	wcount := l.acceptWhile(isWhitespace)
	if wcount > 0 {
		l.emit(TokenWhitespace)
	}

	next := l.peek()

	switch {
	case next == eof:
		l.emit(TokenEOF)
		return nil

	case next == '(':
		l.next()
		l.emit(TokenLeftParen)
		return lexExpression

	case next == ')':
		l.next()
		l.emit(TokenRightParen)
		return lexExpression

	case next == '+':
		l.next()
		l.emit(TokenPlus)
		return lexExpression

	case next == '-':
		l.next()
		l.emit(TokenMinus)
		return lexExpression

	case isDigit(next):
		return lexNumber
	}

	return l.errorf("unknown rune: %c", next)
}

// lexNumber scans a run of consecutive digits into a single integer token.
func lexNumber(l *lexer) stateFn {
	l.acceptWhile(isDigit)
	l.emit(TokenInteger)
	return lexExpression
}
