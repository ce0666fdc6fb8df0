/**
 * Copyright 2021 The Arith Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package frontend

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the parsing policy for malformed input.
type Mode int

const (
	// ModeStrict rejects extra operands, extra operators, unbalanced
	// parentheses and incomplete expressions.
	ModeStrict Mode = iota

	// ModePermissive keeps the historical best-effort behavior: later
	// operands and operators overwrite earlier ones, the first right
	// parenthesis closes a group and the root is returned regardless of
	// completeness.
	ModePermissive
)

// ParseMode returns the Mode for the given config string.
// Unknown values fall back to ModeStrict.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, "permissive") {
		return ModePermissive
	}

	return ModeStrict
}

// parserState tracks the progress of the expression node being built.
// A node starts with no operands, receives its left operand, then its
// operator and finally its right operand.
type parserState int

const (
	stateAwaitingLeft parserState = iota
	stateHaveLeft
	stateHaveLeftAndOperator
	stateComplete
)

// Parser is responsible for parsing the token stream to an expression tree
type Parser struct {
	name  string // only for error reporting and debugging
	input string // the raw expression text, empty if tokens were supplied
	mode  Mode

	items     []Token // buffered tokens from the lexer
	tokenized bool

	err error // any error encountered during the parsing process
}

//
// Public functions
//

// NewParser creates a parser for the given input
func NewParser(name, input string, mode Mode) *Parser {
	return &Parser{
		name:  name,
		input: input,
		mode:  mode,
	}
}

// NewTokenParser creates a parser for an already tokenized input
func NewTokenParser(name string, tokens []Token, mode Mode) *Parser {
	return &Parser{
		name:      name,
		items:     tokens,
		tokenized: true,
		mode:      mode,
	}
}

// Parse builds the expression tree for the given token sequence using the
// strict policy.
func Parse(tokens []Token) (*BinaryExpression, error) {
	return NewTokenParser("parse", tokens, ModeStrict).Parse()
}

// Parse the input to an expression tree
func (p *Parser) Parse() (*BinaryExpression, error) {
	if p.err != nil {
		return nil, p.err
	}

	if !p.tokenized {
		items, err := Tokenize(p.name, p.input)
		if err != nil {
			p.err = err
			return nil, err
		}
		p.items = items
		p.tokenized = true
	}

	root, err := p.parseExpression(p.items)
	if err != nil {
		p.err = err
		return nil, err
	}

	return root, nil
}

//
// Internal functions
//

// parseExpression builds a single binary expression node from the token
// slice. Parenthesized groups are parsed recursively into sub-expressions.
func (p *Parser) parseExpression(tokens []Token) (*BinaryExpression, error) {
	root := &BinaryExpression{}
	state := stateAwaitingLeft

	for i := 0; i < len(tokens); i++ {
		it := tokens[i]

		switch it.Kind {
		case TokenInteger:
			value, err := strconv.ParseInt(it.Text, 10, 64)
			if err != nil {
				return nil, NewParseError(fmt.Sprintf("invalid integer literal %q", it.Text))
			}

			state, err = p.attachOperand(root, state, &Literal{Value: value})
			if err != nil {
				return nil, err
			}

		case TokenPlus, TokenMinus:
			var err error
			state, err = p.applyOperator(root, state, it)
			if err != nil {
				return nil, err
			}

		case TokenLeftParen:
			j, err := p.matchRightParen(tokens, i)
			if err != nil {
				return nil, err
			}

			sub, err := p.parseExpression(tokens[i+1 : j])
			if err != nil {
				return nil, err
			}

			state, err = p.attachOperand(root, state, sub)
			if err != nil {
				return nil, err
			}

			i = j // jump past the matched right parenthesis

		case TokenRightParen:
			if p.mode == ModeStrict {
				return nil, NewParseError("unmatched right parenthesis")
			}
			// the reference behavior scans past a stray right parenthesis

		case TokenWhitespace, TokenEOF:
			// skip

		case TokenError:
			return nil, NewLexError(it.Text)

		default:
			return nil, NewParseError(fmt.Sprintf("unexpected token %v", it))
		}
	}

	if p.mode == ModeStrict && state != stateComplete {
		switch state {
		case stateAwaitingLeft:
			return nil, NewParseError("empty expression")
		case stateHaveLeft:
			return nil, NewParseError("incomplete expression: missing operator and right operand")
		default:
			return nil, NewParseError("incomplete expression: missing right operand")
		}
	}

	return root, nil
}

// attachOperand assigns a literal or sub-expression to the current node and
// returns the new parser state.
func (p *Parser) attachOperand(root *BinaryExpression, state parserState, operand Expression) (parserState, error) {
	if state == stateAwaitingLeft {
		root.L = operand
		return stateHaveLeft, nil
	}

	if p.mode == ModeStrict {
		if state == stateHaveLeft {
			return state, NewParseError("unexpected operand: expected an operator")
		}
		if state == stateComplete {
			return state, NewParseError("unexpected operand after a complete expression")
		}
	}

	// in permissive mode a later operand overwrites the right side
	root.R = operand
	return stateComplete, nil
}

// applyOperator records the pending operator of the current node and returns
// the new parser state.
func (p *Parser) applyOperator(root *BinaryExpression, state parserState, it Token) (parserState, error) {
	if p.mode == ModeStrict {
		switch state {
		case stateAwaitingLeft:
			return state, NewParseError(fmt.Sprintf("operator %s without a left operand", it))
		case stateHaveLeftAndOperator:
			return state, NewParseError(fmt.Sprintf("duplicate operator %s", it))
		case stateComplete:
			return state, NewParseError(fmt.Sprintf("unexpected operator %s after a complete expression", it))
		}
	}

	if it.Kind == TokenMinus {
		root.Op = OperatorSubtraction
	} else {
		root.Op = OperatorAddition
	}

	if state == stateHaveLeft {
		return stateHaveLeftAndOperator, nil
	}

	// in permissive mode a later operator overwrites the earlier one
	return state, nil
}

// matchRightParen returns the index of the right parenthesis closing the
// group opened at lparen. Strict mode tracks nesting depth; permissive mode
// takes the first right parenthesis found and treats the rest of the stream
// as the group when there is none.
func (p *Parser) matchRightParen(tokens []Token, lparen int) (int, error) {
	depth := 0
	for j := lparen + 1; j < len(tokens); j++ {
		switch tokens[j].Kind {
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			if p.mode == ModePermissive || depth == 0 {
				return j, nil
			}
			depth--
		}
	}

	if p.mode == ModeStrict {
		return 0, NewParseError("missing closing parenthesis")
	}

	return len(tokens), nil
}
