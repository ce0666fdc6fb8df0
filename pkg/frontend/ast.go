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

/*
	This file contains the common defs of the expression tree
*/

var (
	_ Expression = (*Literal)(nil)
	_ Expression = (*BinaryExpression)(nil)
)

// Expression denotes a node of the expression tree which can be evaluated.
// The tree is strict: every node is exclusively owned by its parent and the
// root is owned by the caller of the parser.
type Expression interface {
	expression()
}

// Operator is the combining operation of a BinaryExpression
type Operator uint64

const (
	OperatorNone        Operator = iota // not set yet
	OperatorAddition                    // '+'
	OperatorSubtraction                 // '-'
)

// Literal is a leaf expression node holding a constant integer
type Literal struct {
	Value int64
}

func (l *Literal) expression() {}

// BinaryExpression is an internal expression node combining two
// sub-expressions with an operator. Op, L and R must all be set before the
// node is evaluated.
type BinaryExpression struct {
	Op Operator

	L, R Expression
}

func (be *BinaryExpression) expression() {}
