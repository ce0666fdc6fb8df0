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

package calc

import (
	"github.com/arithlang/arith/pkg/frontend"
)

// walks an expression tree and reduces it to a single integer.
// An incomplete node yields an EvalError rather than undefined behavior.
type evaluator struct {
	expr frontend.Expression
	err  error
}

func newEvaluator(expr frontend.Expression) *evaluator {
	return &evaluator{
		expr: expr,
	}
}

// evaluate the expression tree held by the evaluator
func (ev *evaluator) evaluate() (int64, error) {
	return ev.evaluateExpression(ev.expr)
}

// Evaluate reduces the given expression tree to its integer value.
func Evaluate(expr frontend.Expression) (int64, error) {
	return newEvaluator(expr).evaluate()
}

//
// Internal methods
//

func (ev *evaluator) evaluateExpression(expr frontend.Expression) (int64, error) {
	if ev.err != nil {
		return 0, ev.err
	}

	switch e := expr.(type) {
	case *frontend.Literal:
		return e.Value, nil
	case *frontend.BinaryExpression:
		return ev.evaluateBinaryExpression(e)
	case nil:
		ev.err = frontend.NewEvalError("cannot evaluate: expression is not set")
		return 0, ev.err
	}

	panic("programming error: unexhaustive switch case in evaluateExpression")
}

func (ev *evaluator) evaluateBinaryExpression(expr *frontend.BinaryExpression) (int64, error) {
	if expr.L == nil || expr.R == nil {
		ev.err = frontend.NewEvalError("cannot evaluate: incomplete expression is missing an operand")
		return 0, ev.err
	}

	l, err := ev.evaluateExpression(expr.L)
	if err != nil {
		return 0, err
	}

	r, err := ev.evaluateExpression(expr.R)
	if err != nil {
		return 0, err
	}

	switch expr.Op {
	case frontend.OperatorAddition:
		return l + r, nil

	case frontend.OperatorSubtraction:
		return l - r, nil

	case frontend.OperatorNone:
		ev.err = frontend.NewEvalError("cannot evaluate: operator is not set")
		return 0, ev.err
	}

	panic("programming error: unexpected operator in evaluateBinaryExpression")
}
