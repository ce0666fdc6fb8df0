package calc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arithlang/arith/pkg/frontend"
)

var testName = "testEvaluator"

func TestEvaluateLiteral(t *testing.T) {
	value, err := Evaluate(&frontend.Literal{Value: 42})
	assert.Nil(t, err)
	assert.Equal(t, int64(42), value)
}

func TestEvaluateSimpleExpressions(t *testing.T) {
	cmds := []string{"2+3", "12-3", "(2+3)-(1+3)", "((1+2)-3)+4"}
	expectedResult := []int64{5, 9, 1, 4}

	for i := range cmds {
		expr, err := frontend.NewParser(testName, cmds[i], frontend.ModeStrict).Parse()
		assert.Nil(t, err, "unexpected parse error for %q", cmds[i])

		value, err := Evaluate(expr)
		assert.Nil(t, err, "unexpected eval error for %q", cmds[i])
		assert.Equal(t, expectedResult[i], value, "unexpected value for %q", cmds[i])
	}
}

// Round-trip: every two-operand expression evaluates to the direct result.
func TestEvaluateRoundTrip(t *testing.T) {
	operands := []int64{0, 1, 5, 12, 40}

	for _, a := range operands {
		for _, b := range operands {
			cmd := fmt.Sprintf("%d+%d", a, b)
			expr, err := frontend.NewParser(testName, cmd, frontend.ModeStrict).Parse()
			assert.Nil(t, err)
			value, err := Evaluate(expr)
			assert.Nil(t, err)
			assert.Equal(t, a+b, value, "unexpected value for %q", cmd)

			cmd = fmt.Sprintf("%d-%d", a, b)
			expr, err = frontend.NewParser(testName, cmd, frontend.ModeStrict).Parse()
			assert.Nil(t, err)
			value, err = Evaluate(expr)
			assert.Nil(t, err)
			assert.Equal(t, a-b, value, "unexpected value for %q", cmd)
		}
	}
}

func TestEvaluateIncompleteExpression(t *testing.T) {
	// missing right operand
	_, err := Evaluate(&frontend.BinaryExpression{
		Op: frontend.OperatorAddition,
		L:  &frontend.Literal{Value: 2},
	})
	assert.NotNil(t, err)
	assert.IsType(t, frontend.EvalError{}, err)

	// operator not set
	_, err = Evaluate(&frontend.BinaryExpression{
		L: &frontend.Literal{Value: 2},
		R: &frontend.Literal{Value: 3},
	})
	assert.NotNil(t, err)
	assert.IsType(t, frontend.EvalError{}, err)

	// no expression at all
	_, err = Evaluate(nil)
	assert.NotNil(t, err)
	assert.IsType(t, frontend.EvalError{}, err)
}

func TestEvaluatePermissiveDegenerateRoot(t *testing.T) {
	expr, err := frontend.NewParser(testName, "5", frontend.ModePermissive).Parse()
	assert.Nil(t, err)

	_, err = Evaluate(expr)
	assert.NotNil(t, err)
	assert.IsType(t, frontend.EvalError{}, err)
}
