package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arithlang/arith/pkg/common"
	"github.com/arithlang/arith/pkg/frontend"
)

func TestClientExecute(t *testing.T) {
	c := NewClient("testClient", common.NewDefaultConfig())

	res, err := c.Execute("2+3")
	assert.Nil(t, err)
	assert.Equal(t, int64(5), res.Value)
	assert.Equal(t, "2+3 = 5", res.String())
	assert.Equal(t, `"2" "+" "3"`, res.TokenLine())
}

func TestClientExecuteParenthesized(t *testing.T) {
	c := NewClient("testClient", common.NewDefaultConfig())

	res, err := c.Execute("(2+3)-(1+3)")
	assert.Nil(t, err)
	assert.Equal(t, int64(1), res.Value)
	assert.Equal(t, "(2+3)-(1+3) = 1", res.String())
}

// Regression fixture: the permissive mode reproduces the reference behavior
// where 1+2+3 combines the first and last operands into 1+3 = 4.
func TestClientExecutePermissiveFixture(t *testing.T) {
	conf := common.NewDefaultConfig()
	conf.ParseMode = common.ParseModePermissive
	c := NewClient("testClient", conf)

	res, err := c.Execute("1+2+3")
	assert.Nil(t, err)
	assert.Equal(t, int64(4), res.Value)
	assert.Equal(t, "1+2+3 = 4", res.String())
}

func TestClientExecuteStrictRejectsExtraOperands(t *testing.T) {
	c := NewClient("testClient", common.NewDefaultConfig())

	res, err := c.Execute("1+2+3")
	assert.Nil(t, res)
	assert.NotNil(t, err)
	assert.IsType(t, frontend.ParseError{}, err)
}

func TestClientExecuteLexError(t *testing.T) {
	c := NewClient("testClient", common.NewDefaultConfig())

	res, err := c.Execute("2+$")
	assert.Nil(t, res)
	assert.NotNil(t, err)
	assert.IsType(t, frontend.LexError{}, err)
}
