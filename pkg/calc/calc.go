package calc

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/arithlang/arith/pkg/common"
	"github.com/arithlang/arith/pkg/frontend"
)

// Client evaluates expression strings obtained from the REPL.
type Client struct {
	name string
	conf *common.Config
}

// NewClient creates a new client for evaluating expressions.
func NewClient(name string, conf *common.Config) *Client {
	return &Client{
		name: name,
		conf: conf,
	}
}

// Result denotes the outcome of evaluating a single input expression
type Result struct {
	Input  string
	Tokens []frontend.Token
	Value  int64
}

// TokenLine renders the scanned tokens as a single human-readable line.
func (r *Result) TokenLine() string {
	parts := lo.Map(r.Tokens, func(t frontend.Token, _ int) string {
		return t.String()
	})

	return strings.Join(parts, " ")
}

func (r *Result) String() string {
	return fmt.Sprintf("%s = %d", r.Input, r.Value)
}

// Execute tokenizes, parses and evaluates a single expression string.
func (c *Client) Execute(input string) (*Result, error) {
	log.WithFields(log.Fields{"name": c.name, "input": input}).Info("calc::calc::Execute; starting evaluation of input;")

	tokens, err := frontend.Tokenize(c.name, input)
	if err != nil {
		log.WithFields(log.Fields{"name": c.name, "err": err}).Error("calc::calc::Execute; error in tokenizing the input;")
		return nil, err
	}

	mode := frontend.ParseMode(c.conf.ParseMode)
	expr, err := frontend.NewTokenParser(c.name, tokens, mode).Parse()
	if err != nil {
		log.WithFields(log.Fields{"name": c.name, "err": err}).Error("calc::calc::Execute; error in parsing the token stream;")
		return nil, err
	}

	value, err := Evaluate(expr)
	if err != nil {
		log.WithFields(log.Fields{"name": c.name, "err": err}).Error("calc::calc::Execute; error in evaluating the expression;")
		return nil, err
	}

	log.WithFields(log.Fields{"name": c.name, "value": value}).Debug("calc::calc::Execute; done;")
	return &Result{
		Input:  input,
		Tokens: tokens,
		Value:  value,
	}, nil
}
