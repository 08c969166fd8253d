package evaluator

import (
	"errors"
	"strings"
	"testing"

	"github.com/navionguy/webcalc/ast"
	"github.com/navionguy/webcalc/berrors"
	"github.com/navionguy/webcalc/lexer"
	"github.com/navionguy/webcalc/parser"
	"github.com/navionguy/webcalc/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEval(t *testing.T, input string) (float64, error) {
	p := parser.New(lexer.New(input))
	exp := p.ParseExpression()
	require.NoErrorf(t, p.Err(), "parsing %q", input)

	return Eval(exp)
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		inp string
		exp float64
	}{
		{"2+2", 4},
		{"5", 5},
		{"-5", -5},
		{"+5", 5},
		{"1+2*3", 7},
		{"10-4-3", 3},
		{"8/4/2", 1},
		{"(50/100)+10", 10.5},
		{"6×7", 42},
		{"9÷4", 2.25},
		{"5.%3", 2},
		{"-5.%3", -2},
		{"7.5%2", 1.5},
		{"3.+.5", 3.5},
		{"-2*3", -6},
	}

	for _, tt := range tests {
		res, err := testEval(t, tt.inp)

		require.NoErrorf(t, err, "evaluating %q", tt.inp)
		assert.InDeltaf(t, tt.exp, res, 1e-12, "evaluating %q", tt.inp)
	}
}

func TestEvalFailures(t *testing.T) {
	tests := []struct {
		inp  string
		code int
	}{
		{"5/0", berrors.DivByZero},
		{"0/0", berrors.DivByZero},
		{"5.%0", berrors.NotANumber},
		{strings.Repeat("9", 200) + "*" + strings.Repeat("9", 200), berrors.Overflow},
	}

	for _, tt := range tests {
		_, err := testEval(t, tt.inp)

		require.Errorf(t, err, "%q should fail", tt.inp)
		assert.True(t, errors.Is(err, berrors.ErrInvalidExpression))
		assert.Equalf(t, tt.code, berrors.CodeOf(err), "%q gave %s", tt.inp, err)
	}
}

func TestEvalUnknownNode(t *testing.T) {
	_, err := Eval(nil)
	assert.Equal(t, berrors.Syntax, berrors.CodeOf(err))

	bad := &ast.InfixExpression{
		Token:    token.Token{Type: token.ILLEGAL, Literal: "^"},
		Operator: "^",
		Left:     &ast.NumberLiteral{Value: 2},
		Right:    &ast.NumberLiteral{Value: 3},
	}
	_, err = Eval(bad)
	assert.Equal(t, berrors.Syntax, berrors.CodeOf(err))

	neg := &ast.PrefixExpression{Operator: "!", Right: &ast.NumberLiteral{Value: 3}}
	_, err = Eval(neg)
	assert.Equal(t, berrors.Syntax, berrors.CodeOf(err))
}
