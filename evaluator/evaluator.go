package evaluator

import (
	"fmt"
	"math"

	"github.com/navionguy/webcalc/ast"
	"github.com/navionguy/webcalc/berrors"
	"github.com/navionguy/webcalc/token"
)

// Eval walks the expression tree and returns its value.
// Anything that is not a finite number comes back as an error.
func Eval(node ast.Node) (float64, error) {
	val, err := eval(node)
	if err != nil {
		return 0, err
	}

	return checkFinite(val)
}

func eval(node ast.Node) (float64, error) {
	switch node := node.(type) {
	case *ast.NumberLiteral:
		return node.Value, nil

	case *ast.GroupedExpression:
		return eval(node.Exp)

	case *ast.PrefixExpression:
		right, err := eval(node.Right)
		if err != nil {
			return 0, err
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left, err := eval(node.Left)
		if err != nil {
			return 0, err
		}
		right, err := eval(node.Right)
		if err != nil {
			return 0, err
		}
		return evalInfixExpression(node.Operator, left, right)
	}

	return 0, berrors.New(berrors.Syntax, fmt.Sprintf("can't evaluate %T", node))
}

func evalPrefixExpression(operator string, right float64) (float64, error) {
	switch operator {
	case token.MINUS:
		return -right, nil
	case token.PLUS:
		return right, nil
	}

	return 0, berrors.New(berrors.Syntax, "unknown operator "+operator)
}

// x/0 and x%0 are reported here, before they turn into Inf or NaN
func evalInfixExpression(operator string, left, right float64) (float64, error) {
	switch operator {
	case token.PLUS:
		return left + right, nil
	case token.MINUS:
		return left - right, nil
	case token.ASTERISK:
		return left * right, nil
	case token.SLASH:
		if right == 0 {
			return 0, berrors.New(berrors.DivByZero, fmt.Sprintf("%g / 0", left))
		}
		return left / right, nil
	case token.PERCENT:
		if right == 0 {
			return 0, berrors.New(berrors.NotANumber, fmt.Sprintf("%g %% 0", left))
		}
		return math.Mod(left, right), nil
	}

	return 0, berrors.New(berrors.Syntax, "unknown operator "+operator)
}

func checkFinite(val float64) (float64, error) {
	if math.IsNaN(val) {
		return 0, berrors.New(berrors.NotANumber, "")
	}

	if math.IsInf(val, 0) {
		return 0, berrors.New(berrors.Overflow, "")
	}

	return val, nil
}
