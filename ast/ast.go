package ast

import (
	"bytes"

	"github.com/navionguy/webcalc/token"
)

// Node defines interface for all node types
type Node interface {
	TokenLiteral() string
	String() string
}

//Expression defines interface for all expression nodes
type Expression interface {
	Node
	expressionNode()
}

// NumberLiteral holds a number as it was keyed in
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) expressionNode() {}

// TokenLiteral returns my token literal
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string       { return nl.Token.Literal }

//PrefixExpression the big one here is - as in -5
type PrefixExpression struct {
	Token    token.Token // The prefix token, e.g. -
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode() {}

//TokenLiteral returns read string of Token
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	var out bytes.Buffer
	out.WriteString(pe.Operator)
	out.WriteString(pe.Right.String())
	return out.String()
}

// InfixExpression things like 5 + 6
// Operator is always the standard form, * and / rather than the glyphs
type InfixExpression struct {
	Token    token.Token // The operator token, e.g. +
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode() {}

//TokenLiteral my token
func (ie *InfixExpression) TokenLiteral() string {
	return ie.Token.Literal
}

// String the readable version of me
func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	return out.String()
}

// GroupedExpression is enclosed in parentheses
type GroupedExpression struct {
	Token token.Token
	Exp   Expression
}

func (ge *GroupedExpression) expressionNode() {}

// TokenLiteral sends back my token
func (ge *GroupedExpression) TokenLiteral() string {
	return ge.Token.Literal
}

// String the readable version of me
func (ge *GroupedExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ge.Exp.String())
	out.WriteString(")")

	return out.String()
}
