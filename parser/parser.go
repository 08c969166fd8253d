package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/navionguy/webcalc/ast"
	"github.com/navionguy/webcalc/berrors"
	"github.com/navionguy/webcalc/lexer"
	"github.com/navionguy/webcalc/token"
)

const (
	_ int = iota
	// LOWEST defines the bottom of the priority stack
	LOWEST
	SUM     // +
	PRODUCT // * / %
	PREFIX  // -X or +X
)

var precedences = map[token.TokenType]int{
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.PERCENT:  PRODUCT,
}

// Parser an instance
type Parser struct {
	l      *lexer.Lexer
	errors []error

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// New create and return a Parser instance
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []error{},
	}

	// create map parsers for prefix elements
	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.PLUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)

	// and infix elements
	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.SLASH, p.parseInfixExpression)
	p.registerInfix(token.ASTERISK, p.parseInfixExpression)
	p.registerInfix(token.PERCENT, p.parseInfixExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns list of errors seen while parsing
func (p *Parser) Errors() []error {
	return p.errors
}

// Err returns the first error seen, nil if the parse was clean
func (p *Parser) Err() error {
	if len(p.errors) == 0 {
		return nil
	}
	return p.errors[0]
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseExpression parses the whole input as one expression.
// Anything left over after the expression is a syntax error.
func (p *Parser) ParseExpression() ast.Expression {
	if p.curTokenIs(token.EOF) {
		p.reportError(berrors.MissingOperand, "empty expression")
		return nil
	}

	exp := p.parseExpression(LOWEST)

	if exp != nil && !p.peekTokenIs(token.EOF) {
		if p.peekTokenIs(token.RPAREN) {
			p.reportError(berrors.UnbalancedParens, "unexpected )")
		} else {
			p.reportError(berrors.Syntax, fmt.Sprintf("unexpected %s", p.peekToken.Literal))
		}
	}

	if len(p.errors) > 0 {
		return nil
	}
	return exp
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	for leftExp != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.NumberLiteral{Token: p.curToken}

	value, err := strconv.ParseFloat(p.curToken.Literal, 64)

	// out of range still hands back +/-Inf, which the evaluator rejects
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.reportError(berrors.Syntax, fmt.Sprintf("could not parse %q as number", p.curToken.Literal))
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: string(token.LookupGlyph(p.curToken.Literal)),
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	exp := &ast.GroupedExpression{Token: p.curToken}

	p.nextToken()

	exp.Exp = p.parseExpression(LOWEST)
	if exp.Exp == nil {
		return nil
	}

	if !p.peekTokenIs(token.RPAREN) {
		p.reportError(berrors.UnbalancedParens, fmt.Sprintf("expected ), got %q", p.peekToken.Literal))
		return nil
	}
	p.nextToken()

	return exp
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) peekPrecedence() int {
	if p, ok := precedences[p.peekToken.Type]; ok {
		return p
	}

	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if p, ok := precedences[p.curToken.Type]; ok {
		return p
	}

	return LOWEST
}

func (p *Parser) noPrefixParseFnError(t token.Token) {
	switch t.Type {
	case token.EOF:
		p.reportError(berrors.MissingOperand, "expression ends with an operator")
	case token.RPAREN:
		p.reportError(berrors.UnbalancedParens, "unexpected )")
	default:
		p.reportError(berrors.Syntax, fmt.Sprintf("unexpected %q", t.Literal))
	}
}

func (p *Parser) reportError(code int, detail string) {
	p.errors = append(p.errors, berrors.New(code, detail))
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}
