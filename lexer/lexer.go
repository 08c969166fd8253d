package lexer

import (
	"github.com/navionguy/webcalc/token"
)

//Lexer a lexical analyzer instance
type Lexer struct {
	input        []rune
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
}

//New create a new lexer object
func New(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.readChar()
	return l
}

//NextToken scans for the next token
func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '+':
		tok = newToken(token.PLUS, l.ch)
	case '-':
		tok = newToken(token.MINUS, l.ch)
	case '*', '×':
		tok = newToken(token.ASTERISK, l.ch)
	case '/', '÷':
		tok = newToken(token.SLASH, l.ch)
	case '%':
		tok = newToken(token.PERCENT, l.ch)
	case '(':
		tok = newToken(token.LPAREN, l.ch)
	case ')':
		tok = newToken(token.RPAREN, l.ch)
	case 0:
		tok.Literal = ""
		tok.Type = token.EOF
	default:
		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			return tok
		}
		tok = newToken(token.ILLEGAL, l.ch)
	}

	l.readChar()
	return tok
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// reads a string of digits with at most one decimal point
// and an optional exponent, 1.5e-7 or 1e+21 as results are shown.
// A second decimal point ends the number.
func (l *Lexer) readNumber() string {
	position := l.position
	seenPoint := false
	seenExp := false

	for {
		switch {
		case isDigit(l.ch):
			l.readChar()
		case (l.ch == '.') && !seenPoint:
			seenPoint = true
			l.readChar()
		case (l.ch == 'e' || l.ch == 'E') && !seenExp && l.exponentFollows():
			seenExp = true
			seenPoint = true // no fractional exponents
			l.readChar()
			if (l.ch == '-') || (l.ch == '+') {
				l.readChar()
			}
		default:
			return string(l.input[position:l.position])
		}
	}
}

// an 'e' only belongs to the number when digits follow it
func (l *Lexer) exponentFollows() bool {
	next := l.peekChar()
	if (next == '-') || (next == '+') {
		if l.readPosition+1 >= len(l.input) {
			return false
		}
		next = l.input[l.readPosition+1]
	}
	return isDigit(next)
}

//peekChar - take a look at, but don't consume the next character
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition]
}

func newToken(tokenType token.TokenType, ch rune) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}
