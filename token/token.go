package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Literals
	NUMBER = "NUMBER" // 42, 3.14, 3., .5

	// Operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"

	// Delimiters
	PERIOD = "."
	LPAREN = "("
	RPAREN = ")"
)

// Glyphs shown on the keypad and in the display
const (
	TIMES  = "×"
	DIVIDE = "÷"
)

type Token struct {
	Type    TokenType
	Literal string
}

// display glyphs and the operator they stand for
var glyphs = map[string]TokenType{
	TIMES:  ASTERISK,
	DIVIDE: SLASH,
}

// Operators are the tokens that end a number segment in the display buffer.
// The order matches the keypad.
var Operators = []string{PLUS, MINUS, TIMES, DIVIDE, PERCENT}

// LookupGlyph maps a display glyph to the operator it stands for.
// Anything that isn't a glyph comes back unchanged.
func LookupGlyph(glyph string) TokenType {
	if tok, ok := glyphs[glyph]; ok {
		return tok
	}
	return TokenType(glyph)
}

// IsOperator reports whether s is one of the display operator tokens
func IsOperator(s string) bool {
	for _, op := range Operators {
		if s == op {
			return true
		}
	}
	return false
}
