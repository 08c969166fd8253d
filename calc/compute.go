package calc

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/navionguy/webcalc/evaluator"
	"github.com/navionguy/webcalc/lexer"
	"github.com/navionguy/webcalc/parser"
	"github.com/navionguy/webcalc/token"
)

// a number followed by a percent sign, 50% or 12.5%
var percentPattern = regexp.MustCompile(`(\d+(\.\d+)?)%`)

var glyphReplacer = strings.NewReplacer(
	token.TIMES, token.ASTERISK,
	token.DIVIDE, token.SLASH,
)

// results are rounded to this many decimal places
const roundScale = 1e10

// Translate turns the display text into a plain arithmetic expression.
// × and ÷ become * and /, and n% becomes (n/100).
func Translate(buffer string) string {
	expr := glyphReplacer.Replace(buffer)
	return percentPattern.ReplaceAllString(expr, "($1/100)")
}

// Compute parses and evaluates a plain arithmetic expression
func Compute(expr string) (float64, error) {
	p := parser.New(lexer.New(expr))
	exp := p.ParseExpression()

	if err := p.Err(); err != nil {
		return 0, err
	}

	return evaluator.Eval(exp)
}

// RoundResult rounds to ten decimal places to hide floating point noise.
// Halves round up, toward +Inf.
// Results past about 1.8e298 overflow while scaled and come back as Inf.
func RoundResult(val float64) float64 {
	return roundHalfUp(val*roundScale) / roundScale
}

func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// FormatResult renders a result the way a browser prints a number.
// Very large and very small values switch to exponent form.
func FormatResult(val float64) string {
	// takes care of -0 as well
	if val == 0 {
		return "0"
	}

	if math.IsInf(val, 1) {
		return "Infinity"
	}
	if math.IsInf(val, -1) {
		return "-Infinity"
	}

	abs := math.Abs(val)
	if abs >= 1e21 || abs < 1e-6 {
		return formatExponent(val)
	}

	return strconv.FormatFloat(val, 'f', -1, 64)
}

// 1.5e-07 becomes 1.5e-7
func formatExponent(val float64) string {
	s := strconv.FormatFloat(val, 'e', -1, 64)

	i := strings.IndexByte(s, 'e')
	mant, exp := s[:i], s[i+1:]
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if len(digits) == 0 {
		digits = "0"
	}

	return mant + "e" + sign + digits
}
