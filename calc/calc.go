// Package calc holds the calculator's state and the actions that
// change it. Every action finishes by pushing the buffer to the
// display, which never shows anything but the buffer.
package calc

import (
	"strings"
	"unicode/utf8"

	"github.com/navionguy/webcalc/berrors"
	"github.com/navionguy/webcalc/token"
)

// Display is wherever the buffer ends up
type Display interface {
	Show(text string)
	Log(msg string)
}

// State is one calculator
type State struct {
	buffer          string // never empty
	operatorPending bool   // buffer ends with an operator
	done            bool   // buffer holds a result
	display         Display
}

// New returns a calculator showing 0
func New(d Display) *State {
	if d == nil {
		d = nopDisplay{}
	}
	s := &State{display: d}
	s.Clear()
	return s
}

// Buffer is the text on the display
func (s *State) Buffer() string { return s.buffer }

// OperatorPending reports whether the buffer ends with an operator
func (s *State) OperatorPending() bool { return s.operatorPending }

// Done reports whether the buffer holds the result of the last evaluation
func (s *State) Done() bool { return s.done }

// Append adds a digit, decimal point or operator to the buffer.
// Anything else is ignored.
func (s *State) Append(value string) {
	if !validInput(value) {
		return
	}

	// new input after a result starts a new calculation
	if s.done {
		s.buffer = "0"
		s.done = false
	}

	if s.buffer == "0" || s.buffer == berrors.Marker {
		if value == token.PERIOD {
			s.buffer = "0"
		} else {
			s.buffer = ""
		}
	}

	if token.IsOperator(value) {
		if s.operatorPending {
			s.buffer = dropLast(s.buffer)
		}
		s.operatorPending = true
	} else {
		s.operatorPending = false
	}

	if value == token.PERIOD && strings.Contains(lastSegment(s.buffer), token.PERIOD) {
		return
	}

	s.buffer += value
	s.refresh()
}

// Evaluate replaces the buffer with the value of its expression,
// or the error marker if it has none.
func (s *State) Evaluate() {
	if s.operatorPending {
		return
	}

	result, err := Compute(Translate(s.buffer))

	if err != nil {
		s.display.Log("Calculation Error: " + err.Error())
		s.buffer = berrors.Marker
	} else {
		s.buffer = FormatResult(RoundResult(result))
		s.done = true
	}

	s.operatorPending = false
	s.refresh()
}

// Delete removes the last character, after an error or a result
// it clears everything
func (s *State) Delete() {
	if s.buffer == berrors.Marker || s.done {
		s.Clear()
		return
	}

	s.buffer = dropLast(s.buffer)
	if len(s.buffer) == 0 {
		s.buffer = "0"
	}

	s.operatorPending = endsWithOperator(s.buffer)
	s.refresh()
}

// Clear puts the calculator back to 0
func (s *State) Clear() {
	s.buffer = "0"
	s.operatorPending = false
	s.done = false
	s.refresh()
}

func (s *State) refresh() {
	s.display.Show(s.buffer)
}

func validInput(value string) bool {
	if value == token.PERIOD || token.IsOperator(value) {
		return true
	}

	return len(value) == 1 && value[0] >= '0' && value[0] <= '9'
}

// remove the last character, which may be a multi-byte glyph
func dropLast(buffer string) string {
	_, size := utf8.DecodeLastRuneInString(buffer)
	return buffer[:len(buffer)-size]
}

func endsWithOperator(buffer string) bool {
	r, _ := utf8.DecodeLastRuneInString(buffer)
	return token.IsOperator(string(r))
}

// the text after the last operator, a '-' counts as an operator
// even when it is a sign
func lastSegment(buffer string) string {
	i := strings.LastIndexFunc(buffer, func(r rune) bool {
		return token.IsOperator(string(r))
	})
	if i < 0 {
		return buffer
	}

	_, size := utf8.DecodeRuneInString(buffer[i:])
	return buffer[i+size:]
}

type nopDisplay struct{}

func (nopDisplay) Show(string) {}
func (nopDisplay) Log(string)  {}
