package berrors

import (
	"errors"
	"fmt"
)

// Marker is what the display shows after a failed calculation
const Marker = "Error"

// Every failure is an invalid expression, the codes only
// say why, for the console.
const (
	Syntax = iota + 1
	DivByZero
	NotANumber
	Overflow
	MissingOperand
	UnbalancedParens
)

// ErrInvalidExpression is the one kind of failure there is
var ErrInvalidExpression = errors.New("invalid expression")

// Error carries the reason code and where it was found
type Error struct {
	Code   int
	Detail string
}

func (e *Error) Error() string {
	if len(e.Detail) > 0 {
		return fmt.Sprintf("%s: %s", TextForError(e.Code), e.Detail)
	}
	return TextForError(e.Code)
}

// Is makes errors.Is(err, ErrInvalidExpression) true for any Error
func (e *Error) Is(target error) bool {
	return target == ErrInvalidExpression
}

// New builds an Error for the code
func New(code int, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

// CodeOf digs the reason code out of err, 0 if it isn't one of mine
func CodeOf(err error) int {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return 0
}

// TextForError returns the error text based on error number
func TextForError(err int) string {
	switch err {
	case Syntax:
		return "Syntax error"
	case DivByZero:
		return "Division by zero"
	case NotANumber:
		return "Not a number"
	case Overflow:
		return "Overflow"
	case MissingOperand:
		return "Missing operand"
	case UnbalancedParens:
		return "Unbalanced parentheses"
	}

	return "Unprintable error"
}
