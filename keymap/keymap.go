// Package keymap turns raw page events, key presses and button
// clicks, into calculator actions.
package keymap

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/navionguy/webcalc/token"
)

// Kind of thing the calculator should do
type Kind int

const (
	Append Kind = iota + 1
	Evaluate
	Delete
	Clear
)

// Action is one routed event
type Action struct {
	Kind           Kind
	Token          string // what to append, only for Append
	PreventDefault bool   // the browser should not act on the key
}

// Calculator is anything that can carry out an action
type Calculator interface {
	Append(value string)
	Evaluate()
	Delete()
	Clear()
}

// Button classes on the keypad
const (
	ClassNumber   = "btn-num"
	ClassOperator = "btn-op"
	ClassFunction = "btn-func"
)

// Function button labels
const (
	LabelClear  = "AC"
	LabelDelete = "DEL"
	LabelEquals = "="
)

// keys that append something other than themselves
var keyTokens = map[string]string{
	"*": token.TIMES,
	"/": token.DIVIDE,
	"+": token.PLUS,
	"-": token.MINUS,
	"%": token.PERCENT,
	".": token.PERIOD,
}

// FromKey maps a KeyboardEvent.key value to an action.
// Full width characters count as their ASCII forms.
func FromKey(key string) (Action, bool) {
	key = width.Narrow.String(key)

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Action{Kind: Append, Token: key}, true
	}

	if tok, ok := keyTokens[key]; ok {
		return Action{Kind: Append, Token: tok}, true
	}

	switch key {
	case "Enter", "=":
		return Action{Kind: Evaluate, PreventDefault: true}, true
	case "Backspace":
		return Action{Kind: Delete}, true
	case "Escape":
		return Action{Kind: Clear}, true
	}

	if strings.ToLower(key) == "c" {
		return Action{Kind: Clear}, true
	}

	return Action{}, false
}

// FromButton maps a click on a keypad button, given its classes
// and label, to an action.
func FromButton(classes []string, label string) (Action, bool) {
	label = strings.TrimSpace(label)

	switch {
	case hasClass(classes, ClassNumber) || label == token.PERIOD:
		return Action{Kind: Append, Token: label}, true

	case hasClass(classes, ClassOperator):
		if label == LabelEquals {
			return Action{Kind: Evaluate}, true
		}
		return Action{Kind: Append, Token: label}, true

	case hasClass(classes, ClassFunction):
		switch label {
		case LabelClear:
			return Action{Kind: Clear}, true
		case LabelDelete:
			return Action{Kind: Delete}, true
		}
	}

	return Action{}, false
}

// Dispatch carries out the action
func Dispatch(c Calculator, a Action) {
	switch a.Kind {
	case Append:
		c.Append(a.Token)
	case Evaluate:
		c.Evaluate()
	case Delete:
		c.Delete()
	case Clear:
		c.Clear()
	}
}

func hasClass(classes []string, class string) bool {
	for _, c := range classes {
		if c == class {
			return true
		}
	}
	return false
}
