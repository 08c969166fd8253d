package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupGlyph(t *testing.T) {

	for k, v := range glyphs {
		if v != LookupGlyph(k) {
			t.Errorf("LookupGlyph gave %s, wanted %s", LookupGlyph(k), v)
		}
	}

	if "+" != LookupGlyph("+") {
		t.Errorf("Wanted +, got %s", LookupGlyph("+"))
	}
}

func TestIsOperator(t *testing.T) {
	tests := []struct {
		inp string
		exp bool
	}{
		{inp: "+", exp: true},
		{inp: "-", exp: true},
		{inp: "×", exp: true},
		{inp: "÷", exp: true},
		{inp: "%", exp: true},
		{inp: "*", exp: false},
		{inp: "/", exp: false},
		{inp: ".", exp: false},
		{inp: "7", exp: false},
		{inp: "", exp: false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.exp, IsOperator(tt.inp), "IsOperator(%q)", tt.inp)
	}
}
