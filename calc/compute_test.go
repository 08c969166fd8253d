package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/navionguy/webcalc/berrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		inp string
		exp string
	}{
		{"2+2", "2+2"},
		{"6×7", "6*7"},
		{"9÷3", "9/3"},
		{"50%+10", "(50/100)+10"},
		{"12.5%×2", "(12.5/100)*2"},
		{"10+5%", "10+(5/100)"},
		{"5.%3", "5.%3"},
		{"Error", "Error"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.exp, Translate(tt.inp), "Translate(%q)", tt.inp)
	}
}

func TestCompute(t *testing.T) {
	res, err := Compute("(50/100)+10")
	require.NoError(t, err)
	assert.Equal(t, 10.5, res)

	tests := []struct {
		inp  string
		code int
	}{
		{"5/0", berrors.DivByZero},
		{"5+", berrors.MissingOperand},
		{"Error", berrors.Syntax},
		{"(0.5)5", berrors.Syntax},
	}

	for _, tt := range tests {
		_, err := Compute(tt.inp)

		require.Errorf(t, err, "Compute(%q)", tt.inp)
		assert.True(t, errors.Is(err, berrors.ErrInvalidExpression))
		assert.Equalf(t, tt.code, berrors.CodeOf(err), "Compute(%q) gave %s", tt.inp, err)
	}
}

func TestRoundResult(t *testing.T) {
	tests := []struct {
		inp float64
		exp float64
	}{
		{0.1 + 0.2, 0.3},
		{1.0 / 3.0, 0.3333333333},
		{2.0 / 3.0, 0.6666666667},
		{10.5, 10.5},
		{-3.5, -3.5},
		{1e200, 1e200},
		{1e300, math.Inf(1)},
		{-1e300, math.Inf(-1)},
		{math.Inf(1), math.Inf(1)},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.exp, RoundResult(tt.inp), "RoundResult(%v)", tt.inp)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		inp float64
		exp float64
	}{
		{2.5, 3},
		{-2.5, -2},
		{-0.5, 0},
		{2.4, 2},
		{-2.6, -3},
		{0.49999999999999994, 0},
		{4503599627370497, 4503599627370497},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.exp, roundHalfUp(tt.inp), "roundHalfUp(%v)", tt.inp)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		inp float64
		exp string
	}{
		{4, "4"},
		{10.5, "10.5"},
		{-3.5, "-3.5"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.3333333333, "0.3333333333"},
		{123456789, "123456789"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-1.5e22, "-1.5e+22"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e-10, "1e-10"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.exp, FormatResult(tt.inp), "FormatResult(%v)", tt.inp)
	}
}
