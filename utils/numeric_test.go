package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount_LenientCoercion(t *testing.T) {
	cases := []struct {
		input    string
		expected float64
	}{
		{"150", 150},
		{"12.50", 12.5},
		{"  99.99  ", 99.99},
		{"-25", -25},
		{"12.50 php", 12.5},
		{".5", 0.5},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"php 150", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ParseAmount(tc.input), "input %q", tc.input)
	}
}

func TestParseCount_TruncatesAndDegrades(t *testing.T) {
	cases := []struct {
		input    string
		expected int
	}{
		{"3", 3},
		{" 10 ", 10},
		{"0", 0},
		{"2.9", 2},
		{"-1", -1},
		{"", 0},
		{"two", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ParseCount(tc.input), "input %q", tc.input)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.3, Round(0.1+0.2))
	assert.Equal(t, 33.33, Round(100.0/3.0))
	assert.Equal(t, 75.0, Round(75.0))
}
