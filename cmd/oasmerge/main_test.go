package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"mrege", "merge"},
		{"merg", "merge"},
		{"emrge", "merge"},
		{"conert", "convert"},
		{"convrt", "convert"},
		{"covnert", "convert"},
		{"mc", "mcp"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"verison", "version"},
		{"hep", "help"},
		{"halp", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"mergeallthethings", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"merge", "merge", 0},
		{"kitten", "sitting", 3},
		{"mcp", "mpc", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, editDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, editDistance(tt.b, tt.a))
		})
	}
}
