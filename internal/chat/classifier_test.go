package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInvestmentRelated(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"What are the benefits of gold investment?", true},
		{"Should I invest in digital gold?", true},
		{"GOLD IS GREAT", true},
		{"Tell me about precious metals", true},
		{"what is the price of onions", true}, // known false positive on "price"
		{"How do I diversify my portfolio?", true},
		{"Is inflation a concern?", true},
		{"hello there", false},
		{"what's the weather today", false},
		{"", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, IsInvestmentRelated(tc.message), "message: %q", tc.message)
	}
}
