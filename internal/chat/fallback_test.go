package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackResponseCategories(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"why should I buy gold, what's the advantage?", CategoryBenefits},
		{"what is the price per gram?", CategoryPrice},
		{"how does the process work?", CategoryHow},
		{"is it safe and secure?", CategorySafe},
		{"gold gold gold", CategoryBenefits}, // default
	}
	for _, tc := range cases {
		require.Equal(t, fallbackResponses[tc.want], FallbackResponse(tc.message), "message: %q", tc.message)
	}
}

func TestFallbackResponseNeverEmpty(t *testing.T) {
	for _, msg := range []string{"", "xyz", "tell me something"} {
		require.NotEmpty(t, FallbackResponse(msg))
	}
}

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) Generate(ctx context.Context, message string) (string, error) {
	return s.text, s.err
}

func TestResponderUsesGeneratorText(t *testing.T) {
	r := NewResponder(stubGenerator{text: "advice about gold"})
	require.Equal(t, "advice about gold", r.Respond(context.Background(), "gold?"))
}

func TestResponderFallsBackOnError(t *testing.T) {
	r := NewResponder(stubGenerator{err: errors.New("api down")})
	got := r.Respond(context.Background(), "is digital gold safe?")
	require.Equal(t, fallbackResponses[CategorySafe], got)
	require.NotEmpty(t, got)
}

func TestOpenAIClientRequiresKey(t *testing.T) {
	c := &OpenAIClient{}
	_, err := c.Generate(context.Background(), "gold?")
	require.Error(t, err)
}
