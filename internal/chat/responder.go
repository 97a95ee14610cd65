package chat

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Responder wraps a Generator with the availability guarantee: any
// generator failure is logged and downgraded to a canned response, so
// the caller always gets text back.
type Responder struct {
	generator Generator
}

func NewResponder(g Generator) *Responder {
	return &Responder{generator: g}
}

func (r *Responder) Respond(ctx context.Context, message string) string {
	text, err := r.generator.Generate(ctx, message)
	if err != nil {
		logrus.WithError(err).Warn("text generation failed, using fallback response")
		return FallbackResponse(message)
	}
	return text
}
