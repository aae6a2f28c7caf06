package assistant

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

var (
	// ErrDisabled is returned by the generator used when no API key is configured.
	ErrDisabled = errors.New("assistant disabled: no API key configured")

	// ErrEmptyResponse is returned when the backend answers without text.
	ErrEmptyResponse = errors.New("empty response from assistant backend")
)

// Request is one call to the generative backend.
type Request struct {
	// Prompt is the user content.
	Prompt string

	// SystemInstruction constrains the answer format.
	SystemInstruction string

	// Search enables web search grounding on the backend.
	Search bool

	// ResponseSchema, when set, switches the backend to JSON output
	// constrained by the schema.
	ResponseSchema *genai.Schema
}

// Generator sends a request to a generative backend and returns its text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Disabled returns a generator that fails every call with ErrDisabled.
func Disabled() Generator {
	return GeneratorFunc(func(context.Context, Request) (string, error) {
		return "", ErrDisabled
	})
}
