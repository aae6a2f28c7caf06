package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// GeminiConfig configures the Gemini generator.
type GeminiConfig struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint. Empty uses the public endpoint.
	BaseURL string

	// HTTPClient overrides the transport. Nil uses the SDK default.
	HTTPClient *http.Client
}

// GeminiGenerator calls the Gemini API through the genai SDK.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

var _ Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a Gemini-backed generator.
// It fails with ErrDisabled when no API key is set.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// NewGenerator returns a Gemini generator, or the disabled generator when no
// API key is configured. A missing key is not an error.
func NewGenerator(ctx context.Context, cfg GeminiConfig) (Generator, error) {
	gen, err := NewGeminiGenerator(ctx, cfg)
	if errors.Is(err, ErrDisabled) {
		return Disabled(), nil
	}
	if err != nil {
		return nil, err
	}
	return gen, nil
}

// Model returns the model identifier sent with each request.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate sends one generateContent call and returns the response text.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Search {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if req.ResponseSchema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.ResponseSchema
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
