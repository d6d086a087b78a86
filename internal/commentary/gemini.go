package commentary

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	temperature     = 0.9
	maxOutputTokens = 50
)

type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator - returns nil without an API key, which the Service treats as offline.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (Generator, error) {
	if apiKey == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGenerator{
		client: client,
		model:  model,
	}, nil
}

func (that *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := that.client.Models.GenerateContent(ctx, that.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](temperature),
		MaxOutputTokens:   maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return response.Text(), nil
}
