package backend

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/sumkit/sumkit/internal/logger"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

type geminiBackend struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Backend that rotates through the supplied Gemini API
// keys on quota errors.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Backend, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("gemini backend requires at least one API key")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &geminiBackend{apiKeys: apiKeys, model: model, logger: log}, nil
}

func (b *geminiBackend) Name() string {
	return "gemini"
}

// Generate sends the prompt to Gemini and returns the generated text.
// Rotates API keys on 429 / quota errors.
func (b *geminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(b.apiKeys)
	var lastErr error

	for range attempts {
		key := b.apiKeys[b.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			b.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				b.logger.Warn(ctx, "Key %d rate limited, rotating...", b.currentKey+1)
				b.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (b *geminiBackend) rotateKey() {
	b.currentKey = (b.currentKey + 1) % len(b.apiKeys)
}
