package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Defaults for the Ollama generate API.
// See https://github.com/ollama/ollama/blob/main/docs/api.md
const (
	DefaultOllamaURL   = "http://localhost:11434/api/generate"
	DefaultOllamaModel = "phi3"
)

type ollamaAdapter struct {
	url   string
	model string
}

// NewOllama creates a Backend for the Ollama generate API. Empty url or
// model fall back to the local-server defaults.
func NewOllama(url, model string, params map[string]any) Backend {
	if url == "" {
		url = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	return newHTTPBackend("ollama", &ollamaAdapter{url: url, model: model}, params)
}

func (a *ollamaAdapter) BuildRequest(prompt string, params map[string]any) (RequestSpec, error) {
	body := map[string]any{
		"model":  a.model,
		"prompt": strings.TrimSpace(prompt),
		"stream": false,
	}
	mergeParams(body, params)
	return RequestSpec{URL: a.url, Body: body}, nil
}

func (a *ollamaAdapter) ParseResponse(body []byte) (string, error) {
	var resp struct {
		Response *string `json:"response"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	if resp.Response == nil {
		return "", fmt.Errorf("no \"response\" field in ollama response")
	}
	return *resp.Response, nil
}
