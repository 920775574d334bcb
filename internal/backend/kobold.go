package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultKoboldURL targets a local KoboldCpp server.
// See https://lite.koboldai.net/koboldcpp_api
const DefaultKoboldURL = "http://localhost:5001/api/v1/generate"

type koboldAdapter struct {
	url string
}

// NewKobold creates a Backend for the KoboldAI generate API. An empty url
// falls back to the local-server default.
func NewKobold(url string, params map[string]any) Backend {
	if url == "" {
		url = DefaultKoboldURL
	}
	return newHTTPBackend("kobold", &koboldAdapter{url: url}, params)
}

func (a *koboldAdapter) BuildRequest(prompt string, params map[string]any) (RequestSpec, error) {
	body := map[string]any{
		"max_context_length": 512,
		"max_length":         100,
		"prompt":             strings.TrimSpace(prompt),
		"quiet":              false,
		"rep_pen":            1.1,
		"rep_pen_range":      256,
		"rep_pen_slope":      1,
		"temperature":        0.5,
	}
	mergeParams(body, params)
	return RequestSpec{URL: a.url, Body: body}, nil
}

func (a *koboldAdapter) ParseResponse(body []byte) (string, error) {
	var resp struct {
		Results []struct {
			Text string `json:"text"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode kobold response: %w", err)
	}
	if len(resp.Results) == 0 {
		return "", fmt.Errorf("no \"results\" in kobold response")
	}
	return resp.Results[0].Text, nil
}
