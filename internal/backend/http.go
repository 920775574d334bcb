package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 5 * time.Minute

// httpBackend drives one Adapter over the shared HTTP transport.
type httpBackend struct {
	name    string
	adapter Adapter
	params  map[string]any
	client  *resty.Client
}

func newHTTPBackend(name string, adapter Adapter, params map[string]any) Backend {
	return &httpBackend{
		name:    name,
		adapter: adapter,
		params:  params,
		client:  resty.New().SetTimeout(requestTimeout),
	}
}

func (b *httpBackend) Name() string {
	return b.name
}

func (b *httpBackend) Generate(ctx context.Context, prompt string) (string, error) {
	spec, err := b.adapter.BuildRequest(prompt, b.params)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetBody(spec.Body).
		Post(spec.URL)
	if err != nil {
		return "", fmt.Errorf("send request to %s: %w", spec.URL, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("request failed with status %s", resp.Status())
	}

	text, err := b.adapter.ParseResponse(resp.Body())
	if err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	return text, nil
}
