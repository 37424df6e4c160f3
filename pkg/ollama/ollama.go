package ollama

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// newOllamaImpl creates a new implementation. cfg must already be validated.
func newOllamaImpl(cfg Config) *ollamaImpl {
	parsed, _ := url.Parse(cfg.BaseURL)

	httpClient := cfg.HTTPClient
	if cfg.APIKey != "" {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		wrapped := *httpClient
		wrapped.Transport = &bearerTransport{base: base, token: cfg.APIKey}
		httpClient = &wrapped
	}

	return &ollamaImpl{
		client:  api.NewClient(parsed, httpClient),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
	}
}

// Chat runs one non-streaming chat turn
func (o *ollamaImpl) Chat(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if o.model == "" {
		return "", ErrMissingModel
	}

	messages := make([]api.Message, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, api.Message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, api.Message{Role: "user", Content: prompt})

	stream := false
	req := &api.ChatRequest{
		Model:    o.model,
		Messages: messages,
		Stream:   &stream,
	}

	var sb strings.Builder
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyOutput
	}
	return text, nil
}

// ListModels returns locally installed models via the native listing endpoint
func (o *ollamaImpl) ListModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, ListTimeout)
	defer cancel()

	resp, err := o.client.List(ctx)
	if err != nil {
		return nil, err
	}

	models := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, m.Name)
	}
	return models, nil
}

// Model returns the model being used
func (o *ollamaImpl) Model() string {
	return o.model
}

// CompatBaseURL returns the root of the OpenAI-compatible API
func (o *ollamaImpl) CompatBaseURL() string {
	return o.baseURL + openAICompatPath
}
