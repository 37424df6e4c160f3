package responses

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newResponsesImpl creates a new implementation
func newResponsesImpl(cfg Config) *responsesImpl {
	return &responsesImpl{
		endpoint:   cfg.Endpoint,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}
}

// Create sends one request and returns the concatenated output text
func (r *responsesImpl) Create(ctx context.Context, prompt, systemPrompt string) (string, error) {
	body, err := json.Marshal(buildRequest(r.model, prompt, systemPrompt))
	if err != nil {
		return "", fmt.Errorf("responses: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("responses: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("responses: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newAPIError(resp, respBody)
	}

	var result response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	text := extractText(&result)
	if text == "" {
		return "", ErrEmptyOutput
	}
	return text, nil
}

// Model returns the model being used
func (r *responsesImpl) Model() string {
	return r.model
}

// buildRequest uses a bare string input unless a system prompt must travel alongside it.
func buildRequest(model, prompt, systemPrompt string) request {
	if systemPrompt == "" {
		return request{Model: model, Input: prompt}
	}
	return request{
		Model: model,
		Input: []inputMessage{
			{Type: ItemTypeMessage, Role: RoleSystem, Content: systemPrompt},
			{Type: ItemTypeMessage, Role: RoleUser, Content: prompt},
		},
	}
}

func extractText(resp *response) string {
	var sb strings.Builder
	for _, item := range resp.Output {
		if item.Type != ItemTypeMessage {
			continue
		}
		for _, block := range item.Content {
			if block.Type == ContentTypeOutputText {
				sb.WriteString(block.Text)
			}
		}
	}
	return sb.String()
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}
