package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ollama/ollama/api"

	"task-intelligence/pkg/ollama"
	"task-intelligence/pkg/ondevice"
	"task-intelligence/pkg/responses"
)

// ResponsesAdapter adapts pkg/responses to llmprovider.Provider interface
type ResponsesAdapter struct {
	cfg     Configuration
	client  responses.IResponses
	initErr error
}

// NewResponsesAdapter creates a new adapter for the generic networked API
func NewResponsesAdapter(cfg Configuration, httpClient *http.Client) *ResponsesAdapter {
	a := &ResponsesAdapter{cfg: cfg}
	if !a.Available() {
		return a
	}
	a.client, a.initErr = responses.New(responses.Config{
		Endpoint:   cfg.Endpoint,
		Model:      cfg.ModelID,
		APIKey:     cfg.Credential,
		HTTPClient: httpClient,
	})
	return a
}

// Complete implements Provider interface
func (a *ResponsesAdapter) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !a.Available() {
		return "", newProviderError(a.Name(), KindInvalidEndpoint, 0, "endpoint and model are required", nil)
	}
	if a.initErr != nil {
		return "", a.classify(a.initErr)
	}
	if a.cfg.Credential == "" {
		return "", newProviderError(a.Name(), KindNoCredential, 0, "no credential configured", nil)
	}

	text, err := a.client.Create(ctx, prompt, systemPrompt)
	if err != nil {
		return "", a.classify(err)
	}
	return text, nil
}

func (a *ResponsesAdapter) classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apiErr *responses.APIError
	switch {
	case errors.Is(err, responses.ErrInvalidEndpoint), errors.Is(err, responses.ErrMissingModel):
		return newProviderError(a.Name(), KindInvalidEndpoint, 0, "", err)
	case errors.Is(err, responses.ErrEmptyOutput), errors.Is(err, responses.ErrDecode):
		return newProviderError(a.Name(), KindMalformedResponse, 0, "", err)
	case errors.As(err, &apiErr):
		return newProviderError(a.Name(), kindForStatus(apiErr.StatusCode), apiErr.StatusCode, apiErr.Message, err)
	default:
		return newProviderError(a.Name(), KindTransport, 0, "", err)
	}
}

// Name returns provider name
func (a *ResponsesAdapter) Name() string {
	return ProviderResponses
}

// Model returns model name
func (a *ResponsesAdapter) Model() string {
	return a.cfg.ModelID
}

// Available reports whether endpoint and model are set
func (a *ResponsesAdapter) Available() bool {
	return a.cfg.Endpoint != "" && a.cfg.ModelID != ""
}

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	cfg     Configuration
	client  ollama.IOllama
	initErr error
}

// NewOllamaAdapter creates a new adapter for a local-network Ollama server
func NewOllamaAdapter(cfg Configuration, httpClient *http.Client) *OllamaAdapter {
	a := &OllamaAdapter{cfg: cfg}
	if !a.Available() {
		return a
	}
	a.client, a.initErr = ollama.New(ollama.Config{
		BaseURL:    cfg.Endpoint,
		Model:      cfg.ModelID,
		APIKey:     cfg.Credential,
		HTTPClient: httpClient,
	})
	return a
}

// Complete implements Provider interface
func (a *OllamaAdapter) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !a.Available() {
		return "", newProviderError(a.Name(), KindInvalidEndpoint, 0, "endpoint and model are required", nil)
	}
	if a.initErr != nil {
		return "", a.classify(a.initErr)
	}

	text, err := a.client.Chat(ctx, prompt, systemPrompt)
	if err != nil {
		return "", a.classify(err)
	}
	return text, nil
}

func (a *OllamaAdapter) classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var authErr api.AuthorizationError
	var statusErr api.StatusError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, ollama.ErrInvalidEndpoint), errors.Is(err, ollama.ErrMissingModel):
		return newProviderError(a.Name(), KindInvalidEndpoint, 0, "", err)
	case errors.Is(err, ollama.ErrEmptyOutput), errors.As(err, &syntaxErr):
		return newProviderError(a.Name(), KindMalformedResponse, 0, "", err)
	case errors.As(err, &authErr):
		return newProviderError(a.Name(), KindNoCredential, authErr.StatusCode, authErr.Status, err)
	case errors.As(err, &statusErr):
		msg := statusErr.ErrorMessage
		if msg == "" {
			msg = statusErr.Status
		}
		return newProviderError(a.Name(), kindForStatus(statusErr.StatusCode), statusErr.StatusCode, msg, err)
	default:
		return newProviderError(a.Name(), KindTransport, 0, "", err)
	}
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return ProviderOllama
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.cfg.ModelID
}

// Available reports whether endpoint and model are set
func (a *OllamaAdapter) Available() bool {
	return a.cfg.Endpoint != "" && a.cfg.ModelID != ""
}

// OnDeviceAdapter adapts an ondevice.Runtime to llmprovider.Provider interface
type OnDeviceAdapter struct {
	runtime ondevice.Runtime
}

// NewOnDeviceAdapter creates a new on-device adapter. A nil runtime is Unsupported.
func NewOnDeviceAdapter(runtime ondevice.Runtime) *OnDeviceAdapter {
	if runtime == nil {
		runtime = ondevice.Unsupported{}
	}
	return &OnDeviceAdapter{runtime: runtime}
}

// Complete implements Provider interface
func (a *OnDeviceAdapter) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !a.runtime.Supported() {
		return "", newProviderError(a.Name(), KindModelUnavailable, 0, "", ondevice.ErrUnsupported)
	}

	text, err := a.runtime.Generate(ctx, prompt, systemPrompt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		if errors.Is(err, ondevice.ErrUnsupported) {
			return "", newProviderError(a.Name(), KindModelUnavailable, 0, "", err)
		}
		return "", newProviderError(a.Name(), KindAPI, 0, "", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", newProviderError(a.Name(), KindMalformedResponse, 0, "empty generation", nil)
	}
	return text, nil
}

// Name returns provider name
func (a *OnDeviceAdapter) Name() string {
	return ProviderOnDevice
}

// Model returns model name
func (a *OnDeviceAdapter) Model() string {
	return a.runtime.Model()
}

// Available reports platform support
func (a *OnDeviceAdapter) Available() bool {
	return a.runtime.Supported()
}
