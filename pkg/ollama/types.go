package ollama

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"
)

var (
	// ErrInvalidEndpoint is returned when the base URL is empty or not an http(s) URL
	ErrInvalidEndpoint = errors.New("ollama: invalid endpoint")

	// ErrMissingModel is returned when no model is configured for chat
	ErrMissingModel = errors.New("ollama: model is required")

	// ErrEmptyOutput is returned when the server answered without any text
	ErrEmptyOutput = errors.New("ollama: reply contained no text")
)

// Config holds client configuration
type Config struct {
	BaseURL    string // e.g. http://192.168.1.20:11434
	Model      string
	APIKey     string // optional; some reverse proxies in front of Ollama require a bearer token
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidEndpoint
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidEndpoint, c.BaseURL)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	client  *api.Client
	baseURL string
	model   string
}

// bearerTransport attaches an Authorization header to every request.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(clone)
}
