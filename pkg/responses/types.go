package responses

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var (
	// ErrInvalidEndpoint is returned when the endpoint is empty or not an http(s) URL
	ErrInvalidEndpoint = errors.New("responses: invalid endpoint")

	// ErrMissingModel is returned when no model id is configured
	ErrMissingModel = errors.New("responses: model is required")

	// ErrEmptyOutput is returned when a 2xx reply carries no output_text
	ErrEmptyOutput = errors.New("responses: reply contained no output text")

	// ErrDecode is returned when a 2xx reply is not valid JSON
	ErrDecode = errors.New("responses: failed to decode reply")
)

// APIError is a non-2xx reply from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("responses: API error %d: %s", e.StatusCode, e.Message)
}

// Config holds client configuration
type Config struct {
	Endpoint   string // full URL the request is POSTed to
	Model      string
	APIKey     string // optional; sent as a bearer token when set
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if err := ValidateEndpoint(c.Endpoint); err != nil {
		return err
	}
	if c.Model == "" {
		return ErrMissingModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// ValidateEndpoint reports whether endpoint is an absolute http(s) URL.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return ErrInvalidEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidEndpoint, endpoint)
	}
	return nil
}

// responsesImpl is the internal implementation of IResponses
type responsesImpl struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

// Wire types

type request struct {
	Model string `json:"model"`
	// Input is either a bare string or a []inputMessage
	Input any `json:"input"`
}

type inputMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

type response struct {
	Output []outputItem `json:"output"`
}

type outputItem struct {
	Type    string         `json:"type"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
