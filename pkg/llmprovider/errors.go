package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider indicates an id outside the catalog
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrInvalidEndpoint indicates a missing or malformed endpoint or model id
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrNoCredential indicates the backend rejected or is missing a credential
	ErrNoCredential = errors.New("no credential")

	// ErrRateLimited indicates rate limit exceeded
	ErrRateLimited = errors.New("provider rate limited")

	// ErrModelUnavailable indicates the backend cannot serve the model right now
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrMalformedResponse indicates a reply without usable text
	ErrMalformedResponse = errors.New("malformed response")

	// ErrTransport indicates the request never got a usable HTTP reply
	ErrTransport = errors.New("transport error")

	// ErrAPI indicates any other non-success reply
	ErrAPI = errors.New("api error")
)

// ErrorKind classifies adapter failures
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindInvalidEndpoint
	KindNoCredential
	KindRateLimited
	KindModelUnavailable
	KindMalformedResponse
	KindAPI
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidEndpoint:
		return "invalid_endpoint"
	case KindNoCredential:
		return "no_credential"
	case KindRateLimited:
		return "rate_limited"
	case KindModelUnavailable:
		return "model_unavailable"
	case KindMalformedResponse:
		return "malformed_response"
	case KindAPI:
		return "api_error"
	default:
		return "transport_error"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidEndpoint:
		return ErrInvalidEndpoint
	case KindNoCredential:
		return ErrNoCredential
	case KindRateLimited:
		return ErrRateLimited
	case KindModelUnavailable:
		return ErrModelUnavailable
	case KindMalformedResponse:
		return ErrMalformedResponse
	case KindAPI:
		return ErrAPI
	default:
		return ErrTransport
	}
}

// ProviderError wraps provider-specific errors.
// errors.Is matches both the kind sentinel and the underlying cause.
type ProviderError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s: %s (status %d): %s", e.Provider, e.Kind, e.StatusCode, msg)
	}
	if msg == "" {
		return fmt.Sprintf("provider %s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("provider %s: %s: %s", e.Provider, e.Kind, msg)
}

func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// Summary describes err for logs. Provider errors are reduced to provider,
// kind and status so backend-supplied messages never reach the log.
func Summary(err error) string {
	if err == nil {
		return ""
	}
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	if pe.StatusCode != 0 {
		return fmt.Sprintf("provider %s: %s (status %d)", pe.Provider, pe.Kind, pe.StatusCode)
	}
	return fmt.Sprintf("provider %s: %s", pe.Provider, pe.Kind)
}

// KindOf extracts the ErrorKind from err
func KindOf(err error) (ErrorKind, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

func newProviderError(provider string, kind ErrorKind, status int, message string, cause error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Kind:       kind,
		StatusCode: status,
		Message:    message,
		Err:        cause,
	}
}

// kindForStatus maps an HTTP status to the shared classification
func kindForStatus(status int) ErrorKind {
	switch status {
	case 401:
		return KindNoCredential
	case 429:
		return KindRateLimited
	case 503:
		return KindModelUnavailable
	default:
		return KindAPI
	}
}
