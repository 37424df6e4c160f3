package http

import (
	"context"
	"errors"
	"net/http"

	"task-intelligence/internal/assistant"
	"task-intelligence/pkg/llmprovider"
	"task-intelligence/pkg/response"
)

var (
	errEmptyTitle        = response.NewHTTPError(http.StatusBadRequest, 110001, "task title is required")
	errEmptyPrompt       = response.NewHTTPError(http.StatusBadRequest, 110002, "prompt is required")
	errTooManyTasks      = response.NewHTTPError(http.StatusBadRequest, 110003, "too many tasks to order")
	errInvalidField      = response.NewHTTPError(http.StatusBadRequest, 110004, "unknown correction field")
	errInvalidCorrection = response.NewHTTPError(http.StatusBadRequest, 110005, "correction choice is required")
	errTaskNotFound      = response.NewHTTPError(http.StatusNotFound, 110006, "task not found")
	errUnknownProvider   = response.NewHTTPError(http.StatusNotFound, 120001, "unknown provider")
	errCancelled         = response.NewHTTPError(499, 120009, "request cancelled")

	errInvalidEndpoint  = response.NewHTTPError(http.StatusBadRequest, 120002, "provider endpoint or model is invalid")
	errNoCredential     = response.NewHTTPError(http.StatusBadRequest, 120003, "provider credential is missing or was rejected; update it in provider settings")
	errRateLimited      = response.NewHTTPError(http.StatusServiceUnavailable, 120004, "provider is rate limiting requests, retry later")
	errModelUnavailable = response.NewHTTPError(http.StatusServiceUnavailable, 120005, "model is unavailable right now, retry later")
	errMalformed        = response.NewHTTPError(http.StatusBadGateway, 120006, "provider returned an unusable reply")
	errTransport        = response.NewHTTPError(http.StatusBadGateway, 120007, "provider could not be reached")
	errProviderAPI      = response.NewHTTPError(http.StatusBadGateway, 120008, "provider returned an error")
)

// mapError translates use-case errors into HTTP errors. Unknown errors map to nil,
// which callers report as an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyTitle):
		return errEmptyTitle
	case errors.Is(err, assistant.ErrEmptyPrompt):
		return errEmptyPrompt
	case errors.Is(err, assistant.ErrTooManyTasks):
		return errTooManyTasks
	case errors.Is(err, assistant.ErrInvalidField):
		return errInvalidField
	case errors.Is(err, assistant.ErrInvalidCorrection):
		return errInvalidCorrection
	case errors.Is(err, assistant.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, llmprovider.ErrUnknownProvider):
		return errUnknownProvider
	case errors.Is(err, context.Canceled):
		return errCancelled
	}

	kind, ok := llmprovider.KindOf(err)
	if !ok {
		return nil
	}
	switch kind {
	case llmprovider.KindInvalidEndpoint:
		return errInvalidEndpoint
	case llmprovider.KindNoCredential:
		return errNoCredential
	case llmprovider.KindRateLimited:
		return errRateLimited
	case llmprovider.KindModelUnavailable:
		return errModelUnavailable
	case llmprovider.KindMalformedResponse:
		return errMalformed
	case llmprovider.KindTransport:
		return errTransport
	default:
		return errProviderAPI
	}
}
