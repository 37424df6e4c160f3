package llmprovider

import (
	"net/http"
	"time"

	"task-intelligence/pkg/ondevice"
)

// DefaultRequestTimeout bounds a single completion round trip
const DefaultRequestTimeout = 60 * time.Second

// Factory builds adapters from configuration
type Factory struct {
	HTTPClient *http.Client
	Runtime    ondevice.Runtime
}

// NewFactory creates a Factory sharing one HTTP client across adapters
func NewFactory(timeout time.Duration, runtime ondevice.Runtime) *Factory {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if runtime == nil {
		runtime = ondevice.Unsupported{}
	}
	return &Factory{
		HTTPClient: &http.Client{Timeout: timeout},
		Runtime:    runtime,
	}
}

// New creates the adapter for cfg.ProviderID
func (f *Factory) New(cfg Configuration) (Provider, error) {
	switch cfg.ProviderID {
	case ProviderOnDevice:
		return NewOnDeviceAdapter(f.Runtime), nil
	case ProviderResponses:
		return NewResponsesAdapter(cfg, f.httpClient()), nil
	case ProviderOllama:
		return NewOllamaAdapter(cfg, f.httpClient()), nil
	default:
		return nil, ErrUnknownProvider
	}
}

func (f *Factory) httpClient() *http.Client {
	if f.HTTPClient == nil {
		return &http.Client{Timeout: DefaultRequestTimeout}
	}
	return f.HTTPClient
}
