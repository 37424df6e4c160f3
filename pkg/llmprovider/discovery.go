package llmprovider

import (
	"context"

	"task-intelligence/pkg/ollama"
	"task-intelligence/pkg/responses"
)

// DiscoverModels lists models the backend described by cfg can serve.
// It is advisory: failures yield an empty list.
func (r *Router) DiscoverModels(ctx context.Context, cfg Configuration) []string {
	if cfg.Credential == "" {
		cfg.Credential = r.credential(cfg.ProviderID)
	}
	hc := r.factory.httpClient()

	switch cfg.ProviderID {
	case ProviderOnDevice:
		if r.factory.Runtime != nil && r.factory.Runtime.Supported() {
			return []string{r.factory.Runtime.Model()}
		}
		return []string{}

	case ProviderOllama:
		client, err := ollama.New(ollama.Config{
			BaseURL:    cfg.Endpoint,
			APIKey:     cfg.Credential,
			HTTPClient: hc,
		})
		if err != nil {
			return []string{}
		}
		models, err := client.ListModels(ctx)
		if err == nil {
			return models
		}
		r.logger.Debug(ctx, "Native model listing failed, trying generic listing",
			"provider", cfg.ProviderID,
		)
		return responses.ListModels(ctx, client.CompatBaseURL(), cfg.Credential, hc)

	case ProviderResponses:
		if responses.ValidateEndpoint(cfg.Endpoint) != nil {
			return []string{}
		}
		return responses.ListModels(ctx, responses.BaseURL(cfg.Endpoint), cfg.Credential, hc)

	default:
		return []string{}
	}
}
