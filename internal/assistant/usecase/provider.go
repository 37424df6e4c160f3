package usecase

import (
	"context"

	"task-intelligence/internal/assistant"
	"task-intelligence/pkg/llmprovider"
)

// ConfigureProvider stores the configuration and credential for a provider.
func (uc *implUseCase) ConfigureProvider(ctx context.Context, input assistant.ProviderInput) error {
	return uc.router.Configure(ctx, uc.providerConfig(input), input.ProviderID)
}

// RemoveProvider forgets a provider's configuration and credential.
func (uc *implUseCase) RemoveProvider(ctx context.Context, id string) error {
	return uc.router.RemoveProvider(ctx, id)
}

// TestConnection performs one round trip. A request without endpoint and model
// tests the stored configuration.
func (uc *implUseCase) TestConnection(ctx context.Context, input assistant.ProviderInput) error {
	if _, ok := llmprovider.Lookup(input.ProviderID); !ok {
		return llmprovider.ErrUnknownProvider
	}

	done := uc.begin()
	defer done()

	return uc.router.TestConnection(ctx, uc.resolveProviderConfig(ctx, input))
}

// SetActive selects a provider, reverting to the default when it is unavailable.
func (uc *implUseCase) SetActive(ctx context.Context, id string) string {
	return uc.router.SetActive(ctx, id)
}

func (uc *implUseCase) AvailableProviders(ctx context.Context) []llmprovider.Descriptor {
	return uc.router.AvailableProviders(ctx)
}

// Providers lists every provider with its configuration state.
func (uc *implUseCase) Providers(ctx context.Context) assistant.ProvidersOutput {
	out := assistant.ProvidersOutput{
		Active:    uc.router.ActiveProviderID(),
		Providers: uc.router.Statuses(ctx),
	}
	if err := uc.router.LastError(); err != nil {
		out.LastError = err.Error()
	}
	return out
}

// DiscoverModels lists the models a backend offers. Failures give an empty list.
func (uc *implUseCase) DiscoverModels(ctx context.Context, input assistant.ProviderInput) []string {
	if _, ok := llmprovider.Lookup(input.ProviderID); !ok {
		return []string{}
	}

	done := uc.begin()
	defer done()

	return uc.router.DiscoverModels(ctx, uc.resolveProviderConfig(ctx, input))
}
