package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"task-intelligence/pkg/keychain"
	"task-intelligence/pkg/kvstore"
	"task-intelligence/pkg/log"
	"task-intelligence/pkg/responses"
)

const (
	settingsKeyPrefix = "llm.provider."
	settingsKeyActive = "llm.active_provider"

	testPrompt = "Reply with the single word OK."
)

// Router owns the configured adapters and the active selection.
// It never retries on another provider after a failure.
type Router struct {
	mu       sync.RWMutex
	settings kvstore.Store
	secrets  keychain.Store
	factory  *Factory
	logger   log.Logger

	adapters map[string]Provider
	active   string
	lastErr  error
}

// NewRouter creates a Router and restores the persisted active selection
func NewRouter(ctx context.Context, settings kvstore.Store, secrets keychain.Store, factory *Factory, logger log.Logger) *Router {
	r := &Router{
		settings: settings,
		secrets:  secrets,
		factory:  factory,
		logger:   logger,
		adapters: make(map[string]Provider),
		active:   DefaultProviderID,
	}

	var stored string
	err := settings.Get(ctx, settingsKeyActive, &stored)
	switch {
	case err == nil:
		if r.isAvailable(ctx, stored) {
			r.active = stored
		} else {
			r.logger.Warn(ctx, "Stored active provider unavailable, using default",
				"provider", stored,
				"default", DefaultProviderID,
			)
		}
	case !errors.Is(err, kvstore.ErrNotFound):
		r.logger.Warn(ctx, "Failed to read active provider", "error", err.Error())
	}

	return r
}

// ActiveProviderID returns the current selection
func (r *Router) ActiveProviderID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// LastError returns the error of the most recent failed completion, nil after a success
func (r *Router) LastError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// AvailableProviders returns the catalog entries whose adapter can attempt a call
func (r *Router) AvailableProviders(ctx context.Context) []Descriptor {
	var out []Descriptor
	for _, d := range catalog {
		if r.isAvailable(ctx, d.ID) {
			out = append(out, d)
		}
	}
	return out
}

// Statuses returns every catalog entry with its configuration and availability
func (r *Router) Statuses(ctx context.Context) []Status {
	active := r.ActiveProviderID()
	out := make([]Status, 0, len(catalog))
	for _, d := range catalog {
		cfg := r.loadConfig(ctx, d.ID)
		out = append(out, Status{
			Descriptor:    d,
			Endpoint:      cfg.Endpoint,
			ModelID:       cfg.ModelID,
			HasCredential: cfg.Credential != "",
			Available:     r.isAvailable(ctx, d.ID),
			Active:        d.ID == active,
		})
	}
	return out
}

// SetActive selects id when it is available and reverts to the default otherwise.
// It returns the effective selection.
func (r *Router) SetActive(ctx context.Context, id string) string {
	effective := id
	if !r.isAvailable(ctx, id) {
		r.logger.Warn(ctx, "Provider unavailable, reverting to default",
			"provider", id,
			"default", DefaultProviderID,
		)
		effective = DefaultProviderID
	}

	r.mu.Lock()
	r.active = effective
	r.mu.Unlock()

	r.persistActive(ctx, effective)
	return effective
}

// Complete delegates to the active adapter. When the active adapter is not
// available the default adapter answers instead.
func (r *Router) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	provider, err := r.resolve(ctx)
	if err != nil {
		r.setLastErr(err)
		return "", err
	}

	text, err := provider.Complete(ctx, prompt, systemPrompt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		r.setLastErr(err)
		r.logFailure(ctx, provider, err)
		return "", err
	}

	r.setLastErr(nil)
	r.logSuccess(ctx, provider)
	return text, nil
}

// Configure persists cfg for providerID and rebuilds its adapter.
// An empty credential keeps whatever is already stored.
func (r *Router) Configure(ctx context.Context, cfg Configuration, providerID string) error {
	desc, ok := Lookup(providerID)
	if !ok {
		return ErrUnknownProvider
	}
	if desc.ID != ProviderOnDevice && cfg.Endpoint != "" {
		if err := responses.ValidateEndpoint(cfg.Endpoint); err != nil {
			return newProviderError(providerID, KindInvalidEndpoint, 0, "", err)
		}
	}

	cfg.ProviderID = providerID
	if cfg.Credential != "" {
		if err := r.secrets.Set(providerID, cfg.Credential); err != nil {
			return fmt.Errorf("store credential: %w", err)
		}
	}
	if cfg.Credential != "" || r.hasCredential(providerID) {
		cfg.CredentialRef = providerID
	} else {
		cfg.CredentialRef = ""
	}

	if err := r.settings.Set(ctx, settingsKeyPrefix+providerID, cfg); err != nil {
		return fmt.Errorf("store configuration: %w", err)
	}

	r.mu.Lock()
	delete(r.adapters, providerID)
	r.mu.Unlock()

	r.logger.Info(ctx, "Provider configured",
		"provider", providerID,
		"model", cfg.ModelID,
	)
	return nil
}

// RemoveProvider deletes configuration and credential, resetting the active selection if needed
func (r *Router) RemoveProvider(ctx context.Context, id string) error {
	if _, ok := Lookup(id); !ok {
		return ErrUnknownProvider
	}

	if err := r.settings.Delete(ctx, settingsKeyPrefix+id); err != nil {
		return fmt.Errorf("delete configuration: %w", err)
	}
	if err := r.secrets.Delete(id); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	r.mu.Lock()
	delete(r.adapters, id)
	wasActive := r.active == id
	if wasActive {
		r.active = DefaultProviderID
	}
	r.mu.Unlock()

	if wasActive {
		r.persistActive(ctx, DefaultProviderID)
	}

	r.logger.Info(ctx, "Provider removed", "provider", id)
	return nil
}

// TestConnection builds a throwaway adapter from cfg and performs one round trip.
// An empty credential falls back to the stored one.
func (r *Router) TestConnection(ctx context.Context, cfg Configuration) error {
	if cfg.Credential == "" {
		cfg.Credential = r.credential(cfg.ProviderID)
	}

	provider, err := r.factory.New(cfg)
	if err != nil {
		return err
	}
	if !provider.Available() {
		kind := KindInvalidEndpoint
		if cfg.ProviderID == ProviderOnDevice {
			kind = KindModelUnavailable
		}
		return newProviderError(cfg.ProviderID, kind, 0, "provider is not usable with this configuration", nil)
	}

	if _, err := provider.Complete(ctx, testPrompt, ""); err != nil {
		if !errors.Is(err, context.Canceled) {
			r.logFailure(ctx, provider, err)
		}
		return err
	}
	return nil
}

// Configuration returns the stored configuration for id, with its credential
func (r *Router) Configuration(ctx context.Context, id string) Configuration {
	return r.loadConfig(ctx, id)
}

func (r *Router) resolve(ctx context.Context) (Provider, error) {
	active := r.ActiveProviderID()
	provider, err := r.adapter(ctx, active)
	if err == nil && provider.Available() {
		return provider, nil
	}
	if active == DefaultProviderID {
		if err != nil {
			return nil, err
		}
		return provider, nil
	}
	return r.adapter(ctx, DefaultProviderID)
}

// adapter returns the cached adapter for id, building it on first use
func (r *Router) adapter(ctx context.Context, id string) (Provider, error) {
	r.mu.RLock()
	p, ok := r.adapters[id]
	r.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err := r.factory.New(r.loadConfig(ctx, id))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if existing, ok := r.adapters[id]; ok {
		p = existing
	} else {
		r.adapters[id] = p
	}
	r.mu.Unlock()
	return p, nil
}

func (r *Router) isAvailable(ctx context.Context, id string) bool {
	if _, ok := Lookup(id); !ok {
		return false
	}
	p, err := r.adapter(ctx, id)
	return err == nil && p.Available()
}

func (r *Router) loadConfig(ctx context.Context, id string) Configuration {
	var cfg Configuration
	if err := r.settings.Get(ctx, settingsKeyPrefix+id, &cfg); err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		r.logger.Warn(ctx, "Failed to read provider configuration",
			"provider", id,
			"error", err.Error(),
		)
	}
	cfg.ProviderID = id
	cfg.Credential = r.credential(id)
	return cfg
}

// credential reads the stored secret; anything but a hit reads as "not configured"
func (r *Router) credential(id string) string {
	secret, err := r.secrets.Get(id)
	if err != nil {
		return ""
	}
	return secret
}

func (r *Router) hasCredential(id string) bool {
	return r.credential(id) != ""
}

func (r *Router) persistActive(ctx context.Context, id string) {
	if err := r.settings.Set(ctx, settingsKeyActive, id); err != nil {
		r.logger.Warn(ctx, "Failed to persist active provider", "error", err.Error())
	}
}

func (r *Router) setLastErr(err error) {
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
}

// logSuccess logs a successful completion without prompt or reply text
func (r *Router) logSuccess(ctx context.Context, provider Provider) {
	r.logger.Info(ctx, "LLM completion successful",
		"provider", provider.Name(),
		"model", provider.Model(),
	)
}

// logFailure logs a failed completion with provider id and status only
func (r *Router) logFailure(ctx context.Context, provider Provider, err error) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		r.logger.Warn(ctx, "LLM completion failed",
			"provider", provider.Name(),
			"model", provider.Model(),
			"kind", pe.Kind.String(),
			"status", pe.StatusCode,
		)
		return
	}
	r.logger.Warn(ctx, "LLM completion failed",
		"provider", provider.Name(),
		"model", provider.Model(),
	)
}
