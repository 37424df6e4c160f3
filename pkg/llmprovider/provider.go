package llmprovider

import "context"

// Provider defines the interface for completion backends
type Provider interface {
	// Name returns the provider id (e.g., "ondevice", "ollama")
	Name() string

	// Model returns the model being used
	Model() string

	// Available reports whether the adapter has enough configuration to attempt a call
	Available() bool

	// Complete sends the prompt and returns the raw generated text
	Complete(ctx context.Context, prompt, systemPrompt string) (string, error)
}

// Descriptor is a static catalog entry for a backend kind
type Descriptor struct {
	ID                 string `json:"id"`
	DisplayName        string `json:"display_name"`
	RequiresCredential bool   `json:"requires_credential"`
	IsExternal         bool   `json:"is_external"`
}

// Configuration is the persisted per-provider setup.
// Credential is only carried in memory; it is stored in the keychain under CredentialRef.
type Configuration struct {
	ProviderID    string `json:"provider_id"`
	Endpoint      string `json:"endpoint,omitempty"`
	ModelID       string `json:"model_id"`
	CredentialRef string `json:"credential_ref,omitempty"`
	Credential    string `json:"-"`
}

// Status is a catalog entry joined with its current configuration
type Status struct {
	Descriptor
	Endpoint      string `json:"endpoint,omitempty"`
	ModelID       string `json:"model_id,omitempty"`
	HasCredential bool   `json:"has_credential"`
	Available     bool   `json:"available"`
	Active        bool   `json:"active"`
}
