package keychain

import "errors"

// ErrNotFound is returned by Get when no secret is stored for the provider.
var ErrNotFound = errors.New("keychain: secret not found")

// Store is opaque secret storage keyed by provider id.
type Store interface {
	Get(providerID string) (string, error)
	Set(providerID, secret string) error
	Delete(providerID string) error
}

// New returns the OS keychain store when it is usable and an in-memory store otherwise.
// The bool reports whether the OS keychain was selected.
func New(service string, disabled bool) (Store, bool) {
	if service == "" {
		service = DefaultService
	}
	if !disabled && Available(service) {
		return NewKeyring(service), true
	}
	return NewMemory(), false
}
