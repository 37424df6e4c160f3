package keychain

import (
	"errors"
	"fmt"

	zkr "github.com/zalando/go-keyring"
)

// Keyring stores secrets in the operating system keychain.
type Keyring struct {
	service string
}

// NewKeyring creates a keychain-backed store for the given service name.
func NewKeyring(service string) *Keyring {
	return &Keyring{service: service}
}

func (k *Keyring) account(providerID string) string {
	return accountPrefix + providerID
}

// Get retrieves the secret stored for providerID.
func (k *Keyring) Get(providerID string) (string, error) {
	secret, err := zkr.Get(k.service, k.account(providerID))
	if errors.Is(err, zkr.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("keychain get: %w", err)
	}
	return secret, nil
}

// Set stores the secret for providerID, replacing any previous value.
func (k *Keyring) Set(providerID, secret string) error {
	if err := zkr.Set(k.service, k.account(providerID), secret); err != nil {
		return fmt.Errorf("keychain set: %w", err)
	}
	return nil
}

// Delete removes the secret for providerID. Deleting a missing secret is not an error.
func (k *Keyring) Delete(providerID string) error {
	err := zkr.Delete(k.service, k.account(providerID))
	if err != nil && !errors.Is(err, zkr.ErrNotFound) {
		return fmt.Errorf("keychain delete: %w", err)
	}
	return nil
}

// Available probes the keychain with a write/read/delete cycle.
func Available(service string) bool {
	probe := service + "-probe"
	if err := zkr.Set(probe, probeAccount, "ok"); err != nil {
		return false
	}
	_ = zkr.Delete(probe, probeAccount)
	return true
}
