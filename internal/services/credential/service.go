package credential

import (
	"credstore/internal/crypto"
	"credstore/internal/domain"
	"credstore/internal/util/memzero"
)

// Service wraps a credential store with password-oriented helpers. It is as
// concurrency-safe as the store beneath it.
type Service struct {
	store domain.CredentialStore
}

// New returns a service backed by the given store.
func New(s domain.CredentialStore) *Service { return &Service{store: s} }

// Put stores secret as a clear password credential under alias.
func (s *Service) Put(alias, secret string) error {
	return s.store.Store(alias, domain.Password{Secret: secret}, nil)
}

// Get returns the clear password stored under alias.
func (s *Service) Get(alias string) (string, error) {
	cred, err := s.store.Retrieve(alias, domain.PasswordCredentialType, domain.AlgorithmClear, nil)
	if err != nil {
		return "", err
	}
	pw, ok := cred.(domain.Password)
	if !ok {
		return "", &domain.UnsupportedCredentialTypeError{Type: cred.Type()}
	}
	return pw.Secret, nil
}

// Delete removes the credential stored under alias; absent aliases are a
// no-op.
func (s *Service) Delete(alias string) error {
	return s.store.Remove(alias, domain.PasswordCredentialType, domain.AlgorithmClear)
}

// List returns every stored alias.
func (s *Service) List() ([]string, error) {
	return s.store.Aliases()
}

// Fingerprint returns a short fingerprint of the secret stored under alias,
// suitable for display. The intermediate secret buffer is wiped before
// returning.
func (s *Service) Fingerprint(alias string) (string, error) {
	secret, err := s.Get(alias)
	if err != nil {
		return "", err
	}
	buf := []byte(secret)
	fp := crypto.Fingerprint(buf)
	memzero.Zero(buf)
	return fp, nil
}

// Flush persists the underlying store.
func (s *Service) Flush() error { return s.store.Flush() }
