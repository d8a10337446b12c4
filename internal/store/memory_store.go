package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"credstore/internal/domain"
)

// MemoryStore holds credentials in a plain map with no persistence. It backs
// tests and embedded use where a property file would be noise.
type MemoryStore struct {
	mu          sync.Mutex
	data        map[string]string
	initialized bool
}

// NewMemoryStore returns an uninitialized in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func init() {
	Register(MemoryStoreAlgorithm, func(zerolog.Logger) domain.CredentialStore {
		return NewMemoryStore()
	})
}

// Initialize accepts no attributes; any key fails with a
// *domain.ConfigurationError.
func (s *MemoryStore) Initialize(attributes map[string]string, _ domain.ProtectionParameter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateAttributes(attributes, nil); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Modifiable reports true; the store always accepts mutations.
func (s *MemoryStore) Modifiable() bool { return true }

// Store associates a password credential with alias, replacing any previous
// value.
func (s *MemoryStore) Store(alias string, cred domain.Credential, _ domain.ProtectionParameter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	if alias == "" {
		return domain.ErrEmptyAlias
	}
	if cred == nil {
		return domain.ErrNilCredential
	}

	switch c := cred.(type) {
	case domain.Password:
		s.data[alias] = c.Secret
		return nil
	default:
		return &domain.UnsupportedCredentialTypeError{Type: c.Type()}
	}
}

// Retrieve returns the password credential stored under alias.
func (s *MemoryStore) Retrieve(alias string, credentialType domain.CredentialType, algorithm string, _ domain.ProtectionParameter) (domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil, domain.ErrNotInitialized
	}
	if alias == "" {
		return nil, domain.ErrEmptyAlias
	}
	if credentialType != domain.PasswordCredentialType {
		return nil, fmt.Errorf("alias %q, type %q: %w", alias, credentialType, domain.ErrNotFound)
	}
	if algorithm != "" && algorithm != domain.AlgorithmClear {
		return nil, fmt.Errorf("alias %q, algorithm %q: %w", alias, algorithm, domain.ErrNotFound)
	}

	secret, ok := s.data[alias]
	if !ok {
		return nil, fmt.Errorf("alias %q: %w", alias, domain.ErrNotFound)
	}
	return domain.Password{Secret: secret}, nil
}

// Remove deletes the credential stored under alias; absent aliases are a
// no-op.
func (s *MemoryStore) Remove(alias string, _ domain.CredentialType, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	delete(s.data, alias)
	return nil
}

// Aliases lists every stored alias, sorted.
func (s *MemoryStore) Aliases() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil, domain.ErrNotInitialized
	}
	out := make([]string, 0, len(s.data))
	for alias := range s.data {
		out = append(out, alias)
	}
	sort.Strings(out)
	return out, nil
}

// Flush does nothing; there is no backing storage.
func (s *MemoryStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	return nil
}

// Compile-time assertion that MemoryStore implements the store contract.
var _ domain.CredentialStore = (*MemoryStore)(nil)
