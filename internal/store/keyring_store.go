package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/99designs/keyring"
	"github.com/rs/zerolog"

	"credstore/internal/domain"
)

// Attribute keys recognized by KeyringStore.
const (
	attrService = "service"
	attrBackend = "backend"
)

var keyringAttributes = []string{attrService, attrBackend}

const defaultKeyringService = "credstore"

// KeyringStore holds credentials in the operating system keyring, one keyring
// item per alias. Writes go straight through, so Flush is a no-op.
type KeyringStore struct {
	mu          sync.Mutex
	ring        keyring.Keyring
	initialized bool
	log         zerolog.Logger
}

// NewKeyringStore returns an uninitialized OS-keyring store.
func NewKeyringStore(log zerolog.Logger) *KeyringStore {
	return &KeyringStore{log: log}
}

// NewKeyringStoreWith returns an initialized store over an already-open
// keyring. Tests use it with keyring.NewArrayKeyring.
func NewKeyringStoreWith(ring keyring.Keyring) *KeyringStore {
	return &KeyringStore{ring: ring, initialized: true, log: zerolog.Nop()}
}

func init() {
	Register(KeyringStoreAlgorithm, func(log zerolog.Logger) domain.CredentialStore {
		return NewKeyringStore(log)
	})
}

// Initialize opens the OS keyring. Recognized attributes: service (keyring
// service name, defaults to "credstore") and backend (pins one keyring
// backend, otherwise the platform default order applies).
func (s *KeyringStore) Initialize(attributes map[string]string, _ domain.ProtectionParameter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateAttributes(attributes, keyringAttributes); err != nil {
		return err
	}

	service := attributes[attrService]
	if service == "" {
		service = defaultKeyringService
	}
	cfg := keyring.Config{ServiceName: service}
	if backend := attributes[attrBackend]; backend != "" {
		cfg.AllowedBackends = []keyring.BackendType{keyring.BackendType(backend)}
	}

	if s.ring == nil {
		ring, err := keyring.Open(cfg)
		if err != nil {
			return fmt.Errorf("open keyring %q: %w", service, err)
		}
		s.ring = ring
	}
	s.initialized = true
	return nil
}

// Modifiable reports true; the store always accepts mutations.
func (s *KeyringStore) Modifiable() bool { return true }

// Store writes a password credential to the keyring under alias. Other
// credential variants fail with an *domain.UnsupportedCredentialTypeError.
func (s *KeyringStore) Store(alias string, cred domain.Credential, _ domain.ProtectionParameter) error {
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
		return s.ring.Set(keyring.Item{
			Key:   alias,
			Data:  []byte(c.Secret),
			Label: alias,
		})
	default:
		return &domain.UnsupportedCredentialTypeError{Type: c.Type()}
	}
}

// Retrieve reads the password credential stored under alias.
func (s *KeyringStore) Retrieve(alias string, credentialType domain.CredentialType, algorithm string, _ domain.ProtectionParameter) (domain.Credential, error) {
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

	item, err := s.ring.Get(alias)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, fmt.Errorf("alias %q: %w", alias, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("keyring get %q: %w", alias, err)
	}
	return domain.Password{Secret: string(item.Data)}, nil
}

// Remove deletes the keyring item stored under alias. Removing an absent
// alias is a no-op.
func (s *KeyringStore) Remove(alias string, _ domain.CredentialType, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	err := s.ring.Remove(alias)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return err
}

// Aliases lists every keyring item key, sorted order not guaranteed by the
// underlying backend.
func (s *KeyringStore) Aliases() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil, domain.ErrNotInitialized
	}
	return s.ring.Keys()
}

// Flush does nothing; keyring writes are immediate.
func (s *KeyringStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	return nil
}

// Compile-time assertion that KeyringStore implements the store contract.
var _ domain.CredentialStore = (*KeyringStore)(nil)
