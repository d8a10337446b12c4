package store

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"credstore/internal/domain"
	"credstore/internal/store/propfile"
)

// Attribute keys recognized by PropertiesStore.
const (
	attrLocation   = "location"
	attrModifiable = "modifiable"
	attrCreate     = "create"
)

var propertiesAttributes = []string{attrLocation, attrModifiable, attrCreate}

// PropertiesStore keeps alias=secret pairs in memory and persists them to a
// flat property file on Flush.
//
// An unreadable or unparsable backing file at Initialize is logged and
// ignored, leaving the store empty; callers that need the stricter behavior
// can stat the file themselves first. Flush errors are returned.
type PropertiesStore struct {
	mu          sync.Mutex
	data        map[string]string
	location    string
	initialized bool
	log         zerolog.Logger
}

// NewPropertiesStore returns an uninitialized property-file store.
func NewPropertiesStore(log zerolog.Logger) *PropertiesStore {
	return &PropertiesStore{
		data: make(map[string]string),
		log:  log,
	}
}

func init() {
	Register(PropertiesStoreAlgorithm, func(log zerolog.Logger) domain.CredentialStore {
		return NewPropertiesStore(log)
	})
}

// Initialize configures the store and loads the backing file, if one exists
// at the configured location. Recognized attributes: location (path of the
// backing file, optional), modifiable and create (accepted, unused).
func (s *PropertiesStore) Initialize(attributes map[string]string, _ domain.ProtectionParameter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateAttributes(attributes, propertiesAttributes); err != nil {
		return err
	}
	s.location = attributes[attrLocation]

	if s.location != "" {
		b, err := readFile(s.location)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("location", s.location).Msg("credential file unreadable, starting empty")
		case b == nil:
			s.log.Debug().Str("location", s.location).Msg("credential file absent, starting empty")
		default:
			m, err := propfile.Parse(bytes.NewReader(b))
			if err != nil {
				s.log.Warn().Err(err).Str("location", s.location).Msg("credential file unparsable, starting empty")
			} else {
				s.data = m
			}
		}
	}

	s.initialized = true
	return nil
}

// Modifiable reports true; the store always accepts mutations.
func (s *PropertiesStore) Modifiable() bool { return true }

// Store associates a password credential with alias, replacing any previous
// value. Other credential variants fail with an
// *domain.UnsupportedCredentialTypeError and leave the store unchanged.
func (s *PropertiesStore) Store(alias string, cred domain.Credential, _ domain.ProtectionParameter) error {
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

// Retrieve returns the password credential stored under alias. A missing
// alias, a non-password requested type or a non-matching algorithm fail with
// domain.ErrNotFound.
func (s *PropertiesStore) Retrieve(alias string, credentialType domain.CredentialType, algorithm string, _ domain.ProtectionParameter) (domain.Credential, error) {
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

// Remove deletes the credential stored under alias. Removing an absent alias
// is a no-op.
func (s *PropertiesStore) Remove(alias string, _ domain.CredentialType, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	delete(s.data, alias)
	return nil
}

// Aliases lists every stored alias, sorted.
func (s *PropertiesStore) Aliases() ([]string, error) {
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

// Flush writes the in-memory pairs to the configured location, replacing the
// file atomically. Without a location it does nothing.
func (s *PropertiesStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	if s.location == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := propfile.Write(&buf, s.data); err != nil {
		return fmt.Errorf("serialize credentials: %w", err)
	}
	if err := writeFile(s.location, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.location, err)
	}
	return nil
}

// Compile-time assertion that PropertiesStore implements the store contract.
var _ domain.CredentialStore = (*PropertiesStore)(nil)
