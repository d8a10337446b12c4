package store_test

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/rs/zerolog"

	"credstore/internal/domain"
	"credstore/internal/store"
)

func newKeyringStore(t *testing.T) *store.KeyringStore {
	t.Helper()
	return store.NewKeyringStoreWith(keyring.NewArrayKeyring(nil))
}

func TestKeyringStore_RoundTrip_OK(t *testing.T) {
	s := newKeyringStore(t)

	if err := s.Store("smtp", domain.Password{Secret: "hunter2"}, nil); err != nil {
		t.Fatalf("store: %v", err)
	}
	cred, err := s.Retrieve("smtp", domain.PasswordCredentialType, domain.AlgorithmClear, nil)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if got := cred.(domain.Password).Secret; got != "hunter2" {
		t.Fatalf("got %q, want %q", got, "hunter2")
	}
}

func TestKeyringStore_RetrieveAbsent_NotFound(t *testing.T) {
	s := newKeyringStore(t)

	if _, err := s.Retrieve("ghost", domain.PasswordCredentialType, "", nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestKeyringStore_RemoveAbsent_NoError(t *testing.T) {
	s := newKeyringStore(t)

	if err := s.Remove("ghost", domain.PasswordCredentialType, ""); err != nil {
		t.Fatalf("remove absent alias: %v", err)
	}
}

func TestKeyringStore_UnsupportedType_Fails(t *testing.T) {
	s := newKeyringStore(t)

	err := s.Store("tok", domain.Token{Bearer: "abc"}, nil)
	var unsupported *domain.UnsupportedCredentialTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("got %v, want UnsupportedCredentialTypeError", err)
	}
}

func TestKeyringStore_UnknownAttribute_Fails(t *testing.T) {
	s := store.NewKeyringStore(zerolog.Nop())

	err := s.Initialize(map[string]string{"path": "/tmp/x"}, nil)
	var configErr *domain.ConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
}

func TestKeyringStore_Uninitialized_Fails(t *testing.T) {
	s := store.NewKeyringStore(zerolog.Nop())

	if err := s.Store("a", domain.Password{Secret: "x"}, nil); !errors.Is(err, domain.ErrNotInitialized) {
		t.Fatalf("store: got %v, want ErrNotInitialized", err)
	}
	if _, err := s.Aliases(); !errors.Is(err, domain.ErrNotInitialized) {
		t.Fatalf("aliases: got %v, want ErrNotInitialized", err)
	}
}

func TestKeyringStore_Aliases_OK(t *testing.T) {
	s := newKeyringStore(t)

	for _, alias := range []string{"a", "b"} {
		if err := s.Store(alias, domain.Password{Secret: alias}, nil); err != nil {
			t.Fatalf("store %q: %v", alias, err)
		}
	}
	aliases, err := s.Aliases()
	if err != nil {
		t.Fatalf("aliases: %v", err)
	}
	if len(aliases) != 2 {
		t.Fatalf("got %v, want 2 aliases", aliases)
	}
}
