package credential_test

import (
	"errors"
	"testing"

	"credstore/internal/domain"
	credentialsvc "credstore/internal/services/credential"
	"credstore/internal/store"
)

func newService(t *testing.T) *credentialsvc.Service {
	t.Helper()
	s := store.NewMemoryStore()
	if err := s.Initialize(nil, nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return credentialsvc.New(s)
}

func TestService_PutGet_OK(t *testing.T) {
	svc := newService(t)

	if err := svc.Put("db", "hunter2"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := svc.Get("db")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("got %q, want %q", got, "hunter2")
	}
}

func TestService_DeleteThenGet_NotFound(t *testing.T) {
	svc := newService(t)

	if err := svc.Put("db", "hunter2"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := svc.Delete("db"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get("db"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestService_List_OK(t *testing.T) {
	svc := newService(t)

	for _, alias := range []string{"a", "b"} {
		if err := svc.Put(alias, alias); err != nil {
			t.Fatalf("put %q: %v", alias, err)
		}
	}
	aliases, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(aliases) != 2 {
		t.Fatalf("got %v, want 2 aliases", aliases)
	}
}

func TestService_Fingerprint_OK(t *testing.T) {
	svc := newService(t)

	if err := svc.Put("a", "secret-one"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := svc.Put("b", "secret-two"); err != nil {
		t.Fatalf("put: %v", err)
	}

	fpA, err := svc.Fingerprint("a")
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if len(fpA) != 20 {
		t.Fatalf("fingerprint length %d, want 20", len(fpA))
	}

	again, err := svc.Fingerprint("a")
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if again != fpA {
		t.Fatalf("fingerprint not stable: %q vs %q", again, fpA)
	}

	fpB, err := svc.Fingerprint("b")
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if fpB == fpA {
		t.Fatal("different secrets share a fingerprint")
	}
}

func TestService_Fingerprint_Absent_NotFound(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Fingerprint("ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
