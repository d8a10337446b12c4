package store

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"credstore/internal/domain"
)

// Algorithm names the bundled store implementations register under.
const (
	PropertiesStoreAlgorithm = "PropertiesCredentialStore"
	KeyringStoreAlgorithm    = "KeyringCredentialStore"
	MemoryStoreAlgorithm     = "MemoryCredentialStore"
)

// Factory builds an uninitialized credential store. The logger receives the
// store's diagnostic output; pass zerolog.Nop() to silence it.
type Factory func(log zerolog.Logger) domain.CredentialStore

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a store implementation available under the given algorithm
// name. Implementations call it from init; registering the same name twice
// panics.
func Register(algorithm string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[algorithm]; dup {
		panic("store: duplicate registration for " + algorithm)
	}
	registry[algorithm] = factory
}

// Open builds an uninitialized store for the given algorithm name. The caller
// still has to Initialize it. An unknown name fails with a
// *domain.ConfigurationError.
func Open(algorithm string, log zerolog.Logger) (domain.CredentialStore, error) {
	registryMu.RLock()
	factory, ok := registry[algorithm]
	registryMu.RUnlock()
	if !ok {
		return nil, &domain.ConfigurationError{Attribute: "algorithm", Reason: "unknown store algorithm " + algorithm}
	}
	return factory(log), nil
}

// Algorithms lists the registered algorithm names, sorted.
func Algorithms() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
