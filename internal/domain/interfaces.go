package domain

// ProtectionParameter describes how access to a store or an entry is guarded.
// The bundled stores accept and ignore it; it is part of the contract so
// implementations that do guard entries can slot in without changing callers.
type ProtectionParameter interface{}

// CredentialStore persists alias-addressed credentials.
//
// A store starts uninitialized. Initialize moves it to initialized exactly
// once; every other method fails with ErrNotInitialized before that. The
// in-memory state is authoritative between Flush calls.
type CredentialStore interface {
	// Initialize configures the store from attribute key/value pairs and
	// loads any persisted state. Unrecognized attribute keys fail with a
	// *ConfigurationError.
	Initialize(attributes map[string]string, protection ProtectionParameter) error

	// Modifiable reports whether the store accepts mutations.
	Modifiable() bool

	// Store associates cred with alias, replacing any previous value.
	Store(alias string, cred Credential, protection ProtectionParameter) error

	// Retrieve returns the credential stored under alias that matches the
	// requested type and algorithm. An empty algorithm matches any. A miss
	// is ErrNotFound.
	Retrieve(alias string, credentialType CredentialType, algorithm string, protection ProtectionParameter) (Credential, error)

	// Remove deletes the credential stored under alias. Removing an absent
	// alias is a no-op.
	Remove(alias string, credentialType CredentialType, algorithm string) error

	// Aliases lists every alias currently held, in unspecified order.
	Aliases() ([]string, error)

	// Flush writes the in-memory state to backing storage, if any.
	Flush() error
}
