package domain

// CredentialType identifies the shape of a stored credential.
type CredentialType string

// String returns the string form of the credential type.
func (t CredentialType) String() string { return string(t) }

const (
	// PasswordCredentialType is a clear-text password credential.
	PasswordCredentialType CredentialType = "password"
	// TokenCredentialType is a bearer-token credential. No bundled store
	// accepts it; it exists so callers hit the unsupported-type path with a
	// real value rather than a nil.
	TokenCredentialType CredentialType = "token"
)

// AlgorithmClear marks a password held in the clear, without key derivation.
const AlgorithmClear = "clear"

// Credential is a closed set of secret payload variants. Stores switch on the
// concrete type; the unexported marker keeps the set closed to this package.
type Credential interface {
	// Type reports which variant this credential is.
	Type() CredentialType
	// Algorithm reports how the payload is encoded or derived.
	Algorithm() string

	credential()
}

// Password is a clear-text password credential.
type Password struct {
	Secret string
}

// Type reports PasswordCredentialType.
func (Password) Type() CredentialType { return PasswordCredentialType }

// Algorithm reports AlgorithmClear.
func (Password) Algorithm() string { return AlgorithmClear }

func (Password) credential() {}

// Token is a bearer-token credential.
type Token struct {
	Bearer string
}

// Type reports TokenCredentialType.
func (Token) Type() CredentialType { return TokenCredentialType }

// Algorithm reports AlgorithmClear.
func (Token) Algorithm() string { return AlgorithmClear }

func (Token) credential() {}
