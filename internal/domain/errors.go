package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when a store operation runs before a
	// successful Initialize.
	ErrNotInitialized = errors.New("credential store not initialized")

	// ErrNotFound is returned when no credential matches the given alias,
	// type and algorithm.
	ErrNotFound = errors.New("credential not found")

	// ErrEmptyAlias is returned when an alias is the empty string.
	ErrEmptyAlias = errors.New("alias must not be empty")

	// ErrNilCredential is returned when Store is given a nil credential.
	ErrNilCredential = errors.New("credential must not be nil")
)

// ConfigurationError reports a rejected store configuration, such as an
// attribute key the implementation does not recognize.
type ConfigurationError struct {
	Attribute string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("credential store configuration: attribute %q: %s", e.Attribute, e.Reason)
	}
	return "credential store configuration: " + e.Reason
}

// UnsupportedCredentialTypeError reports a Store call with a credential
// variant the implementation cannot hold.
type UnsupportedCredentialTypeError struct {
	Type CredentialType
}

func (e *UnsupportedCredentialTypeError) Error() string {
	return fmt.Sprintf("unsupported credential type %q", e.Type)
}
