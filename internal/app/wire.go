package app

import (
	"github.com/rs/zerolog"

	"credstore/internal/domain"
	credentialsvc "credstore/internal/services/credential"
	"credstore/internal/store"
)

// Wire bundles the store, service and logger for the CLI.
type Wire struct {
	Store       domain.CredentialStore
	Credentials *credentialsvc.Service
	Log         zerolog.Logger
}

// NewWire constructs the dependency graph from cfg. The selected store is
// opened through the registry and initialized with the configured location.
func NewWire(cfg Config) (*Wire, error) {
	log := NewLogger(cfg)

	cs, err := store.Open(cfg.Store, log)
	if err != nil {
		return nil, err
	}

	attrs := map[string]string{}
	if cfg.Location != "" && cfg.Store == store.PropertiesStoreAlgorithm {
		attrs["location"] = cfg.Location
	}
	if err := cs.Initialize(attrs, nil); err != nil {
		return nil, err
	}

	return &Wire{
		Store:       cs,
		Credentials: credentialsvc.New(cs),
		Log:         log,
	}, nil
}
