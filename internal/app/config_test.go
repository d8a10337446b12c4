package app_test

import (
	"testing"

	"credstore/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Store != "PropertiesCredentialStore" {
		t.Fatalf("default store %q", cfg.Store)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level %q", cfg.LogLevel)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("CREDSTORE_LOCATION", "/tmp/creds.properties")
	t.Setenv("CREDSTORE_STORE", "MemoryCredentialStore")
	t.Setenv("CREDSTORE_LOG_LEVEL", "debug")
	t.Setenv("CREDSTORE_LOG_PRETTY", "true")

	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Location != "/tmp/creds.properties" {
		t.Fatalf("location %q", cfg.Location)
	}
	if cfg.Store != "MemoryCredentialStore" {
		t.Fatalf("store %q", cfg.Store)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level %q", cfg.LogLevel)
	}
	if !cfg.LogPretty {
		t.Fatal("expected pretty logging enabled")
	}
}
