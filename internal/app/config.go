package app

import "github.com/caarlos0/env/v11"

// Config holds runtime wiring options for building the app. Values come from
// the environment; command-line flags may override them afterwards.
type Config struct {
	// Location is the path of the backing credential file, e.g.
	// ~/.credstore/credentials.properties. Empty means no persistence.
	Location string `env:"CREDSTORE_LOCATION"`
	// Store selects the credential store algorithm.
	Store string `env:"CREDSTORE_STORE" envDefault:"PropertiesCredentialStore"`
	// LogLevel sets the zerolog level name.
	LogLevel string `env:"CREDSTORE_LOG_LEVEL" envDefault:"info"`
	// LogPretty switches log output to the human console writer.
	LogPretty bool `env:"CREDSTORE_LOG_PRETTY" envDefault:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}
