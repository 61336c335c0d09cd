package config

import (
	"github.com/systmms/homesecret/internal/logging"
	"github.com/systmms/homesecret/pkg/secrets"
)

// Config holds the runtime configuration shared by all commands
type Config struct {
	File           string // secrets file override; empty means the default location
	Logger         *logging.Logger
	NonInteractive bool
}

// SecretsFile returns the secrets file path to use: the --file override if
// one was given, otherwise ${HOME}/home_secret.toml.
func (c *Config) SecretsFile() string {
	if c.File != "" {
		return c.File
	}
	return secrets.DefaultFile()
}

// Store returns a store backed by the configured secrets file. Each call
// creates a fresh store; commands hold on to it for the duration of one run.
func (c *Config) Store() *secrets.Store {
	return secrets.NewStore(c.SecretsFile())
}
