// Package config provides application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. ACTIVITIES_API_PORT.
const Prefix = "ACTIVITIES"

// Settings holds all application configuration.
type Settings struct {
	// Application metadata
	Version  string `envconfig:"VERSION" default:"1.0.0"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// API server settings
	APIHost         string        `envconfig:"API_HOST" default:"0.0.0.0"`
	APIPort         int           `envconfig:"API_PORT" default:"8000"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"*"`

	// Front-end assets; empty serves the copy embedded in the binary
	StaticDir string `envconfig:"STATIC_DIR" default:""`

	// Reject signups once an activity reaches max_participants
	EnforceCapacity bool `envconfig:"ENFORCE_CAPACITY" default:"false"`
}

// ListenAddr returns the address string for the HTTP server to bind to.
func (s *Settings) ListenAddr() string {
	return fmt.Sprintf("%s:%d", s.APIHost, s.APIPort)
}

// Load creates a new Settings instance from environment variables.
func Load() (*Settings, error) {
	s := &Settings{}
	if err := envconfig.Process(Prefix, s); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if s.APIPort <= 0 || s.APIPort > 65535 {
		return nil, fmt.Errorf("failed to load config: invalid API_PORT %d", s.APIPort)
	}
	return s, nil
}
