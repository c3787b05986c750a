package config

import (
	"os"
	"strconv"
)

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	// A single `*` inside an entry acts as a wildcard.
	AllowedOrigins []string
	// Host is the address the server binds to.
	Host string
	// Port is the port the server should run on.
	Port int
	// CredentialsFile is the key=value file holding CANVAS_URL and CANVAS_TOKEN.
	CredentialsFile string
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		AllowedOrigins: []string{
			"http://localhost:5000",
			"http://127.0.0.1:5000",
			"https://*.github.io",
		},
		Host:            "0.0.0.0",
		Port:            5000,
		CredentialsFile: ".env",
	}
}

// Load builds the server configuration from the environment, falling back to
// defaults for anything unset. Called once at startup and passed down; no
// package-level state.
func Load() *ServerConfig {
	cfg := DefaultConfig()

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if file := os.Getenv("CANVAS_CREDENTIALS_FILE"); file != "" {
		cfg.CredentialsFile = file
	}

	return cfg
}
