package storage

import (
	"strings"

	"habittrack/internal/storage/postgres"
	"habittrack/internal/storage/sqlite"
)

// IsPostgresConfig reports whether the config value is a PostgreSQL
// connection string rather than a sqlite file path.
func IsPostgresConfig(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password. Embedded credentials are rejected; use the OS keyring
// or environment instead.
func HasEmbeddedCredentials(connStr string) bool {
	valid, err := postgres.ValidateConnString(connStr)
	return !valid && err == postgres.ErrEmbeddedCredentials
}

// NewProvider selects a backend for the given config value: a PostgreSQL
// store for connection strings, a sqlite store for file paths.
func NewProvider(config string) Provider {
	if IsPostgresConfig(config) {
		return postgres.New(config)
	}
	return sqlite.NewStore(config)
}
