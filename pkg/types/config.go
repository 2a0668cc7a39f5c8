package types

import (
	"errors"
	"strings"
)

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend     string `json:"backend" yaml:"backend"`
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	DatabaseURL string `json:"database_url" yaml:"database_url,omitempty"`
}

// Supported backend names.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config validation errors.
var (
	ErrBackendEmpty       = errors.New("backend must not be empty")
	ErrBackendUnknown     = errors.New("unknown backend")
	ErrDatabaseURLEmpty   = errors.New("database url must not be empty")
	ErrDatabaseURLUnknown = errors.New("unrecognized database url")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite:   true,
	BackendPostgres: true,
}

// urlPrefixes maps connection string prefixes to the backend that serves them.
var urlPrefixes = []struct {
	prefix  string
	backend string
}{
	{"postgres://", BackendPostgres},
	{"postgresql://", BackendPostgres},
	{"sqlite://", BackendSQLite},
}

// BackendForURL returns the backend that handles the given connection string.
// Returns ErrDatabaseURLUnknown if the scheme is not recognized.
func BackendForURL(url string) (string, error) {
	for _, p := range urlPrefixes {
		if strings.HasPrefix(url, p.prefix) {
			return p.backend, nil
		}
	}
	return "", ErrDatabaseURLUnknown
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. A postgres backend requires DatabaseURL; a
// sqlite backend without DatabaseURL stores its file under DataDir.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.DatabaseURL == "" {
		if c.Backend == BackendPostgres {
			return ErrDatabaseURLEmpty
		}
		return nil
	}
	backend, err := BackendForURL(c.DatabaseURL)
	if err != nil {
		return err
	}
	if backend != c.Backend {
		return ErrDatabaseURLUnknown
	}
	return nil
}
