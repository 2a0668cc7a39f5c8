// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names used when nothing else is configured.
const (
	DefaultConfigDirName = ".holonet"
	DefaultDataDirName   = ".holonet-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "HOLONET_CONFIG_DIR"
	EnvDataDir   = "HOLONET_DATA_DIR"
)

// getwd is swapped in tests.
var getwd = os.Getwd

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > HOLONET_CONFIG_DIR env > $(CWD)/.holonet.
// The result is always absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return cwdJoin(DefaultConfigDirName)
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configValue > HOLONET_DATA_DIR env > $(CWD)/.holonet-db.
// configValue is the data_dir read from config.yaml.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return cwdJoin(DefaultDataDirName)
}

func cwdJoin(name string) (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, name), nil
}
