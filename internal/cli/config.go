package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/holonet/internal/api"
	"github.com/mesh-intelligence/holonet/internal/logging"
	"github.com/mesh-intelligence/holonet/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend       = "backend"
	cfgKeyDataDir       = "data_dir"
	cfgKeyDatabaseURL   = "database_url"
	cfgKeyListenAddr    = "listen_addr"
	cfgKeyPort          = "port"
	cfgKeyDefaultUserID = "default_user_id"
	cfgKeyCORSOrigins   = "cors_origins"
	cfgKeyLogLevel      = "log_level"
	cfgKeyLogFormat     = "log_format"

	defaultBackend  = types.BackendSQLite
	defaultPort     = "3000"
	defaultLogLevel = "info"
)

// envBindings lists the environment variables read for each key, first
// non-empty wins. data_dir is left out: its env var ranks below config.yaml
// and is handled by internal/paths.
var envBindings = map[string][]string{
	cfgKeyBackend:       {"HOLONET_BACKEND"},
	cfgKeyDatabaseURL:   {"HOLONET_DATABASE_URL", "DATABASE_URL"},
	cfgKeyListenAddr:    {"HOLONET_LISTEN_ADDR"},
	cfgKeyPort:          {"HOLONET_PORT", "PORT"},
	cfgKeyDefaultUserID: {"HOLONET_DEFAULT_USER_ID"},
	cfgKeyCORSOrigins:   {"HOLONET_CORS_ORIGINS"},
	cfgKeyLogLevel:      {"HOLONET_LOG_LEVEL"},
	cfgKeyLogFormat:     {"HOLONET_LOG_FORMAT"},
}

// flagBindings maps config keys to the flags that override them.
var flagBindings = map[string]string{
	cfgKeyDatabaseURL:   "database-url",
	cfgKeyListenAddr:    "listen-addr",
	cfgKeyDefaultUserID: "default-user-id",
	cfgKeyLogLevel:      "log-level",
	cfgKeyLogFormat:     "log-format",
}

// loadDotEnv loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadConfig reads config.yaml from configDir using Viper, layered under the
// environment and any flags in fs. A missing config.yaml is not an error.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyPort, defaultPort)
	v.SetDefault(cfgKeyDefaultUserID, api.DefaultUserID)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, logging.FormatText)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	if flags != nil {
		for key, name := range flagBindings {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// storeConfig builds the store configuration. A database URL decides the
// backend on its own; otherwise the backend key is used with dataDir.
func storeConfig(v *viper.Viper, dataDir string) (types.Config, error) {
	cfg := types.Config{
		Backend:     v.GetString(cfgKeyBackend),
		DataDir:     dataDir,
		DatabaseURL: v.GetString(cfgKeyDatabaseURL),
	}
	if cfg.DatabaseURL != "" {
		backend, err := types.BackendForURL(cfg.DatabaseURL)
		if err != nil {
			return types.Config{}, fmt.Errorf("database url: %w", err)
		}
		cfg.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("store config: %w", err)
	}
	return cfg, nil
}

// listenAddr returns listen_addr, or ":<port>" when it is unset.
func listenAddr(v *viper.Viper) string {
	if addr := v.GetString(cfgKeyListenAddr); addr != "" {
		return addr
	}
	return ":" + v.GetString(cfgKeyPort)
}

// corsOrigins accepts a YAML list or a comma separated string.
func corsOrigins(v *viper.Viper) []string {
	var out []string
	for _, entry := range v.GetStringSlice(cfgKeyCORSOrigins) {
		for _, o := range strings.Split(entry, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
