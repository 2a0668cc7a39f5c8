package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize holonet storage",
		Long:  "Create the configuration and data directories, write a default config.yaml\nif missing, then create the database schema.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	dataDir, err := a.dataDir()
	if err != nil {
		return sysError("resolve data dir: %w", err)
	}
	cfg, err := storeConfig(a.cfg, dataDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError("create config directory: %w", err)
	}
	configPath := filepath.Join(a.configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, configFile{
		Backend:   cfg.Backend,
		DataDir:   dataDir,
		LogLevel:  a.cfg.GetString(cfgKeyLogLevel),
		LogFormat: a.cfg.GetString(cfgKeyLogFormat),
	})
	if err != nil {
		return sysError("write config: %w", err)
	}

	b, err := a.openStore()
	if err != nil {
		return err
	}
	if err := b.Detach(); err != nil {
		return sysError("finalize storage: %w", err)
	}

	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintf(out, "Wrote %s\n", configPath)
	}
	fmt.Fprintln(out, "holonet initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. It reports whether the file was written.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
