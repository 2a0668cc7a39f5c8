// Package cli implements the holonet command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/holonet/internal/logging"
	"github.com/mesh-intelligence/holonet/internal/paths"
	"github.com/mesh-intelligence/holonet/internal/store"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	envFile   string
}

// app carries the state of one invocation: parsed flags and the loaded
// configuration.
type app struct {
	flags     rootFlags
	configDir string
	cfg       *viper.Viper
}

// NewRootCmd creates the top-level "holonet" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "holonet",
		Short: "A favorites API over users, people and planets",
		Long: "holonet serves a small JSON API for browsing people and planets\n" +
			"and keeping per-user favorites, backed by SQLite or PostgreSQL.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.holonet)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.holonet-db)")
	pf.StringVar(&a.flags.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	pf.String("database-url", "", "database connection string (postgres://... or sqlite:///path)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text, json")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newSeedCmd(a))
	root.AddCommand(newUsersCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newImportCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(context.Background(), NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes root with args and returns the process exit code.
func run(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// sysError marks a failure of the environment (filesystem, database) rather
// than of the invocation.
func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// exitCode maps an error to an exit code. Unmarked errors are usage errors.
func exitCode(err error) int {
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return exitUserError
}

// load reads .env and config.yaml for every command except version.
func (a *app) load(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}
	if err := loadDotEnv(a.flags.envFile); err != nil {
		return sysError("%w", err)
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return err
	}

	a.configDir = configDir
	a.cfg = v
	return nil
}

// dataDir resolves the data directory: --data-dir > config.yaml >
// HOLONET_DATA_DIR > $(CWD)/.holonet-db.
func (a *app) dataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.cfg.GetString(cfgKeyDataDir))
}

// openStore attaches a backend for the configured database. The caller must
// Detach it.
func (a *app) openStore() (*store.Backend, error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return nil, sysError("resolve data dir: %w", err)
	}
	cfg, err := storeConfig(a.cfg, dataDir)
	if err != nil {
		return nil, err
	}

	b := store.NewBackend()
	if err := b.Attach(cfg); err != nil {
		return nil, sysError("attach store: %w", err)
	}
	return b, nil
}

// logger builds the configured structured logger writing to w.
func (a *app) logger(w io.Writer) (*slog.Logger, error) {
	return logging.New(a.cfg.GetString(cfgKeyLogLevel), a.cfg.GetString(cfgKeyLogFormat), w)
}
