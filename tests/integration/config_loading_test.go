package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDataDirPrecedence checks --data-dir > config.yaml > HOLONET_DATA_DIR >
// $(CWD)/.holonet-db.
func TestDataDirPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		flag       bool
		config     bool
		env        bool
		wantSubdir string
	}{
		{name: "flag wins", flag: true, config: true, env: true, wantSubdir: "flag"},
		{name: "config over env", config: true, env: true, wantSubdir: "cfgdata"},
		{name: "env when nothing else", env: true, wantSubdir: "env"},
		{name: "cwd default", wantSubdir: ".holonet-db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewTestEnv(t)
			configYAML := "backend: sqlite\n"
			if tt.config {
				configYAML += "data_dir: " + filepath.Join(env.TempDir, "cfgdata") + "\n"
			}
			require.NoError(t, os.WriteFile(filepath.Join(env.Config, "config.yaml"), []byte(configYAML), 0o644))
			if tt.env {
				env.Env = append(env.Env, "HOLONET_DATA_DIR="+filepath.Join(env.TempDir, "env"))
			}

			args := []string{"init"}
			if tt.flag {
				args = append([]string{"--data-dir", filepath.Join(env.TempDir, "flag")}, args...)
			}
			env.MustRunHolonet(args...)

			assert.FileExists(t, filepath.Join(env.TempDir, tt.wantSubdir, "holonet.db"))
		})
	}
}

// TestDotEnvSuppliesDatabaseURL checks that .env in the working directory is
// read and that DATABASE_URL selects the SQLite file it names.
func TestDotEnvSuppliesDatabaseURL(t *testing.T) {
	env := NewTestEnv(t)
	dbPath := filepath.Join(env.TempDir, "custom.db")
	require.NoError(t, os.WriteFile(filepath.Join(env.TempDir, ".env"),
		[]byte("DATABASE_URL=sqlite:///"+dbPath+"\n"), 0o644))

	env.MustRunHolonet("seed")
	assert.FileExists(t, dbPath)
	assert.NoFileExists(t, filepath.Join(env.DataDir, "holonet.db"))
}

func TestUnknownDatabaseSchemeExitsOne(t *testing.T) {
	env := NewTestEnv(t)
	env.Env = append(env.Env, "DATABASE_URL=mysql://localhost/holonet")
	result := env.RunHolonet("init")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "database url")
}
