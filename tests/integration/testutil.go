// Package integration drives the built holonet binary end to end.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// holonetBin is the path to the built holonet binary.
	holonetBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// cleanEnv returns os.Environ() without HOLONET_*, DATABASE_URL and PORT so
// the host environment cannot leak into a run.
func cleanEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOLONET_") || strings.HasPrefix(e, "DATABASE_URL=") || strings.HasPrefix(e, "PORT=") {
			continue
		}
		env = append(env, e)
	}
	return env
}

// TestEnv provides an isolated environment with its own config and data
// directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
	Env     []string
}

// NewTestEnv creates a new isolated test environment with a config.yaml
// pointing at its data directory.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build holonet: %v", buildErr)
	}
	if holonetBin == "" {
		t.Fatal("holonet binary not built")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\nlog_level: warn\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a holonet command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// command prepares a holonet invocation scoped to the environment.
func (e *TestEnv) command(args ...string) *exec.Cmd {
	allArgs := append([]string{"--config-dir", e.Config}, args...)
	cmd := exec.Command(holonetBin, allArgs...)
	cmd.Env = append(cleanEnv(), e.Env...)
	cmd.Dir = e.TempDir
	return cmd
}

// RunHolonet executes the holonet CLI with the given arguments.
func (e *TestEnv) RunHolonet(args ...string) CmdResult {
	e.t.Helper()

	cmd := e.command(args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			e.t.Fatalf("failed to run holonet: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunHolonet executes the holonet CLI and fails the test on a non-zero exit.
func (e *TestEnv) MustRunHolonet(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunHolonet(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("holonet %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}
