package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit_DefaultPath(t *testing.T) {
	home := isolate(t)

	res := runCLI(t, "", "config", "init")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	path := filepath.Join(home, ".config", "scriptkit", "config.yaml")
	assert.Contains(t, res.stdout, "Config file written: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug: ERROR\n", string(data))
}

func TestConfigInit_ExplicitPaths(t *testing.T) {
	dir := isolate(t)

	argPath := filepath.Join(dir, "arg.yaml")
	res := runCLI(t, "", "config", "init", argPath)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.FileExists(t, argPath)

	flagPath := filepath.Join(dir, "flag.yaml")
	res = runCLI(t, "", "--config", flagPath, "config", "init")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.FileExists(t, flagPath)
}

func TestConfigInit_ExistingFile(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		replaced bool
	}{
		{"declined", "no\n", nil, false},
		{"no input", "", nil, false},
		{"confirmed", "existing.yaml\n", nil, true},
		{"forced", "", []string{"--force"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "existing.yaml")
			require.NoError(t, os.WriteFile(path, []byte("debug: INFO\n"), 0644))

			args := append([]string{"config", "init", path}, tt.args...)
			res := runCLI(t, tt.stdin, args...)
			require.Equal(t, ExitSuccess, res.code, res.stderr)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			if tt.replaced {
				assert.Equal(t, "debug: ERROR\n", string(data))
			} else {
				assert.Equal(t, "debug: INFO\n", string(data))
				assert.Contains(t, res.stderr, "Aborted")
			}
		})
	}
}

func TestConfigShow(t *testing.T) {
	dir := isolate(t)

	res := runCLI(t, "", "config", "show")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "debug: ERROR\n", res.stdout)

	cfg := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("debug: INFO\nlog_file: run.log\n"), 0644))

	res = runCLI(t, "", "config", "show", "--config", cfg)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "debug: INFO\nlog_file: run.log\n", res.stdout)

	t.Setenv("SCRIPTKIT_DEBUG", "CRITICAL")
	res = runCLI(t, "", "config", "show", "--config", cfg)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "debug: CRITICAL\nlog_file: run.log\n", res.stdout)
}

func TestConfigShow_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	res := runCLI(t, "", "config", "show", "--config", filepath.Join(dir, "absent.yaml"))
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "error reading config file")
}
