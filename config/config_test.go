package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{ConfigPathEnv, MemoryEnv, TimeEnv, ShebangEnv, SetEnv} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadBuiltins(t *testing.T) {
	clearEnv(t)
	t.Setenv(ConfigPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMemory, d.Memory)
	assert.Equal(t, DefaultTime, d.Time)
	assert.Equal(t, DefaultShebang, d.Shebang)
	assert.Equal(t, DefaultSet, d.Set)
	assert.Equal(t, DefaultExport, d.Export)
	assert.Equal(t, DefaultOutput, d.Output)
	assert.Equal(t, DefaultError, d.Error)
	assert.Equal(t, DefaultShell, d.Shell)
}

func TestLoadFileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
memory: 8G
time: 2h
shebang: "#!/bin/bash"
set: eu
export: NONE
output: logs/%x.out
error: logs/%x.err
shell: /bin/zsh
`)
	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8G", d.Memory)
	assert.Equal(t, "2h", d.Time)
	assert.Equal(t, "#!/bin/bash", d.Shebang)
	assert.Equal(t, "eu", d.Set)
	assert.Equal(t, "NONE", d.Export)
	assert.Equal(t, "logs/%x.out", d.Output)
	assert.Equal(t, "logs/%x.err", d.Error)
	assert.Equal(t, "/bin/zsh", d.Shell)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "memory: 8G\ntime: 2h\n")
	t.Setenv(MemoryEnv, "16G")
	t.Setenv(TimeEnv, "30m")
	t.Setenv(ShebangEnv, "#!/usr/bin/env zsh")
	t.Setenv(SetEnv, "x")

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "16G", d.Memory)
	assert.Equal(t, "30m", d.Time)
	assert.Equal(t, "#!/usr/bin/env zsh", d.Shebang)
	assert.Equal(t, "x", d.Set)
}

func TestLoadExplicitEmptySet(t *testing.T) {
	clearEnv(t)

	// an empty env var still counts as set
	t.Setenv(SetEnv, "")
	d, err := Load(writeConfig(t, "set: eu\n"))
	require.NoError(t, err)
	assert.Equal(t, "", d.Set)

	os.Unsetenv(SetEnv)
	d, err = Load(writeConfig(t, `set: ""`))
	require.NoError(t, err)
	assert.Equal(t, "", d.Set)
}

func TestLoadMissingExplicitFileErrors(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "memory: [unclosed\n"))
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, "/etc/ssubmit.yaml", Path("/etc/ssubmit.yaml"))

	t.Setenv(ConfigPathEnv, "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", Path(""))
	assert.Equal(t, "/etc/ssubmit.yaml", Path("/etc/ssubmit.yaml"))
}
