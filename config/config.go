// Package config resolves the values the CLI falls back to when a flag
// is not given: environment variables first, then the user config
// file, then built-ins.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ConfigPathEnv = "SSUBMIT_CONFIG"

	MemoryEnv  = "SSUBMIT_MEMORY"
	TimeEnv    = "SSUBMIT_TIME"
	ShebangEnv = "SSUBMIT_SHEBANG"
	SetEnv     = "SSUBMIT_SET"

	configDir      = ".config/ssubmit"
	configFilename = "config.yaml"
)

// Built-in defaults, applied when neither flag, environment variable
// nor config file supplies a value.
const (
	DefaultMemory  = "1G"
	DefaultTime    = "1d"
	DefaultShebang = "#!/usr/bin/env bash"
	DefaultSet     = "euxo pipefail"
	DefaultExport  = "ALL"
	DefaultOutput  = "%x.out"
	DefaultError   = "%x.err"
	DefaultShell   = "auto"
)

// File is the optional user configuration file. Set is a pointer so
// that an explicit empty string, which disables the set line in
// generated scripts, is distinguishable from an absent key.
type File struct {
	Memory  string  `yaml:"memory"`
	Time    string  `yaml:"time"`
	Shebang string  `yaml:"shebang"`
	Set     *string `yaml:"set"`
	Export  string  `yaml:"export"`
	Output  string  `yaml:"output"`
	Error   string  `yaml:"error"`
	Shell   string  `yaml:"shell"`
}

// Defaults carries the fully-resolved fallback values handed to the
// CLI layer.
type Defaults struct {
	Memory  string
	Time    string
	Shebang string
	Set     string
	Export  string
	Output  string
	Error   string
	Shell   string
}

// Load resolves defaults from the environment and the config file at
// explicit (or the default location when explicit is empty). A missing
// file at the default location is not an error; a missing or malformed
// file at an explicitly requested path is.
func Load(explicit string) (Defaults, error) {
	file, err := readFile(explicit)
	if err != nil {
		return Defaults{}, err
	}
	return Defaults{
		Memory:  resolve(MemoryEnv, file.Memory, DefaultMemory),
		Time:    resolve(TimeEnv, file.Time, DefaultTime),
		Shebang: resolve(ShebangEnv, file.Shebang, DefaultShebang),
		Set:     resolveSet(file.Set),
		Export:  fallback(file.Export, DefaultExport),
		Output:  fallback(file.Output, DefaultOutput),
		Error:   fallback(file.Error, DefaultError),
		Shell:   fallback(file.Shell, DefaultShell),
	}, nil
}

func resolve(envKey, fileValue, builtin string) string {
	if v, ok := os.LookupEnv(envKey); ok {
		return v
	}
	return fallback(fileValue, builtin)
}

func resolveSet(fileValue *string) string {
	if v, ok := os.LookupEnv(SetEnv); ok {
		return v
	}
	if fileValue != nil {
		return *fileValue
	}
	return DefaultSet
}

func fallback(value, builtin string) string {
	if value != "" {
		return value
	}
	return builtin
}

// Path returns the config file location: the explicit path if given,
// then SSUBMIT_CONFIG, then ~/.config/ssubmit/config.yaml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(ConfigPathEnv); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFilename)
}

func readFile(explicit string) (File, error) {
	path := Path(explicit)
	if path == "" {
		return File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit == "" {
			return File{}, nil
		}
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}
