// Package config reads the configuration of the ATM terminal.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds the settings of the terminal.
type Config struct {
	// File is the ledger file.
	File string `yaml:"file"`
	// Backup receives a copy of the ledger right after it has been loaded.
	// Relative paths are resolved against the directory of File. An empty
	// value disables the backup.
	Backup string `yaml:"backup"`
	// Encoding is the character encoding of the ledger file.
	Encoding string `yaml:"encoding"`
	// Color enables coloured output.
	Color bool `yaml:"color"`
	// Autosave writes the ledger after every successful change.
	Autosave bool `yaml:"autosave"`
	// LogLevel is one of debug, info, warn and error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		File:     "database.csv",
		Backup:   "database_temp.csv",
		Encoding: "utf-8",
		Color:    true,
		LogLevel: "warn",
	}
}

// Load reads the configuration at path. Keys missing in the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.SetStrict(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// BackupPath returns the path of the backup file, or an empty string if
// backups are disabled.
func (c Config) BackupPath() string {
	if c.Backup == "" || filepath.IsAbs(c.Backup) {
		return c.Backup
	}
	return filepath.Join(filepath.Dir(c.File), c.Backup)
}
