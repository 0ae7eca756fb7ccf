package main

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/theimaginaryfoundation/diary-lens/analysis"
	"github.com/theimaginaryfoundation/diary-lens/analysis/provider"
)

type Config struct {
	Entries     string
	EntriesFile string
	Mode        string
	Provider    string
	Model       string

	Timeout time.Duration
	Retries int

	OutPath    string
	ConfigPath string
	EnvFile    string
	Verbose    bool

	entriesSet bool
}

func (c Config) Validate() error {
	if !c.entriesSet && c.EntriesFile == "" {
		return errors.New("missing --entries (or --entries-file)")
	}
	if c.entriesSet && c.EntriesFile != "" {
		return errors.New("--entries and --entries-file are mutually exclusive")
	}
	if _, err := analysis.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := provider.ParseKind(c.Provider); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return errors.New("timeout must be >= 0")
	}
	if c.Retries < 0 {
		return errors.New("retries must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Mode:     "cbt",
		Provider: "gemini",
		Timeout:  120 * time.Second,
		EnvFile:  ".env",
	}
}

// normalize cleans paths after flag parsing.
func (c *Config) normalize() {
	if c.EntriesFile != "" && c.EntriesFile != "-" {
		c.EntriesFile = filepath.Clean(c.EntriesFile)
	}
	if c.OutPath != "" {
		c.OutPath = filepath.Clean(c.OutPath)
	}
	if c.ConfigPath != "" {
		c.ConfigPath = filepath.Clean(c.ConfigPath)
	}
	if c.EnvFile != "" {
		c.EnvFile = filepath.Clean(c.EnvFile)
	}
}
