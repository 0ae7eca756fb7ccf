package provider

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Settings configures one provider.
type Settings struct {
	Model   string `toml:"model"`
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// Config holds the settings of every provider. It is loaded once at process
// start and passed to New.
type Config struct {
	Gemini    Settings `toml:"gemini"`
	Anthropic Settings `toml:"anthropic"`
	OpenAI    Settings `toml:"openai"`
}

// DefaultConfig returns the built-in models with no credentials.
func DefaultConfig() Config {
	return Config{
		Gemini:    Settings{Model: "gemini-2.0-flash"},
		Anthropic: Settings{Model: "claude-sonnet-4-20250514"},
		OpenAI:    Settings{Model: "gpt-4o-mini"},
	}
}

// For returns the settings for kind.
func (c Config) For(kind Kind) Settings {
	switch kind {
	case Anthropic:
		return c.Anthropic
	case OpenAI:
		return c.OpenAI
	default:
		return c.Gemini
	}
}

// With returns a copy of c with the settings for kind replaced.
func (c Config) With(kind Kind, s Settings) Config {
	switch kind {
	case Anthropic:
		c.Anthropic = s
	case OpenAI:
		c.OpenAI = s
	default:
		c.Gemini = s
	}
	return c
}

// envPrefix is the environment variable prefix for a provider, e.g. GEMINI.
func envPrefix(kind Kind) string {
	return strings.ToUpper(kind.String())
}

// LoadConfig layers the defaults, an optional TOML file at path, and the
// environment read through getenv (<PROVIDER>_API_KEY, <PROVIDER>_MODEL,
// <PROVIDER>_BASE_URL). A missing file at path is an error; an empty path skips it.
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config file not found: %s", path)
			}
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if getenv == nil {
		return cfg, nil
	}
	for _, kind := range Kinds() {
		s := cfg.For(kind)
		prefix := envPrefix(kind)
		if v := strings.TrimSpace(getenv(prefix + "_API_KEY")); v != "" {
			s.APIKey = v
		}
		if v := strings.TrimSpace(getenv(prefix + "_MODEL")); v != "" {
			s.Model = v
		}
		if v := strings.TrimSpace(getenv(prefix + "_BASE_URL")); v != "" {
			s.BaseURL = v
		}
		cfg = cfg.With(kind, s)
	}
	return cfg, nil
}

// missingKeyError is returned by Complete when no credential is configured.
func missingKeyError(kind Kind) error {
	return fmt.Errorf("%s: API key not set (%s_API_KEY)", kind, envPrefix(kind))
}
