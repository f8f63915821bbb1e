// Package file provides the TOML configuration file for the research
// sources server. Configuration is read once at startup; there is no
// live reload.
package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the file read from the config directory.
const ConfigFileName = "config.toml"

// ProviderConfig overrides one provider's HTTP behaviour.
// Zero values mean "use the connector's default".
type ProviderConfig struct {
	// TimeoutSeconds is the per-request timeout. Timeouts are always
	// per provider, never global, so one slow provider cannot hold up
	// the others' results.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RequestsPerSecond is the sustained outbound rate limit.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// Burst is the rate limiter burst size.
	Burst int `toml:"burst"`
}

// Timeout returns the configured timeout, or zero when unset.
func (p ProviderConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// Config is the server configuration.
type Config struct {
	// DataDir is where the SQLite cache lives.
	// Empty means ~/.research-sources/data.
	DataDir string `toml:"data_dir"`

	// UserAgent overrides the User-Agent sent to all providers.
	UserAgent string `toml:"user_agent"`

	Newspapers   ProviderConfig `toml:"newspapers"`
	WikiTree     ProviderConfig `toml:"wikitree"`
	OpenArchives ProviderConfig `toml:"openarchives"`
}

// DefaultConfigDir returns ~/.research-sources.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".research-sources"), nil
}

// Load reads the configuration from configDir. A missing file yields
// the zero configuration, not an error. If configDir is empty the
// default directory is used.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	data, err := os.ReadFile(filepath.Join(configDir, ConfigFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to configDir, creating it if needed.
func Save(configDir string, cfg *Config) error {
	if configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return err
		}
		configDir = dir
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, ConfigFileName), data, 0600)
}
