package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

// Config represents the application configuration structure
type Config struct {
	API      APIConfig     `mapstructure:"api" yaml:"api"`
	Logging  LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Sessions SessionConfig `mapstructure:"sessions" yaml:"sessions"`

	logger recentLogger
}

// APIConfig holds the single remote API base every call is relative to.
type APIConfig struct {
	Endpoint string        `mapstructure:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type SessionConfig struct {
	Path string `mapstructure:"path" yaml:"path,omitempty"`
}

func (c *Config) GetAPIEndpoint() string {
	return strings.TrimSuffix(c.API.Endpoint, "/")
}

func (c *Config) GetAPITimeout() time.Duration {
	if c.API.Timeout <= 0 {
		return defaultTimeout
	}
	return c.API.Timeout
}

func (c *Config) SetAPIEndpoint(endpoint string) error {
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return fmt.Errorf("invalid api endpoint: %s", endpoint)
	}
	c.API.Endpoint = endpoint
	return nil
}

// GetSessionPath returns the location of the persisted session record,
// defaulting to ~/.config/manthan/session.json.
func (c *Config) GetSessionPath() string {
	if len(c.Sessions.Path) > 0 {
		return c.Sessions.Path
	}
	return filepath.Join(configDir(), "session.json")
}

func (c *Config) GetRecentLogEvents(count int) []LogEntry {
	return c.logger.GetRecentEvents(count)
}

func configDir() string {
	usr, err := user.Current()
	if err != nil {
		home := os.Getenv("HOME")
		return filepath.Join(home, ".config", "manthan")
	}
	return filepath.Join(usr.HomeDir, ".config", "manthan")
}
