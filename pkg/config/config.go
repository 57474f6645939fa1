// Package config loads advcontrol settings from .advcontrol.yaml, the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. ADVCONTROL_API_URL.
	EnvPrefix = "ADVCONTROL"
	// PathEnv points at an extra directory searched for .advcontrol.yaml.
	PathEnv = "ADVCONTROL_CONFIG_PATH"

	DefaultAPIURL  = "http://localhost:8001/api"
	DefaultPath    = "~/.advcontrol"
	DefaultTimeout = 30 * time.Second

	BackendDisk  = "disk"
	BackendRedis = "redis"
)

// Config holds resolved settings.
type Config struct {
	// Path is the expanded data directory holding session slots and snapshots.
	Path           string
	APIURL         string
	APITimeout     time.Duration
	SessionBackend string
	RedisURL       string
	LogLevel       string

	// File is the config file that was read, empty when running on defaults.
	File string
}

// BasePath implements store.Config.
func (c *Config) BasePath() string {
	return c.Path
}

// Load resolves configuration. Missing config and .env files are not errors.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("api.url", DefaultAPIURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("session.backend", BackendDisk)
	v.SetDefault("redis.url", "")
	v.SetDefault("log.level", "warn")

	v.SetConfigName(".advcontrol") // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if override := os.Getenv(PathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expand path: %w", err)
	}

	cfg := &Config{
		Path:           path,
		APIURL:         v.GetString("api.url"),
		APITimeout:     v.GetDuration("api.timeout"),
		SessionBackend: v.GetString("session.backend"),
		RedisURL:       v.GetString("redis.url"),
		LogLevel:       v.GetString("log.level"),
		File:           v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.SessionBackend {
	case BackendDisk:
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("config: session.backend is redis but redis.url is empty")
		}
	default:
		return fmt.Errorf("config: unknown session.backend %q (expected %s or %s)", c.SessionBackend, BackendDisk, BackendRedis)
	}
	if c.APIURL == "" {
		return errors.New("config: api.url is required")
	}
	if c.APITimeout < 0 {
		return fmt.Errorf("config: api.timeout must not be negative, got %s", c.APITimeout)
	}
	return nil
}
