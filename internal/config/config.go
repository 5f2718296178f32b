// Package config loads the server configuration from a YAML file,
// falling back to defaults when the file is absent.
package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rubika-tools/planner-api/internal/errors"
)

// Config holds all server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address         string `yaml:"address"`
	ShutdownTimeout int    `yaml:"shutdown_timeout"` // seconds
}

// RedisConfig holds the draft store connection settings.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// CatalogConfig holds the item and nano data settings.
type CatalogConfig struct {
	DataDir string `yaml:"data_dir"`
	// SearchLimit caps name search results, 0 means the client default.
	SearchLimit int `yaml:"search_limit"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SlogLevel maps the configured level onto slog.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:         ":8080",
			ShutdownTimeout: 30,
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		Catalog: CatalogConfig{
			DataDir: "data/catalog",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.Address == "" {
		vb.Field("server.address", "cannot be empty")
	}
	if c.Server.ShutdownTimeout < 0 {
		vb.Field("server.shutdown_timeout", "cannot be negative")
	}
	if c.Redis.Address == "" {
		vb.Field("redis.address", "cannot be empty")
	}
	if c.Catalog.DataDir == "" {
		vb.Field("catalog.data_dir", "cannot be empty")
	}
	if c.Catalog.SearchLimit < 0 {
		vb.Field("catalog.search_limit", "cannot be negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		vb.Fieldf("log.format", "unknown format %q", c.Log.Format)
	}

	return vb.Build()
}
