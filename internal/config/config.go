// Package config loads server configuration from an optional file and
// POKEMON_API_ environment variables
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. POKEMON_API_SERVER_PORT
const EnvPrefix = "POKEMON_API"

// ServerConfig holds grpc listener settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
	// ShutdownTimeout bounds graceful stop before the server is forced down
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig holds the connection to the store
type RedisConfig struct {
	Addr         string `mapstructure:"addr"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
	UseTLS       bool   `mapstructure:"use_tls"`
}

// PokeAPIConfig holds catalog client settings
type PokeAPIConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	HTTPTimeout          time.Duration `mapstructure:"http_timeout"`
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
	MaxConcurrentFetches int           `mapstructure:"max_concurrent_fetches"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	// Level is one of debug, info, warn or error
	Level string `mapstructure:"level"`
	// Format is json or text
	Format string `mapstructure:"format"`
}

// SlogLevel returns the configured level, info when unset
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
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

// RulesConfig points at the game rules file
type RulesConfig struct {
	// Path to a rules yaml file; the built-in rules are used when empty
	Path string `mapstructure:"path"`
}

// Config is the top-level server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	Logging LoggingConfig `mapstructure:"logging"`
	Rules   RulesConfig   `mapstructure:"rules"`
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		vb.Fieldf("server.port", "must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}

	if strings.TrimSpace(c.Redis.Addr) == "" {
		vb.RequiredField("redis.addr")
	}
	if c.Redis.PoolSize < 0 {
		vb.Field("redis.pool_size", "must not be negative")
	}
	if c.Redis.MinIdleConns < 0 {
		vb.Field("redis.min_idle_conns", "must not be negative")
	}

	if c.PokeAPI.HTTPTimeout < 0 {
		vb.Field("pokeapi.http_timeout", "must not be negative")
	}
	if c.PokeAPI.CacheTTL < 0 {
		vb.Field("pokeapi.cache_ttl", "must not be negative")
	}
	if c.PokeAPI.MaxConcurrentFetches < 0 {
		vb.Field("pokeapi.max_concurrent_fetches", "must not be negative")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		vb.Fieldf("logging.level", "must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		vb.Fieldf("logging.format", "must be json or text, got %q", c.Logging.Format)
	}

	return vb.Build()
}

// Load reads path when given, applies environment overrides and defaults,
// and validates the result
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read config file %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.use_tls", false)

	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2/")
	v.SetDefault("pokeapi.http_timeout", "10s")
	v.SetDefault("pokeapi.cache_ttl", "24h")
	v.SetDefault("pokeapi.max_concurrent_fetches", 8)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("rules.path", "")
}
