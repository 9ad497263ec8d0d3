// Package config loads library configuration from defaults, an optional
// file and AGENTGRAPH_-prefixed environment variables, in that order of
// precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentgraph-dev/agentgraph/log"
)

// Config is the top-level configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Store   StoreConfig   `mapstructure:"store"`
	Agent   AgentConfig   `mapstructure:"agent"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
}

// LoggingConfig controls library logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig selects and parameterizes the session store backend.
type StoreConfig struct {
	Backend     string `mapstructure:"backend"`
	FileDir     string `mapstructure:"file_dir"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisDB     int    `mapstructure:"redis_db"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
}

// AgentConfig holds the agent knobs.
type AgentConfig struct {
	MaxIterations int `mapstructure:"max_iterations"`
	MaxDepth      int `mapstructure:"max_depth"`
}

// OpenAIConfig holds provider credentials for the LLM planner. The API key
// is usually supplied through AGENTGRAPH_OPENAI_API_KEY rather than a file.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Load reads configuration. An empty path skips the file and uses defaults
// plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.file_dir", "")
	v.SetDefault("store.sqlite_path", "")
	v.SetDefault("store.redis_addr", "")
	v.SetDefault("store.redis_db", 0)
	v.SetDefault("store.postgres_dsn", "")
	v.SetDefault("agent.max_iterations", 10)
	v.SetDefault("agent.max_depth", 5)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.model", "gpt-4o-mini")

	v.SetEnvPrefix("AGENTGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return &cfg, nil
}

// Validate checks the configuration, collecting every problem instead of
// stopping at the first one.
func (c *Config) Validate() []error {
	var errs []error

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error", "off":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be one of [debug, info, warn, error, off], got %q", c.Logging.Level))
	}

	switch c.Store.Backend {
	case "memory":
	case "file":
		if c.Store.FileDir == "" {
			errs = append(errs, fmt.Errorf("store.file_dir is required for the file backend"))
		}
	case "sqlite":
		if c.Store.SQLitePath == "" {
			errs = append(errs, fmt.Errorf("store.sqlite_path is required for the sqlite backend"))
		}
	case "redis":
		if c.Store.RedisAddr == "" {
			errs = append(errs, fmt.Errorf("store.redis_addr is required for the redis backend"))
		}
	case "postgres":
		if c.Store.PostgresDSN == "" {
			errs = append(errs, fmt.Errorf("store.postgres_dsn is required for the postgres backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.backend must be one of [memory, file, sqlite, redis, postgres], got %q", c.Store.Backend))
	}

	if c.Agent.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("agent.max_iterations must be positive, got %d", c.Agent.MaxIterations))
	}
	if c.Agent.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("agent.max_depth must be positive, got %d", c.Agent.MaxDepth))
	}

	return errs
}

// LogLevel maps the configured level name onto a log.Level. Validate
// guarantees the name is known.
func (c *Config) LogLevel() log.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	case "off":
		return log.LevelOff
	default:
		return log.LevelInfo
	}
}
