// Package config loads server settings from RPG_* environment variables
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-player/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "RPG_"

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Booster sources
const (
	BoosterStatic = "static"
	BoosterRedis  = "redis"
)

// Config is the server configuration
type Config struct {
	Port int `env:"PORT" envDefault:"50051"`

	Store     string `env:"STORE" envDefault:"memory"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisTLS  bool   `env:"REDIS_TLS" envDefault:"false"`
	// RedisClusterAddrs switches to a cluster client and takes precedence
	// over RedisAddr. Cluster mode has no database selection.
	RedisClusterAddrs []string `env:"REDIS_CLUSTER_ADDRS" envSeparator:","`
	SQLitePath        string   `env:"SQLITE_PATH" envDefault:"rpg-player.db"`

	IdleTTL       time.Duration `env:"IDLE_TTL" envDefault:"20m"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`

	// Booster selects where boosted players are looked up. The static
	// source uses BoostedIDs; the redis source reads the BoosterKey set.
	Booster    string   `env:"BOOSTER" envDefault:"static"`
	BoosterKey string   `env:"BOOSTER_KEY" envDefault:"players:boosted"`
	BoostedIDs []string `env:"BOOSTED_IDS" envSeparator:","`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and cross-field requirements
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder().
		OneOf("Store", c.Store, StoreMemory, StoreRedis, StoreSQLite).
		OneOf("Booster", c.Booster, BoosterStatic, BoosterRedis).
		OneOf("LogFormat", c.LogFormat, "text", "json").
		Positive("IdleTTL", int64(c.IdleTTL)).
		Positive("SweepInterval", int64(c.SweepInterval)).
		Positive("ShutdownTimeout", int64(c.ShutdownTimeout))

	if c.Port <= 0 || c.Port > 65535 {
		vb.Fieldf("Port", "must be between 1 and 65535, got %d", c.Port)
	}
	if _, err := c.level(); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	vb.RequiredFieldIf("RedisAddr", c.UsesRedis() && !c.RedisCluster() && c.RedisAddr == "")
	if c.RedisCluster() && c.RedisDB != 0 {
		vb.Fieldf("RedisDB", "must be 0 in cluster mode, got %d", c.RedisDB)
	}
	vb.RequiredFieldIf("SQLitePath", c.Store == StoreSQLite && c.SQLitePath == "")
	vb.RequiredFieldIf("BoosterKey", c.Booster == BoosterRedis && c.BoosterKey == "")

	return vb.Build()
}

// UsesRedis reports whether any component needs a redis connection
func (c *Config) UsesRedis() bool {
	return c.Store == StoreRedis || c.Booster == BoosterRedis
}

// RedisCluster reports whether redis is reached through a cluster client
func (c *Config) RedisCluster() bool {
	return len(c.RedisClusterAddrs) > 0
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel)))
	return lvl, err
}

// NewLogger builds the process logger described by the config
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
