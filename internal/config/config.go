package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "HISTORY_"

// Config holds all runtime configuration for the history server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Postgres PostgresConfig `koanf:"postgres"`
	Receipt  ReceiptConfig  `koanf:"receipt"`
	History  HistoryConfig  `koanf:"history"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type PostgresConfig struct {
	Address  string `koanf:"address"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// ReceiptConfig controls the goods-receipt confirmation flow.
type ReceiptConfig struct {
	// SettleDelay is how long a confirmation waits before it is written,
	// mirroring the settlement window of the upstream purchase provider.
	SettleDelay string `koanf:"settle_delay"`
	Workers     int    `koanf:"workers"`

	settleDelay time.Duration
}

// SettleDuration returns the parsed settle delay. Valid after Load.
func (r ReceiptConfig) SettleDuration() time.Duration {
	return r.settleDelay
}

type HistoryConfig struct {
	// Timezone is the IANA zone used to bucket purchases into calendar days.
	Timezone string `koanf:"timezone"`
	// DefaultLocale is used when a request carries no usable Accept-Language.
	DefaultLocale string `koanf:"default_locale"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

func defaults() map[string]interface{} {
	// In all cases the default behavior should be for the docker compose setup
	return map[string]interface{}{
		"server.port":            "9446",
		"postgres.address":       "localhost",
		"postgres.port":          "5433",
		"postgres.db":            "postgres",
		"postgres.username":      "postgres",
		"postgres.password":      "testpassword",
		"receipt.settle_delay":   "1s",
		"receipt.workers":        1,
		"history.timezone":       "Asia/Jakarta",
		"history.default_locale": "id",
		"log.level":              "info",
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, in increasing precedence. Environment variables use
// the HISTORY_ prefix with a double underscore between segments, so
// HISTORY_RECEIPT__SETTLE_DELAY maps to receipt.settle_delay. The file path
// comes from HISTORY_CONFIG_FILE and is skipped when unset.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path := os.Getenv(envPrefix + "CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if key == "config_file" {
			return ""
		}
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.Receipt.settleDelay, err = time.ParseDuration(cfg.Receipt.SettleDelay)
	if err != nil {
		return nil, fmt.Errorf("config receipt.settle_delay: %w", err)
	}
	if cfg.Receipt.Workers < 1 {
		cfg.Receipt.Workers = 1
	}

	if _, err := time.LoadLocation(cfg.History.Timezone); err != nil {
		return nil, fmt.Errorf("config history.timezone: %w", err)
	}

	return &cfg, nil
}

// Location resolves the configured history timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.History.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
