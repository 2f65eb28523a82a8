// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/kruskal"
)

// RandomConfig holds the defaults of the random graph generator.
type RandomConfig struct {
	Nodes     int   `mapstructure:"nodes"`
	Extra     int   `mapstructure:"extra"`
	MaxWeight int64 `mapstructure:"max_weight"`
}

// Config holds all runtime configuration.
// Values are populated from .algoviz.yaml, ALGOVIZ_* env vars, and CLI flags.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	LogLevel        string        `mapstructure:"log_level"`
	Strict          bool          `mapstructure:"strict"`
	TieBreak        string        `mapstructure:"tie_break"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	Random          RandomConfig  `mapstructure:"random"`
}

// SetDefaults registers built-in defaults on viper.
func SetDefaults() {
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("strict", false)
	viper.SetDefault("tie_break", string(kruskal.TieBreakDiscovery))
	viper.SetDefault("shutdown_timeout", 5*time.Second)
	viper.SetDefault("max_body_bytes", int64(1<<20))
	viper.SetDefault("random.nodes", 8)
	viper.SetDefault("random.extra", 6)
	viper.SetDefault("random.max_weight", builder.DefaultMaxWeight)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values the rest of the program cannot run with.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	if _, err := c.TieBreakMode(); err != nil {
		return err
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: shutdown_timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.Random.Nodes < 1 || c.Random.Nodes > builder.MaxNodes {
		return fmt.Errorf("config: random.nodes must be in [1,%d], got %d", builder.MaxNodes, c.Random.Nodes)
	}
	if c.Random.Extra < 0 {
		return fmt.Errorf("config: random.extra must not be negative, got %d", c.Random.Extra)
	}
	if c.Random.MaxWeight < builder.DefaultMinWeight {
		return fmt.Errorf("config: random.max_weight must be at least %d, got %d", builder.DefaultMinWeight, c.Random.MaxWeight)
	}

	return nil
}

// TieBreakMode returns the parsed tie-break.
func (c Config) TieBreakMode() (kruskal.TieBreak, error) {
	tb, err := kruskal.ParseTieBreak(c.TieBreak)
	if err != nil {
		return "", fmt.Errorf("config: tie_break: %w", err)
	}

	return tb, nil
}
