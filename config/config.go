// Package config loads the settings shared by memoized and bridged callables
// from YAML, and turns them into a zap logger and package options.
//
// Example file:
//
//	log:
//	  level: debug
//	  development: true
//	memo:
//	  shards: 8
//	  observe: true
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/functional_ive_go/bridge"
	"github.com/on-the-ground/functional_ive_go/memo"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log  LogConfig  `yaml:"log"`
	Memo MemoConfig `yaml:"memo"`
}

type LogConfig struct {
	Level       string `yaml:"level"`       // default: info
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

type MemoConfig struct {
	Shards  int  `yaml:"shards"`  // default: 1
	Observe bool `yaml:"observe"` // log one debug entry per memoized call
}

func Default() Config {
	return Config{
		Log:  LogConfig{Level: "info"},
		Memo: MemoConfig{Shards: 1},
	}
}

// Parse reads a YAML document. Keys it does not mention keep their defaults.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

func (c Config) validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if c.Memo.Shards < 1 {
		return fmt.Errorf("%w: memo.shards must be positive, got %d", ErrInvalidConfig, c.Memo.Shards)
	}
	return nil
}

// Logger builds a production (JSON) or development (console) zap logger at
// the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func (c Config) MemoOptions(logger *zap.Logger) []memo.Option {
	opts := []memo.Option{
		memo.WithLogger(logger),
		memo.WithShards(c.Memo.Shards),
	}
	if c.Memo.Observe {
		opts = append(opts, memo.WithObserver(func(e memo.Event) {
			logger.Debug("memo call",
				zap.String("memoId", e.MemoID),
				zap.Stringer("outcome", e.Outcome),
				zap.Duration("took", e.Span.Duration()),
				zap.Error(e.Err),
			)
		}))
	}
	return opts
}

func (c Config) BridgeOptions(logger *zap.Logger) []bridge.Option {
	return []bridge.Option{bridge.WithLogger(logger)}
}
