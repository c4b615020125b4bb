// Package config loads the YAML configuration of the hroute command.
package config

import (
	"math"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hroute/pathcache"
)

// Default values applied before the file is decoded.
const (
	DefaultCapacity   = 101
	DefaultEvictBatch = 1
	DefaultHash       = "prime"
	DefaultAlpha      = 0.5
	DefaultLogLevel   = "info"
)

var (
	// ErrConfigReadFailed is returned when the file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")
	// ErrConfigParseFailed is returned when the file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
	// ErrInvalidCapacity is returned for a cache capacity below 2.
	ErrInvalidCapacity = zerr.New("cache capacity must be at least 2")
	// ErrInvalidEvictBatch is returned for a non-positive eviction batch.
	ErrInvalidEvictBatch = zerr.New("cache evict_batch must be at least 1")
	// ErrUnknownHash is returned for an unsupported hash name.
	ErrUnknownHash = zerr.New("unknown cache hash")
	// ErrInvalidAlpha is returned for a heuristic weight outside [0, 1].
	ErrInvalidAlpha = zerr.New("routing alpha must be within [0, 1]")
)

// Cache configures the path cache.
type Cache struct {
	Capacity   int    `yaml:"capacity"`
	EvictBatch int    `yaml:"evict_batch"`
	Hash       string `yaml:"hash"`
}

// Routing configures weighted queries.
type Routing struct {
	Alpha float64 `yaml:"alpha"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Config is the root document.
type Config struct {
	Graph   string  `yaml:"graph"`
	Cache   Cache   `yaml:"cache"`
	Routing Routing `yaml:"routing"`
	Log     Log     `yaml:"log"`
}

// Default returns a configuration with every field set to its default.
func Default() Config {
	return Config{
		Cache: Cache{
			Capacity:   DefaultCapacity,
			EvictBatch: DefaultEvictBatch,
			Hash:       DefaultHash,
		},
		Routing: Routing{Alpha: DefaultAlpha},
		Log:     Log{Level: DefaultLogLevel},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	// #nosec G304 -- path is supplied by the operator
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, ErrConfigReadFailed.Error()), "path", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, ErrConfigParseFailed.Error()), "path", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, zerr.With(err, "path", path)
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Cache.Capacity < 2 {
		return zerr.With(ErrInvalidCapacity, "capacity", c.Cache.Capacity)
	}
	if c.Cache.EvictBatch < 1 {
		return zerr.With(ErrInvalidEvictBatch, "evict_batch", c.Cache.EvictBatch)
	}
	if _, ok := pathcache.HasherByName(c.Cache.Hash); !ok {
		return zerr.With(ErrUnknownHash, "hash", c.Cache.Hash)
	}
	if math.IsNaN(c.Routing.Alpha) || c.Routing.Alpha < 0 || c.Routing.Alpha > 1 {
		return zerr.With(ErrInvalidAlpha, "alpha", c.Routing.Alpha)
	}

	return nil
}
