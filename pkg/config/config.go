// Package config loads cansdash settings.
//
// Sources are applied in order, each overriding the previous:
//
//  1. built-in defaults ([Default])
//  2. a YAML or TOML file
//  3. a .env file
//  4. CANSDASH_* environment variables
//
// A variable set in the real environment wins over the same variable in
// .env. Nested cache settings use the CANSDASH_CACHE_ prefix, e.g.
// CANSDASH_CACHE_REDIS_ADDR.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/styles"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "CANSDASH_"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the complete set of settings. Zero width or height means the
// view's own default size.
type Config struct {
	Theme   string   `yaml:"theme" toml:"theme" env:"THEME"`
	Width   float64  `yaml:"width" toml:"width" env:"WIDTH"`
	Height  float64  `yaml:"height" toml:"height" env:"HEIGHT"`
	Scale   float64  `yaml:"scale" toml:"scale" env:"SCALE"`
	Formats []string `yaml:"formats" toml:"formats" env:"FORMATS"`
	// DataFile is a dataset to draw instead of the bundled sample.
	DataFile string `yaml:"data" toml:"data" env:"DATA"`

	Listen   string `yaml:"listen" toml:"listen" env:"LISTEN"`
	LogLevel string `yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`

	Cache Cache `yaml:"cache" toml:"cache" env:", prefix=CACHE_"`
}

// Cache selects and configures the artifact cache.
type Cache struct {
	Backend string        `yaml:"backend" toml:"backend" env:"BACKEND"`
	Dir     string        `yaml:"dir" toml:"dir" env:"DIR"`
	TTL     time.Duration `yaml:"ttl" toml:"ttl" env:"TTL"`

	RedisAddr     string `yaml:"redis_addr" toml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" toml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" toml:"redis_db" env:"REDIS_DB"`
	RedisPrefix   string `yaml:"redis_prefix" toml:"redis_prefix" env:"REDIS_PREFIX"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:    "dark",
		Scale:    2,
		Formats:  []string{"svg"},
		Listen:   ":8080",
		LogLevel: "info",
		Cache: Cache{
			Backend:     BackendFile,
			Dir:         defaultCacheDir(),
			TTL:         7 * 24 * time.Hour,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "cansdash:",
		},
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "cansdash")
	}
	return filepath.Join(os.TempDir(), "cansdash-cache")
}

// Options controls where [LoadOptions] reads from.
type Options struct {
	// File is a .yaml, .yml or .toml file. Empty skips the file.
	File string
	// DotEnv is a .env file. A missing file is skipped.
	DotEnv string
	// Lookuper reads the environment; nil means the process environment.
	Lookuper envconfig.Lookuper
}

// Load reads path (if not empty), ./.env and the environment.
func Load(ctx context.Context, path string) (*Config, error) {
	return LoadOptions(ctx, Options{File: path, DotEnv: ".env"})
}

// LoadOptions applies every source in order and validates the result.
func LoadOptions(ctx context.Context, opts Options) (*Config, error) {
	cfg := Default()

	if opts.File != "" {
		if err := readFile(opts.File, &cfg); err != nil {
			return nil, err
		}
	}

	env := opts.Lookuper
	if env == nil {
		env = envconfig.OsLookuper()
	}
	if opts.DotEnv != "" {
		vars, err := godotenv.Read(opts.DotEnv)
		switch {
		case err == nil:
			env = envconfig.MultiLookuper(env, envconfig.MapLookuper(vars))
		case !os.IsNotExist(err):
			return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "read %s", opts.DotEnv)
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:           &cfg,
		Lookuper:         envconfig.PrefixLookuper(EnvPrefix, env),
		DefaultOverwrite: true,
	}); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, cfg)
	case ".toml":
		err = toml.Unmarshal(raw, cfg)
	default:
		return cerrors.New(cerrors.ErrCodeInvalidFormat, "config file %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if _, err := styles.ByName(c.Theme); err != nil {
		return err
	}
	if c.Width < 0 || c.Height < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "size must not be negative, got %gx%g", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "scale must be positive, got %g", c.Scale)
	}
	backends := []string{BackendFile, BackendRedis, BackendNone}
	if !slices.Contains(backends, c.Cache.Backend) {
		return cerrors.New(cerrors.ErrCodeInvalidConfig,
			"unknown cache backend %q (want %s)", c.Cache.Backend, strings.Join(backends, ", "))
	}
	if c.Cache.Backend == BackendFile && c.Cache.Dir == "" {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "file cache needs a directory")
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "redis cache needs an address")
	}
	return nil
}
