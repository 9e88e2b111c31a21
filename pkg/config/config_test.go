package config

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadOptions(context.Background(), Options{Lookuper: envconfig.MapLookuper(nil)})
	if err != nil {
		t.Fatalf("LoadOptions() error: %v", err)
	}
	if cfg.Theme != "dark" || cfg.Scale != 2 || cfg.Listen != ":8080" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Cache.Backend != BackendFile || cfg.Cache.Dir == "" {
		t.Errorf("cache defaults = %+v", cfg.Cache)
	}
	if !slices.Equal(cfg.Formats, []string{"svg"}) {
		t.Errorf("Formats = %v, want [svg]", cfg.Formats)
	}
}

func TestPrecedence(t *testing.T) {
	yamlFile := writeFile(t, "cansdash.yaml", `
theme: light
width: 900
formats: [svg, png]
cache:
  backend: redis
  ttl: 2h
  redis_addr: cache:6379
`)
	dotenv := writeFile(t, ".env", "CANSDASH_WIDTH=1000\nCANSDASH_LOG_LEVEL=debug\n")
	env := envconfig.MapLookuper(map[string]string{
		"CANSDASH_LOG_LEVEL":      "warn",
		"CANSDASH_CACHE_REDIS_DB": "3",
	})

	cfg, err := LoadOptions(context.Background(), Options{File: yamlFile, DotEnv: dotenv, Lookuper: env})
	if err != nil {
		t.Fatalf("LoadOptions() error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"file over default", cfg.Theme, "light"},
		{"dotenv over file", cfg.Width, 1000.0},
		{"env over dotenv", cfg.LogLevel, "warn"},
		{"default kept", cfg.Listen, ":8080"},
		{"nested file", cfg.Cache.RedisAddr, "cache:6379"},
		{"nested env", cfg.Cache.RedisDB, 3},
		{"duration", cfg.Cache.TTL, 2 * time.Hour},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if !slices.Equal(cfg.Formats, []string{"svg", "png"}) {
		t.Errorf("Formats = %v, want [svg png]", cfg.Formats)
	}
}

func TestTOMLFile(t *testing.T) {
	path := writeFile(t, "cansdash.toml", "theme = \"light\"\nscale = 3.0\n\n[cache]\nbackend = \"none\"\n")
	cfg, err := LoadOptions(context.Background(), Options{File: path, Lookuper: envconfig.MapLookuper(nil)})
	if err != nil {
		t.Fatalf("LoadOptions() error: %v", err)
	}
	if cfg.Theme != "light" || cfg.Scale != 3 || cfg.Cache.Backend != BackendNone {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestEnvFormats(t *testing.T) {
	env := envconfig.MapLookuper(map[string]string{"CANSDASH_FORMATS": "png,pdf"})
	cfg, err := LoadOptions(context.Background(), Options{Lookuper: env})
	if err != nil {
		t.Fatalf("LoadOptions() error: %v", err)
	}
	if !slices.Equal(cfg.Formats, []string{"png", "pdf"}) {
		t.Errorf("Formats = %v, want [png pdf]", cfg.Formats)
	}
}

func TestLoadErrors(t *testing.T) {
	none := envconfig.MapLookuper(nil)
	tests := []struct {
		name string
		opts Options
		code cerrors.Code
	}{
		{"missing file", Options{File: filepath.Join(t.TempDir(), "nope.yaml")}, cerrors.ErrCodeFileNotFound},
		{"bad extension", Options{File: writeFile(t, "c.ini", "x=1")}, cerrors.ErrCodeInvalidFormat},
		{"bad yaml", Options{File: writeFile(t, "c.yaml", "theme: [")}, cerrors.ErrCodeInvalidConfig},
		{"bad theme", Options{File: writeFile(t, "c.yaml", "theme: neon")}, cerrors.ErrCodeInvalidTheme},
		{"bad backend", Options{File: writeFile(t, "c.yaml", "cache: {backend: memcached}")}, cerrors.ErrCodeInvalidConfig},
		{
			"bad env value",
			Options{Lookuper: envconfig.MapLookuper(map[string]string{"CANSDASH_WIDTH": "wide"})},
			cerrors.ErrCodeInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opts.Lookuper == nil {
				tt.opts.Lookuper = none
			}
			_, err := LoadOptions(context.Background(), tt.opts)
			if !cerrors.Is(err, tt.code) {
				t.Errorf("LoadOptions() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestMissingDotEnvIgnored(t *testing.T) {
	opts := Options{DotEnv: filepath.Join(t.TempDir(), ".env"), Lookuper: envconfig.MapLookuper(nil)}
	if _, err := LoadOptions(context.Background(), opts); err != nil {
		t.Errorf("LoadOptions() error = %v, want nil", err)
	}
}
