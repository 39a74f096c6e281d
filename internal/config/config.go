// Package config loads scholarnet settings from a config file, a .env file,
// and SCHOLARNET_* environment variables, in increasing precedence.
// Command-line flags override all of them.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/scholarnet/pkg/cache"
	"github.com/matzehuels/scholarnet/pkg/integrations"
	"github.com/matzehuels/scholarnet/pkg/integrations/dblp"
	"github.com/matzehuels/scholarnet/pkg/pipeline"
	"github.com/matzehuels/scholarnet/pkg/render/network"
)

const (
	// Dir is the directory name under XDG_CONFIG_HOME.
	Dir = "scholarnet"
	// File is the default config file name.
	File = "config.toml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SCHOLARNET_"
)

// Config is the effective configuration.
type Config struct {
	DBLPURL   string       `toml:"dblp_url" yaml:"dblp_url"`
	RateLimit float64      `toml:"rate_limit" yaml:"rate_limit"`
	Cache     CacheConfig  `toml:"cache" yaml:"cache"`
	Render    RenderConfig `toml:"render" yaml:"render"`
	Server    ServerConfig `toml:"server" yaml:"server"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend       string   `toml:"backend" yaml:"backend"`
	Dir           string   `toml:"dir,omitempty" yaml:"dir,omitempty"`
	TTL           Duration `toml:"ttl" yaml:"ttl"`
	RedisURL      string   `toml:"redis_url,omitempty" yaml:"redis_url,omitempty"`
	MongoURI      string   `toml:"mongo_uri,omitempty" yaml:"mongo_uri,omitempty"`
	MongoDatabase string   `toml:"mongo_database,omitempty" yaml:"mongo_database,omitempty"`
}

// RenderConfig holds default render options.
type RenderConfig struct {
	Height    string `toml:"height" yaml:"height"`
	Width     string `toml:"width" yaml:"width"`
	BgColor   string `toml:"bg_color" yaml:"bg_color"`
	FontColor string `toml:"font_color" yaml:"font_color"`
	Output    string `toml:"output" yaml:"output"`
}

// ServerConfig configures `scholarnet serve`.
type ServerConfig struct {
	Addr     string `toml:"addr" yaml:"addr"`
	StoreDir string `toml:"store_dir,omitempty" yaml:"store_dir,omitempty"`
}

// Duration is a time.Duration written as a string such as "24h".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	r := network.DefaultOptions()
	return Config{
		DBLPURL:   dblp.DefaultBaseURL,
		RateLimit: integrations.DefaultRateLimit,
		Cache: CacheConfig{
			Backend:       cache.BackendFile,
			TTL:           Duration{cache.TTLHTTP},
			MongoDatabase: cache.DefaultMongoDatabase,
		},
		Render: RenderConfig{
			Height:    r.Height,
			Width:     r.Width,
			BgColor:   r.BgColor,
			FontColor: r.FontColor,
			Output:    pipeline.DefaultOutput,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Path returns the default config file path, honoring XDG_CONFIG_HOME.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, Dir, File)
}

// Load reads the config file at path over the defaults and applies
// environment overrides. An empty path means [Path]; a missing default file
// is not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = Path()
	}
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv loads .env from the working directory into the process
// environment without overriding variables already set. A missing file is
// ignored.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	str("DBLP_URL", &cfg.DBLPURL)
	str("CACHE_BACKEND", &cfg.Cache.Backend)
	str("CACHE_DIR", &cfg.Cache.Dir)
	str("REDIS_URL", &cfg.Cache.RedisURL)
	str("MONGO_URI", &cfg.Cache.MongoURI)
	str("MONGO_DATABASE", &cfg.Cache.MongoDatabase)
	str("ADDR", &cfg.Server.Addr)

	if v, ok := lookup(EnvPrefix + "RATE_LIMIT"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sRATE_LIMIT: %w", EnvPrefix, err)
		}
		cfg.RateLimit = f
	}
	if v, ok := lookup(EnvPrefix + "CACHE_TTL"); ok && v != "" {
		if err := cfg.Cache.TTL.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sCACHE_TTL: %w", EnvPrefix, err)
		}
	}
	return nil
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if !slices.Contains(cache.Backends, c.Cache.Backend) {
		return fmt.Errorf("cache.backend: unknown backend %q (valid: %s)",
			c.Cache.Backend, strings.Join(cache.Backends, ", "))
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit: must not be negative, got %g", c.RateLimit)
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("cache.ttl: must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}

// CacheOptions returns the options for [cache.Open].
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:       c.Cache.Backend,
		Dir:           c.Cache.Dir,
		RedisURL:      c.Cache.RedisURL,
		MongoURI:      c.Cache.MongoURI,
		MongoDatabase: c.Cache.MongoDatabase,
	}
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
