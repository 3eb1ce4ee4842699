// Package config loads the crawler settings.
//
// Defaults reproduce the fixed layout the crawler has always used
// (data/url_cache, src/region.json, one second between downloads), so a run
// without a config file needs nothing else. A TOML file, when given, only
// overrides the keys it sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultCacheDir              = "data/url_cache"
	defaultOutput                = "src/region.json"
	defaultRequestDelayMS        = 1000
	defaultRequestTimeoutSeconds = 60
	defaultLogLevel              = "info"
	defaultLogFormat             = "console"
)

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config holds every knob the crawler and CLI read.
type Config struct {
	CacheDir              string  `toml:"cache_dir"`
	Output                string  `toml:"output"`
	SQLitePath            string  `toml:"sqlite_path"`
	RequestDelayMS        int     `toml:"request_delay_ms"`
	RequestTimeoutSeconds int     `toml:"request_timeout_seconds"`
	Logging               Logging `toml:"logging"`
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		CacheDir:              defaultCacheDir,
		Output:                defaultOutput,
		RequestDelayMS:        defaultRequestDelayMS,
		RequestTimeoutSeconds: defaultRequestTimeoutSeconds,
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path. An empty
// path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.CacheDir = strings.TrimSpace(c.CacheDir)
	c.Output = strings.TrimSpace(c.Output)
	c.SQLitePath = strings.TrimSpace(c.SQLitePath)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Validate reports every setting that cannot drive a crawl.
func (c Config) Validate() error {
	var errs []error
	if c.CacheDir == "" {
		errs = append(errs, errors.New("cache_dir must not be empty"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output must not be empty"))
	}
	if c.RequestDelayMS < 0 {
		errs = append(errs, fmt.Errorf("request_delay_ms must be >= 0, got %d", c.RequestDelayMS))
	}
	if c.RequestTimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("request_timeout_seconds must be >= 0, got %d", c.RequestTimeoutSeconds))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// RequestDelay is the pause taken before each live download.
func (c Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMS) * time.Millisecond
}

// RequestTimeout bounds a single download; zero means no limit.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
