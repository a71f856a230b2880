package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up in the working
// directory when --config is not given.
const DefaultConfigFile = ".linky.yml"

// Config holds runtime options for building the app.
type Config struct {
	LinkDir      string `yaml:"link_dir"`       // where markdown link files go
	ImageDir     string `yaml:"image_dir"`      // where thumbnails go
	ImageWebRoot string `yaml:"image_web_root"` // path the site serves images under
	UserAgent    string `yaml:"user_agent"`
	Timeout      string `yaml:"timeout"`         // per-request timeout, e.g. "30s"
	MaxFetchSize int64  `yaml:"max_fetch_bytes"` // response size cap
}

// Default returns the stock configuration for a links site checkout.
func Default() Config {
	return Config{
		LinkDir:      "_links",
		ImageDir:     "images",
		ImageWebRoot: "/images",
		UserAgent:    "linky (+https://github.com/paulroub/linky)",
		Timeout:      "30s",
		MaxFetchSize: 4 << 20,
	}
}

// Load reads the yaml config at path over the defaults. A missing file
// is not an error: you get the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// RequestTimeout parses the configured timeout.
func (c Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}
