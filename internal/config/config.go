// Package config provides runtime configuration values for the showcase.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogURL is the catalog endpoint used when none is configured.
const DefaultCatalogURL = "https://dummyjson.com/products"

// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// Config holds configuration knobs for the loader and both front ends.
// MaxProducts is capped at 8, the size of the card palette.
type Config struct {
	CatalogURL      string        `yaml:"catalog_url" toml:"catalog_url"`
	MaxProducts     int           `yaml:"max_products" toml:"max_products"`
	FetchTimeout    time.Duration `yaml:"-" toml:"-"`
	HTTPAddr        string        `yaml:"http_addr" toml:"http_addr"`
	ShutdownTimeout time.Duration `yaml:"-" toml:"-"`
	LogLevel        string        `yaml:"log_level" toml:"log_level"`
	LogOutput       string        `yaml:"log_output" toml:"log_output"`
}

// fileConfig mirrors Config with durations expressed as plain numbers.
type fileConfig struct {
	Config `yaml:",inline"`

	FetchTimeoutMs     int `yaml:"fetch_timeout_ms" toml:"fetch_timeout_ms"`
	ShutdownTimeoutSec int `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		CatalogURL:      DefaultCatalogURL,
		MaxProducts:     8,
		HTTPAddr:        ":8080",
		ShutdownTimeout: 15 * time.Second,
		LogLevel:        "info",
		LogOutput:       "stderr",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvms(key string, def time.Duration) time.Duration {
	ms := atoienv(key, int(def/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}

func durenvs(key string, def time.Duration) time.Duration {
	sec := atoienv(key, int(def/time.Second))
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return overlayEnv(Defaults())
}

// LoadFile reads a YAML or TOML file on top of the defaults and then applies
// the environment, so env vars always win over the file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	base := Defaults()
	fc := fileConfig{
		Config:             base,
		FetchTimeoutMs:     int(base.FetchTimeout / time.Millisecond),
		ShutdownTimeoutSec: int(base.ShutdownTimeout / time.Second),
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg := fc.Config
	cfg.FetchTimeout = time.Duration(fc.FetchTimeoutMs) * time.Millisecond
	cfg.ShutdownTimeout = time.Duration(fc.ShutdownTimeoutSec) * time.Second
	return overlayEnv(cfg), nil
}

func overlayEnv(c Config) Config {
	c.CatalogURL = getenv("CATALOG_URL", c.CatalogURL)
	c.MaxProducts = atoienv("MAX_PRODUCTS", c.MaxProducts)
	c.FetchTimeout = durenvms("FETCH_TIMEOUT_MS", c.FetchTimeout)
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.ShutdownTimeout = durenvs("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
	c.LogLevel = getenv("LOG_LEVEL", c.LogLevel)
	c.LogOutput = getenv("LOG_OUTPUT", c.LogOutput)
	if c.MaxProducts <= 0 || c.MaxProducts > 8 {
		c.MaxProducts = 8
	}
	return c
}
