// File: config.go
// Title: Application Configuration
// Description: Loads the mdwx configuration from TOML or YAML files, applies
//              defaults and environment overrides and validates the result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation adapted from the service config
// - 2026-10-18 v0.1.1: YAML support and MDWX_* environment overrides

package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mdwx/core/error"
	"github.com/msto63/mdwx/core/log"
	"github.com/msto63/mdwx/utils/convertx"
	"github.com/msto63/mdwx/utils/cryptox"
)

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "MDWX_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	IO        IOConfig        `toml:"io" yaml:"io"`
	Crypto    CryptoConfig    `toml:"crypto" yaml:"crypto"`
	Random    RandomConfig    `toml:"random" yaml:"random"`
	Execution ExecutionConfig `toml:"execution" yaml:"execution"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// IOConfig holds stream reading settings
type IOConfig struct {
	ChunkSize int `toml:"chunk_size" yaml:"chunk_size"`
}

// CryptoConfig holds digest settings
type CryptoConfig struct {
	Algorithm string `toml:"algorithm" yaml:"algorithm"`
}

// RandomConfig holds shuffle settings. Seed 0 means a fresh seed per run.
type RandomConfig struct {
	Seed uint64 `toml:"seed" yaml:"seed"`
	Fair bool   `toml:"fair" yaml:"fair"`
}

// ExecutionConfig holds settings for parallel work
type ExecutionConfig struct {
	Parallelism int      `toml:"parallelism" yaml:"parallelism"`
	Timeout     Duration `toml:"timeout" yaml:"timeout"`
}

// Duration wraps time.Duration for text-based config formats
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads path as TOML (.toml) or YAML (.yaml, .yml), applies defaults
// and validates the result.
func LoadFile(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, mdwerror.Newf("unsupported config format %q", filepath.Ext(path)).
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load loads path, or the file named by MDWX_CONFIG, or one of the default
// locations. When no file is found the defaults are used. Environment
// overrides are applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = discover()
	}

	cfg := Default()
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func discover() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	candidates := []string{"./mdwx.toml", "./mdwx.yaml", "./configs/mdwx.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "mdwx", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ApplyEnv overrides settings from MDWX_LOG_LEVEL, MDWX_LOG_FORMAT,
// MDWX_CHUNK_SIZE and MDWX_HASH_ALGORITHM. Unset or blank variables are ignored.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("MDWX_LOG_LEVEL"); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv("MDWX_LOG_FORMAT"); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv("MDWX_HASH_ALGORITHM"); v != "" {
		c.Crypto.Algorithm = v
	}

	size, err := convertx.ToInt32(os.Getenv("MDWX_CHUNK_SIZE"))
	if err != nil {
		return mdwerror.Wrap(err, "invalid MDWX_CHUNK_SIZE").WithCode(mdwerror.CodeInvalidConfig)
	}
	if n, ok := size.Get(); ok {
		c.IO.ChunkSize = int(n)
	}
	return nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if c.IO.ChunkSize <= 0 {
		return invalid("io.chunk_size", c.IO.ChunkSize, nil)
	}
	if _, err := cryptox.ParseAlgorithm(c.Crypto.Algorithm); err != nil {
		return invalid("crypto.algorithm", c.Crypto.Algorithm, err)
	}
	if c.Execution.Parallelism <= 0 {
		return invalid("execution.parallelism", c.Execution.Parallelism, nil)
	}
	if c.Execution.Timeout.Duration < 0 {
		return invalid("execution.timeout", c.Execution.Timeout.Duration, nil)
	}
	return nil
}

// Logger builds a logger from the general settings writing to out (stderr
// if nil). Unparsable settings fall back to info/json.
func (c *Config) Logger(out io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.General.LogLevel)
	if err != nil {
		level = log.LevelInfo
	}
	format, _ := log.ParseFormat(c.General.LogFormat)
	return log.New(log.Config{Level: level, Format: format, Output: out, Name: c.General.Name})
}

func invalid(key string, value interface{}, cause error) error {
	return mdwerror.Newf("invalid value for %s: %v", key, value).
		WithCode(mdwerror.CodeInvalidConfig).
		WithCause(cause).
		WithDetail("key", key)
}

func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "mdwx"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.IO.ChunkSize == 0 {
		c.IO.ChunkSize = 4096
	}

	if c.Crypto.Algorithm == "" {
		c.Crypto.Algorithm = string(cryptox.SHA384Algorithm)
	}

	if c.Execution.Parallelism == 0 {
		c.Execution.Parallelism = 4
	}
	if c.Execution.Timeout.Duration == 0 {
		c.Execution.Timeout.Duration = 5 * time.Minute
	}
}
