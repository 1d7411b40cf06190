package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/mdwx/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"30s", 30 * time.Second, false},
		{"5m", 5 * time.Minute, false},
		{"1h", time.Hour, false},
		{"1h30m", 90 * time.Minute, false},
		{"invalid", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for input %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Duration != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, d.Duration)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m0s"},
		{time.Hour, "1h0m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			d := Duration{tt.duration}
			result, err := d.MarshalText()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, string(result))
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "mdwx" {
		t.Errorf("expected name mdwx, got %q", cfg.General.Name)
	}
	if cfg.IO.ChunkSize != 4096 {
		t.Errorf("expected chunk size 4096, got %d", cfg.IO.ChunkSize)
	}
	if cfg.Crypto.Algorithm != "sha384" {
		t.Errorf("expected sha384, got %q", cfg.Crypto.Algorithm)
	}
	if cfg.Execution.Timeout.Duration != 5*time.Minute {
		t.Errorf("expected 5m timeout, got %v", cfg.Execution.Timeout.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "mdwx.toml",
			content: `
[general]
log_level = "debug"

[io]
chunk_size = 8192

[crypto]
algorithm = "sha512"

[random]
seed = 42
fair = true

[execution]
parallelism = 2
timeout = "30s"
`,
		},
		{
			name: "yaml",
			file: "mdwx.yaml",
			content: `
general:
  log_level: debug
io:
  chunk_size: 8192
crypto:
  algorithm: sha512
random:
  seed: 42
  fair: true
execution:
  parallelism: 2
  timeout: 30s
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFile(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.General.LogLevel != "debug" {
				t.Errorf("log level = %q", cfg.General.LogLevel)
			}
			if cfg.General.Name != "mdwx" {
				t.Errorf("name default not applied: %q", cfg.General.Name)
			}
			if cfg.IO.ChunkSize != 8192 {
				t.Errorf("chunk size = %d", cfg.IO.ChunkSize)
			}
			if cfg.Crypto.Algorithm != "sha512" {
				t.Errorf("algorithm = %q", cfg.Crypto.Algorithm)
			}
			if cfg.Random.Seed != 42 || !cfg.Random.Fair {
				t.Errorf("random = %+v", cfg.Random)
			}
			if cfg.Execution.Parallelism != 2 {
				t.Errorf("parallelism = %d", cfg.Execution.Parallelism)
			}
			if cfg.Execution.Timeout.Duration != 30*time.Second {
				t.Errorf("timeout = %v", cfg.Execution.Timeout.Duration)
			}
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code mdwerror.Code
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.toml") }, mdwerror.CodeConfigError},
		{"unknown extension", func(t *testing.T) string { return writeFile(t, "mdwx.ini", "x=1") }, mdwerror.CodeConfigError},
		{"malformed toml", func(t *testing.T) string { return writeFile(t, "mdwx.toml", "[io\nchunk_size=") }, mdwerror.CodeConfigError},
		{"bad algorithm", func(t *testing.T) string {
			return writeFile(t, "mdwx.toml", "[crypto]\nalgorithm = \"md5\"\n")
		}, mdwerror.CodeInvalidConfig},
		{"negative chunk size", func(t *testing.T) string {
			return writeFile(t, "mdwx.yaml", "io:\n  chunk_size: -1\n")
		}, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("expected code %s, got %s", tt.code, mdwerror.GetCode(err))
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigPath, writeFile(t, "mdwx.toml", "[general]\nlog_level = \"warn\"\n"))
	t.Setenv("MDWX_LOG_FORMAT", "json")
	t.Setenv("MDWX_CHUNK_SIZE", " 1024 ")
	t.Setenv("MDWX_HASH_ALGORITHM", "sha256")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("log level = %q", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("log format = %q", cfg.General.LogFormat)
	}
	if cfg.IO.ChunkSize != 1024 {
		t.Errorf("chunk size = %d", cfg.IO.ChunkSize)
	}
	if cfg.Crypto.Algorithm != "sha256" {
		t.Errorf("algorithm = %q", cfg.Crypto.Algorithm)
	}
}

func TestApplyEnv_InvalidChunkSize(t *testing.T) {
	t.Setenv("MDWX_CHUNK_SIZE", "lots")

	err := Default().ApplyEnv()
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"log level", func(c *Config) { c.General.LogLevel = "loud" }},
		{"log format", func(c *Config) { c.General.LogFormat = "xml" }},
		{"chunk size", func(c *Config) { c.IO.ChunkSize = 0 }},
		{"algorithm", func(c *Config) { c.Crypto.Algorithm = "md5" }},
		{"parallelism", func(c *Config) { c.Execution.Parallelism = -1 }},
		{"timeout", func(c *Config) { c.Execution.Timeout.Duration = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG, got %v", err)
			}
		})
	}
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.General.LogLevel = "debug"
	cfg.General.LogFormat = "json"

	logger := cfg.Logger(&buf)
	logger.Debug("loaded")

	out := buf.String()
	if !strings.Contains(out, `"msg":"loaded"`) {
		t.Errorf("expected json entry, got %q", out)
	}
	if !strings.Contains(out, `"logger":"mdwx"`) {
		t.Errorf("expected logger name field, got %q", out)
	}
}
