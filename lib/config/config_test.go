// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/pluginwire/lib/capture"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
	"github.com/bureau-foundation/pluginwire/lib/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, "", "pluginwire.yaml", content)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}

	if cfg.Wire.Format != "proto" {
		t.Errorf("expected format=proto, got %s", cfg.Wire.Format)
	}

	if cfg.Wire.StrictNumericRange || cfg.Wire.StrictPermissions {
		t.Error("expected lenient decoding for development")
	}

	if cfg.Capture.Compression != "zstd" {
		t.Errorf("expected compression=zstd, got %s", cfg.Capture.Compression)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_RequiresConfigVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when PLUGINWIRE_CONFIG not set, got nil")
	}

	expectedMsg := "PLUGINWIRE_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithConfigVariable(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging
wire:
  format: cbor
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}

	format, err := cfg.WireFormat()
	if err != nil || format != pluginproto.FormatCBOR {
		t.Errorf("WireFormat() = %v, %v, want cbor", format, err)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging

wire:
  format: json
  strict_numeric_range: true

capture:
  compression: lz4
  directory: /custom/captures

log:
  level: debug
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Wire.Format != "json" {
		t.Errorf("expected format=json, got %s", cfg.Wire.Format)
	}

	if !cfg.Wire.StrictNumericRange {
		t.Error("expected strict_numeric_range=true")
	}

	if cfg.Wire.StrictPermissions {
		t.Error("expected strict_permissions=false")
	}

	compression, err := cfg.CaptureCompression()
	if err != nil || compression != capture.CompressionLZ4 {
		t.Errorf("CaptureCompression() = %v, %v, want lz4", compression, err)
	}

	if cfg.Capture.Directory != "/custom/captures" {
		t.Errorf("expected directory=/custom/captures, got %s", cfg.Capture.Directory)
	}

	level, err := cfg.LogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, %v, want debug", level, err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile of a missing file succeeded")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	configPath := writeConfig(t, `
environment: production

wire:
  format: proto

capture:
  compression: none

production:
  wire:
    format: cbor
    strict_permissions: true
  capture:
    directory: /prod/captures
  log:
    level: warn
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Wire.Format != "cbor" {
		t.Errorf("expected format=cbor from production override, got %s", cfg.Wire.Format)
	}

	if !cfg.Wire.StrictPermissions {
		t.Error("expected strict_permissions=true from production override")
	}

	// The override section sets the strict flags explicitly.
	if cfg.Wire.StrictNumericRange {
		t.Error("expected strict_numeric_range=false from production override")
	}

	if cfg.Capture.Compression != "none" {
		t.Errorf("expected compression=none from base, got %s", cfg.Capture.Compression)
	}

	if cfg.Capture.Directory != "/prod/captures" {
		t.Errorf("expected directory=/prod/captures, got %s", cfg.Capture.Directory)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("expected level=warn, got %s", cfg.Log.Level)
	}
}

func TestProductionDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment: production\n"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if !cfg.Wire.StrictNumericRange || !cfg.Wire.StrictPermissions {
		t.Errorf("expected strict decoding in production, got %+v", cfg.Wire)
	}
}

func TestEnvVarsDoNotOverride(t *testing.T) {
	t.Setenv("PLUGINWIRE_FORMAT", "json")
	t.Setenv("PLUGINWIRE_ENVIRONMENT", "staging")

	cfg, err := LoadFile(writeConfig(t, `
environment: development
wire:
  format: cbor
`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Environment != Development {
		t.Errorf("expected environment=development from file, got %s (env vars should not override)", cfg.Environment)
	}

	if cfg.Wire.Format != "cbor" {
		t.Errorf("expected format=cbor from file, got %s (env vars should not override)", cfg.Wire.Format)
	}
}

func TestCaptureDirectoryExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg, err := LoadFile(writeConfig(t, `
capture:
  directory: ${HOME}/captures/${CAPTURE_SET:-baseline}
`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Capture.Directory != "/home/tester/captures/baseline" {
		t.Errorf("expected expanded directory, got %s", cfg.Capture.Directory)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/pluginwire",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/pluginwire",
		},
		{
			input:    "${PLUGINWIRE_TEST_MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "invalid environment",
			modify: func(c *Config) {
				c.Environment = "invalid"
			},
			wantErr: true,
		},
		{
			name: "unknown format",
			modify: func(c *Config) {
				c.Wire.Format = "xml"
			},
			wantErr: true,
		},
		{
			name: "unknown compression",
			modify: func(c *Config) {
				c.Capture.Compression = "gzip"
			},
			wantErr: true,
		},
		{
			name: "empty capture directory",
			modify: func(c *Config) {
				c.Capture.Directory = ""
			},
			wantErr: true,
		},
		{
			name: "unknown log level",
			modify: func(c *Config) {
				c.Log.Level = "verbose"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCapturePath(t *testing.T) {
	cfg := Default()
	cfg.Capture.Directory = "/var/captures"

	if got := cfg.CapturePath("session.pwc"); got != "/var/captures/session.pwc" {
		t.Errorf("CapturePath(bare name) = %s", got)
	}
	if got := cfg.CapturePath("./local.pwc"); got != "./local.pwc" {
		t.Errorf("CapturePath(relative path) = %s", got)
	}
	if got := cfg.CapturePath("/tmp/x.pwc"); got != "/tmp/x.pwc" {
		t.Errorf("CapturePath(absolute path) = %s", got)
	}
}

func TestEnsureCaptureDirectory(t *testing.T) {
	cfg := Default()
	cfg.Capture.Directory = filepath.Join(t.TempDir(), "pluginwire", "captures")

	if err := cfg.EnsureCaptureDirectory(); err != nil {
		t.Fatalf("EnsureCaptureDirectory failed: %v", err)
	}

	info, err := os.Stat(cfg.Capture.Directory)
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", cfg.Capture.Directory)
	}
}
