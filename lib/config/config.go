// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/bureau-foundation/pluginwire/lib/capture"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config file
// path from.
const EnvironmentVariable = "PLUGINWIRE_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the configuration for pluginwire tooling.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Wire configures envelope serialization and decoding.
	Wire WireConfig `yaml:"wire"`

	// Capture configures capture files.
	Capture CaptureConfig `yaml:"capture"`

	// Log configures command logging.
	Log LogConfig `yaml:"log"`

	// Per-environment overrides, applied after the base config is
	// loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Wire    *WireConfig    `yaml:"wire,omitempty"`
	Capture *CaptureConfig `yaml:"capture,omitempty"`
	Log     *LogConfig     `yaml:"log,omitempty"`
}

// WireConfig configures envelope serialization and decoding.
type WireConfig struct {
	// Format is the default serialization: proto, cbor, or json.
	// Default: proto
	Format string `yaml:"format"`

	// StrictNumericRange rejects tab indexes and pane ids that do not
	// survive the int32/uint32 conversion.
	// Default: false (development), true (production)
	StrictNumericRange bool `yaml:"strict_numeric_range"`

	// StrictPermissions fails permission requests that carry unknown
	// permission codes instead of dropping the codes.
	// Default: false (development), true (production)
	StrictPermissions bool `yaml:"strict_permissions"`
}

// CaptureConfig configures capture files.
type CaptureConfig struct {
	// Compression is the frame compression for new captures: none,
	// lz4, or zstd.
	// Default: zstd
	Compression string `yaml:"compression"`

	// Directory is where captures named without a path are stored.
	// Default: ${HOME}/.cache/pluginwire/captures
	Directory string `yaml:"directory"`
}

// LogConfig configures command logging.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the default configuration.
// These defaults are used as a base before loading the config file.
// They exist primarily to ensure all fields have sensible zero-values,
// not as a fallback - the config file is required.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Environment: Development,
		Wire: WireConfig{
			Format: pluginproto.FormatProto.String(),
		},
		Capture: CaptureConfig{
			Compression: capture.CompressionZstd.String(),
			Directory:   filepath.Join(homeDir, ".cache", "pluginwire", "captures"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the PLUGINWIRE_CONFIG environment
// variable.
//
// There are no fallbacks or defaults - if PLUGINWIRE_CONFIG is not
// set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your pluginwire.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables
// do not override config values. The only expansion performed is
// ${HOME} and similar variables in the capture directory.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: reject anything the codec would
		// otherwise reinterpret or drop.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Wire: &WireConfig{
					StrictNumericRange: true,
					StrictPermissions:  true,
				},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Wire != nil {
		if overrides.Wire.Format != "" {
			c.Wire.Format = overrides.Wire.Format
		}
		// Bools are always applied from an override section.
		c.Wire.StrictNumericRange = overrides.Wire.StrictNumericRange
		c.Wire.StrictPermissions = overrides.Wire.StrictPermissions
	}

	if overrides.Capture != nil {
		if overrides.Capture.Compression != "" {
			c.Capture.Compression = overrides.Capture.Compression
		}
		if overrides.Capture.Directory != "" {
			c.Capture.Directory = overrides.Capture.Directory
		}
	}

	if overrides.Log != nil && overrides.Log.Level != "" {
		c.Log.Level = overrides.Log.Level
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Capture.Directory = expandVars(c.Capture.Directory, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if _, err := c.WireFormat(); err != nil {
		errs = append(errs, fmt.Errorf("wire.format: %w", err))
	}

	if _, err := c.CaptureCompression(); err != nil {
		errs = append(errs, fmt.Errorf("capture.compression: %w", err))
	}

	if c.Capture.Directory == "" {
		errs = append(errs, fmt.Errorf("capture.directory is required"))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// WireFormat returns the parsed wire.format.
func (c *Config) WireFormat() (pluginproto.Format, error) {
	return pluginproto.ParseFormat(c.Wire.Format)
}

// CaptureCompression returns the parsed capture.compression.
func (c *Config) CaptureCompression() (capture.Compression, error) {
	return capture.ParseCompression(c.Capture.Compression)
}

// LogLevel returns the parsed log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, err
	}
	return level, nil
}

// CapturePath resolves a capture name against the capture directory.
// Names containing a path separator are returned unchanged.
func (c *Config) CapturePath(name string) string {
	if filepath.Base(name) != name {
		return name
	}
	return filepath.Join(c.Capture.Directory, name)
}

// EnsureCaptureDirectory creates the capture directory if it doesn't
// exist.
func (c *Config) EnsureCaptureDirectory() error {
	if c.Capture.Directory == "" {
		return nil
	}
	if err := os.MkdirAll(c.Capture.Directory, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Capture.Directory, err)
	}
	return nil
}
