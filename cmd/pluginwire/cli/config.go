// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bureau-foundation/pluginwire/lib/config"
	"github.com/bureau-foundation/pluginwire/lib/plugincodec"
)

// ConfigParams adds --config to a command's parameter struct.
type ConfigParams struct {
	ConfigPath string `json:"config" flag:"config" desc:"path to pluginwire.yaml (default: $PLUGINWIRE_CONFIG, else built-in defaults)"`
}

// LoadConfig loads and validates the configuration. The file named by
// --config wins, then the file named by PLUGINWIRE_CONFIG. With
// neither, the built-in development defaults apply. The configured log
// level is applied to command loggers.
func (p *ConfigParams) LoadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case p.ConfigPath != "":
		cfg, err = config.LoadFile(p.ConfigPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, NotFound("load config: %w", err)
	}
	if err != nil {
		return nil, Validation("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, Validation("invalid config: %w", err)
	}

	level, _ := cfg.LogLevel()
	SetLogLevel(level)
	return cfg, nil
}

// NewCodec builds the envelope codec the configuration asks for.
func NewCodec(cfg *config.Config) *plugincodec.Codec {
	var options []plugincodec.Option
	if cfg.Wire.StrictNumericRange {
		options = append(options, plugincodec.WithStrictNumericRange())
	}
	if cfg.Wire.StrictPermissions {
		options = append(options, plugincodec.WithStrictPermissions())
	}
	return plugincodec.New(options...)
}
