// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/codec"
	"github.com/bureau-foundation/pluginwire/lib/config"
	"github.com/bureau-foundation/pluginwire/lib/plugin"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
	"github.com/tidwall/jsonc"
)

// Commands returns the envelope commands, each a direct child of the
// root command.
func Commands() []*cli.Command {
	return []*cli.Command{
		encodeCommand(),
		decodeCommand(),
		checkCommand(),
		diagCommand(),
		vocabCommand(),
	}
}

// wireParams are shared by commands that read or write one envelope in
// a wire format.
type wireParams struct {
	cli.ConfigParams
	Format string `json:"format" flag:"format,f" desc:"wire format: proto, cbor, or json (default: wire.format from config)"`
	Hex    bool   `json:"hex"    flag:"hex,x"    desc:"hex-encoded binary instead of raw bytes"`
}

// resolveFormat returns the --format value if set, else the configured
// wire format.
func (p *wireParams) resolveFormat(cfg *config.Config) (pluginproto.Format, error) {
	if p.Format == "" {
		return cfg.WireFormat()
	}
	format, err := pluginproto.ParseFormat(p.Format)
	if err != nil {
		return 0, cli.Validation("--format: %w", err)
	}
	return format, nil
}

// hexApplies reports whether --hex affects format. JSON is already text.
func (p *wireParams) hexApplies(format pluginproto.Format) bool {
	return p.Hex && format != pluginproto.FormatJSON
}

// parseJSONEnvelopes parses JSON or JSONC input holding one envelope
// object or an array of them. Each element is returned raw so callers
// can report per-envelope parse failures.
func parseJSONEnvelopes(data []byte) ([]json.RawMessage, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 {
		return nil, cli.Validation("empty input: expected a JSON envelope or an array of envelopes")
	}
	if stripped[0] != '[' {
		return []json.RawMessage{stripped}, nil
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(stripped, &elements); err != nil {
		return nil, cli.Validation("parse envelope array: %w", err)
	}
	return elements, nil
}

// parseEnvelope reads one envelope in format from data.
func parseEnvelope(data []byte, format pluginproto.Format) (*pluginproto.PluginCommand, error) {
	if len(data) == 0 {
		return nil, cli.Validation("empty input: expected a %s envelope", format)
	}
	if format == pluginproto.FormatJSON {
		data = jsonc.ToJSON(data)
	}
	if format == pluginproto.FormatCBOR {
		if err := codec.Valid(data); err != nil {
			return nil, cli.Validation("input is not a single well-formed CBOR item: %w", err)
		}
	}
	var command pluginproto.PluginCommand
	if err := format.Unmarshal(data, &command); err != nil {
		return nil, cli.Validation("parse %s envelope: %w", format, err)
	}
	return &command, nil
}

// commandTypeName names a domain command's type without the package
// qualifier ("GoToTab").
func commandTypeName(command plugin.Command) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", command), "plugin.")
}
