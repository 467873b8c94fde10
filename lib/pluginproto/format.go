// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pluginproto

import (
	"encoding/json"
	"fmt"

	"github.com/bureau-foundation/pluginwire/lib/codec"
)

// Format selects one of the envelope's byte serializations. Values are
// stored in capture file headers; do not renumber.
type Format uint8

const (
	FormatProto Format = 0
	FormatCBOR  Format = 1
	FormatJSON  Format = 2
)

func (f Format) String() string {
	switch f {
	case FormatProto:
		return "proto"
	case FormatCBOR:
		return "cbor"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// ParseFormat parses "proto", "cbor", or "json".
func ParseFormat(name string) (Format, error) {
	switch name {
	case "proto":
		return FormatProto, nil
	case "cbor":
		return FormatCBOR, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown wire format %q (expected proto, cbor, or json)", name)
	}
}

// Valid reports whether f is one of the defined formats.
func (f Format) Valid() bool { return f <= FormatJSON }

func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("unknown wire format %d", uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Marshal serializes the envelope in format f.
func (f Format) Marshal(command *PluginCommand) ([]byte, error) {
	switch f {
	case FormatProto:
		return command.MarshalProto()
	case FormatCBOR:
		return codec.Marshal(command)
	case FormatJSON:
		return json.Marshal(command)
	default:
		return nil, fmt.Errorf("unknown wire format %d", uint8(f))
	}
}

// Unmarshal parses data in format f into command, replacing its
// contents.
func (f Format) Unmarshal(data []byte, command *PluginCommand) error {
	switch f {
	case FormatProto:
		return command.UnmarshalProto(data)
	case FormatCBOR:
		return codec.Unmarshal(data, command)
	case FormatJSON:
		return json.Unmarshal(data, command)
	default:
		return fmt.Errorf("unknown wire format %d", uint8(f))
	}
}
