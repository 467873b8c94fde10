// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/plugincodec"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

type encodeParams struct {
	wireParams
	AllowInvalid bool `json:"allow_invalid" flag:"allow-invalid" desc:"encode envelopes the decoder would reject"`
}

func encodeCommand() *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Convert a JSON envelope to a wire format",
		Description: `Read one plugin command envelope as JSON (comments and trailing commas
allowed) from stdin or a file argument, and write it in the selected wire
format to stdout.

The JSON form names the tag and carries the payload under its arm's field
name:

  {"name": "GoToTab", "go_to_tab_payload": 3}
  {"name": "OpenFile", "open_file_payload": {"file_to_open": {"path": "a.txt"}}}
  {"name": "HideSelf"}

Before encoding, the envelope is checked by the same decoder the host uses,
honoring the wire.strict_* settings from the config. Envelopes it would
reject are refused unless --allow-invalid is given, which is how negative
test vectors are produced.

Proto and CBOR output is binary; use --hex for a hex line instead.`,
		Usage:  "pluginwire encode [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Encode an envelope as hex protobuf",
				Command:     `echo '{"name":"GoToTab","go_to_tab_payload":3}' | pluginwire encode --hex`,
			},
			{
				Description: "Produce a mismatched-payload vector as CBOR",
				Command:     `echo '{"name":"HideSelf","go_to_tab_payload":1}' | pluginwire encode -f cbor --allow-invalid > bad.cbor`,
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			data, remainingArgs, err := cli.ReadInput(args, false)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return cli.Validation("encode takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			format, err := params.resolveFormat(cfg)
			if err != nil {
				return err
			}

			checker := cli.NewCodec(cfg)
			if params.AllowInvalid {
				checker = nil
			}
			encoded, err := encodeEnvelope(data, format, checker)
			if err != nil {
				return err
			}
			logger.Debug("encoded envelope", "format", format, "bytes", len(encoded))
			if format == pluginproto.FormatJSON {
				encoded = append(encoded, '\n')
			}
			return cli.WriteOutput(os.Stdout, encoded, params.hexApplies(format))
		},
	}
}

// encodeEnvelope parses one JSON envelope and serializes it in format.
// A non-nil checker must accept the envelope first.
func encodeEnvelope(data []byte, format pluginproto.Format, checker *plugincodec.Codec) ([]byte, error) {
	elements, err := parseJSONEnvelopes(data)
	if err != nil {
		return nil, err
	}
	if len(elements) != 1 {
		return nil, cli.Validation("encode takes exactly one envelope, got %d; use \"capture write\" for batches", len(elements))
	}

	var command pluginproto.PluginCommand
	if err := json.Unmarshal(elements[0], &command); err != nil {
		return nil, cli.Validation("parse envelope: %w", err)
	}
	if checker != nil {
		if _, err := checker.Decode(&command); err != nil {
			return nil, cli.Validation("%w (use --allow-invalid to encode it anyway)", err)
		}
	}

	encoded, err := format.Marshal(&command)
	if err != nil {
		return nil, cli.Internal("encode %s envelope: %w", format, err)
	}
	return encoded, nil
}
