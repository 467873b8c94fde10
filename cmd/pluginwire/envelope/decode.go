// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/plugin"
	"github.com/bureau-foundation/pluginwire/lib/plugincodec"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

type decodeParams struct {
	wireParams
	cli.JSONOutput
}

// decodeResult is one decoded envelope: its canonical JSON form and the
// domain command it converts to.
type decodeResult struct {
	Envelope json.RawMessage `json:"envelope"`
	Command  string          `json:"command"`
	Value    plugin.Command  `json:"value"`
}

func decodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a wire envelope into a plugin command",
		Description: `Read one envelope in the selected wire format from stdin or a file
argument and convert it into the domain command the host would act on.

Prints the envelope's canonical JSON form and the resulting command. If
the decoder rejects the envelope, the error names the tag and the reason:
an unrecognized tag, a payload on a tag that takes none, a missing or
mismatched payload arm, or a malformed nested value.`,
		Usage:  "pluginwire decode [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Decode a hex protobuf envelope",
				Command:     "echo 0838e00103 | pluginwire decode --hex",
			},
			{
				Description: "Decode a CBOR envelope to JSON",
				Command:     "pluginwire decode -f cbor --json envelope.cbor",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			data, remainingArgs, err := cli.ReadInput(args, false)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return cli.Validation("decode takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			format, err := params.resolveFormat(cfg)
			if err != nil {
				return err
			}
			if params.hexApplies(format) {
				if data, err = cli.DecodeHex(data); err != nil {
					return err
				}
			}

			result, err := decodeEnvelope(data, format, cli.NewCodec(cfg))
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(os.Stdout, result); done {
				return err
			}
			return writeDecodeResult(os.Stdout, result)
		},
	}
}

// decodeEnvelope parses data in format and converts it with codec.
func decodeEnvelope(data []byte, format pluginproto.Format, codec *plugincodec.Codec) (decodeResult, error) {
	envelope, err := parseEnvelope(data, format)
	if err != nil {
		return decodeResult{}, err
	}
	canonical, err := json.Marshal(envelope)
	if err != nil {
		return decodeResult{}, cli.Internal("render envelope: %w", err)
	}
	command, err := codec.Decode(envelope)
	if err != nil {
		return decodeResult{}, cli.Validation("%w", err)
	}
	return decodeResult{
		Envelope: canonical,
		Command:  commandTypeName(command),
		Value:    command,
	}, nil
}

func writeDecodeResult(w io.Writer, result decodeResult) error {
	style := cli.NewStyler(w)
	_, err := fmt.Fprintf(w, "envelope: %s\ncommand:  %#v\n", style.JSON(string(result.Envelope)), result.Value)
	return err
}
