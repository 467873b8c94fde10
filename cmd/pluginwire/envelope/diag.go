// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/codec"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

type diagParams struct {
	Format string `json:"format" flag:"format,f" desc:"input format: proto, cbor, or json" default:"cbor"`
	Hex    bool   `json:"hex"    flag:"hex,x"    desc:"treat input as hex-encoded binary"`
}

func diagCommand() *cli.Command {
	var params diagParams

	return &cli.Command{
		Name:    "diag",
		Summary: "Show an envelope in CBOR diagnostic notation",
		Description: `Write RFC 8949 diagnostic notation for envelopes on stdin or in a file.

CBOR input is treated as a sequence (RFC 8742): each item is printed on its
own line. Proto and JSON input holds a single envelope, which is converted
to its CBOR form first. The CBOR envelope is an integer-keyed map:

  {1: 56, 2: 28, 3: 3}     GoToTab with go_to_tab_payload 3
  {1: 16}                  HideSelf`,
		Usage:  "pluginwire diag [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Inspect a CBOR envelope",
				Command:     "pluginwire diag envelope.cbor",
			},
			{
				Description: "Inspect the CBOR form of a JSON envelope",
				Command:     `echo '{"name":"GoToTab","go_to_tab_payload":3}' | pluginwire diag -f json`,
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			format, err := pluginproto.ParseFormat(params.Format)
			if err != nil {
				return cli.Validation("--format: %w", err)
			}
			data, remainingArgs, err := cli.ReadInput(args, params.Hex && format != pluginproto.FormatJSON)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return cli.Validation("diag takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			return diagEnvelopes(data, format, os.Stdout)
		},
	}
}

// diagEnvelopes writes one line of diagnostic notation per envelope.
func diagEnvelopes(data []byte, format pluginproto.Format, w io.Writer) error {
	if len(data) == 0 {
		return cli.Validation("empty input: expected a %s envelope", format)
	}

	if format != pluginproto.FormatCBOR {
		envelope, err := parseEnvelope(data, format)
		if err != nil {
			return err
		}
		if data, err = codec.Marshal(envelope); err != nil {
			return cli.Internal("encode CBOR envelope: %w", err)
		}
	}

	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return cli.Validation("diagnose CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}
	return nil
}
