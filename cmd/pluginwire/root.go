// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	capturecmd "github.com/bureau-foundation/pluginwire/cmd/pluginwire/capture"
	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/envelope"
	"github.com/bureau-foundation/pluginwire/lib/version"
)

type versionParams struct {
	Short bool `json:"short" flag:"short" desc:"print only the version number"`
}

// root builds the pluginwire command tree.
func root() *cli.Command {
	subcommands := envelope.Commands()
	subcommands = append(subcommands, capturecmd.Command(), versionCommand())

	return &cli.Command{
		Name: "pluginwire",
		Description: `pluginwire: plugin command envelope codec.

Convert plugin command envelopes between the protobuf, CBOR, and JSON wire
formats, check them against the command vocabulary, and record or replay
sequences of envelopes as capture files.`,
		Subcommands: subcommands,
		Examples: []cli.Example{
			{
				Description: "Decode a protobuf envelope given as hex",
				Command:     "echo 0838e00103 | pluginwire decode --hex",
			},
			{
				Description: "Encode a JSON envelope as CBOR diagnostic notation",
				Command:     `echo '{"name":"HideSelf"}' | pluginwire encode -f cbor | pluginwire diag`,
			},
			{
				Description: "Check a file of JSON envelopes",
				Command:     "pluginwire check envelopes.jsonc",
			},
			{
				Description: "List the command vocabulary",
				Command:     "pluginwire vocab",
			},
			{
				Description: "Replay a capture through the decoder",
				Command:     "pluginwire capture verify session.pwc",
			},
		},
	}
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version and wire compatibility information",
		Description: `Print the build version, the command vocabulary fingerprint, and the
capture format version. Two builds exchange envelopes safely when their
fingerprints match.`,
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Print the version number for a script",
				Command:     "pluginwire version --short",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("version takes no arguments")
			}
			return writeVersion(os.Stdout, params.Short)
		},
	}
}

func writeVersion(w io.Writer, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, version.Short())
		return err
	}
	_, err := fmt.Fprintf(w, "pluginwire %s\n", version.Full())
	return err
}
