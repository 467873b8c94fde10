// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/config"
)

// Command returns the "capture" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "capture",
		Summary: "Write, read, and verify envelope capture files",
		Description: `Capture files record a sequence of wire envelopes for replay.

A capture starts with a header naming the wire format of its frames and the
fingerprint of the command vocabulary it was written against. Each frame
holds one envelope, optionally compressed with lz4 or zstd, and a keyed
BLAKE3 hash that detects damage.

Capture names without a path separator are resolved against
capture.directory from the config (default ~/.cache/pluginwire/captures).`,
		Subcommands: []*cli.Command{
			writeCommand(),
			readCommand(),
			verifyCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Record a corpus of JSON envelopes",
				Command:     "pluginwire capture write session.pwc --input corpus.jsonc",
			},
			{
				Description: "Replay a capture through the decoder",
				Command:     "pluginwire capture verify session.pwc",
			},
		},
	}
}

// openCapture opens the capture called name for reading.
func openCapture(cfg *config.Config, name string) (*os.File, string, error) {
	path := cfg.CapturePath(name)
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, path, cli.NotFound("capture %s does not exist", path)
	}
	if err != nil {
		return nil, path, cli.Internal("open capture: %w", err)
	}
	return file, path, nil
}

// singleName checks that args holds exactly one capture name.
func singleName(command string, args []string) (string, error) {
	if len(args) != 1 {
		return "", cli.Validation("%s takes exactly one capture name, got %d arguments", command, len(args))
	}
	return args[0], nil
}
