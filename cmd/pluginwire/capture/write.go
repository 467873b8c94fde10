// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/capture"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
	"github.com/tidwall/jsonc"
)

type writeParams struct {
	cli.ConfigParams
	Input       string `json:"input"       flag:"input,i"     desc:"read envelopes from this file instead of stdin"`
	Format      string `json:"format"      flag:"format,f"    desc:"frame wire format: proto, cbor, or json (default: wire.format from config)"`
	Compression string `json:"compression" flag:"compression" desc:"frame compression: none, lz4, or zstd (default: capture.compression from config)"`
	Hex         bool   `json:"hex"         flag:"hex,x"       desc:"input is one hex-encoded envelope per line, already in the frame format"`
	Force       bool   `json:"force"       flag:"force"       desc:"overwrite an existing capture"`
}

func writeCommand() *cli.Command {
	var params writeParams

	return &cli.Command{
		Name:    "write",
		Summary: "Record envelopes into a capture file",
		Description: `Read envelopes and write them as frames of a new capture file.

By default the input is a JSON array of envelopes (comments and trailing
commas allowed), each re-encoded in the frame format. Envelopes are not
checked by the decoder, so captures can hold negative test vectors.

With --hex, each non-empty input line is an envelope already encoded in
the frame format and is stored byte for byte, including bytes that do not
parse at all.`,
		Usage:  "pluginwire capture write [flags] <name>",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Record a JSON corpus as zstd-compressed CBOR frames",
				Command:     "pluginwire capture write -f cbor --compression zstd session.pwc -i corpus.jsonc",
			},
			{
				Description: "Record raw protobuf vectors",
				Command:     "printf '0838e00103\\n0810\\n' | pluginwire capture write --hex -f proto ./vectors.pwc",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			name, err := singleName("capture write", args)
			if err != nil {
				return err
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			format, compression, err := params.resolve(cfg.Wire.Format, cfg.Capture.Compression)
			if err != nil {
				return err
			}
			data, err := params.readInput()
			if err != nil {
				return err
			}

			path := cfg.CapturePath(name)
			if filepath.Base(name) == name {
				if err := cfg.EnsureCaptureDirectory(); err != nil {
					return cli.Internal("%w", err)
				}
			}
			frames, err := writeCaptureFile(path, data, format, compression, params.Hex, params.Force)
			if err != nil {
				return err
			}
			logger.Info("wrote capture",
				"path", path,
				"frames", frames,
				"format", format,
				"compression", compression,
			)
			return nil
		},
	}
}

// resolve returns the frame format and compression, preferring flags
// over the configured defaults.
func (p *writeParams) resolve(configFormat, configCompression string) (pluginproto.Format, capture.Compression, error) {
	formatName := p.Format
	if formatName == "" {
		formatName = configFormat
	}
	format, err := pluginproto.ParseFormat(formatName)
	if err != nil {
		return 0, 0, cli.Validation("--format: %w", err)
	}

	compressionName := p.Compression
	if compressionName == "" {
		compressionName = configCompression
	}
	compression, err := capture.ParseCompression(compressionName)
	if err != nil {
		return 0, 0, cli.Validation("--compression: %w", err)
	}
	return format, compression, nil
}

func (p *writeParams) readInput() ([]byte, error) {
	if p.Input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, cli.Internal("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(p.Input)
	if err != nil {
		return nil, cli.NotFound("read %s: %w", p.Input, err)
	}
	return data, nil
}

// writeCaptureFile creates path and writes the capture. A partially
// written file is removed.
func writeCaptureFile(path string, data []byte, format pluginproto.Format, compression capture.Compression, hexInput, force bool) (int, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	file, err := os.OpenFile(path, flags, 0644)
	if os.IsExist(err) {
		return 0, cli.Validation("capture %s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return 0, cli.Internal("create capture: %w", err)
	}

	buffered := bufio.NewWriter(file)
	frames, err := writeCapture(buffered, data, format, compression, hexInput)
	if err == nil {
		err = buffered.Flush()
	}
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = cli.Internal("close capture: %w", closeErr)
	}
	if err != nil {
		os.Remove(path)
		return 0, err
	}
	return frames, nil
}

// writeCapture writes a capture holding the envelopes in data to w and
// returns the number of frames written. Input is parsed in full before
// the header is written.
func writeCapture(w io.Writer, data []byte, format pluginproto.Format, compression capture.Compression, hexInput bool) (int, error) {
	var (
		frames   [][]byte
		commands []*pluginproto.PluginCommand
		err      error
	)
	if hexInput {
		frames, err = hexFrames(data)
	} else {
		commands, err = jsonCommands(data)
	}
	if err != nil {
		return 0, err
	}

	writer, err := capture.NewWriter(w, format, compression)
	if err != nil {
		return 0, cli.Internal("%w", err)
	}
	for index, frame := range frames {
		if err := writer.WriteEncoded(frame); err != nil {
			return 0, cli.Internal("frame %d: %w", index, err)
		}
	}
	for index, command := range commands {
		if err := writer.Write(command); err != nil {
			return 0, cli.Validation("envelope %d: %w", index, err)
		}
	}
	return writer.Frames(), nil
}

// jsonCommands parses a JSON array of envelopes, or a single envelope.
func jsonCommands(data []byte) ([]*pluginproto.PluginCommand, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 {
		return nil, cli.Validation("empty input: expected a JSON array of envelopes")
	}
	var elements []json.RawMessage
	if stripped[0] == '[' {
		if err := json.Unmarshal(stripped, &elements); err != nil {
			return nil, cli.Validation("parse envelope array: %w", err)
		}
	} else {
		elements = []json.RawMessage{stripped}
	}

	commands := make([]*pluginproto.PluginCommand, len(elements))
	for index, element := range elements {
		var command pluginproto.PluginCommand
		if err := json.Unmarshal(element, &command); err != nil {
			return nil, cli.Validation("envelope %d: %w", index, err)
		}
		commands[index] = &command
	}
	return commands, nil
}

// hexFrames decodes one hex-encoded frame per non-empty line.
func hexFrames(data []byte) ([][]byte, error) {
	var frames [][]byte
	for number, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		frame, err := cli.DecodeHex(line)
		if err != nil {
			return nil, cli.Validation("line %d: %w", number+1, err)
		}
		frames = append(frames, frame)
	}
	if len(frames) == 0 {
		return nil, cli.Validation("empty input: expected hex-encoded envelopes, one per line")
	}
	return frames, nil
}
