// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/capture"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

type readParams struct {
	cli.ConfigParams
	cli.JSONOutput
}

// headerSummary is the printable form of a capture header.
type headerSummary struct {
	Version           uint8  `json:"version"`
	Format            string `json:"format"`
	Fingerprint       string `json:"fingerprint"`
	CurrentVocabulary bool   `json:"current_vocabulary"`
}

func summarizeHeader(header capture.Header) headerSummary {
	return headerSummary{
		Version:           header.Version,
		Format:            header.Format.String(),
		Fingerprint:       header.Fingerprint.String(),
		CurrentVocabulary: header.MatchesVocabulary(),
	}
}

// frameRecord is one frame of a capture listing. Envelope is the
// canonical JSON form; Error is set instead when the frame does not
// parse in the capture's format.
type frameRecord struct {
	Index    int             `json:"index"`
	Envelope json.RawMessage `json:"envelope,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type captureListing struct {
	Header headerSummary `json:"header"`
	Frames []frameRecord `json:"frames"`
}

func readCommand() *cli.Command {
	var params readParams

	return &cli.Command{
		Name:    "read",
		Summary: "Print the envelopes of a capture as JSON",
		Description: `Print a capture's header and each frame's envelope in canonical JSON,
one per line. Frames that do not parse in the capture's wire format are
reported in place. A damaged frame (bad hash, truncation, failed
decompression) stops the listing with an error.

Envelopes are printed as stored; use "capture verify" to run them through
the decoder.`,
		Usage:  "pluginwire capture read [flags] <name>",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "List a capture",
				Command:     "pluginwire capture read session.pwc",
			},
			{
				Description: "Extract tags with jq",
				Command:     "pluginwire capture read --json session.pwc | jq -r '.frames[].envelope.name'",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			name, err := singleName("capture read", args)
			if err != nil {
				return err
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			file, _, err := openCapture(cfg, name)
			if err != nil {
				return err
			}
			defer file.Close()

			listing, err := readCapture(file)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(os.Stdout, listing); done {
				return err
			}
			return writeCaptureListing(os.Stdout, listing)
		},
	}
}

// readCapture lists every frame of the capture in r.
func readCapture(r io.Reader) (captureListing, error) {
	reader, err := capture.NewReader(r)
	if err != nil {
		return captureListing{}, cli.Validation("%w", err)
	}
	header := reader.Header()
	listing := captureListing{Header: summarizeHeader(header)}

	for {
		data, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return listing, nil
		}
		if err != nil {
			return listing, cli.Validation("capture damaged: %w", err)
		}

		record := frameRecord{Index: reader.Frames() - 1}
		var command pluginproto.PluginCommand
		if err := header.Format.Unmarshal(data, &command); err != nil {
			record.Error = err.Error()
		} else if record.Envelope, err = json.Marshal(&command); err != nil {
			record.Error = err.Error()
		}
		listing.Frames = append(listing.Frames, record)
	}
}

func writeCaptureListing(w io.Writer, listing captureListing) error {
	vocabulary := "current"
	if !listing.Header.CurrentVocabulary {
		vocabulary = "stale"
	}
	style := cli.NewStyler(w)
	header := fmt.Sprintf("# capture v%d, %s frames, vocabulary %s (%s)",
		listing.Header.Version, listing.Header.Format, listing.Header.Fingerprint, vocabulary)
	if _, err := fmt.Fprintln(w, style.Faint(header)); err != nil {
		return err
	}
	for _, frame := range listing.Frames {
		var err error
		if frame.Error != "" {
			_, err = fmt.Fprintln(w, style.Bad(fmt.Sprintf("# frame %d: %s", frame.Index, frame.Error)))
		} else {
			_, err = fmt.Fprintf(w, "%s\n", frame.Envelope)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
