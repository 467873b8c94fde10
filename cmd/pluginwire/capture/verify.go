// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/capture"
	"github.com/bureau-foundation/pluginwire/lib/plugincodec"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

type verifyParams struct {
	cli.ConfigParams
	cli.JSONOutput
}

// verifyFailure is one frame the decoder rejected.
type verifyFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// verifyOutcome is the printable form of a verify pass.
type verifyOutcome struct {
	Header   headerSummary   `json:"header"`
	Frames   int             `json:"frames"`
	Decoded  int             `json:"decoded"`
	Failures []verifyFailure `json:"failures"`
	Damage   string          `json:"damage,omitempty"`
	OK       bool            `json:"ok"`
}

func verifyCommand() *cli.Command {
	var params verifyParams

	return &cli.Command{
		Name:    "verify",
		Summary: "Replay a capture through the decoder",
		Description: `Decode every frame of a capture with the configured decoder and report
the frames it rejects.

The pass fails when any frame does not parse or decode, when the capture
was written against a different command vocabulary, or when a frame is
damaged. Damage stops the pass at the damaged frame. The wire.strict_*
settings from the config apply.

Exits 1 when the pass fails.`,
		Usage:  "pluginwire capture verify [flags] <name>",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Verify a capture",
				Command:     "pluginwire capture verify session.pwc",
			},
			{
				Description: "Verify with production strictness",
				Command:     "PLUGINWIRE_CONFIG=prod.yaml pluginwire capture verify --json session.pwc",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			name, err := singleName("capture verify", args)
			if err != nil {
				return err
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			file, path, err := openCapture(cfg, name)
			if err != nil {
				return err
			}
			defer file.Close()

			outcome := verifyCapture(file, cli.NewCodec(cfg))
			logger.Debug("verified capture",
				"path", path,
				"frames", outcome.Frames,
				"failures", len(outcome.Failures),
			)

			if done, err := params.EmitJSON(os.Stdout, outcome); done {
				if err != nil {
					return err
				}
			} else if err := writeVerifyOutcome(os.Stdout, outcome); err != nil {
				return err
			}
			if !outcome.OK {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// verifyCapture runs capture.Verify and flattens the report.
func verifyCapture(r io.Reader, codec *plugincodec.Codec) verifyOutcome {
	report, err := capture.Verify(r, codec)
	outcome := verifyOutcome{
		Header:   summarizeHeader(report.Header),
		Frames:   report.Frames,
		Decoded:  report.Decoded,
		Failures: make([]verifyFailure, len(report.Failures)),
		OK:       err == nil && report.OK(),
	}
	for i, failure := range report.Failures {
		outcome.Failures[i] = verifyFailure{Index: failure.Index, Error: failure.Err.Error()}
	}
	if err != nil {
		outcome.Damage = err.Error()
	}
	return outcome
}

func writeVerifyOutcome(w io.Writer, outcome verifyOutcome) error {
	for _, failure := range outcome.Failures {
		if _, err := fmt.Fprintf(w, "frame %d: %s\n", failure.Index, failure.Error); err != nil {
			return err
		}
	}
	if outcome.Damage != "" {
		if _, err := fmt.Fprintf(w, "damaged: %s\n", outcome.Damage); err != nil {
			return err
		}
	} else if !outcome.Header.CurrentVocabulary {
		if _, err := fmt.Fprintf(w, "vocabulary mismatch: capture %s, current %s\n",
			outcome.Header.Fingerprint, pluginproto.VocabularyFingerprint()); err != nil {
			return err
		}
	}

	style := cli.NewStyler(w)
	verdict := style.Good("ok")
	if !outcome.OK {
		verdict = style.Bad("FAILED")
	}
	_, err := fmt.Fprintf(w, "%d frames, %d decoded, %d rejected: %s\n",
		outcome.Frames, outcome.Decoded, len(outcome.Failures), verdict)
	return err
}
