// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/plugincodec"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

type checkParams struct {
	cli.ConfigParams
	cli.JSONOutput
}

// checkResult is the verdict on one envelope of a batch.
type checkResult struct {
	Index   int    `json:"index"`
	Name    string `json:"name,omitempty"`
	Command string `json:"command,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Valid reports whether the envelope decoded.
func (r checkResult) Valid() bool { return r.Error == "" }

// parseFailureKind labels envelopes that never reached the decoder.
const parseFailureKind = "parse"

func checkCommand() *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Validate a batch of JSON envelopes against the decoder",
		Description: `Read a JSON array of envelopes (or a single envelope) from stdin or a
file argument, run each through the decoder, and report the ones it
rejects. Comments and trailing commas are allowed.

Each rejection is labeled with its error kind (unrecognized plugin command,
unexpected payload, missing payload, mismatched payload, malformed payload,
nested conversion failed, malformed session switch payload, value out of
range) or "parse" for elements that are not envelopes at all.

Exits 1 when any envelope is rejected.`,
		Usage:  "pluginwire check [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Check a corpus of envelopes",
				Command:     "pluginwire check corpus.jsonc",
			},
			{
				Description: "Check with production strictness",
				Command:     "pluginwire check --config prod.yaml --json corpus.jsonc",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			data, remainingArgs, err := cli.ReadInput(args, false)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return cli.Validation("check takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}

			results, err := checkEnvelopes(data, cli.NewCodec(cfg))
			if err != nil {
				return err
			}
			invalid := countInvalid(results)
			logger.Debug("checked envelopes", "total", len(results), "invalid", invalid)

			if done, err := params.EmitJSON(os.Stdout, results); done {
				if err != nil {
					return err
				}
			} else if err := writeCheckResults(os.Stdout, results, invalid); err != nil {
				return err
			}
			if invalid > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// checkEnvelopes decodes every envelope in data and returns one result
// per element, in input order.
func checkEnvelopes(data []byte, codec *plugincodec.Codec) ([]checkResult, error) {
	elements, err := parseJSONEnvelopes(data)
	if err != nil {
		return nil, err
	}

	results := make([]checkResult, len(elements))
	for index, element := range elements {
		results[index] = checkEnvelope(index, element, codec)
	}
	return results, nil
}

func checkEnvelope(index int, element json.RawMessage, codec *plugincodec.Codec) checkResult {
	result := checkResult{Index: index}

	var envelope pluginproto.PluginCommand
	if err := json.Unmarshal(element, &envelope); err != nil {
		result.Kind = parseFailureKind
		result.Error = err.Error()
		return result
	}
	result.Name = envelope.Name.String()

	command, err := codec.Decode(&envelope)
	if err != nil {
		result.Kind = errorKind(err)
		result.Error = err.Error()
		return result
	}
	result.Command = commandTypeName(command)
	return result
}

// errorKind returns the text of the codec error kind err carries.
func errorKind(err error) string {
	var codecError *plugincodec.Error
	if errors.As(err, &codecError) && codecError.Kind != nil {
		return codecError.Kind.Error()
	}
	return "unknown"
}

func countInvalid(results []checkResult) int {
	invalid := 0
	for _, result := range results {
		if !result.Valid() {
			invalid++
		}
	}
	return invalid
}

func writeCheckResults(w io.Writer, results []checkResult, invalid int) error {
	style := cli.NewStyler(w)
	for _, result := range results {
		if result.Valid() {
			continue
		}
		if _, err := fmt.Fprintf(w, "envelope %d: %s %s\n",
			result.Index, style.Bad("["+result.Kind+"]"), result.Error); err != nil {
			return err
		}
	}
	summary := fmt.Sprintf("%d envelopes checked, %d invalid", len(results), invalid)
	if invalid > 0 {
		summary = style.Bad(summary)
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
