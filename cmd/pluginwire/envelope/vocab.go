// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

type vocabParams struct {
	cli.JSONOutput
}

// vocabEntry is one row of the vocabulary listing.
type vocabEntry struct {
	Tag       int32  `json:"tag"`
	Name      string `json:"name"`
	Arm       string `json:"arm,omitempty"`
	ArmNumber int32  `json:"arm_number,omitempty"`
	Shape     string `json:"shape"`
}

// vocabListing is the --json form of the vocabulary.
type vocabListing struct {
	Fingerprint string       `json:"fingerprint"`
	Commands    []vocabEntry `json:"commands"`
}

func vocabCommand() *cli.Command {
	var params vocabParams

	return &cli.Command{
		Name:    "vocab",
		Summary: "List the command vocabulary and its fingerprint",
		Description: `List every command tag with the payload arm it requires and the shape of
that arm's value, followed by the vocabulary fingerprint.

The fingerprint is a keyed BLAKE3 hash of the vocabulary table. Capture
files record the fingerprint they were written against, so a changed tag
or arm number shows up as a mismatch in "capture verify".`,
		Usage:  "pluginwire vocab [--json]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Show the tag table",
				Command:     "pluginwire vocab",
			},
			{
				Description: "Print only the fingerprint",
				Command:     "pluginwire vocab --json | jq -r .fingerprint",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("vocab takes no positional arguments, got %q", args[0])
			}
			listing := buildVocabListing()
			if done, err := params.EmitJSON(os.Stdout, listing); done {
				return err
			}
			return writeVocabListing(os.Stdout, listing)
		},
	}
}

func buildVocabListing() vocabListing {
	vocabulary := pluginproto.Vocabulary()
	listing := vocabListing{
		Fingerprint: pluginproto.VocabularyFingerprint().String(),
		Commands:    make([]vocabEntry, len(vocabulary)),
	}
	for i, entry := range vocabulary {
		row := vocabEntry{
			Tag:   int32(entry.Name),
			Name:  entry.Name.String(),
			Shape: entry.Shape.String(),
		}
		if entry.Arm != pluginproto.ArmNone {
			row.Arm = entry.Arm.String()
			row.ArmNumber = int32(entry.Arm)
		}
		listing.Commands[i] = row
	}
	return listing
}

func writeVocabListing(w io.Writer, listing vocabListing) error {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "TAG\tNAME\tARM\tSHAPE")
	for _, entry := range listing.Commands {
		arm := "-"
		if entry.Arm != "" {
			arm = fmt.Sprintf("%s (%d)", entry.Arm, entry.ArmNumber)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", entry.Tag, entry.Name, arm, entry.Shape)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d commands, fingerprint %s\n", len(listing.Commands), listing.Fingerprint)
	return err
}
