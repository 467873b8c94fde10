// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "pluginwire",
		Subcommands: []*Command{
			{
				Name: "vocab",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "vocab"
					return nil
				},
			},
			{
				Name: "decode",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "decode"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"decode"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "decode" {
		t.Errorf("dispatched to %q, want %q", called, "decode")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "pluginwire",
		Subcommands: []*Command{
			{
				Name: "capture",
				Subcommands: []*Command{
					{
						Name: "verify",
						Run: func(_ context.Context, args []string, _ *slog.Logger) error {
							called = "capture verify"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"capture", "verify", "session.pwc"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "capture verify" {
		t.Errorf("dispatched to %q, want %q", called, "capture verify")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "session.pwc" {
		t.Errorf("args = %v, want [session.pwc]", receivedArgs)
	}
}

func TestCommand_Execute_ParamsFlags(t *testing.T) {
	type params struct {
		JSONOutput
		Format string `flag:"format,f" desc:"wire format" default:"proto"`
	}
	var p params
	var target string

	command := &Command{
		Name:   "decode",
		Params: func() any { return &p },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"-f", "cbor", "--json", "envelope.cbor"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if p.Format != "cbor" {
		t.Errorf("Format = %q, want %q", p.Format, "cbor")
	}
	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if target != "envelope.cbor" {
		t.Errorf("target = %q, want %q", target, "envelope.cbor")
	}
}

func TestCommand_Execute_FlagsFunction(t *testing.T) {
	var compression string

	command := &Command{
		Name: "write",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("write", pflag.ContinueOnError)
			flagSet.StringVar(&compression, "compression", "none", "frame compression")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	if err := command.Execute(context.Background(), []string{"--compression=lz4"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if compression != "lz4" {
		t.Errorf("compression = %q, want %q", compression, "lz4")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	type params struct {
		Format      string `flag:"format" desc:"wire format"`
		Compression string `flag:"compression" desc:"frame compression"`
	}
	var p params

	command := &Command{
		Name:   "write",
		Params: func() any { return &p },
		Run:    func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--fromat", "cbor"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --format?") {
		t.Errorf("error %q does not suggest --format", err)
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "pluginwire",
		Subcommands: []*Command{
			{Name: "encode", Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil }},
			{Name: "decode", Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"decdoe"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "decode"?`) {
		t.Errorf("error %q does not suggest decode", err)
	}

	err = root.Execute(context.Background(), []string{"frobnicate"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("expected plain unknown-command error, got %v", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "capture",
		Subcommands: []*Command{
			{Name: "read", Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("Execute(nil) = %v, want subcommand required", err)
	}
}

func TestCommand_Execute_PropagatesRunError(t *testing.T) {
	want := Validation("bad envelope")
	command := &Command{
		Name: "check",
		Run:  func(_ context.Context, args []string, _ *slog.Logger) error { return want },
	}

	if err := command.Execute(context.Background(), nil); err != want {
		t.Errorf("Execute() = %v, want %v", err, want)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	type params struct {
		Hex bool `flag:"hex,x" desc:"read hex-encoded input"`
	}
	var p params

	root := &Command{Name: "pluginwire"}
	command := &Command{
		Name:        "diag",
		Summary:     "Show CBOR diagnostic notation",
		Description: "Convert an envelope to CBOR diagnostic notation.",
		Params:      func() any { return &p },
		Examples: []Example{
			{Description: "Inspect a CBOR envelope", Command: "pluginwire diag envelope.cbor"},
		},
		parent: root,
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	help := buffer.String()

	for _, want := range []string{
		"Convert an envelope to CBOR diagnostic notation.",
		"pluginwire diag [flags]",
		"--hex",
		"# Inspect a CBOR envelope",
		"pluginwire diag envelope.cbor",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestCommand_Path(t *testing.T) {
	root := &Command{Name: "pluginwire"}
	group := &Command{Name: "capture", parent: root}
	leaf := &Command{Name: "verify", parent: group}

	if got := leaf.path(); got != "capture/verify" {
		t.Errorf("path() = %q, want %q", got, "capture/verify")
	}
	if got := group.path(); got != "capture" {
		t.Errorf("path() = %q, want %q", got, "capture")
	}
	if got := leaf.fullName(); got != "pluginwire capture verify" {
		t.Errorf("fullName() = %q, want %q", got, "pluginwire capture verify")
	}
}
