// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Format   string   `flag:"format,f" desc:"wire format"`
		Hex      bool     `flag:"hex,x" desc:"hex input"`
		Limit    int      `flag:"limit" desc:"frame limit"`
		Names    []string `flag:"names" desc:"command names"`
		Untagged string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"-f", "json",
		"-x",
		"--limit", "12",
		"--names", "GoToTab,HideSelf",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Format != "json" {
		t.Errorf("Format = %q, want %q", p.Format, "json")
	}
	if !p.Hex {
		t.Error("Hex = false, want true")
	}
	if p.Limit != 12 {
		t.Errorf("Limit = %d, want 12", p.Limit)
	}
	if len(p.Names) != 2 || p.Names[0] != "GoToTab" || p.Names[1] != "HideSelf" {
		t.Errorf("Names = %v, want [GoToTab HideSelf]", p.Names)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Format string   `flag:"format" default:"proto"`
		Strict bool     `flag:"strict" default:"true"`
		Limit  int      `flag:"limit" default:"100"`
		Names  []string `flag:"names" default:"QuitHost,Detach"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Format != "proto" || !p.Strict || p.Limit != 100 {
		t.Errorf("defaults not applied: %+v", p)
	}
	if len(p.Names) != 2 || p.Names[1] != "Detach" {
		t.Errorf("Names = %v, want [QuitHost Detach]", p.Names)
	}
}

func TestBindFlags_Embedded(t *testing.T) {
	type params struct {
		JSONOutput
		ConfigParams
		Hex bool `flag:"hex"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--json", "--config", "/etc/pluginwire.yaml"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.ConfigPath != "/etc/pluginwire.yaml" {
		t.Errorf("ConfigPath = %q", p.ConfigPath)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	tests := []struct {
		name    string
		params  any
		wantErr string
	}{
		{
			name:    "not a pointer",
			params:  struct{}{},
			wantErr: "must be a pointer to a struct",
		},
		{
			name: "unsupported type",
			params: &struct {
				Ratio float32 `flag:"ratio"`
			}{},
			wantErr: "unsupported type float32",
		},
		{
			name: "bad bool default",
			params: &struct {
				Strict bool `flag:"strict" default:"maybe"`
			}{},
			wantErr: "default for --strict",
		},
		{
			name: "bad int default",
			params: &struct {
				Limit int `flag:"limit" default:"lots"`
			}{},
			wantErr: "default for --limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindFlags(tt.params, pflag.NewFlagSet("test", pflag.ContinueOnError))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestFlagsFromParams_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic on a non-pointer")
		}
	}()
	FlagsFromParams("test", struct{}{})
}
