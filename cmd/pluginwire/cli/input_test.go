// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{
			name:  "lowercase hex",
			input: "08361a0203",
			want:  []byte{0x08, 0x36, 0x1a, 0x02, 0x03},
		},
		{
			name:  "uppercase hex",
			input: "08361A0203",
			want:  []byte{0x08, 0x36, 0x1a, 0x02, 0x03},
		},
		{
			name:  "hex with spaces and newlines",
			input: "08 36\n1a 02\t03\n",
			want:  []byte{0x08, 0x36, 0x1a, 0x02, 0x03},
		},
		{
			name:    "invalid hex",
			input:   "not hex data",
			wantErr: true,
		},
		{
			name:    "empty after whitespace",
			input:   "   \n\t  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHex([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %x", got)
				}
				var toolError *ToolError
				if !errors.As(err, &toolError) || toolError.Category != CategoryValidation {
					t.Errorf("error %v is not a validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeHex: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("DecodeHex = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestReadInput_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envelope.bin")
	if err := os.WriteFile(path, []byte{0x08, 0x05}, 0644); err != nil {
		t.Fatal(err)
	}

	data, remaining, err := readInput(strings.NewReader("ignored"), []string{"extra", path}, false)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if !bytes.Equal(data, []byte{0x08, 0x05}) {
		t.Errorf("data = %x, want 0805", data)
	}
	if len(remaining) != 1 || remaining[0] != "extra" {
		t.Errorf("remaining = %v, want [extra]", remaining)
	}
}

func TestReadInput_FromStdin(t *testing.T) {
	data, remaining, err := readInput(strings.NewReader("08 05"), []string{"not-a-file"}, true)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if !bytes.Equal(data, []byte{0x08, 0x05}) {
		t.Errorf("data = %x, want 0805", data)
	}
	if len(remaining) != 1 || remaining[0] != "not-a-file" {
		t.Errorf("remaining = %v, want [not-a-file]", remaining)
	}
}

func TestReadInput_DirectoryIsNotConsumed(t *testing.T) {
	directory := t.TempDir()

	_, remaining, err := readInput(strings.NewReader("{}"), []string{directory}, false)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("directory argument was consumed: %v", remaining)
	}
}

func TestWriteOutput(t *testing.T) {
	var raw, hexed bytes.Buffer
	if err := WriteOutput(&raw, []byte{0xab, 0xcd}, false); err != nil {
		t.Fatal(err)
	}
	if err := WriteOutput(&hexed, []byte{0xab, 0xcd}, true); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw.Bytes(), []byte{0xab, 0xcd}) {
		t.Errorf("raw output = %x", raw.Bytes())
	}
	if hexed.String() != "abcd\n" {
		t.Errorf("hex output = %q, want %q", hexed.String(), "abcd\n")
	}
}
