// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/pluginwire/cmd/pluginwire/cli"
	"github.com/bureau-foundation/pluginwire/lib/capture"
	"github.com/bureau-foundation/pluginwire/lib/config"
	"github.com/bureau-foundation/pluginwire/lib/plugincodec"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

const corpus = `[
	// Tab navigation.
	{"name": "GoToTab", "go_to_tab_payload": 3},
	{"name": "HideSelf"},
	{"name": "WriteChars", "write_chars_payload": "ls -la\n"},
]`

func writeCorpus(t *testing.T, format pluginproto.Format, compression capture.Compression) []byte {
	t.Helper()
	var buffer bytes.Buffer
	frames, err := writeCapture(&buffer, []byte(corpus), format, compression, false)
	if err != nil {
		t.Fatalf("writeCapture: %v", err)
	}
	if frames != 3 {
		t.Fatalf("wrote %d frames, want 3", frames)
	}
	return buffer.Bytes()
}

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	for _, format := range []pluginproto.Format{pluginproto.FormatProto, pluginproto.FormatCBOR, pluginproto.FormatJSON} {
		for _, compression := range []capture.Compression{capture.CompressionNone, capture.CompressionLZ4, capture.CompressionZstd} {
			t.Run(format.String()+"/"+compression.String(), func(t *testing.T) {
				t.Parallel()

				listing, err := readCapture(bytes.NewReader(writeCorpus(t, format, compression)))
				if err != nil {
					t.Fatalf("readCapture: %v", err)
				}
				if listing.Header.Format != format.String() || !listing.Header.CurrentVocabulary || listing.Header.Version != capture.Version {
					t.Errorf("header = %+v", listing.Header)
				}
				want := []string{
					`{"name":"GoToTab","go_to_tab_payload":3}`,
					`{"name":"HideSelf"}`,
					`{"name":"WriteChars","write_chars_payload":"ls -la\n"}`,
				}
				if len(listing.Frames) != len(want) {
					t.Fatalf("got %d frames, want %d", len(listing.Frames), len(want))
				}
				for i, frame := range listing.Frames {
					if frame.Index != i || frame.Error != "" || string(frame.Envelope) != want[i] {
						t.Errorf("frame %d = %+v (envelope %s), want %s", i, frame, frame.Envelope, want[i])
					}
				}
			})
		}
	}
}

func TestWriteCapture_HexFrames(t *testing.T) {
	t.Parallel()

	// GoToTab 3, HideSelf, and a byte that is not a protobuf field.
	input := "0838e00103\n\n08 10\nff\n"
	var buffer bytes.Buffer
	frames, err := writeCapture(&buffer, []byte(input), pluginproto.FormatProto, capture.CompressionNone, true)
	if err != nil {
		t.Fatalf("writeCapture: %v", err)
	}
	if frames != 3 {
		t.Fatalf("wrote %d frames, want 3", frames)
	}

	listing, err := readCapture(bytes.NewReader(buffer.Bytes()))
	if err != nil {
		t.Fatalf("readCapture: %v", err)
	}
	if string(listing.Frames[1].Envelope) != `{"name":"HideSelf"}` {
		t.Errorf("frame 1 = %s", listing.Frames[1].Envelope)
	}
	if listing.Frames[2].Error == "" || listing.Frames[2].Envelope != nil {
		t.Errorf("frame 2 = %+v, want a parse error", listing.Frames[2])
	}

	var text bytes.Buffer
	if err := writeCaptureListing(&text, listing); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(text.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("listing has %d lines, want 4:\n%s", len(lines), text.String())
	}
	if !strings.HasPrefix(lines[0], "# capture v1, proto frames, vocabulary ") || !strings.HasSuffix(lines[0], "(current)") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "# frame 2: ") {
		t.Errorf("frame 2 line = %q", lines[3])
	}
}

func TestWriteCapture_InputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		hex     bool
		message string
	}{
		{name: "empty json", input: "  ", message: "empty input"},
		{name: "bad array", input: "[{", message: "parse envelope array"},
		{name: "bad envelope", input: `[{"name":"GoToTab"}, {"name":"Nope"}]`, message: "envelope 1"},
		{name: "bad hex line", input: "0810\nzz\n", hex: true, message: "line 2"},
		{name: "empty hex", input: "\n\n", hex: true, message: "empty input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buffer bytes.Buffer
			_, err := writeCapture(&buffer, []byte(tt.input), pluginproto.FormatProto, capture.CompressionNone, tt.hex)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not contain %q", err, tt.message)
			}
			if buffer.Len() != 0 {
				t.Errorf("wrote %d bytes before failing", buffer.Len())
			}
		})
	}
}

func TestWriteCaptureFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.pwc")

	if _, err := writeCaptureFile(path, []byte(corpus), pluginproto.FormatCBOR, capture.CompressionZstd, false, false); err != nil {
		t.Fatalf("writeCaptureFile: %v", err)
	}

	_, err := writeCaptureFile(path, []byte(corpus), pluginproto.FormatCBOR, capture.CompressionZstd, false, false)
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) || toolError.Category != cli.CategoryValidation || !strings.Contains(err.Error(), "--force") {
		t.Errorf("second write error = %v, want already-exists validation error", err)
	}

	frames, err := writeCaptureFile(path, []byte(`{"name":"QuitHost"}`), pluginproto.FormatJSON, capture.CompressionNone, false, true)
	if err != nil || frames != 1 {
		t.Fatalf("forced write = %d, %v", frames, err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	listing, err := readCapture(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(listing.Frames) != 1 || string(listing.Frames[0].Envelope) != `{"name":"QuitHost"}` {
		t.Errorf("overwritten capture = %+v", listing)
	}
}

func TestWriteCaptureFile_RemovesPartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.pwc")
	if _, err := writeCaptureFile(path, []byte("[{"), pluginproto.FormatProto, capture.CompressionNone, false, false); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial capture left behind: %v", err)
	}
}

func TestVerifyCapture(t *testing.T) {
	t.Parallel()

	outcome := verifyCapture(bytes.NewReader(writeCorpus(t, pluginproto.FormatCBOR, capture.CompressionLZ4)), plugincodec.New())
	if !outcome.OK || outcome.Frames != 3 || outcome.Decoded != 3 || len(outcome.Failures) != 0 {
		t.Errorf("outcome = %+v", outcome)
	}

	var text bytes.Buffer
	if err := writeVerifyOutcome(&text, outcome); err != nil {
		t.Fatal(err)
	}
	if text.String() != "3 frames, 3 decoded, 0 rejected: ok\n" {
		t.Errorf("output = %q", text.String())
	}
}

func TestVerifyCapture_Rejections(t *testing.T) {
	t.Parallel()

	vectors := `[
	{"name": "GoToTab", "go_to_tab_payload": 3},
	{"name": "HideSelf", "go_to_tab_payload": 1},
	{"name": "RequestPluginPermissions", "request_plugin_permission_payload": {"permissions": [0, 99]}},
]`
	var buffer bytes.Buffer
	if _, err := writeCapture(&buffer, []byte(vectors), pluginproto.FormatJSON, capture.CompressionNone, false); err != nil {
		t.Fatalf("writeCapture: %v", err)
	}

	lenient := verifyCapture(bytes.NewReader(buffer.Bytes()), plugincodec.New())
	if lenient.OK || len(lenient.Failures) != 1 || lenient.Failures[0].Index != 1 {
		t.Errorf("lenient outcome = %+v", lenient)
	}
	if !strings.Contains(lenient.Failures[0].Error, "HideSelf should not have a payload") {
		t.Errorf("failure = %q", lenient.Failures[0].Error)
	}

	strict := verifyCapture(bytes.NewReader(buffer.Bytes()), plugincodec.New(plugincodec.WithStrictPermissions()))
	if len(strict.Failures) != 2 || strict.Failures[1].Index != 2 || strict.Decoded != 1 {
		t.Errorf("strict outcome = %+v", strict)
	}

	var text bytes.Buffer
	if err := writeVerifyOutcome(&text, strict); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(text.String(), "3 frames, 1 decoded, 2 rejected: FAILED\n") {
		t.Errorf("output = %q", text.String())
	}
}

func TestVerifyCapture_Damage(t *testing.T) {
	t.Parallel()

	data := writeCorpus(t, pluginproto.FormatProto, capture.CompressionNone)
	data[len(data)-1] ^= 0xff

	outcome := verifyCapture(bytes.NewReader(data), plugincodec.New())
	if outcome.OK || outcome.Damage == "" {
		t.Errorf("outcome = %+v, want damage", outcome)
	}
	if outcome.Frames != 2 {
		t.Errorf("Frames = %d, want 2 before the damaged frame", outcome.Frames)
	}

	var text bytes.Buffer
	if err := writeVerifyOutcome(&text, outcome); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text.String(), "damaged: ") {
		t.Errorf("output = %q", text.String())
	}

	if _, err := readCapture(bytes.NewReader(data)); !errors.Is(err, capture.ErrCorruptFrame) {
		t.Errorf("readCapture error = %v, want ErrCorruptFrame", err)
	}
	if _, err := readCapture(strings.NewReader("not a capture file at all, just text....")); !errors.Is(err, capture.ErrNotCapture) {
		t.Errorf("readCapture error = %v, want ErrNotCapture", err)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	params := writeParams{}
	format, compression, err := params.resolve("json", "lz4")
	if err != nil || format != pluginproto.FormatJSON || compression != capture.CompressionLZ4 {
		t.Errorf("resolve(config) = %v, %v, %v", format, compression, err)
	}

	params = writeParams{Format: "cbor", Compression: "none"}
	format, compression, err = params.resolve("json", "lz4")
	if err != nil || format != pluginproto.FormatCBOR || compression != capture.CompressionNone {
		t.Errorf("resolve(flags) = %v, %v, %v", format, compression, err)
	}

	params = writeParams{Compression: "gzip"}
	if _, _, err := params.resolve("proto", "none"); err == nil {
		t.Error("resolve accepted gzip")
	}
}

func TestOpenCapture(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Capture.Directory = t.TempDir()

	_, path, err := openCapture(cfg, "absent.pwc")
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) || toolError.Category != cli.CategoryNotFound {
		t.Errorf("openCapture error = %v, want not found", err)
	}
	if path != filepath.Join(cfg.Capture.Directory, "absent.pwc") {
		t.Errorf("path = %s", path)
	}

	if _, err := singleName("capture read", []string{"a", "b"}); err == nil {
		t.Error("singleName accepted two names")
	}
}
