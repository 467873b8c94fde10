// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/bureau-foundation/pluginwire/lib/plugincodec"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

func testEnvelopes() []*pluginproto.PluginCommand {
	return []*pluginproto.PluginCommand{
		{Name: pluginproto.CommandName_GoToTab, Payload: &pluginproto.PluginCommand_GoToTabPayload{GoToTabPayload: 3}},
		{Name: pluginproto.CommandName_HideSelf},
		{
			Name: pluginproto.CommandName_WriteChars,
			Payload: &pluginproto.PluginCommand_WriteCharsPayload{
				WriteCharsPayload: strings.Repeat("make test && git status\n", 64),
			},
		},
		{
			Name: pluginproto.CommandName_OpenCommandPane,
			Payload: &pluginproto.PluginCommand_OpenCommandPanePayload{OpenCommandPanePayload: &pluginproto.OpenCommandPanePayload{
				CommandToRun: &pluginproto.CommandSpec{Path: "go", Args: []string{"test", "./..."}},
			}},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []pluginproto.Format{pluginproto.FormatProto, pluginproto.FormatCBOR, pluginproto.FormatJSON} {
		for _, compression := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
			t.Run(format.String()+"/"+compression.String(), func(t *testing.T) {
				t.Parallel()

				var buffer bytes.Buffer
				writer, err := NewWriter(&buffer, format, compression)
				if err != nil {
					t.Fatalf("NewWriter: %v", err)
				}
				envelopes := testEnvelopes()
				for _, envelope := range envelopes {
					if err := writer.Write(envelope); err != nil {
						t.Fatalf("Write(%s): %v", envelope.Name, err)
					}
				}
				if writer.Frames() != len(envelopes) {
					t.Errorf("Frames() = %d, want %d", writer.Frames(), len(envelopes))
				}

				reader, err := NewReader(&buffer)
				if err != nil {
					t.Fatalf("NewReader: %v", err)
				}
				header := reader.Header()
				if header.Version != Version || header.Format != format {
					t.Errorf("Header = %+v, want version %d format %s", header, Version, format)
				}
				if !header.MatchesVocabulary() {
					t.Error("MatchesVocabulary() = false for a freshly written capture")
				}

				for _, want := range envelopes {
					got, err := reader.Read()
					if err != nil {
						t.Fatalf("Read: %v", err)
					}
					if !reflect.DeepEqual(got, want) {
						t.Errorf("Read = %+v, want %+v", got, want)
					}
				}
				if _, err := reader.Next(); err != io.EOF {
					t.Errorf("Next after last frame = %v, want io.EOF", err)
				}
				if reader.Frames() != len(envelopes) {
					t.Errorf("reader Frames() = %d, want %d", reader.Frames(), len(envelopes))
				}
			})
		}
	}
}

func TestCompressionFallsBackToNone(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	writer, err := NewWriter(&buffer, pluginproto.FormatProto, CompressionZstd)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := writer.WriteEncoded([]byte{0x08, 0x10}); err != nil {
		t.Fatalf("WriteEncoded: %v", err)
	}
	if tag := Compression(buffer.Bytes()[headerLength]); tag != CompressionNone {
		t.Errorf("tiny frame stored as %s, want none", tag)
	}

	buffer.Reset()
	writer, err = NewWriter(&buffer, pluginproto.FormatProto, CompressionZstd)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := writer.WriteEncoded(bytes.Repeat([]byte("abcd"), 512)); err != nil {
		t.Fatalf("WriteEncoded: %v", err)
	}
	if tag := Compression(buffer.Bytes()[headerLength]); tag != CompressionZstd {
		t.Errorf("repetitive frame stored as %s, want zstd", tag)
	}
}

// singleFrameCapture returns an uncompressed capture holding one frame.
func singleFrameCapture(t *testing.T, frame []byte) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer, err := NewWriter(&buffer, pluginproto.FormatProto, CompressionNone)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := writer.WriteEncoded(frame); err != nil {
		t.Fatalf("WriteEncoded: %v", err)
	}
	return buffer.Bytes()
}

func TestReaderDetectsDamage(t *testing.T) {
	t.Parallel()

	frame := []byte{0x08, 0x38, 0xe0, 0x01, 0x03}

	t.Run("hash mismatch", func(t *testing.T) {
		t.Parallel()
		data := singleFrameCapture(t, frame)
		data[len(data)-1] ^= 0x01
		reader, err := NewReader(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}
		if _, err := reader.Next(); !errors.Is(err, ErrCorruptFrame) {
			t.Errorf("Next error = %v, want ErrCorruptFrame", err)
		}
	})

	t.Run("truncated frame", func(t *testing.T) {
		t.Parallel()
		data := singleFrameCapture(t, frame)
		reader, err := NewReader(bytes.NewReader(data[:len(data)-2]))
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}
		if _, err := reader.Next(); !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("Next error = %v, want io.ErrUnexpectedEOF", err)
		}
	})

	t.Run("oversized frame", func(t *testing.T) {
		t.Parallel()
		data := singleFrameCapture(t, frame)
		copy(data[headerLength+1:headerLength+5], []byte{0xff, 0xff, 0xff, 0xff})
		reader, err := NewReader(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}
		if _, err := reader.Next(); !errors.Is(err, ErrCorruptFrame) {
			t.Errorf("Next error = %v, want ErrCorruptFrame", err)
		}
	})

	t.Run("unknown compression", func(t *testing.T) {
		t.Parallel()
		data := singleFrameCapture(t, frame)
		data[headerLength] = 9
		reader, err := NewReader(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}
		if _, err := reader.Next(); !errors.Is(err, ErrCorruptFrame) {
			t.Errorf("Next error = %v, want ErrCorruptFrame", err)
		}
	})
}

func TestNewReaderRejectsBadHeaders(t *testing.T) {
	t.Parallel()

	valid := singleFrameCapture(t, []byte{0x08, 0x10})

	notCapture := bytes.Clone(valid)
	notCapture[0] = 'X'
	if _, err := NewReader(bytes.NewReader(notCapture)); !errors.Is(err, ErrNotCapture) {
		t.Errorf("bad magic: error = %v, want ErrNotCapture", err)
	}

	if _, err := NewReader(bytes.NewReader(valid[:10])); !errors.Is(err, ErrNotCapture) {
		t.Errorf("short header: error = %v, want ErrNotCapture", err)
	}

	future := bytes.Clone(valid)
	future[4] = Version + 1
	if _, err := NewReader(bytes.NewReader(future)); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("future version: error = %v, want ErrUnsupportedVersion", err)
	}

	badFormat := bytes.Clone(valid)
	badFormat[5] = 200
	if _, err := NewReader(bytes.NewReader(badFormat)); err == nil {
		t.Error("unknown format: NewReader succeeded")
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	writer, err := NewWriter(&buffer, pluginproto.FormatJSON, CompressionLZ4)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	frames := []*pluginproto.PluginCommand{
		{Name: pluginproto.CommandName_GoToTab, Payload: &pluginproto.PluginCommand_GoToTabPayload{GoToTabPayload: 3}},
		{Name: pluginproto.CommandName_HideSelf, Payload: &pluginproto.PluginCommand_GoToTabPayload{GoToTabPayload: 1}},
		{Name: 99},
	}
	for _, frame := range frames {
		if err := writer.Write(frame); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := writer.WriteEncoded([]byte("not json")); err != nil {
		t.Fatalf("WriteEncoded: %v", err)
	}
	if err := writer.Write(&pluginproto.PluginCommand{Name: pluginproto.CommandName_QuitHost}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	report, err := Verify(&buffer, nil)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.Frames != 5 || report.Decoded != 2 {
		t.Errorf("Frames = %d, Decoded = %d, want 5 and 2", report.Frames, report.Decoded)
	}
	if len(report.Failures) != 3 {
		t.Fatalf("Failures = %v, want 3 entries", report.Failures)
	}
	if report.OK() {
		t.Error("OK() = true with failures")
	}

	wantIndexes := []int{1, 2, 3}
	for i, failure := range report.Failures {
		if failure.Index != wantIndexes[i] {
			t.Errorf("failure %d index = %d, want %d", i, failure.Index, wantIndexes[i])
		}
	}
	if !errors.Is(report.Failures[0].Err, plugincodec.ErrUnexpectedPayload) {
		t.Errorf("failure 0 = %v, want ErrUnexpectedPayload", report.Failures[0].Err)
	}
	if !errors.Is(report.Failures[1].Err, plugincodec.ErrUnrecognizedCommand) {
		t.Errorf("failure 1 = %v, want ErrUnrecognizedCommand", report.Failures[1].Err)
	}
	var codecErr *plugincodec.Error
	if errors.As(report.Failures[2].Err, &codecErr) {
		t.Errorf("failure 2 = %v, want a parse error rather than a codec error", report.Failures[2].Err)
	}
}

func TestVerifyDetectsVocabularyMismatch(t *testing.T) {
	t.Parallel()

	data := singleFrameCapture(t, []byte{0x08, 0x10})
	data[6] ^= 0xff

	report, err := Verify(bytes.NewReader(data), plugincodec.New())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(report.Failures) != 0 || report.Decoded != 1 {
		t.Errorf("report = %+v, want one clean frame", report)
	}
	if report.Header.MatchesVocabulary() || report.OK() {
		t.Error("altered fingerprint not detected")
	}
}

func TestVerifyStopsOnCorruption(t *testing.T) {
	t.Parallel()

	data := singleFrameCapture(t, []byte{0x08, 0x10})
	data[len(data)-1] ^= 0x01

	report, err := Verify(bytes.NewReader(data), nil)
	if !errors.Is(err, ErrCorruptFrame) {
		t.Fatalf("Verify error = %v, want ErrCorruptFrame", err)
	}
	if report.Frames != 0 {
		t.Errorf("Frames = %d, want 0", report.Frames)
	}
}

func TestCompressionRoundTrip(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte(`{"name":"GoToTab","go_to_tab_payload":3}`), 32)
	for _, tag := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		stored, applied, err := compress(data, tag)
		if err != nil {
			t.Fatalf("compress(%s): %v", tag, err)
		}
		if applied != tag {
			t.Errorf("compress(%s) applied %s", tag, applied)
		}
		restored, err := decompress(stored, applied, len(data))
		if err != nil {
			t.Fatalf("decompress(%s): %v", tag, err)
		}
		if !bytes.Equal(restored, data) {
			t.Errorf("%s round trip changed the data", tag)
		}
	}

	if _, err := decompress([]byte{1, 2, 3}, CompressionNone, 4); err == nil {
		t.Error("decompress(none) with wrong size succeeded")
	}
}

func TestZstdExpansionBounded(t *testing.T) {
	t.Parallel()

	oversized := make([]byte, MaxFrameLength+1)
	bomb := zstdEncoder.EncodeAll(oversized, nil)
	if len(bomb) >= 64*1024 {
		t.Fatalf("test frame is %d bytes, want a small stored frame", len(bomb))
	}

	small := bytes.Repeat([]byte("HideSelf"), 16)
	declared := zstdEncoder.EncodeAll(small, nil)
	trailing := append(append([]byte(nil), declared...), bomb...)

	tests := []struct {
		name   string
		stored []byte
		size   int
	}{
		{"size field smaller than content", bomb, 64},
		{"size field at maximum", bomb, MaxFrameLength},
		{"oversized frame after a matching one", trailing, len(small)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			restored, err := decompress(test.stored, CompressionZstd, test.size)
			if err == nil {
				t.Fatalf("decompress succeeded with %d bytes", len(restored))
			}
		})
	}
}

func TestParseCompression(t *testing.T) {
	t.Parallel()

	for _, tag := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		parsed, err := ParseCompression(tag.String())
		if err != nil || parsed != tag {
			t.Errorf("ParseCompression(%q) = %v, %v", tag, parsed, err)
		}
	}
	if _, err := ParseCompression("gzip"); err == nil {
		t.Error("ParseCompression(gzip) succeeded")
	}

	var tag Compression
	if err := tag.UnmarshalText([]byte("lz4")); err != nil || tag != CompressionLZ4 {
		t.Errorf("UnmarshalText(lz4) = %v, %v", tag, err)
	}
	if got := Compression(7).String(); got != "unknown(7)" {
		t.Errorf("String() = %q, want unknown(7)", got)
	}
}

func BenchmarkWriteZstd(b *testing.B) {
	envelope := testEnvelopes()[2]
	writer, err := NewWriter(io.Discard, pluginproto.FormatProto, CompressionZstd)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		if err := writer.Write(envelope); err != nil {
			b.Fatal(err)
		}
	}
}
