// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
	"github.com/zeebo/blake3"
)

// File layout, all integers big-endian:
//
//	header: magic[4] version[1] format[1] fingerprint[32]
//	frame:  compression[1] size[4] storedSize[4] hash[32] stored[storedSize]
//
// size is the length of the encoded envelope before compression and
// hash is its frame-domain BLAKE3 keyed hash.
const (
	// Version is the capture format version this package writes.
	Version = 1

	headerLength      = 4 + 1 + 1 + 32
	frameHeaderLength = 1 + 4 + 4 + 32

	// MaxFrameLength bounds both size fields of a frame. Encoded
	// envelopes are small; anything near this limit is corruption.
	MaxFrameLength = 16 * 1024 * 1024
)

var magic = [4]byte{'P', 'W', 'C', 'P'}

// frameDomainKey is the ASCII domain name zero-padded to 32 bytes.
var frameDomainKey = [32]byte{
	'p', 'l', 'u', 'g', 'i', 'n', 'w', 'i', 'r', 'e', '.', 'c', 'a', 'p', 't', 'u',
	'r', 'e', '.', 'f', 'r', 'a', 'm', 'e', 0, 0, 0, 0, 0, 0, 0, 0,
}

var (
	// ErrNotCapture is returned when a stream does not start with the
	// capture magic.
	ErrNotCapture = errors.New("not a plugin command capture")

	// ErrUnsupportedVersion is returned for capture files written by a
	// newer format version.
	ErrUnsupportedVersion = errors.New("unsupported capture version")

	// ErrCorruptFrame is returned when a frame's header is out of
	// range, its payload does not decompress, or its hash does not
	// match.
	ErrCorruptFrame = errors.New("corrupt capture frame")
)

// Header describes a capture file.
type Header struct {
	Version uint8
	Format  pluginproto.Format

	// Fingerprint is the vocabulary fingerprint of the writer.
	Fingerprint pluginproto.Fingerprint
}

// MatchesVocabulary reports whether the capture was written against
// the vocabulary this binary was built with.
func (h Header) MatchesVocabulary() bool {
	return h.Fingerprint == pluginproto.VocabularyFingerprint()
}

func hashFrame(data []byte) [32]byte {
	hasher, err := blake3.NewKeyed(frameDomainKey[:])
	if err != nil {
		panic("capture: blake3.NewKeyed failed: " + err.Error())
	}
	hasher.Write(data)
	var digest [32]byte
	hasher.Sum(digest[:0])
	return digest
}

// Writer appends encoded envelopes to a capture stream. It is not safe
// for concurrent use.
type Writer struct {
	output      io.Writer
	format      pluginproto.Format
	compression Compression
	frames      int
}

// NewWriter writes a capture header to output and returns a Writer
// that encodes envelopes in format and compresses frames with
// compression.
func NewWriter(output io.Writer, format pluginproto.Format, compression Compression) (*Writer, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("unknown wire format %d", uint8(format))
	}
	if compression > CompressionZstd {
		return nil, fmt.Errorf("unsupported compression tag: %d", compression)
	}

	var header [headerLength]byte
	copy(header[0:4], magic[:])
	header[4] = Version
	header[5] = byte(format)
	fingerprint := pluginproto.VocabularyFingerprint()
	copy(header[6:], fingerprint[:])
	if _, err := output.Write(header[:]); err != nil {
		return nil, fmt.Errorf("writing capture header: %w", err)
	}
	return &Writer{output: output, format: format, compression: compression}, nil
}

// Write encodes command and appends it as one frame.
func (w *Writer) Write(command *pluginproto.PluginCommand) error {
	data, err := w.format.Marshal(command)
	if err != nil {
		return fmt.Errorf("encoding %s as %s: %w", command.Name, w.format, err)
	}
	return w.WriteEncoded(data)
}

// WriteEncoded appends data, which must already be an envelope in the
// writer's format, as one frame. It lets a capture record bytes that
// do not parse, for negative test corpora.
func (w *Writer) WriteEncoded(data []byte) error {
	if len(data) > MaxFrameLength {
		return fmt.Errorf("frame of %d bytes exceeds maximum %d", len(data), MaxFrameLength)
	}
	stored, tag, err := compress(data, w.compression)
	if err != nil {
		return fmt.Errorf("compressing frame %d: %w", w.frames, err)
	}

	var header [frameHeaderLength]byte
	header[0] = byte(tag)
	binary.BigEndian.PutUint32(header[1:5], uint32(len(data)))
	binary.BigEndian.PutUint32(header[5:9], uint32(len(stored)))
	digest := hashFrame(data)
	copy(header[9:], digest[:])

	if _, err := w.output.Write(header[:]); err != nil {
		return fmt.Errorf("writing frame %d header: %w", w.frames, err)
	}
	if _, err := w.output.Write(stored); err != nil {
		return fmt.Errorf("writing frame %d: %w", w.frames, err)
	}
	w.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int { return w.frames }

// Reader reads frames from a capture stream. It is not safe for
// concurrent use.
type Reader struct {
	input  io.Reader
	header Header
	frames int
}

// NewReader reads and validates the capture header.
func NewReader(input io.Reader) (*Reader, error) {
	var header [headerLength]byte
	if _, err := io.ReadFull(input, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: stream is shorter than the header", ErrNotCapture)
		}
		return nil, fmt.Errorf("reading capture header: %w", err)
	}
	if [4]byte(header[0:4]) != magic {
		return nil, ErrNotCapture
	}
	if header[4] == 0 || header[4] > Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header[4])
	}
	format := pluginproto.Format(header[5])
	if !format.Valid() {
		return nil, fmt.Errorf("capture header names unknown wire format %d", header[5])
	}
	reader := &Reader{
		input:  input,
		header: Header{Version: header[4], Format: format},
	}
	copy(reader.header.Fingerprint[:], header[6:])
	return reader, nil
}

// Header returns the capture's header.
func (r *Reader) Header() Header { return r.header }

// Next returns the next frame's encoded envelope. It returns io.EOF
// after the last frame and io.ErrUnexpectedEOF for a truncated frame.
func (r *Reader) Next() ([]byte, error) {
	var header [frameHeaderLength]byte
	if _, err := io.ReadFull(r.input, header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading frame %d header: %w", r.frames, err)
	}

	tag := Compression(header[0])
	size := binary.BigEndian.Uint32(header[1:5])
	storedSize := binary.BigEndian.Uint32(header[5:9])
	if size > MaxFrameLength || storedSize > MaxFrameLength {
		return nil, fmt.Errorf("%w: frame %d declares %d/%d bytes, maximum is %d",
			ErrCorruptFrame, r.frames, size, storedSize, MaxFrameLength)
	}

	stored := make([]byte, storedSize)
	if _, err := io.ReadFull(r.input, stored); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("reading frame %d: %w", r.frames, err)
	}

	data, err := decompress(stored, tag, int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: frame %d: %v", ErrCorruptFrame, r.frames, err)
	}
	if hashFrame(data) != [32]byte(header[9:]) {
		return nil, fmt.Errorf("%w: frame %d hash mismatch", ErrCorruptFrame, r.frames)
	}
	r.frames++
	return data, nil
}

// Read returns the next frame parsed as an envelope in the capture's
// format. A parse failure is returned with the frame consumed, so the
// caller may continue with the following frame.
func (r *Reader) Read() (*pluginproto.PluginCommand, error) {
	data, err := r.Next()
	if err != nil {
		return nil, err
	}
	var command pluginproto.PluginCommand
	if err := r.header.Format.Unmarshal(data, &command); err != nil {
		return nil, fmt.Errorf("parsing frame %d as %s: %w", r.frames-1, r.header.Format, err)
	}
	return &command, nil
}

// Frames returns the number of frames read so far.
func (r *Reader) Frames() int { return r.frames }
