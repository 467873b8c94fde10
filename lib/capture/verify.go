// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"errors"
	"fmt"
	"io"

	"github.com/bureau-foundation/pluginwire/lib/plugincodec"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

// Report summarizes a [Verify] pass.
type Report struct {
	Header Header

	// Frames is the number of frames read, including failed ones.
	Frames int

	// Decoded is the number of frames that parsed and decoded into a
	// domain command.
	Decoded int

	// Failures lists frames that parsed badly or failed to decode,
	// in file order.
	Failures []FrameFailure
}

// FrameFailure is one frame that did not decode.
type FrameFailure struct {
	Index int
	Err   error
}

func (f FrameFailure) Error() string {
	return fmt.Sprintf("frame %d: %v", f.Index, f.Err)
}

// OK reports whether every frame decoded and the capture was written
// against the current vocabulary.
func (r Report) OK() bool {
	return len(r.Failures) == 0 && r.Header.MatchesVocabulary()
}

// Verify replays every frame of a capture through codec. Per-frame
// parse and decode failures are collected in the report; structural
// damage (bad header, corrupt or truncated frame) stops the pass and
// is returned as an error alongside the partial report. A nil codec
// means plugincodec.New().
func Verify(input io.Reader, codec *plugincodec.Codec) (Report, error) {
	if codec == nil {
		codec = plugincodec.New()
	}
	reader, err := NewReader(input)
	if err != nil {
		return Report{}, err
	}
	report := Report{Header: reader.Header()}

	for {
		data, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return report, nil
		}
		if err != nil {
			return report, err
		}
		index := report.Frames
		report.Frames++

		var command pluginproto.PluginCommand
		if err := report.Header.Format.Unmarshal(data, &command); err != nil {
			report.Failures = append(report.Failures, FrameFailure{Index: index, Err: err})
			continue
		}
		if _, err := codec.Decode(&command); err != nil {
			report.Failures = append(report.Failures, FrameFailure{Index: index, Err: err})
			continue
		}
		report.Decoded++
	}
}
