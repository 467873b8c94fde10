// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package capture reads and writes capture files: ordered sequences of
// encoded plugin command envelopes, used as compatibility corpora
// between plugin and host builds.
//
// A capture starts with a header naming the wire format of every frame
// and the vocabulary fingerprint of the writer
// ([pluginproto.VocabularyFingerprint]), so a replay against a build
// with a different command vocabulary is detected rather than
// misread. Each frame carries one encoded envelope, optionally LZ4 or
// zstd compressed, and a BLAKE3 keyed hash of the uncompressed bytes.
//
// [Verify] replays a capture through a [plugincodec.Codec] and reports
// which frames fail to decode.
package capture
