// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the CBOR configuration shared by every pluginwire
// package that reads or writes CBOR.
//
// CBOR appears in three places: the CBOR form of a plugin command
// envelope (lib/pluginproto), the vocabulary table that is hashed into
// a fingerprint, and capture file headers (lib/capture). All three must
// produce identical bytes for identical values, so encoding uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// # Struct Tags
//
// A `json` tag names the field for both JSON and CBOR; fxamacker/cbor
// falls back to it when no `cbor` tag is present. Wire messages that
// also have a JSON form carry only `json` tags. A `cbor` tag marks a
// CBOR-only type, typically with integer keys (`cbor:"1,keyasint"`).
// A field never carries both.
package codec
