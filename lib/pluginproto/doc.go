// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pluginproto defines the wire envelope for plugin commands
// and its three serializations.
//
// A [PluginCommand] is a flat pair: a [CommandName] tag and at most one
// [Payload] arm. The wire format cannot express which arm belongs to
// which tag; that agreement lives in the vocabulary table returned by
// [Vocabulary], and lib/plugincodec enforces it when converting to the
// domain model in lib/plugin.
//
// The envelope and its nested messages serialize three ways:
//
//   - Protobuf binary ([PluginCommand.MarshalProto]). Field 1 is the
//     tag and the one-of arms occupy fields 2 through 39. Encoding
//     follows proto3 implicit presence: zero scalars are omitted,
//     fields declared optional are emitted whenever set. Decoding skips
//     unknown fields and keeps the last one-of arm seen.
//   - CBOR ([PluginCommand.MarshalCBOR]). An integer-keyed map
//     {1: tag, 2: arm, 3: value} through lib/codec's Core Deterministic
//     Encoding, so the same envelope always produces the same bytes.
//   - JSON ([PluginCommand.MarshalJSON]). The tag by name under "name"
//     and the arm under its snake_case field name, matching the
//     protobuf JSON mapping of the one-of.
//
// Serialization checks only that the bytes are well formed. An
// envelope whose arm disagrees with its tag serializes and parses
// without complaint.
package pluginproto
