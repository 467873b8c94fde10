// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package plugincodec converts between wire envelopes
// (lib/pluginproto) and domain commands (lib/plugin).
//
// The wire envelope is a tag plus an optional one-of payload, and
// nothing in its schema ties a tag to its arm. [Codec.Decode] enforces
// that agreement: every tag accepts exactly one payload shape, either
// no payload or the single arm the vocabulary assigns to it. Any other
// combination is an [*Error] whose Kind says what went wrong:
//
//   - [ErrUnrecognizedCommand]: tag outside the vocabulary
//   - [ErrUnexpectedPayload]: payload on a tag that takes none
//   - [ErrMissingPayload]: no payload on a tag that requires one
//   - [ErrMismatchedPayload]: payload in another tag's arm
//   - [ErrMalformedPayload]: right arm, required inner field absent
//   - [ErrNestedConversion]: a [Nested] conversion rejected a sub-value
//   - [ErrMalformedSessionSwitch]: pane id without pane kind or the reverse
//
// [Codec.Encode] is the inverse. The domain types already fix which
// payload each command carries, so encoding fails only when a nested
// conversion does, when a strict range check trips, or when the value
// is not one of the plugin package's command types.
//
// # Numeric widths
//
// Tab indexes and pane ids are unsigned in the domain and int32 on the
// wire. By default both directions reinterpret the bits, which is what
// existing peers expect. [WithStrictNumericRange] rejects negative wire
// values and domain values above math.MaxInt32 with
// [ErrValueOutOfRange] instead.
//
// # Permissions
//
// Permission codes the [Nested] implementation does not recognize are
// dropped from a decoded RequestPluginPermissions rather than failing
// the message, so newer plugins can talk to older hosts.
// [WithStrictPermissions] makes them fail with [ErrNestedConversion].
//
// A [Codec] holds no mutable state and is safe for concurrent use. The
// package-level [Decode] and [Encode] use a default Codec.
package plugincodec
