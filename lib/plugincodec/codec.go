// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugincodec

import (
	"fmt"
	"math"

	"github.com/bureau-foundation/pluginwire/lib/plugin"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

// Codec converts plugin commands in both directions. The zero value is
// not usable; construct with [New].
type Codec struct {
	nested             Nested
	strictNumericRange bool
	strictPermissions  bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithNested replaces [DefaultNested] as the nested value converter.
func WithNested(nested Nested) Option {
	return func(c *Codec) { c.nested = nested }
}

// WithStrictNumericRange rejects negative wire integers decoded into
// unsigned domain fields, and domain values above math.MaxInt32 on
// encode, with [ErrValueOutOfRange].
func WithStrictNumericRange() Option {
	return func(c *Codec) { c.strictNumericRange = true }
}

// WithStrictPermissions fails RequestPluginPermissions decoding with
// [ErrNestedConversion] when any permission code is unrecognized,
// instead of dropping the code.
func WithStrictPermissions() Option {
	return func(c *Codec) { c.strictPermissions = true }
}

// New returns a Codec with the given options applied.
func New(options ...Option) *Codec {
	c := &Codec{nested: DefaultNested{}}
	for _, option := range options {
		option(c)
	}
	return c
}

var defaultCodec = New()

// Decode converts a wire envelope with the default Codec.
func Decode(envelope *pluginproto.PluginCommand) (plugin.Command, error) {
	return defaultCodec.Decode(envelope)
}

// Encode converts a domain command with the default Codec.
func Encode(command plugin.Command) (*pluginproto.PluginCommand, error) {
	return defaultCodec.Encode(command)
}

// narrow converts a wire int32 to a domain uint32.
func (c *Codec) narrow(name pluginproto.CommandName, value int32) (uint32, error) {
	if c.strictNumericRange && value < 0 {
		return 0, newError(ErrValueOutOfRange, name, fmt.Errorf("%d is negative", value))
	}
	return uint32(value), nil
}

// widen converts a domain uint32 to a wire int32.
func (c *Codec) widen(name pluginproto.CommandName, value uint32) (int32, error) {
	if c.strictNumericRange && value > math.MaxInt32 {
		return 0, newError(ErrValueOutOfRange, name, fmt.Errorf("%d exceeds int32", value))
	}
	return int32(value), nil
}
