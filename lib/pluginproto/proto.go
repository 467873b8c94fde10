// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pluginproto

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// protoMessage is implemented by every nested wire message. append
// methods are nil-safe: a nil message appends nothing. consume merges
// into the receiver the way protobuf merges repeated occurrences of a
// singular message field.
type protoMessage interface {
	appendProto(b []byte) []byte
	consumeProto(b []byte) error
}

const envelopeNameField protowire.Number = 1

// MarshalProto encodes the envelope in protobuf binary form.
func (c *PluginCommand) MarshalProto() ([]byte, error) {
	return c.AppendProto(nil)
}

// AppendProto appends the protobuf binary form of the envelope to b.
func (c *PluginCommand) AppendProto(b []byte) ([]byte, error) {
	b = appendInt32(b, envelopeNameField, c.Name)
	if c.Payload == nil {
		return b, nil
	}
	if IsNilPayload(c.Payload) {
		return nil, fmt.Errorf("payload arm %s: nil wrapper", c.Payload.Arm())
	}
	number := protowire.Number(c.Payload.Arm())
	switch value := c.Payload.value().(type) {
	case bool:
		b = protowire.AppendTag(b, number, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(value))
	case int32:
		b = protowire.AppendTag(b, number, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(value)))
	case string:
		b = protowire.AppendTag(b, number, protowire.BytesType)
		b = protowire.AppendString(b, value)
	case []byte:
		b = protowire.AppendTag(b, number, protowire.BytesType)
		b = protowire.AppendBytes(b, value)
	case protoMessage:
		b = protowire.AppendTag(b, number, protowire.BytesType)
		b = protowire.AppendBytes(b, value.appendProto(nil))
	default:
		return nil, fmt.Errorf("payload arm %s: unsupported value type %T", c.Payload.Arm(), value)
	}
	return b, nil
}

// UnmarshalProto decodes the protobuf binary form into c, replacing
// its contents. Unknown fields are skipped. When several one-of arms
// appear the last one wins.
func (c *PluginCommand) UnmarshalProto(data []byte) error {
	*c = PluginCommand{}
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == envelopeNameField {
			if wireType != protowire.VarintType {
				return 0, nil
			}
			value, n, err := consumeInt32(b)
			c.Name = CommandName(value)
			return n, err
		}
		payload, err := NewPayload(Arm(number))
		if err != nil {
			return 0, nil
		}
		n, err := consumePayloadValue(payload.target(), wireType, b)
		if err != nil {
			return 0, fmt.Errorf("payload arm %s: %w", payload.Arm(), err)
		}
		if n > 0 {
			c.Payload = payload
		}
		return n, nil
	})
}

// consumePayloadValue decodes one arm value into target. It returns 0
// without error when the wire type does not fit the arm, which the
// caller treats as an unknown field.
func consumePayloadValue(target any, wireType protowire.Type, b []byte) (int, error) {
	switch target := target.(type) {
	case *bool:
		if wireType != protowire.VarintType {
			return 0, nil
		}
		value, n, err := consumeVarint(b)
		*target = protowire.DecodeBool(value)
		return n, err
	case *int32:
		if wireType != protowire.VarintType {
			return 0, nil
		}
		value, n, err := consumeInt32(b)
		*target = value
		return n, err
	case *string:
		if wireType != protowire.BytesType {
			return 0, nil
		}
		value, n, err := consumeString(b)
		*target = value
		return n, err
	case *[]byte:
		if wireType != protowire.BytesType {
			return 0, nil
		}
		value, n, err := consumeBytes(b)
		*target = value
		return n, err
	case protoMessage:
		if wireType != protowire.BytesType {
			return 0, nil
		}
		return consumeMessage(b, target)
	default:
		return 0, fmt.Errorf("unsupported decode target %T", target)
	}
}

// consumeFields walks the fields of one message. visit returns the
// number of bytes it consumed after the tag, or 0 to have the field
// skipped as unknown.
func consumeFields(data []byte, visit func(number protowire.Number, wireType protowire.Type, b []byte) (int, error)) error {
	for len(data) > 0 {
		number, wireType, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		n, err := visit(number, wireType, data)
		if err != nil {
			return err
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(number, wireType, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
		}
		data = data[n:]
	}
	return nil
}

var errInvalidUTF8 = errors.New("string field contains invalid UTF-8")

func consumeVarint(b []byte) (uint64, int, error) {
	value, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return value, n, nil
}

// consumeInt32 truncates to 32 bits, as protobuf does for int32 fields
// and enums.
func consumeInt32(b []byte) (int32, int, error) {
	value, n, err := consumeVarint(b)
	return int32(value), n, err
}

func consumeBytes(b []byte) ([]byte, int, error) {
	value, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	if len(value) == 0 {
		return nil, n, nil
	}
	return append([]byte(nil), value...), n, nil
}

func consumeString(b []byte) (string, int, error) {
	value, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	if !utf8.Valid(value) {
		return "", 0, errInvalidUTF8
	}
	return string(value), n, nil
}

func consumeMessage(b []byte, message protoMessage) (int, error) {
	value, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := message.consumeProto(value); err != nil {
		return 0, err
	}
	return n, nil
}

// consumeEnums decodes a repeated enum field in either packed or
// unpacked form, appending to values.
func consumeEnums[E ~int32](values []E, wireType protowire.Type, b []byte) ([]E, int, error) {
	switch wireType {
	case protowire.VarintType:
		value, n, err := consumeInt32(b)
		if err != nil {
			return values, 0, err
		}
		return append(values, E(value)), n, nil
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return values, 0, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			value, m, err := consumeInt32(packed)
			if err != nil {
				return values, 0, err
			}
			values = append(values, E(value))
			packed = packed[m:]
		}
		return values, n, nil
	default:
		return values, 0, nil
	}
}

// Field encoders. Scalars follow proto3 implicit presence and skip
// zero values; the optional variants emit whenever the pointer is set.

func appendInt32[E ~int32](b []byte, number protowire.Number, value E) []byte {
	if value == 0 {
		return b
	}
	b = protowire.AppendTag(b, number, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(value)))
}

func appendOptionalInt32[E ~int32](b []byte, number protowire.Number, value *E) []byte {
	if value == nil {
		return b
	}
	b = protowire.AppendTag(b, number, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(*value)))
}

func appendOptionalUint32(b []byte, number protowire.Number, value *uint32) []byte {
	if value == nil {
		return b
	}
	b = protowire.AppendTag(b, number, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*value))
}

func appendBool(b []byte, number protowire.Number, value bool) []byte {
	if !value {
		return b
	}
	b = protowire.AppendTag(b, number, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendOptionalBool(b []byte, number protowire.Number, value *bool) []byte {
	if value == nil {
		return b
	}
	b = protowire.AppendTag(b, number, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(*value))
}

func appendString(b []byte, number protowire.Number, value string) []byte {
	if value == "" {
		return b
	}
	b = protowire.AppendTag(b, number, protowire.BytesType)
	return protowire.AppendString(b, value)
}

func appendOptionalString(b []byte, number protowire.Number, value *string) []byte {
	if value == nil {
		return b
	}
	b = protowire.AppendTag(b, number, protowire.BytesType)
	return protowire.AppendString(b, *value)
}

func appendStrings(b []byte, number protowire.Number, values []string) []byte {
	for _, value := range values {
		b = protowire.AppendTag(b, number, protowire.BytesType)
		b = protowire.AppendString(b, value)
	}
	return b
}

func appendDouble(b []byte, number protowire.Number, value float64) []byte {
	bits := math.Float64bits(value)
	if bits == 0 {
		return b
	}
	b = protowire.AppendTag(b, number, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, bits)
}

func appendPackedEnums[E ~int32](b []byte, number protowire.Number, values []E) []byte {
	if len(values) == 0 {
		return b
	}
	var packed []byte
	for _, value := range values {
		packed = protowire.AppendVarint(packed, uint64(int64(value)))
	}
	b = protowire.AppendTag(b, number, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendMessage(b []byte, number protowire.Number, message protoMessage) []byte {
	b = protowire.AppendTag(b, number, protowire.BytesType)
	return protowire.AppendBytes(b, message.appendProto(nil))
}

// Field decoders. Each returns 0 without error when the wire type does
// not match the field's declared type.

func consumeInt32Field[E ~int32](dst *E, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.VarintType {
		return 0, nil
	}
	value, n, err := consumeInt32(b)
	*dst = E(value)
	return n, err
}

func consumeOptionalInt32Field[E ~int32](dst **E, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.VarintType {
		return 0, nil
	}
	value, n, err := consumeInt32(b)
	converted := E(value)
	*dst = &converted
	return n, err
}

func consumeOptionalUint32Field(dst **uint32, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.VarintType {
		return 0, nil
	}
	value, n, err := consumeVarint(b)
	converted := uint32(value)
	*dst = &converted
	return n, err
}

func consumeBoolField(dst *bool, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.VarintType {
		return 0, nil
	}
	value, n, err := consumeVarint(b)
	*dst = protowire.DecodeBool(value)
	return n, err
}

func consumeOptionalBoolField(dst **bool, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.VarintType {
		return 0, nil
	}
	value, n, err := consumeVarint(b)
	converted := protowire.DecodeBool(value)
	*dst = &converted
	return n, err
}

func consumeStringField(dst *string, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.BytesType {
		return 0, nil
	}
	value, n, err := consumeString(b)
	*dst = value
	return n, err
}

func consumeOptionalStringField(dst **string, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.BytesType {
		return 0, nil
	}
	value, n, err := consumeString(b)
	if err != nil {
		return 0, err
	}
	*dst = &value
	return n, nil
}

func consumeRepeatedStringField(dst *[]string, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.BytesType {
		return 0, nil
	}
	value, n, err := consumeString(b)
	if err != nil {
		return 0, err
	}
	*dst = append(*dst, value)
	return n, nil
}

func consumeDoubleField(dst *float64, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.Fixed64Type {
		return 0, nil
	}
	bits, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = math.Float64frombits(bits)
	return n, nil
}

func consumeRepeatedEnumField[E ~int32](dst *[]E, wireType protowire.Type, b []byte) (int, error) {
	values, n, err := consumeEnums(*dst, wireType, b)
	if err != nil {
		return 0, err
	}
	*dst = values
	return n, nil
}

// consumeMessageField decodes a singular sub-message, allocating it on
// first occurrence and merging later occurrences into it.
func consumeMessageField[T any, P interface {
	*T
	protoMessage
}](dst *P, wireType protowire.Type, b []byte) (int, error) {
	if wireType != protowire.BytesType {
		return 0, nil
	}
	if *dst == nil {
		*dst = P(new(T))
	}
	return consumeMessage(b, *dst)
}
