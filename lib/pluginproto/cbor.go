// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pluginproto

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/pluginwire/lib/codec"
)

// cborEnvelope is the CBOR form of PluginCommand. Integer keys keep
// the encoding compact; the arm's value is encoded separately so its
// Go type can be chosen from the arm before decoding.
type cborEnvelope struct {
	Name  CommandName      `cbor:"1,keyasint"`
	Arm   Arm              `cbor:"2,keyasint,omitempty"`
	Value codec.RawMessage `cbor:"3,keyasint,omitempty"`
}

// MarshalCBOR encodes the envelope as {1: tag, 2: arm, 3: value}.
// Keys 2 and 3 are omitted together when there is no payload.
func (c *PluginCommand) MarshalCBOR() ([]byte, error) {
	envelope := cborEnvelope{Name: c.Name}
	if c.Payload != nil {
		if IsNilPayload(c.Payload) {
			return nil, fmt.Errorf("payload arm %s: nil wrapper", c.Payload.Arm())
		}
		value, err := codec.Marshal(c.Payload.value())
		if err != nil {
			return nil, fmt.Errorf("encoding payload arm %s: %w", c.Payload.Arm(), err)
		}
		envelope.Arm = c.Payload.Arm()
		envelope.Value = value
	}
	return codec.Marshal(envelope)
}

// UnmarshalCBOR decodes the CBOR form into c, replacing its contents.
func (c *PluginCommand) UnmarshalCBOR(data []byte) error {
	var envelope cborEnvelope
	if err := codec.Unmarshal(data, &envelope); err != nil {
		return err
	}
	*c = PluginCommand{Name: envelope.Name}
	if envelope.Arm == ArmNone {
		if len(envelope.Value) > 0 {
			return errors.New("payload value present without a payload arm")
		}
		return nil
	}
	if len(envelope.Value) == 0 {
		return fmt.Errorf("payload arm %s has no value", envelope.Arm)
	}
	payload, err := NewPayload(envelope.Arm)
	if err != nil {
		return err
	}
	if err := codec.Unmarshal(envelope.Value, payload.target()); err != nil {
		return fmt.Errorf("decoding payload arm %s: %w", envelope.Arm, err)
	}
	c.Payload = payload
	return nil
}
