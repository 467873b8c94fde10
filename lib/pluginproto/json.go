// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pluginproto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const jsonNameField = "name"

// MarshalJSON encodes the envelope as a JSON object with the tag's
// wire name under "name" and the payload, if any, under its arm's
// snake_case field name. Tags outside the vocabulary encode as their
// number.
func (c *PluginCommand) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteString(`{"name":`)
	if c.Name.Valid() {
		buffer.WriteString(strconv.Quote(c.Name.String()))
	} else {
		buffer.WriteString(strconv.FormatInt(int64(c.Name), 10))
	}
	if c.Payload != nil {
		arm := c.Payload.Arm()
		if !arm.Valid() {
			return nil, fmt.Errorf("payload arm %d is not part of the vocabulary", int32(arm))
		}
		if IsNilPayload(c.Payload) {
			return nil, fmt.Errorf("payload arm %s: nil wrapper", arm)
		}
		value, err := json.Marshal(c.Payload.value())
		if err != nil {
			return nil, fmt.Errorf("encoding payload arm %s: %w", arm, err)
		}
		buffer.WriteString(`,` + strconv.Quote(arm.String()) + `:`)
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// UnmarshalJSON decodes the JSON form into c, replacing its contents.
// The tag may be given by name or number; a missing tag is tag 0.
// Unknown keys and more than one payload key are errors.
func (c *PluginCommand) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("plugin command must be a JSON object")
	}
	*c = PluginCommand{}

	if raw, ok := fields[jsonNameField]; ok {
		name, err := parseJSONName(raw)
		if err != nil {
			return err
		}
		c.Name = name
	}

	for key, raw := range fields {
		if key == jsonNameField {
			continue
		}
		arm, err := ParseArm(key)
		if err != nil {
			return err
		}
		if c.Payload != nil {
			return fmt.Errorf("payload fields %s and %s are mutually exclusive", c.Payload.Arm(), arm)
		}
		payload, err := NewPayload(arm)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, payload.target()); err != nil {
			return fmt.Errorf("decoding payload arm %s: %w", arm, err)
		}
		c.Payload = payload
	}
	return nil
}

func parseJSONName(raw json.RawMessage) (CommandName, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return ParseCommandName(name)
	}
	var number int32
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, fmt.Errorf("command name must be a string or an integer: %s", raw)
	}
	return CommandName(number), nil
}
