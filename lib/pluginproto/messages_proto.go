// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pluginproto

import "google.golang.org/protobuf/encoding/protowire"

func (m *SubscribePayload) appendProto(b []byte) []byte {
	if m == nil || m.Subscriptions == nil {
		return b
	}
	return appendMessage(b, 1, m.Subscriptions)
}

func (m *SubscribePayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeMessageField(&m.Subscriptions, wireType, b)
		}
		return 0, nil
	})
}

func (m *UnsubscribePayload) appendProto(b []byte) []byte {
	if m == nil || m.Subscriptions == nil {
		return b
	}
	return appendMessage(b, 1, m.Subscriptions)
}

func (m *UnsubscribePayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeMessageField(&m.Subscriptions, wireType, b)
		}
		return 0, nil
	})
}

func (m *EventNameList) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendPackedEnums(b, 1, m.EventTypes)
}

func (m *EventNameList) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeRepeatedEnumField(&m.EventTypes, wireType, b)
		}
		return 0, nil
	})
}

func (m *OpenFilePayload) appendProto(b []byte) []byte {
	if m == nil || m.FileToOpen == nil {
		return b
	}
	return appendMessage(b, 1, m.FileToOpen)
}

func (m *OpenFilePayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeMessageField(&m.FileToOpen, wireType, b)
		}
		return 0, nil
	})
}

func (m *File) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Path)
	b = appendOptionalInt32(b, 2, m.LineNumber)
	return appendOptionalString(b, 3, m.Cwd)
}

func (m *File) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		switch number {
		case 1:
			return consumeStringField(&m.Path, wireType, b)
		case 2:
			return consumeOptionalInt32Field(&m.LineNumber, wireType, b)
		case 3:
			return consumeOptionalStringField(&m.Cwd, wireType, b)
		}
		return 0, nil
	})
}

func (m *OpenCommandPanePayload) appendProto(b []byte) []byte {
	if m == nil || m.CommandToRun == nil {
		return b
	}
	return appendMessage(b, 1, m.CommandToRun)
}

func (m *OpenCommandPanePayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeMessageField(&m.CommandToRun, wireType, b)
		}
		return 0, nil
	})
}

func (m *CommandSpec) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Path)
	b = appendStrings(b, 2, m.Args)
	return appendOptionalString(b, 3, m.Cwd)
}

func (m *CommandSpec) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		switch number {
		case 1:
			return consumeStringField(&m.Path, wireType, b)
		case 2:
			return consumeRepeatedStringField(&m.Args, wireType, b)
		case 3:
			return consumeOptionalStringField(&m.Cwd, wireType, b)
		}
		return 0, nil
	})
}

func (m *SwitchTabToPayload) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendInt32(b, 1, m.TabIndex)
}

func (m *SwitchTabToPayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeInt32Field(&m.TabIndex, wireType, b)
		}
		return 0, nil
	})
}

func (m *SetTimeoutPayload) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendDouble(b, 1, m.Seconds)
}

func (m *SetTimeoutPayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeDoubleField(&m.Seconds, wireType, b)
		}
		return 0, nil
	})
}

func (m *ExecCmdPayload) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendStrings(b, 1, m.CommandLine)
}

func (m *ExecCmdPayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeRepeatedStringField(&m.CommandLine, wireType, b)
		}
		return 0, nil
	})
}

func (m *PluginMessagePayload) appendProto(b []byte) []byte {
	if m == nil || m.Message == nil {
		return b
	}
	return appendMessage(b, 1, m.Message)
}

func (m *PluginMessagePayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeMessageField(&m.Message, wireType, b)
		}
		return 0, nil
	})
}

func (m *Message) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Payload)
	return appendOptionalString(b, 3, m.WorkerName)
}

func (m *Message) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		switch number {
		case 1:
			return consumeStringField(&m.Name, wireType, b)
		case 2:
			return consumeStringField(&m.Payload, wireType, b)
		case 3:
			return consumeOptionalStringField(&m.WorkerName, wireType, b)
		}
		return 0, nil
	})
}

func (m *SwitchToModePayload) appendProto(b []byte) []byte {
	if m == nil || m.InputMode == nil {
		return b
	}
	return appendMessage(b, 1, m.InputMode)
}

func (m *SwitchToModePayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeMessageField(&m.InputMode, wireType, b)
		}
		return 0, nil
	})
}

func (m *InputModeMessage) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendInt32(b, 1, m.InputMode)
}

func (m *InputModeMessage) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeInt32Field(&m.InputMode, wireType, b)
		}
		return 0, nil
	})
}

func (m *ResizePayload) appendProto(b []byte) []byte {
	if m == nil || m.Resize == nil {
		return b
	}
	return appendMessage(b, 1, m.Resize)
}

func (m *ResizePayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeMessageField(&m.Resize, wireType, b)
		}
		return 0, nil
	})
}

func (m *ResizeMessage) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendInt32(b, 1, m.ResizeAction)
	return appendOptionalInt32(b, 2, m.Direction)
}

func (m *ResizeMessage) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		switch number {
		case 1:
			return consumeInt32Field(&m.ResizeAction, wireType, b)
		case 2:
			return consumeOptionalInt32Field(&m.Direction, wireType, b)
		}
		return 0, nil
	})
}

func (m *MovePayload) appendProto(b []byte) []byte {
	if m == nil || m.Direction == nil {
		return b
	}
	return appendMessage(b, 1, m.Direction)
}

func (m *MovePayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeMessageField(&m.Direction, wireType, b)
		}
		return 0, nil
	})
}

func (m *MoveDirection) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendInt32(b, 1, m.Direction)
}

func (m *MoveDirection) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeInt32Field(&m.Direction, wireType, b)
		}
		return 0, nil
	})
}

func (m *IdAndNewName) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendInt32(b, 1, m.Id)
	return appendString(b, 2, m.NewName)
}

func (m *IdAndNewName) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		switch number {
		case 1:
			return consumeInt32Field(&m.Id, wireType, b)
		case 2:
			return consumeStringField(&m.NewName, wireType, b)
		}
		return 0, nil
	})
}

func (m *PaneIdAndShouldFloat) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendInt32(b, 1, m.PaneId)
	return appendBool(b, 2, m.ShouldFloat)
}

func (m *PaneIdAndShouldFloat) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		switch number {
		case 1:
			return consumeInt32Field(&m.PaneId, wireType, b)
		case 2:
			return consumeBoolField(&m.ShouldFloat, wireType, b)
		}
		return 0, nil
	})
}

func (m *RequestPluginPermissionPayload) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendPackedEnums(b, 1, m.Permissions)
}

func (m *RequestPluginPermissionPayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		if number == 1 {
			return consumeRepeatedEnumField(&m.Permissions, wireType, b)
		}
		return 0, nil
	})
}

func (m *SwitchSessionPayload) appendProto(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendOptionalString(b, 1, m.Name)
	b = appendOptionalUint32(b, 2, m.TabPosition)
	b = appendOptionalUint32(b, 3, m.PaneId)
	return appendOptionalBool(b, 4, m.PaneIdIsPlugin)
}

func (m *SwitchSessionPayload) consumeProto(data []byte) error {
	return consumeFields(data, func(number protowire.Number, wireType protowire.Type, b []byte) (int, error) {
		switch number {
		case 1:
			return consumeOptionalStringField(&m.Name, wireType, b)
		case 2:
			return consumeOptionalUint32Field(&m.TabPosition, wireType, b)
		case 3:
			return consumeOptionalUint32Field(&m.PaneId, wireType, b)
		case 4:
			return consumeOptionalBoolField(&m.PaneIdIsPlugin, wireType, b)
		}
		return 0, nil
	})
}
