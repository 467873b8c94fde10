// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugincodec

import (
	"errors"
	"fmt"
	"math"

	"github.com/bureau-foundation/pluginwire/lib/plugin"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

// Nested converts the sub-values a command payload is built from. The
// codec calls it for every nested value and reports any error as
// [ErrNestedConversion] with the error attached unchanged.
//
// FromWire methods receive non-nil messages; the codec reports absent
// required messages as [ErrMalformedPayload] before calling them.
type Nested interface {
	EventTypeFromWire(pluginproto.EventType) (plugin.EventType, error)
	EventTypeToWire(plugin.EventType) (pluginproto.EventType, error)

	FileFromWire(*pluginproto.File) (plugin.FileToOpen, error)
	FileToWire(plugin.FileToOpen) (*pluginproto.File, error)

	CommandFromWire(*pluginproto.CommandSpec) (plugin.CommandToRun, error)
	CommandToWire(plugin.CommandToRun) (*pluginproto.CommandSpec, error)

	MessageFromWire(*pluginproto.Message) (plugin.PluginMessage, error)
	MessageToWire(plugin.PluginMessage) (*pluginproto.Message, error)

	InputModeFromWire(*pluginproto.InputModeMessage) (plugin.InputMode, error)
	InputModeToWire(plugin.InputMode) (*pluginproto.InputModeMessage, error)

	ResizeFromWire(*pluginproto.ResizeMessage) (plugin.ResizeAction, error)
	ResizeToWire(plugin.ResizeAction) (*pluginproto.ResizeMessage, error)

	ResizeStrategyFromWire(*pluginproto.ResizeMessage) (plugin.ResizeStrategy, error)
	ResizeStrategyToWire(plugin.ResizeStrategy) (*pluginproto.ResizeMessage, error)

	DirectionFromWire(*pluginproto.MoveDirection) (plugin.Direction, error)
	DirectionToWire(plugin.Direction) (*pluginproto.MoveDirection, error)

	PermissionFromWire(pluginproto.PermissionType) (plugin.PermissionType, error)
	PermissionToWire(plugin.PermissionType) (pluginproto.PermissionType, error)
}

// ErrUnknownValue is wrapped by DefaultNested when an enumeration value
// has no counterpart on the other side.
var ErrUnknownValue = errors.New("unknown enumeration value")

// ErrResizeDirection is returned by DefaultNested.ResizeFromWire when a
// plain resize carries a direction. Directional resizes use
// ResizeWithDirection.
var ErrResizeDirection = errors.New("resize cannot have a direction")

// DefaultNested is the standard [Nested] implementation. Wire and
// domain enumerations share numbering, so enum conversion is a range
// check. Absent optional strings on the wire map to the empty string
// in the domain and back.
type DefaultNested struct{}

var _ Nested = DefaultNested{}

func (DefaultNested) EventTypeFromWire(wire pluginproto.EventType) (plugin.EventType, error) {
	return enumFromWire[plugin.EventType](wire, "event type")
}

func (DefaultNested) EventTypeToWire(eventType plugin.EventType) (pluginproto.EventType, error) {
	return enumToWire[pluginproto.EventType](eventType, "event type")
}

func (DefaultNested) FileFromWire(wire *pluginproto.File) (plugin.FileToOpen, error) {
	file := plugin.FileToOpen{Path: wire.Path, Cwd: stringValue(wire.Cwd)}
	if wire.LineNumber != nil {
		if *wire.LineNumber < 0 {
			return plugin.FileToOpen{}, fmt.Errorf("line number %d is negative", *wire.LineNumber)
		}
		line := int(*wire.LineNumber)
		file.LineNumber = &line
	}
	return file, nil
}

func (DefaultNested) FileToWire(file plugin.FileToOpen) (*pluginproto.File, error) {
	wire := &pluginproto.File{Path: file.Path, Cwd: optionalString(file.Cwd)}
	if file.LineNumber != nil {
		line := *file.LineNumber
		if line < 0 || line > math.MaxInt32 {
			return nil, fmt.Errorf("line number %d does not fit the wire format", line)
		}
		wireLine := int32(line)
		wire.LineNumber = &wireLine
	}
	return wire, nil
}

func (DefaultNested) CommandFromWire(wire *pluginproto.CommandSpec) (plugin.CommandToRun, error) {
	return plugin.CommandToRun{Path: wire.Path, Args: nilIfEmpty(wire.Args), Cwd: stringValue(wire.Cwd)}, nil
}

func (DefaultNested) CommandToWire(command plugin.CommandToRun) (*pluginproto.CommandSpec, error) {
	return &pluginproto.CommandSpec{Path: command.Path, Args: command.Args, Cwd: optionalString(command.Cwd)}, nil
}

func (DefaultNested) MessageFromWire(wire *pluginproto.Message) (plugin.PluginMessage, error) {
	return plugin.PluginMessage{Name: wire.Name, Payload: wire.Payload, WorkerName: stringValue(wire.WorkerName)}, nil
}

func (DefaultNested) MessageToWire(message plugin.PluginMessage) (*pluginproto.Message, error) {
	return &pluginproto.Message{Name: message.Name, Payload: message.Payload, WorkerName: optionalString(message.WorkerName)}, nil
}

func (DefaultNested) InputModeFromWire(wire *pluginproto.InputModeMessage) (plugin.InputMode, error) {
	return enumFromWire[plugin.InputMode](wire.InputMode, "input mode")
}

func (DefaultNested) InputModeToWire(mode plugin.InputMode) (*pluginproto.InputModeMessage, error) {
	wire, err := enumToWire[pluginproto.InputMode](mode, "input mode")
	if err != nil {
		return nil, err
	}
	return &pluginproto.InputModeMessage{InputMode: wire}, nil
}

func (DefaultNested) ResizeFromWire(wire *pluginproto.ResizeMessage) (plugin.ResizeAction, error) {
	if wire.Direction != nil {
		return 0, ErrResizeDirection
	}
	return resizeActionFromWire(wire.ResizeAction)
}

func (DefaultNested) ResizeToWire(action plugin.ResizeAction) (*pluginproto.ResizeMessage, error) {
	wire, err := resizeActionToWire(action)
	if err != nil {
		return nil, err
	}
	return &pluginproto.ResizeMessage{ResizeAction: wire}, nil
}

// ResizeStrategyFromWire always yields InvertOnBoundary false; the wire
// form has no field for it.
func (DefaultNested) ResizeStrategyFromWire(wire *pluginproto.ResizeMessage) (plugin.ResizeStrategy, error) {
	action, err := resizeActionFromWire(wire.ResizeAction)
	if err != nil {
		return plugin.ResizeStrategy{}, err
	}
	strategy := plugin.ResizeStrategy{Resize: action}
	if wire.Direction != nil {
		direction, err := directionFromWire(*wire.Direction)
		if err != nil {
			return plugin.ResizeStrategy{}, err
		}
		strategy.Direction = &direction
	}
	return strategy, nil
}

func (DefaultNested) ResizeStrategyToWire(strategy plugin.ResizeStrategy) (*pluginproto.ResizeMessage, error) {
	action, err := resizeActionToWire(strategy.Resize)
	if err != nil {
		return nil, err
	}
	wire := &pluginproto.ResizeMessage{ResizeAction: action}
	if strategy.Direction != nil {
		direction, err := directionToWire(*strategy.Direction)
		if err != nil {
			return nil, err
		}
		wire.Direction = &direction
	}
	return wire, nil
}

func (DefaultNested) DirectionFromWire(wire *pluginproto.MoveDirection) (plugin.Direction, error) {
	return directionFromWire(wire.Direction)
}

func (DefaultNested) DirectionToWire(direction plugin.Direction) (*pluginproto.MoveDirection, error) {
	wire, err := directionToWire(direction)
	if err != nil {
		return nil, err
	}
	return &pluginproto.MoveDirection{Direction: wire}, nil
}

func (DefaultNested) PermissionFromWire(wire pluginproto.PermissionType) (plugin.PermissionType, error) {
	return enumFromWire[plugin.PermissionType](wire, "permission")
}

func (DefaultNested) PermissionToWire(permission plugin.PermissionType) (pluginproto.PermissionType, error) {
	return enumToWire[pluginproto.PermissionType](permission, "permission")
}

func resizeActionFromWire(wire pluginproto.ResizeAction) (plugin.ResizeAction, error) {
	return enumFromWire[plugin.ResizeAction](wire, "resize action")
}

func resizeActionToWire(action plugin.ResizeAction) (pluginproto.ResizeAction, error) {
	return enumToWire[pluginproto.ResizeAction](action, "resize action")
}

func directionFromWire(wire pluginproto.ResizeDirection) (plugin.Direction, error) {
	return enumFromWire[plugin.Direction](wire, "direction")
}

func directionToWire(direction plugin.Direction) (pluginproto.ResizeDirection, error) {
	return enumToWire[pluginproto.ResizeDirection](direction, "direction")
}

type domainEnum interface {
	~uint8
	Valid() bool
}

func enumFromWire[D domainEnum, W ~int32](wire W, what string) (D, error) {
	if wire >= 0 && wire <= math.MaxUint8 {
		if value := D(wire); value.Valid() {
			return value, nil
		}
	}
	return 0, fmt.Errorf("%s %d: %w", what, int32(wire), ErrUnknownValue)
}

func enumToWire[W ~int32, D domainEnum](value D, what string) (W, error) {
	if !value.Valid() {
		return 0, fmt.Errorf("%s %d: %w", what, uint8(value), ErrUnknownValue)
	}
	return W(value), nil
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
