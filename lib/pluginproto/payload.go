// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pluginproto

import "fmt"

// Arm is the field number a payload occupies in the envelope's one-of.
// ArmNone marks an envelope without a payload.
type Arm int32

const (
	ArmNone                           Arm = 0
	ArmSubscribePayload               Arm = 2
	ArmUnsubscribePayload             Arm = 3
	ArmSetSelectablePayload           Arm = 4
	ArmOpenFilePayload                Arm = 5
	ArmOpenFileFloatingPayload        Arm = 6
	ArmOpenTerminalPayload            Arm = 7
	ArmOpenTerminalFloatingPayload    Arm = 8
	ArmOpenCommandPanePayload         Arm = 9
	ArmOpenCommandPaneFloatingPayload Arm = 10
	ArmSwitchTabToPayload             Arm = 11
	ArmSetTimeoutPayload              Arm = 12
	ArmExecCmdPayload                 Arm = 13
	ArmPostMessageToPayload           Arm = 14
	ArmPostMessageToPluginPayload     Arm = 15
	ArmShowSelfPayload                Arm = 16
	ArmSwitchToModePayload            Arm = 17
	ArmNewTabsWithLayoutPayload       Arm = 18
	ArmResizePayload                  Arm = 19
	ArmResizeWithDirectionPayload     Arm = 20
	ArmMoveFocusPayload               Arm = 21
	ArmMoveFocusOrTabPayload          Arm = 22
	ArmWritePayload                   Arm = 23
	ArmWriteCharsPayload              Arm = 24
	ArmMovePaneWithDirectionPayload   Arm = 25
	ArmGoToTabNamePayload             Arm = 26
	ArmFocusOrCreateTabPayload        Arm = 27
	ArmGoToTabPayload                 Arm = 28
	ArmStartOrReloadPluginPayload     Arm = 29
	ArmCloseTerminalPanePayload       Arm = 30
	ArmClosePluginPanePayload         Arm = 31
	ArmFocusTerminalPanePayload       Arm = 32
	ArmFocusPluginPanePayload         Arm = 33
	ArmRenameTerminalPanePayload      Arm = 34
	ArmRenamePluginPanePayload        Arm = 35
	ArmRenameTabPayload               Arm = 36
	ArmReportCrashPayload             Arm = 37
	ArmRequestPluginPermissionPayload Arm = 38
	ArmSwitchSessionPayload           Arm = 39
)

// Shape is the kind of value an arm carries.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeBool
	ShapeString
	ShapeBytes
	ShapeInt32
	ShapeMessage
)

var shapeNames = [...]string{"none", "bool", "string", "bytes", "int32", "message"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// MarshalText encodes the shape by name so vocabulary dumps are
// readable in every serialization.
func (s Shape) MarshalText() ([]byte, error) {
	if int(s) >= len(shapeNames) {
		return nil, fmt.Errorf("invalid shape %d", uint8(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText decodes a shape name.
func (s *Shape) UnmarshalText(text []byte) error {
	for i, name := range shapeNames {
		if name == string(text) {
			*s = Shape(i)
			return nil
		}
	}
	return fmt.Errorf("unknown shape %q", text)
}

// Payload is one arm of the envelope's one-of. The concrete types are
// the PluginCommand_* wrappers in this package; each holds the arm's
// value in a single field.
type Payload interface {
	// Arm returns the field number the payload occupies.
	Arm() Arm

	// value returns the wrapped value for serialization. Message arms
	// return their pointer, which may be nil.
	value() any

	// target allocates the wrapped value if it is a message and
	// returns a pointer to decode into.
	target() any

	// isNil reports whether the wrapper itself is a nil pointer.
	isNil() bool
}

// IsNilPayload reports whether p is nil or a nil wrapper such as
// (*PluginCommand_GoToTabPayload)(nil). A nil wrapper still reports its
// Arm but holds no value.
func IsNilPayload(p Payload) bool {
	return p == nil || p.isNil()
}

type armInfo struct {
	arm   Arm
	field string
	shape Shape
	new   func() Payload
}

var armTable = []armInfo{
	{ArmSubscribePayload, "subscribe_payload", ShapeMessage, func() Payload { return new(PluginCommand_SubscribePayload) }},
	{ArmUnsubscribePayload, "unsubscribe_payload", ShapeMessage, func() Payload { return new(PluginCommand_UnsubscribePayload) }},
	{ArmSetSelectablePayload, "set_selectable_payload", ShapeBool, func() Payload { return new(PluginCommand_SetSelectablePayload) }},
	{ArmOpenFilePayload, "open_file_payload", ShapeMessage, func() Payload { return new(PluginCommand_OpenFilePayload) }},
	{ArmOpenFileFloatingPayload, "open_file_floating_payload", ShapeMessage, func() Payload { return new(PluginCommand_OpenFileFloatingPayload) }},
	{ArmOpenTerminalPayload, "open_terminal_payload", ShapeMessage, func() Payload { return new(PluginCommand_OpenTerminalPayload) }},
	{ArmOpenTerminalFloatingPayload, "open_terminal_floating_payload", ShapeMessage, func() Payload { return new(PluginCommand_OpenTerminalFloatingPayload) }},
	{ArmOpenCommandPanePayload, "open_command_pane_payload", ShapeMessage, func() Payload { return new(PluginCommand_OpenCommandPanePayload) }},
	{ArmOpenCommandPaneFloatingPayload, "open_command_pane_floating_payload", ShapeMessage, func() Payload { return new(PluginCommand_OpenCommandPaneFloatingPayload) }},
	{ArmSwitchTabToPayload, "switch_tab_to_payload", ShapeMessage, func() Payload { return new(PluginCommand_SwitchTabToPayload) }},
	{ArmSetTimeoutPayload, "set_timeout_payload", ShapeMessage, func() Payload { return new(PluginCommand_SetTimeoutPayload) }},
	{ArmExecCmdPayload, "exec_cmd_payload", ShapeMessage, func() Payload { return new(PluginCommand_ExecCmdPayload) }},
	{ArmPostMessageToPayload, "post_message_to_payload", ShapeMessage, func() Payload { return new(PluginCommand_PostMessageToPayload) }},
	{ArmPostMessageToPluginPayload, "post_message_to_plugin_payload", ShapeMessage, func() Payload { return new(PluginCommand_PostMessageToPluginPayload) }},
	{ArmShowSelfPayload, "show_self_payload", ShapeBool, func() Payload { return new(PluginCommand_ShowSelfPayload) }},
	{ArmSwitchToModePayload, "switch_to_mode_payload", ShapeMessage, func() Payload { return new(PluginCommand_SwitchToModePayload) }},
	{ArmNewTabsWithLayoutPayload, "new_tabs_with_layout_payload", ShapeString, func() Payload { return new(PluginCommand_NewTabsWithLayoutPayload) }},
	{ArmResizePayload, "resize_payload", ShapeMessage, func() Payload { return new(PluginCommand_ResizePayload) }},
	{ArmResizeWithDirectionPayload, "resize_with_direction_payload", ShapeMessage, func() Payload { return new(PluginCommand_ResizeWithDirectionPayload) }},
	{ArmMoveFocusPayload, "move_focus_payload", ShapeMessage, func() Payload { return new(PluginCommand_MoveFocusPayload) }},
	{ArmMoveFocusOrTabPayload, "move_focus_or_tab_payload", ShapeMessage, func() Payload { return new(PluginCommand_MoveFocusOrTabPayload) }},
	{ArmWritePayload, "write_payload", ShapeBytes, func() Payload { return new(PluginCommand_WritePayload) }},
	{ArmWriteCharsPayload, "write_chars_payload", ShapeString, func() Payload { return new(PluginCommand_WriteCharsPayload) }},
	{ArmMovePaneWithDirectionPayload, "move_pane_with_direction_payload", ShapeMessage, func() Payload { return new(PluginCommand_MovePaneWithDirectionPayload) }},
	{ArmGoToTabNamePayload, "go_to_tab_name_payload", ShapeString, func() Payload { return new(PluginCommand_GoToTabNamePayload) }},
	{ArmFocusOrCreateTabPayload, "focus_or_create_tab_payload", ShapeString, func() Payload { return new(PluginCommand_FocusOrCreateTabPayload) }},
	{ArmGoToTabPayload, "go_to_tab_payload", ShapeInt32, func() Payload { return new(PluginCommand_GoToTabPayload) }},
	{ArmStartOrReloadPluginPayload, "start_or_reload_plugin_payload", ShapeString, func() Payload { return new(PluginCommand_StartOrReloadPluginPayload) }},
	{ArmCloseTerminalPanePayload, "close_terminal_pane_payload", ShapeInt32, func() Payload { return new(PluginCommand_CloseTerminalPanePayload) }},
	{ArmClosePluginPanePayload, "close_plugin_pane_payload", ShapeInt32, func() Payload { return new(PluginCommand_ClosePluginPanePayload) }},
	{ArmFocusTerminalPanePayload, "focus_terminal_pane_payload", ShapeMessage, func() Payload { return new(PluginCommand_FocusTerminalPanePayload) }},
	{ArmFocusPluginPanePayload, "focus_plugin_pane_payload", ShapeMessage, func() Payload { return new(PluginCommand_FocusPluginPanePayload) }},
	{ArmRenameTerminalPanePayload, "rename_terminal_pane_payload", ShapeMessage, func() Payload { return new(PluginCommand_RenameTerminalPanePayload) }},
	{ArmRenamePluginPanePayload, "rename_plugin_pane_payload", ShapeMessage, func() Payload { return new(PluginCommand_RenamePluginPanePayload) }},
	{ArmRenameTabPayload, "rename_tab_payload", ShapeMessage, func() Payload { return new(PluginCommand_RenameTabPayload) }},
	{ArmReportCrashPayload, "report_crash_payload", ShapeString, func() Payload { return new(PluginCommand_ReportCrashPayload) }},
	{ArmRequestPluginPermissionPayload, "request_plugin_permission_payload", ShapeMessage, func() Payload { return new(PluginCommand_RequestPluginPermissionPayload) }},
	{ArmSwitchSessionPayload, "switch_session_payload", ShapeMessage, func() Payload { return new(PluginCommand_SwitchSessionPayload) }},
}

var arms = func() map[Arm]armInfo {
	byArm := make(map[Arm]armInfo, len(armTable))
	for _, info := range armTable {
		byArm[info.arm] = info
	}
	return byArm
}()

var armsByField = func() map[string]Arm {
	byField := make(map[string]Arm, len(armTable))
	for _, info := range armTable {
		byField[info.field] = info.arm
	}
	return byField
}()

// Valid reports whether the arm is a field of the one-of.
func (a Arm) Valid() bool {
	_, ok := arms[a]
	return ok
}

// String returns the arm's snake_case field name, "none" for ArmNone,
// or its number for fields outside the one-of.
func (a Arm) String() string {
	if a == ArmNone {
		return "none"
	}
	if info, ok := arms[a]; ok {
		return info.field
	}
	return fmt.Sprintf("Arm(%d)", int32(a))
}

// Shape returns the kind of value the arm carries.
func (a Arm) Shape() Shape {
	return arms[a].shape
}

// ParseArm returns the arm with the given snake_case field name.
func ParseArm(field string) (Arm, error) {
	if arm, ok := armsByField[field]; ok {
		return arm, nil
	}
	return 0, fmt.Errorf("unknown payload field %q", field)
}

// NewPayload returns an empty payload for the arm.
func NewPayload(arm Arm) (Payload, error) {
	info, ok := arms[arm]
	if !ok {
		return nil, fmt.Errorf("unknown payload arm %d", int32(arm))
	}
	return info.new(), nil
}

type PluginCommand_SubscribePayload struct {
	SubscribePayload *SubscribePayload
}

type PluginCommand_UnsubscribePayload struct {
	UnsubscribePayload *UnsubscribePayload
}

type PluginCommand_SetSelectablePayload struct {
	SetSelectablePayload bool
}

type PluginCommand_OpenFilePayload struct {
	OpenFilePayload *OpenFilePayload
}

type PluginCommand_OpenFileFloatingPayload struct {
	OpenFileFloatingPayload *OpenFilePayload
}

type PluginCommand_OpenTerminalPayload struct {
	OpenTerminalPayload *OpenFilePayload
}

type PluginCommand_OpenTerminalFloatingPayload struct {
	OpenTerminalFloatingPayload *OpenFilePayload
}

type PluginCommand_OpenCommandPanePayload struct {
	OpenCommandPanePayload *OpenCommandPanePayload
}

type PluginCommand_OpenCommandPaneFloatingPayload struct {
	OpenCommandPaneFloatingPayload *OpenCommandPanePayload
}

type PluginCommand_SwitchTabToPayload struct {
	SwitchTabToPayload *SwitchTabToPayload
}

type PluginCommand_SetTimeoutPayload struct {
	SetTimeoutPayload *SetTimeoutPayload
}

type PluginCommand_ExecCmdPayload struct {
	ExecCmdPayload *ExecCmdPayload
}

type PluginCommand_PostMessageToPayload struct {
	PostMessageToPayload *PluginMessagePayload
}

type PluginCommand_PostMessageToPluginPayload struct {
	PostMessageToPluginPayload *PluginMessagePayload
}

type PluginCommand_ShowSelfPayload struct {
	ShowSelfPayload bool
}

type PluginCommand_SwitchToModePayload struct {
	SwitchToModePayload *SwitchToModePayload
}

type PluginCommand_NewTabsWithLayoutPayload struct {
	NewTabsWithLayoutPayload string
}

type PluginCommand_ResizePayload struct {
	ResizePayload *ResizePayload
}

type PluginCommand_ResizeWithDirectionPayload struct {
	ResizeWithDirectionPayload *ResizePayload
}

type PluginCommand_MoveFocusPayload struct {
	MoveFocusPayload *MovePayload
}

type PluginCommand_MoveFocusOrTabPayload struct {
	MoveFocusOrTabPayload *MovePayload
}

type PluginCommand_WritePayload struct {
	WritePayload []byte
}

type PluginCommand_WriteCharsPayload struct {
	WriteCharsPayload string
}

type PluginCommand_MovePaneWithDirectionPayload struct {
	MovePaneWithDirectionPayload *MovePayload
}

type PluginCommand_GoToTabNamePayload struct {
	GoToTabNamePayload string
}

type PluginCommand_FocusOrCreateTabPayload struct {
	FocusOrCreateTabPayload string
}

type PluginCommand_GoToTabPayload struct {
	GoToTabPayload int32
}

type PluginCommand_StartOrReloadPluginPayload struct {
	StartOrReloadPluginPayload string
}

type PluginCommand_CloseTerminalPanePayload struct {
	CloseTerminalPanePayload int32
}

type PluginCommand_ClosePluginPanePayload struct {
	ClosePluginPanePayload int32
}

type PluginCommand_FocusTerminalPanePayload struct {
	FocusTerminalPanePayload *PaneIdAndShouldFloat
}

type PluginCommand_FocusPluginPanePayload struct {
	FocusPluginPanePayload *PaneIdAndShouldFloat
}

type PluginCommand_RenameTerminalPanePayload struct {
	RenameTerminalPanePayload *IdAndNewName
}

type PluginCommand_RenamePluginPanePayload struct {
	RenamePluginPanePayload *IdAndNewName
}

type PluginCommand_RenameTabPayload struct {
	RenameTabPayload *IdAndNewName
}

type PluginCommand_ReportCrashPayload struct {
	ReportCrashPayload string
}

type PluginCommand_RequestPluginPermissionPayload struct {
	RequestPluginPermissionPayload *RequestPluginPermissionPayload
}

type PluginCommand_SwitchSessionPayload struct {
	SwitchSessionPayload *SwitchSessionPayload
}

func (*PluginCommand_SubscribePayload) Arm() Arm { return ArmSubscribePayload }
func (p *PluginCommand_SubscribePayload) isNil() bool { return p == nil }
func (p *PluginCommand_SubscribePayload) value() any { return p.SubscribePayload }
func (p *PluginCommand_SubscribePayload) target() any {
	p.SubscribePayload = new(SubscribePayload)
	return p.SubscribePayload
}

func (*PluginCommand_UnsubscribePayload) Arm() Arm { return ArmUnsubscribePayload }
func (p *PluginCommand_UnsubscribePayload) isNil() bool { return p == nil }
func (p *PluginCommand_UnsubscribePayload) value() any { return p.UnsubscribePayload }
func (p *PluginCommand_UnsubscribePayload) target() any {
	p.UnsubscribePayload = new(UnsubscribePayload)
	return p.UnsubscribePayload
}

func (*PluginCommand_SetSelectablePayload) Arm() Arm { return ArmSetSelectablePayload }
func (p *PluginCommand_SetSelectablePayload) isNil() bool { return p == nil }
func (p *PluginCommand_SetSelectablePayload) value() any { return p.SetSelectablePayload }
func (p *PluginCommand_SetSelectablePayload) target() any { return &p.SetSelectablePayload }

func (*PluginCommand_OpenFilePayload) Arm() Arm { return ArmOpenFilePayload }
func (p *PluginCommand_OpenFilePayload) isNil() bool { return p == nil }
func (p *PluginCommand_OpenFilePayload) value() any { return p.OpenFilePayload }
func (p *PluginCommand_OpenFilePayload) target() any {
	p.OpenFilePayload = new(OpenFilePayload)
	return p.OpenFilePayload
}

func (*PluginCommand_OpenFileFloatingPayload) Arm() Arm { return ArmOpenFileFloatingPayload }
func (p *PluginCommand_OpenFileFloatingPayload) isNil() bool { return p == nil }
func (p *PluginCommand_OpenFileFloatingPayload) value() any { return p.OpenFileFloatingPayload }
func (p *PluginCommand_OpenFileFloatingPayload) target() any {
	p.OpenFileFloatingPayload = new(OpenFilePayload)
	return p.OpenFileFloatingPayload
}

func (*PluginCommand_OpenTerminalPayload) Arm() Arm { return ArmOpenTerminalPayload }
func (p *PluginCommand_OpenTerminalPayload) isNil() bool { return p == nil }
func (p *PluginCommand_OpenTerminalPayload) value() any { return p.OpenTerminalPayload }
func (p *PluginCommand_OpenTerminalPayload) target() any {
	p.OpenTerminalPayload = new(OpenFilePayload)
	return p.OpenTerminalPayload
}

func (*PluginCommand_OpenTerminalFloatingPayload) Arm() Arm { return ArmOpenTerminalFloatingPayload }
func (p *PluginCommand_OpenTerminalFloatingPayload) isNil() bool { return p == nil }
func (p *PluginCommand_OpenTerminalFloatingPayload) value() any { return p.OpenTerminalFloatingPayload }
func (p *PluginCommand_OpenTerminalFloatingPayload) target() any {
	p.OpenTerminalFloatingPayload = new(OpenFilePayload)
	return p.OpenTerminalFloatingPayload
}

func (*PluginCommand_OpenCommandPanePayload) Arm() Arm { return ArmOpenCommandPanePayload }
func (p *PluginCommand_OpenCommandPanePayload) isNil() bool { return p == nil }
func (p *PluginCommand_OpenCommandPanePayload) value() any { return p.OpenCommandPanePayload }
func (p *PluginCommand_OpenCommandPanePayload) target() any {
	p.OpenCommandPanePayload = new(OpenCommandPanePayload)
	return p.OpenCommandPanePayload
}

func (*PluginCommand_OpenCommandPaneFloatingPayload) Arm() Arm { return ArmOpenCommandPaneFloatingPayload }
func (p *PluginCommand_OpenCommandPaneFloatingPayload) isNil() bool { return p == nil }
func (p *PluginCommand_OpenCommandPaneFloatingPayload) value() any { return p.OpenCommandPaneFloatingPayload }
func (p *PluginCommand_OpenCommandPaneFloatingPayload) target() any {
	p.OpenCommandPaneFloatingPayload = new(OpenCommandPanePayload)
	return p.OpenCommandPaneFloatingPayload
}

func (*PluginCommand_SwitchTabToPayload) Arm() Arm { return ArmSwitchTabToPayload }
func (p *PluginCommand_SwitchTabToPayload) isNil() bool { return p == nil }
func (p *PluginCommand_SwitchTabToPayload) value() any { return p.SwitchTabToPayload }
func (p *PluginCommand_SwitchTabToPayload) target() any {
	p.SwitchTabToPayload = new(SwitchTabToPayload)
	return p.SwitchTabToPayload
}

func (*PluginCommand_SetTimeoutPayload) Arm() Arm { return ArmSetTimeoutPayload }
func (p *PluginCommand_SetTimeoutPayload) isNil() bool { return p == nil }
func (p *PluginCommand_SetTimeoutPayload) value() any { return p.SetTimeoutPayload }
func (p *PluginCommand_SetTimeoutPayload) target() any {
	p.SetTimeoutPayload = new(SetTimeoutPayload)
	return p.SetTimeoutPayload
}

func (*PluginCommand_ExecCmdPayload) Arm() Arm { return ArmExecCmdPayload }
func (p *PluginCommand_ExecCmdPayload) isNil() bool { return p == nil }
func (p *PluginCommand_ExecCmdPayload) value() any { return p.ExecCmdPayload }
func (p *PluginCommand_ExecCmdPayload) target() any {
	p.ExecCmdPayload = new(ExecCmdPayload)
	return p.ExecCmdPayload
}

func (*PluginCommand_PostMessageToPayload) Arm() Arm { return ArmPostMessageToPayload }
func (p *PluginCommand_PostMessageToPayload) isNil() bool { return p == nil }
func (p *PluginCommand_PostMessageToPayload) value() any { return p.PostMessageToPayload }
func (p *PluginCommand_PostMessageToPayload) target() any {
	p.PostMessageToPayload = new(PluginMessagePayload)
	return p.PostMessageToPayload
}

func (*PluginCommand_PostMessageToPluginPayload) Arm() Arm { return ArmPostMessageToPluginPayload }
func (p *PluginCommand_PostMessageToPluginPayload) isNil() bool { return p == nil }
func (p *PluginCommand_PostMessageToPluginPayload) value() any { return p.PostMessageToPluginPayload }
func (p *PluginCommand_PostMessageToPluginPayload) target() any {
	p.PostMessageToPluginPayload = new(PluginMessagePayload)
	return p.PostMessageToPluginPayload
}

func (*PluginCommand_ShowSelfPayload) Arm() Arm { return ArmShowSelfPayload }
func (p *PluginCommand_ShowSelfPayload) isNil() bool { return p == nil }
func (p *PluginCommand_ShowSelfPayload) value() any { return p.ShowSelfPayload }
func (p *PluginCommand_ShowSelfPayload) target() any { return &p.ShowSelfPayload }

func (*PluginCommand_SwitchToModePayload) Arm() Arm { return ArmSwitchToModePayload }
func (p *PluginCommand_SwitchToModePayload) isNil() bool { return p == nil }
func (p *PluginCommand_SwitchToModePayload) value() any { return p.SwitchToModePayload }
func (p *PluginCommand_SwitchToModePayload) target() any {
	p.SwitchToModePayload = new(SwitchToModePayload)
	return p.SwitchToModePayload
}

func (*PluginCommand_NewTabsWithLayoutPayload) Arm() Arm { return ArmNewTabsWithLayoutPayload }
func (p *PluginCommand_NewTabsWithLayoutPayload) isNil() bool { return p == nil }
func (p *PluginCommand_NewTabsWithLayoutPayload) value() any { return p.NewTabsWithLayoutPayload }
func (p *PluginCommand_NewTabsWithLayoutPayload) target() any { return &p.NewTabsWithLayoutPayload }

func (*PluginCommand_ResizePayload) Arm() Arm { return ArmResizePayload }
func (p *PluginCommand_ResizePayload) isNil() bool { return p == nil }
func (p *PluginCommand_ResizePayload) value() any { return p.ResizePayload }
func (p *PluginCommand_ResizePayload) target() any {
	p.ResizePayload = new(ResizePayload)
	return p.ResizePayload
}

func (*PluginCommand_ResizeWithDirectionPayload) Arm() Arm { return ArmResizeWithDirectionPayload }
func (p *PluginCommand_ResizeWithDirectionPayload) isNil() bool { return p == nil }
func (p *PluginCommand_ResizeWithDirectionPayload) value() any { return p.ResizeWithDirectionPayload }
func (p *PluginCommand_ResizeWithDirectionPayload) target() any {
	p.ResizeWithDirectionPayload = new(ResizePayload)
	return p.ResizeWithDirectionPayload
}

func (*PluginCommand_MoveFocusPayload) Arm() Arm { return ArmMoveFocusPayload }
func (p *PluginCommand_MoveFocusPayload) isNil() bool { return p == nil }
func (p *PluginCommand_MoveFocusPayload) value() any { return p.MoveFocusPayload }
func (p *PluginCommand_MoveFocusPayload) target() any {
	p.MoveFocusPayload = new(MovePayload)
	return p.MoveFocusPayload
}

func (*PluginCommand_MoveFocusOrTabPayload) Arm() Arm { return ArmMoveFocusOrTabPayload }
func (p *PluginCommand_MoveFocusOrTabPayload) isNil() bool { return p == nil }
func (p *PluginCommand_MoveFocusOrTabPayload) value() any { return p.MoveFocusOrTabPayload }
func (p *PluginCommand_MoveFocusOrTabPayload) target() any {
	p.MoveFocusOrTabPayload = new(MovePayload)
	return p.MoveFocusOrTabPayload
}

func (*PluginCommand_WritePayload) Arm() Arm { return ArmWritePayload }
func (p *PluginCommand_WritePayload) isNil() bool { return p == nil }
func (p *PluginCommand_WritePayload) value() any { return p.WritePayload }
func (p *PluginCommand_WritePayload) target() any { return &p.WritePayload }

func (*PluginCommand_WriteCharsPayload) Arm() Arm { return ArmWriteCharsPayload }
func (p *PluginCommand_WriteCharsPayload) isNil() bool { return p == nil }
func (p *PluginCommand_WriteCharsPayload) value() any { return p.WriteCharsPayload }
func (p *PluginCommand_WriteCharsPayload) target() any { return &p.WriteCharsPayload }

func (*PluginCommand_MovePaneWithDirectionPayload) Arm() Arm { return ArmMovePaneWithDirectionPayload }
func (p *PluginCommand_MovePaneWithDirectionPayload) isNil() bool { return p == nil }
func (p *PluginCommand_MovePaneWithDirectionPayload) value() any { return p.MovePaneWithDirectionPayload }
func (p *PluginCommand_MovePaneWithDirectionPayload) target() any {
	p.MovePaneWithDirectionPayload = new(MovePayload)
	return p.MovePaneWithDirectionPayload
}

func (*PluginCommand_GoToTabNamePayload) Arm() Arm { return ArmGoToTabNamePayload }
func (p *PluginCommand_GoToTabNamePayload) isNil() bool { return p == nil }
func (p *PluginCommand_GoToTabNamePayload) value() any { return p.GoToTabNamePayload }
func (p *PluginCommand_GoToTabNamePayload) target() any { return &p.GoToTabNamePayload }

func (*PluginCommand_FocusOrCreateTabPayload) Arm() Arm { return ArmFocusOrCreateTabPayload }
func (p *PluginCommand_FocusOrCreateTabPayload) isNil() bool { return p == nil }
func (p *PluginCommand_FocusOrCreateTabPayload) value() any { return p.FocusOrCreateTabPayload }
func (p *PluginCommand_FocusOrCreateTabPayload) target() any { return &p.FocusOrCreateTabPayload }

func (*PluginCommand_GoToTabPayload) Arm() Arm { return ArmGoToTabPayload }
func (p *PluginCommand_GoToTabPayload) isNil() bool { return p == nil }
func (p *PluginCommand_GoToTabPayload) value() any { return p.GoToTabPayload }
func (p *PluginCommand_GoToTabPayload) target() any { return &p.GoToTabPayload }

func (*PluginCommand_StartOrReloadPluginPayload) Arm() Arm { return ArmStartOrReloadPluginPayload }
func (p *PluginCommand_StartOrReloadPluginPayload) isNil() bool { return p == nil }
func (p *PluginCommand_StartOrReloadPluginPayload) value() any { return p.StartOrReloadPluginPayload }
func (p *PluginCommand_StartOrReloadPluginPayload) target() any { return &p.StartOrReloadPluginPayload }

func (*PluginCommand_CloseTerminalPanePayload) Arm() Arm { return ArmCloseTerminalPanePayload }
func (p *PluginCommand_CloseTerminalPanePayload) isNil() bool { return p == nil }
func (p *PluginCommand_CloseTerminalPanePayload) value() any { return p.CloseTerminalPanePayload }
func (p *PluginCommand_CloseTerminalPanePayload) target() any { return &p.CloseTerminalPanePayload }

func (*PluginCommand_ClosePluginPanePayload) Arm() Arm { return ArmClosePluginPanePayload }
func (p *PluginCommand_ClosePluginPanePayload) isNil() bool { return p == nil }
func (p *PluginCommand_ClosePluginPanePayload) value() any { return p.ClosePluginPanePayload }
func (p *PluginCommand_ClosePluginPanePayload) target() any { return &p.ClosePluginPanePayload }

func (*PluginCommand_FocusTerminalPanePayload) Arm() Arm { return ArmFocusTerminalPanePayload }
func (p *PluginCommand_FocusTerminalPanePayload) isNil() bool { return p == nil }
func (p *PluginCommand_FocusTerminalPanePayload) value() any { return p.FocusTerminalPanePayload }
func (p *PluginCommand_FocusTerminalPanePayload) target() any {
	p.FocusTerminalPanePayload = new(PaneIdAndShouldFloat)
	return p.FocusTerminalPanePayload
}

func (*PluginCommand_FocusPluginPanePayload) Arm() Arm { return ArmFocusPluginPanePayload }
func (p *PluginCommand_FocusPluginPanePayload) isNil() bool { return p == nil }
func (p *PluginCommand_FocusPluginPanePayload) value() any { return p.FocusPluginPanePayload }
func (p *PluginCommand_FocusPluginPanePayload) target() any {
	p.FocusPluginPanePayload = new(PaneIdAndShouldFloat)
	return p.FocusPluginPanePayload
}

func (*PluginCommand_RenameTerminalPanePayload) Arm() Arm { return ArmRenameTerminalPanePayload }
func (p *PluginCommand_RenameTerminalPanePayload) isNil() bool { return p == nil }
func (p *PluginCommand_RenameTerminalPanePayload) value() any { return p.RenameTerminalPanePayload }
func (p *PluginCommand_RenameTerminalPanePayload) target() any {
	p.RenameTerminalPanePayload = new(IdAndNewName)
	return p.RenameTerminalPanePayload
}

func (*PluginCommand_RenamePluginPanePayload) Arm() Arm { return ArmRenamePluginPanePayload }
func (p *PluginCommand_RenamePluginPanePayload) isNil() bool { return p == nil }
func (p *PluginCommand_RenamePluginPanePayload) value() any { return p.RenamePluginPanePayload }
func (p *PluginCommand_RenamePluginPanePayload) target() any {
	p.RenamePluginPanePayload = new(IdAndNewName)
	return p.RenamePluginPanePayload
}

func (*PluginCommand_RenameTabPayload) Arm() Arm { return ArmRenameTabPayload }
func (p *PluginCommand_RenameTabPayload) isNil() bool { return p == nil }
func (p *PluginCommand_RenameTabPayload) value() any { return p.RenameTabPayload }
func (p *PluginCommand_RenameTabPayload) target() any {
	p.RenameTabPayload = new(IdAndNewName)
	return p.RenameTabPayload
}

func (*PluginCommand_ReportCrashPayload) Arm() Arm { return ArmReportCrashPayload }
func (p *PluginCommand_ReportCrashPayload) isNil() bool { return p == nil }
func (p *PluginCommand_ReportCrashPayload) value() any { return p.ReportCrashPayload }
func (p *PluginCommand_ReportCrashPayload) target() any { return &p.ReportCrashPayload }

func (*PluginCommand_RequestPluginPermissionPayload) Arm() Arm { return ArmRequestPluginPermissionPayload }
func (p *PluginCommand_RequestPluginPermissionPayload) isNil() bool { return p == nil }
func (p *PluginCommand_RequestPluginPermissionPayload) value() any { return p.RequestPluginPermissionPayload }
func (p *PluginCommand_RequestPluginPermissionPayload) target() any {
	p.RequestPluginPermissionPayload = new(RequestPluginPermissionPayload)
	return p.RequestPluginPermissionPayload
}

func (*PluginCommand_SwitchSessionPayload) Arm() Arm { return ArmSwitchSessionPayload }
func (p *PluginCommand_SwitchSessionPayload) isNil() bool { return p == nil }
func (p *PluginCommand_SwitchSessionPayload) value() any { return p.SwitchSessionPayload }
func (p *PluginCommand_SwitchSessionPayload) target() any {
	p.SwitchSessionPayload = new(SwitchSessionPayload)
	return p.SwitchSessionPayload
}
