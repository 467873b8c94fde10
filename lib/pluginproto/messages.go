// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pluginproto

// Nested wire messages. Struct tags name the protobuf JSON field and
// serve both JSON and CBOR (lib/codec honors json tags). Pointer
// scalars are proto3 optional fields; their presence is significant.

// EventType is the wire form of a subscribable host event.
type EventType int32

const (
	EventType_ModeUpdate EventType = iota
	EventType_TabUpdate
	EventType_PaneUpdate
	EventType_Key
	EventType_Mouse
	EventType_Timer
	EventType_CopyToClipboard
	EventType_SystemClipboardFailure
	EventType_InputReceived
	EventType_Visible
	EventType_CustomMessage
	EventType_FileSystemCreate
	EventType_FileSystemRead
	EventType_FileSystemUpdate
	EventType_FileSystemDelete
	EventType_PermissionRequestResult
	EventType_SessionUpdate
)

// InputMode is the wire form of a host input mode.
type InputMode int32

const (
	InputMode_Normal InputMode = iota
	InputMode_Locked
	InputMode_Resize
	InputMode_Pane
	InputMode_Tab
	InputMode_Scroll
	InputMode_EnterSearch
	InputMode_Search
	InputMode_RenameTab
	InputMode_RenamePane
	InputMode_Session
	InputMode_Move
	InputMode_Prompt
	InputMode_Tmux
)

// ResizeAction is the wire form of grow/shrink.
type ResizeAction int32

const (
	ResizeAction_Increase ResizeAction = 0
	ResizeAction_Decrease ResizeAction = 1
)

// ResizeDirection is the wire form of a pane side. Move commands use
// it too.
type ResizeDirection int32

const (
	ResizeDirection_Left  ResizeDirection = 0
	ResizeDirection_Right ResizeDirection = 1
	ResizeDirection_Up    ResizeDirection = 2
	ResizeDirection_Down  ResizeDirection = 3
)

// PermissionType is the wire form of a plugin permission. Decoders
// must tolerate codes they do not know.
type PermissionType int32

const (
	PermissionType_ReadApplicationState PermissionType = iota
	PermissionType_ChangeApplicationState
	PermissionType_OpenFiles
	PermissionType_RunCommands
	PermissionType_OpenTerminalsOrPlugins
	PermissionType_WriteToStdin
)

type SubscribePayload struct {
	Subscriptions *EventNameList `json:"subscriptions"`
}

type UnsubscribePayload struct {
	Subscriptions *EventNameList `json:"subscriptions"`
}

type EventNameList struct {
	EventTypes []EventType `json:"event_types,omitempty"`
}

// OpenFilePayload carries the file for the open-file and open-terminal
// families.
type OpenFilePayload struct {
	FileToOpen *File `json:"file_to_open"`
}

type File struct {
	Path       string  `json:"path,omitempty"`
	LineNumber *int32  `json:"line_number,omitempty"`
	Cwd        *string `json:"cwd,omitempty"`
}

type OpenCommandPanePayload struct {
	CommandToRun *CommandSpec `json:"command_to_run"`
}

type CommandSpec struct {
	Path string   `json:"path,omitempty"`
	Args []string `json:"args,omitempty"`
	Cwd  *string  `json:"cwd,omitempty"`
}

type SwitchTabToPayload struct {
	TabIndex int32 `json:"tab_index,omitempty"`
}

type SetTimeoutPayload struct {
	Seconds float64 `json:"seconds,omitempty"`
}

type ExecCmdPayload struct {
	CommandLine []string `json:"command_line,omitempty"`
}

// PluginMessagePayload carries a plugin/worker message for both
// directions of PostMessageTo.
type PluginMessagePayload struct {
	Message *Message `json:"message"`
}

type Message struct {
	Name       string  `json:"name,omitempty"`
	Payload    string  `json:"payload,omitempty"`
	WorkerName *string `json:"worker_name,omitempty"`
}

type SwitchToModePayload struct {
	InputMode *InputModeMessage `json:"input_mode"`
}

type InputModeMessage struct {
	InputMode InputMode `json:"input_mode,omitempty"`
}

type ResizePayload struct {
	Resize *ResizeMessage `json:"resize"`
}

type ResizeMessage struct {
	ResizeAction ResizeAction     `json:"resize_action,omitempty"`
	Direction    *ResizeDirection `json:"direction,omitempty"`
}

type MovePayload struct {
	Direction *MoveDirection `json:"direction"`
}

type MoveDirection struct {
	Direction ResizeDirection `json:"direction,omitempty"`
}

type IdAndNewName struct {
	Id      int32  `json:"id,omitempty"`
	NewName string `json:"new_name,omitempty"`
}

type PaneIdAndShouldFloat struct {
	PaneId      int32 `json:"pane_id,omitempty"`
	ShouldFloat bool  `json:"should_float,omitempty"`
}

type RequestPluginPermissionPayload struct {
	Permissions []PermissionType `json:"permissions,omitempty"`
}

// SwitchSessionPayload targets a session switch. PaneId and
// PaneIdIsPlugin are meaningful only together; lib/plugincodec rejects
// an envelope that sets one without the other.
type SwitchSessionPayload struct {
	Name           *string `json:"name,omitempty"`
	TabPosition    *uint32 `json:"tab_position,omitempty"`
	PaneId         *uint32 `json:"pane_id,omitempty"`
	PaneIdIsPlugin *bool   `json:"pane_id_is_plugin,omitempty"`
}
