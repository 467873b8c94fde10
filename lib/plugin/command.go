// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugin

// Command is a single operation a plugin asks its host to perform.
// The concrete type identifies the operation; its fields are the
// operation's arguments. Commands without arguments are empty structs.
type Command interface {
	isCommand()
}

// Subscribe registers the plugin for the given event types.
type Subscribe struct {
	Events EventTypeSet
}

// Unsubscribe removes the plugin's registration for the given event types.
type Unsubscribe struct {
	Events EventTypeSet
}

// SetSelectable controls whether the plugin's pane can receive focus.
type SetSelectable struct {
	Selectable bool
}

// GetPluginIDs asks the host for the plugin's own identifiers.
type GetPluginIDs struct{}

// GetHostVersion asks the host for its version string.
type GetHostVersion struct{}

// OpenFile opens a file in a new tiled editor pane.
type OpenFile struct {
	File FileToOpen
}

// OpenFileFloating opens a file in a new floating editor pane.
type OpenFileFloating struct {
	File FileToOpen
}

// OpenTerminal opens a tiled terminal pane. Only the Path (used as the
// working directory) and Cwd of the descriptor are meaningful.
type OpenTerminal struct {
	Cwd FileToOpen
}

// OpenTerminalFloating opens a floating terminal pane.
type OpenTerminalFloating struct {
	Cwd FileToOpen
}

// OpenCommandPane runs a command in a new tiled pane.
type OpenCommandPane struct {
	Command CommandToRun
}

// OpenCommandPaneFloating runs a command in a new floating pane.
type OpenCommandPaneFloating struct {
	Command CommandToRun
}

// SwitchTabTo focuses the tab at the given zero-based index.
type SwitchTabTo struct {
	TabIndex uint32
}

// SetTimeout asks the host to deliver a timer event after Seconds.
type SetTimeout struct {
	Seconds float64
}

// ExecCmd runs a command in the background with no pane attached.
// CommandLine[0] is the program.
type ExecCmd struct {
	CommandLine []string
}

// PostMessageTo sends a message to one of the plugin's own workers.
type PostMessageTo struct {
	Message PluginMessage
}

// PostMessageToPlugin sends a message from a worker back to its plugin.
type PostMessageToPlugin struct {
	Message PluginMessage
}

// HideSelf hides the plugin's pane.
type HideSelf struct{}

// ShowSelf shows the plugin's pane, floating it if it was hidden and
// ShouldFloatIfHidden is set.
type ShowSelf struct {
	ShouldFloatIfHidden bool
}

// SwitchToMode changes the host's input mode.
type SwitchToMode struct {
	Mode InputMode
}

// NewTabsWithLayout opens tabs described by a raw layout document.
type NewTabsWithLayout struct {
	Layout string
}

// NewTab opens an empty tab.
type NewTab struct{}

// GoToNextTab focuses the next tab.
type GoToNextTab struct{}

// GoToPreviousTab focuses the previous tab.
type GoToPreviousTab struct{}

// Resize grows or shrinks the focused pane.
type Resize struct {
	Action ResizeAction
}

// ResizeWithDirection grows or shrinks the focused pane toward a side.
type ResizeWithDirection struct {
	Strategy ResizeStrategy
}

// FocusNextPane moves focus to the next pane.
type FocusNextPane struct{}

// FocusPreviousPane moves focus to the previous pane.
type FocusPreviousPane struct{}

// MoveFocus moves focus to the neighboring pane in Direction.
type MoveFocus struct {
	Direction Direction
}

// MoveFocusOrTab moves focus in Direction, crossing into the adjacent
// tab when there is no pane on that side.
type MoveFocusOrTab struct {
	Direction Direction
}

// Detach detaches the current client from the session.
type Detach struct{}

// EditScrollback opens the focused pane's scrollback in an editor.
type EditScrollback struct{}

// Write sends raw bytes to the focused pane's input.
type Write struct {
	Bytes []byte
}

// WriteChars sends text to the focused pane's input.
type WriteChars struct {
	Chars string
}

// ToggleTab switches to the previously focused tab.
type ToggleTab struct{}

// MovePane rotates the focused pane's position.
type MovePane struct{}

// MovePaneWithDirection swaps the focused pane with its neighbor in
// Direction.
type MovePaneWithDirection struct {
	Direction Direction
}

// ClearScreen clears the focused pane.
type ClearScreen struct{}

// ScrollUp scrolls the focused pane up one line.
type ScrollUp struct{}

// ScrollDown scrolls the focused pane down one line.
type ScrollDown struct{}

// ScrollToTop scrolls the focused pane to the top of its scrollback.
type ScrollToTop struct{}

// ScrollToBottom scrolls the focused pane to the bottom.
type ScrollToBottom struct{}

// PageScrollUp scrolls the focused pane up one page.
type PageScrollUp struct{}

// PageScrollDown scrolls the focused pane down one page.
type PageScrollDown struct{}

// ToggleFocusFullscreen toggles fullscreen for the focused pane.
type ToggleFocusFullscreen struct{}

// TogglePaneFrames toggles frame drawing for all panes.
type TogglePaneFrames struct{}

// TogglePaneEmbedOrEject floats an embedded pane or embeds a floating one.
type TogglePaneEmbedOrEject struct{}

// UndoRenamePane reverts the focused pane's name.
type UndoRenamePane struct{}

// CloseFocus closes the focused pane.
type CloseFocus struct{}

// ToggleActiveTabSync toggles input synchronization across the tab's panes.
type ToggleActiveTabSync struct{}

// CloseFocusedTab closes the focused tab.
type CloseFocusedTab struct{}

// UndoRenameTab reverts the focused tab's name.
type UndoRenameTab struct{}

// QuitHost shuts down the host session.
type QuitHost struct{}

// PreviousSwapLayout applies the previous swap layout to the tab.
type PreviousSwapLayout struct{}

// NextSwapLayout applies the next swap layout to the tab.
type NextSwapLayout struct{}

// GoToTabName focuses the tab with the given name.
type GoToTabName struct {
	Name string
}

// FocusOrCreateTab focuses the named tab, creating it if absent.
type FocusOrCreateTab struct {
	Name string
}

// GoToTab focuses the tab at the given one-based position.
type GoToTab struct {
	TabIndex uint32
}

// StartOrReloadPlugin starts the plugin at URL, reloading it if running.
type StartOrReloadPlugin struct {
	URL string
}

// CloseTerminalPane closes a terminal pane by id.
type CloseTerminalPane struct {
	PaneID uint32
}

// ClosePluginPane closes a plugin pane by id.
type ClosePluginPane struct {
	PaneID uint32
}

// FocusTerminalPane focuses a terminal pane by id.
type FocusTerminalPane struct {
	PaneID              uint32
	ShouldFloatIfHidden bool
}

// FocusPluginPane focuses a plugin pane by id.
type FocusPluginPane struct {
	PaneID              uint32
	ShouldFloatIfHidden bool
}

// RenameTerminalPane renames a terminal pane.
type RenameTerminalPane struct {
	PaneID uint32
	Name   string
}

// RenamePluginPane renames a plugin pane.
type RenamePluginPane struct {
	PaneID uint32
	Name   string
}

// RenameTab renames the tab at the given position.
type RenameTab struct {
	TabIndex uint32
	Name     string
}

// ReportPanic forwards a plugin crash report to the host. The wire
// form of this command is named ReportCrash.
type ReportPanic struct {
	Message string
}

// RequestPluginPermissions asks the user to grant the listed permissions.
type RequestPluginPermissions struct {
	Permissions []PermissionType
}

// SwitchSession moves the client to another session, optionally
// focusing a tab and pane there.
type SwitchSession struct {
	Target ConnectToSession
}

func (Subscribe) isCommand()                {}
func (Unsubscribe) isCommand()              {}
func (SetSelectable) isCommand()            {}
func (GetPluginIDs) isCommand()             {}
func (GetHostVersion) isCommand()           {}
func (OpenFile) isCommand()                 {}
func (OpenFileFloating) isCommand()         {}
func (OpenTerminal) isCommand()             {}
func (OpenTerminalFloating) isCommand()     {}
func (OpenCommandPane) isCommand()          {}
func (OpenCommandPaneFloating) isCommand()  {}
func (SwitchTabTo) isCommand()              {}
func (SetTimeout) isCommand()               {}
func (ExecCmd) isCommand()                  {}
func (PostMessageTo) isCommand()            {}
func (PostMessageToPlugin) isCommand()      {}
func (HideSelf) isCommand()                 {}
func (ShowSelf) isCommand()                 {}
func (SwitchToMode) isCommand()             {}
func (NewTabsWithLayout) isCommand()        {}
func (NewTab) isCommand()                   {}
func (GoToNextTab) isCommand()              {}
func (GoToPreviousTab) isCommand()          {}
func (Resize) isCommand()                   {}
func (ResizeWithDirection) isCommand()      {}
func (FocusNextPane) isCommand()            {}
func (FocusPreviousPane) isCommand()        {}
func (MoveFocus) isCommand()                {}
func (MoveFocusOrTab) isCommand()           {}
func (Detach) isCommand()                   {}
func (EditScrollback) isCommand()           {}
func (Write) isCommand()                    {}
func (WriteChars) isCommand()               {}
func (ToggleTab) isCommand()                {}
func (MovePane) isCommand()                 {}
func (MovePaneWithDirection) isCommand()    {}
func (ClearScreen) isCommand()              {}
func (ScrollUp) isCommand()                 {}
func (ScrollDown) isCommand()               {}
func (ScrollToTop) isCommand()              {}
func (ScrollToBottom) isCommand()           {}
func (PageScrollUp) isCommand()             {}
func (PageScrollDown) isCommand()           {}
func (ToggleFocusFullscreen) isCommand()    {}
func (TogglePaneFrames) isCommand()         {}
func (TogglePaneEmbedOrEject) isCommand()   {}
func (UndoRenamePane) isCommand()           {}
func (CloseFocus) isCommand()               {}
func (ToggleActiveTabSync) isCommand()      {}
func (CloseFocusedTab) isCommand()          {}
func (UndoRenameTab) isCommand()            {}
func (QuitHost) isCommand()                 {}
func (PreviousSwapLayout) isCommand()       {}
func (NextSwapLayout) isCommand()           {}
func (GoToTabName) isCommand()              {}
func (FocusOrCreateTab) isCommand()         {}
func (GoToTab) isCommand()                  {}
func (StartOrReloadPlugin) isCommand()      {}
func (CloseTerminalPane) isCommand()        {}
func (ClosePluginPane) isCommand()          {}
func (FocusTerminalPane) isCommand()        {}
func (FocusPluginPane) isCommand()          {}
func (RenameTerminalPane) isCommand()       {}
func (RenamePluginPane) isCommand()         {}
func (RenameTab) isCommand()                {}
func (ReportPanic) isCommand()              {}
func (RequestPluginPermissions) isCommand() {}
func (SwitchSession) isCommand()            {}
