// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pluginproto

import "fmt"

// CommandName is the wire tag of a plugin command. Values are protocol
// constants in declaration order; appending new names is compatible,
// renumbering is not.
type CommandName int32

const (
	CommandName_Subscribe CommandName = iota
	CommandName_Unsubscribe
	CommandName_SetSelectable
	CommandName_GetPluginIds
	CommandName_GetHostVersion
	CommandName_OpenFile
	CommandName_OpenFileFloating
	CommandName_OpenTerminal
	CommandName_OpenTerminalFloating
	CommandName_OpenCommandPane
	CommandName_OpenCommandPaneFloating
	CommandName_SwitchTabTo
	CommandName_SetTimeout
	CommandName_ExecCmd
	CommandName_PostMessageTo
	CommandName_PostMessageToPlugin
	CommandName_HideSelf
	CommandName_ShowSelf
	CommandName_SwitchToMode
	CommandName_NewTabsWithLayout
	CommandName_NewTab
	CommandName_GoToNextTab
	CommandName_GoToPreviousTab
	CommandName_Resize
	CommandName_ResizeWithDirection
	CommandName_FocusNextPane
	CommandName_FocusPreviousPane
	CommandName_MoveFocus
	CommandName_MoveFocusOrTab
	CommandName_Detach
	CommandName_EditScrollback
	CommandName_Write
	CommandName_WriteChars
	CommandName_ToggleTab
	CommandName_MovePane
	CommandName_MovePaneWithDirection
	CommandName_ClearScreen
	CommandName_ScrollUp
	CommandName_ScrollDown
	CommandName_ScrollToTop
	CommandName_ScrollToBottom
	CommandName_PageScrollUp
	CommandName_PageScrollDown
	CommandName_ToggleFocusFullscreen
	CommandName_TogglePaneFrames
	CommandName_TogglePaneEmbedOrEject
	CommandName_UndoRenamePane
	CommandName_CloseFocus
	CommandName_ToggleActiveTabSync
	CommandName_CloseFocusedTab
	CommandName_UndoRenameTab
	CommandName_QuitHost
	CommandName_PreviousSwapLayout
	CommandName_NextSwapLayout
	CommandName_GoToTabName
	CommandName_FocusOrCreateTab
	CommandName_GoToTab
	CommandName_StartOrReloadPlugin
	CommandName_CloseTerminalPane
	CommandName_ClosePluginPane
	CommandName_FocusTerminalPane
	CommandName_FocusPluginPane
	CommandName_RenameTerminalPane
	CommandName_RenamePluginPane
	CommandName_RenameTab
	CommandName_ReportCrash
	CommandName_RequestPluginPermissions
	CommandName_SwitchSession

	commandNameCount
)

var commandNames = [commandNameCount]string{
	"Subscribe",
	"Unsubscribe",
	"SetSelectable",
	"GetPluginIds",
	"GetHostVersion",
	"OpenFile",
	"OpenFileFloating",
	"OpenTerminal",
	"OpenTerminalFloating",
	"OpenCommandPane",
	"OpenCommandPaneFloating",
	"SwitchTabTo",
	"SetTimeout",
	"ExecCmd",
	"PostMessageTo",
	"PostMessageToPlugin",
	"HideSelf",
	"ShowSelf",
	"SwitchToMode",
	"NewTabsWithLayout",
	"NewTab",
	"GoToNextTab",
	"GoToPreviousTab",
	"Resize",
	"ResizeWithDirection",
	"FocusNextPane",
	"FocusPreviousPane",
	"MoveFocus",
	"MoveFocusOrTab",
	"Detach",
	"EditScrollback",
	"Write",
	"WriteChars",
	"ToggleTab",
	"MovePane",
	"MovePaneWithDirection",
	"ClearScreen",
	"ScrollUp",
	"ScrollDown",
	"ScrollToTop",
	"ScrollToBottom",
	"PageScrollUp",
	"PageScrollDown",
	"ToggleFocusFullscreen",
	"TogglePaneFrames",
	"TogglePaneEmbedOrEject",
	"UndoRenamePane",
	"CloseFocus",
	"ToggleActiveTabSync",
	"CloseFocusedTab",
	"UndoRenameTab",
	"QuitHost",
	"PreviousSwapLayout",
	"NextSwapLayout",
	"GoToTabName",
	"FocusOrCreateTab",
	"GoToTab",
	"StartOrReloadPlugin",
	"CloseTerminalPane",
	"ClosePluginPane",
	"FocusTerminalPane",
	"FocusPluginPane",
	"RenameTerminalPane",
	"RenamePluginPane",
	"RenameTab",
	"ReportCrash",
	"RequestPluginPermissions",
	"SwitchSession",
}

var commandNameValues = func() map[string]CommandName {
	values := make(map[string]CommandName, commandNameCount)
	for i, name := range commandNames {
		values[name] = CommandName(i)
	}
	return values
}()

// Valid reports whether the tag is part of the vocabulary.
func (n CommandName) Valid() bool { return n >= 0 && n < commandNameCount }

// String returns the tag's wire name, or its number for tags outside
// the vocabulary.
func (n CommandName) String() string {
	if n.Valid() {
		return commandNames[n]
	}
	return fmt.Sprintf("CommandName(%d)", int32(n))
}

// ParseCommandName returns the tag with the given wire name.
func ParseCommandName(name string) (CommandName, error) {
	value, ok := commandNameValues[name]
	if !ok {
		return 0, fmt.Errorf("unknown command name %q", name)
	}
	return value, nil
}

// CommandNames returns every tag in the vocabulary in numeric order.
func CommandNames() []CommandName {
	all := make([]CommandName, commandNameCount)
	for i := range all {
		all[i] = CommandName(i)
	}
	return all
}
