// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugincodec

import (
	"fmt"

	"github.com/bureau-foundation/pluginwire/lib/plugin"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

// Encode converts a domain command into a wire envelope. Commands must
// be passed by value; pointers to command structs are not commands.
// The returned error is always an [*Error].
func (c *Codec) Encode(command plugin.Command) (*pluginproto.PluginCommand, error) {
	switch command := command.(type) {
	case plugin.Subscribe:
		list, err := c.eventNameList(pluginproto.CommandName_Subscribe, command.Events)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_Subscribe, &pluginproto.PluginCommand_SubscribePayload{
			SubscribePayload: &pluginproto.SubscribePayload{Subscriptions: list},
		}), nil

	case plugin.Unsubscribe:
		list, err := c.eventNameList(pluginproto.CommandName_Unsubscribe, command.Events)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_Unsubscribe, &pluginproto.PluginCommand_UnsubscribePayload{
			UnsubscribePayload: &pluginproto.UnsubscribePayload{Subscriptions: list},
		}), nil

	case plugin.SetSelectable:
		return envelope(pluginproto.CommandName_SetSelectable, &pluginproto.PluginCommand_SetSelectablePayload{
			SetSelectablePayload: command.Selectable,
		}), nil

	case plugin.GetPluginIDs:
		return envelope(pluginproto.CommandName_GetPluginIds, nil), nil

	case plugin.GetHostVersion:
		return envelope(pluginproto.CommandName_GetHostVersion, nil), nil

	case plugin.OpenFile:
		payload, err := c.filePayload(pluginproto.CommandName_OpenFile, command.File)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_OpenFile, &pluginproto.PluginCommand_OpenFilePayload{
			OpenFilePayload: payload,
		}), nil

	case plugin.OpenFileFloating:
		payload, err := c.filePayload(pluginproto.CommandName_OpenFileFloating, command.File)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_OpenFileFloating, &pluginproto.PluginCommand_OpenFileFloatingPayload{
			OpenFileFloatingPayload: payload,
		}), nil

	case plugin.OpenTerminal:
		payload, err := c.filePayload(pluginproto.CommandName_OpenTerminal, command.Cwd)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_OpenTerminal, &pluginproto.PluginCommand_OpenTerminalPayload{
			OpenTerminalPayload: payload,
		}), nil

	case plugin.OpenTerminalFloating:
		payload, err := c.filePayload(pluginproto.CommandName_OpenTerminalFloating, command.Cwd)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_OpenTerminalFloating, &pluginproto.PluginCommand_OpenTerminalFloatingPayload{
			OpenTerminalFloatingPayload: payload,
		}), nil

	case plugin.OpenCommandPane:
		payload, err := c.commandPayload(pluginproto.CommandName_OpenCommandPane, command.Command)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_OpenCommandPane, &pluginproto.PluginCommand_OpenCommandPanePayload{
			OpenCommandPanePayload: payload,
		}), nil

	case plugin.OpenCommandPaneFloating:
		payload, err := c.commandPayload(pluginproto.CommandName_OpenCommandPaneFloating, command.Command)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_OpenCommandPaneFloating, &pluginproto.PluginCommand_OpenCommandPaneFloatingPayload{
			OpenCommandPaneFloatingPayload: payload,
		}), nil

	case plugin.SwitchTabTo:
		index, err := c.widen(pluginproto.CommandName_SwitchTabTo, command.TabIndex)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_SwitchTabTo, &pluginproto.PluginCommand_SwitchTabToPayload{
			SwitchTabToPayload: &pluginproto.SwitchTabToPayload{TabIndex: index},
		}), nil

	case plugin.SetTimeout:
		return envelope(pluginproto.CommandName_SetTimeout, &pluginproto.PluginCommand_SetTimeoutPayload{
			SetTimeoutPayload: &pluginproto.SetTimeoutPayload{Seconds: command.Seconds},
		}), nil

	case plugin.ExecCmd:
		return envelope(pluginproto.CommandName_ExecCmd, &pluginproto.PluginCommand_ExecCmdPayload{
			ExecCmdPayload: &pluginproto.ExecCmdPayload{CommandLine: command.CommandLine},
		}), nil

	case plugin.PostMessageTo:
		payload, err := c.messagePayload(pluginproto.CommandName_PostMessageTo, command.Message)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_PostMessageTo, &pluginproto.PluginCommand_PostMessageToPayload{
			PostMessageToPayload: payload,
		}), nil

	case plugin.PostMessageToPlugin:
		payload, err := c.messagePayload(pluginproto.CommandName_PostMessageToPlugin, command.Message)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_PostMessageToPlugin, &pluginproto.PluginCommand_PostMessageToPluginPayload{
			PostMessageToPluginPayload: payload,
		}), nil

	case plugin.HideSelf:
		return envelope(pluginproto.CommandName_HideSelf, nil), nil

	case plugin.ShowSelf:
		return envelope(pluginproto.CommandName_ShowSelf, &pluginproto.PluginCommand_ShowSelfPayload{
			ShowSelfPayload: command.ShouldFloatIfHidden,
		}), nil

	case plugin.SwitchToMode:
		mode, err := c.nested.InputModeToWire(command.Mode)
		if err != nil {
			return nil, nestedFailure(pluginproto.CommandName_SwitchToMode, err)
		}
		return envelope(pluginproto.CommandName_SwitchToMode, &pluginproto.PluginCommand_SwitchToModePayload{
			SwitchToModePayload: &pluginproto.SwitchToModePayload{InputMode: mode},
		}), nil

	case plugin.NewTabsWithLayout:
		return envelope(pluginproto.CommandName_NewTabsWithLayout, &pluginproto.PluginCommand_NewTabsWithLayoutPayload{
			NewTabsWithLayoutPayload: command.Layout,
		}), nil

	case plugin.NewTab:
		return envelope(pluginproto.CommandName_NewTab, nil), nil

	case plugin.GoToNextTab:
		return envelope(pluginproto.CommandName_GoToNextTab, nil), nil

	case plugin.GoToPreviousTab:
		return envelope(pluginproto.CommandName_GoToPreviousTab, nil), nil

	case plugin.Resize:
		resize, err := c.nested.ResizeToWire(command.Action)
		if err != nil {
			return nil, nestedFailure(pluginproto.CommandName_Resize, err)
		}
		return envelope(pluginproto.CommandName_Resize, &pluginproto.PluginCommand_ResizePayload{
			ResizePayload: &pluginproto.ResizePayload{Resize: resize},
		}), nil

	case plugin.ResizeWithDirection:
		resize, err := c.nested.ResizeStrategyToWire(command.Strategy)
		if err != nil {
			return nil, nestedFailure(pluginproto.CommandName_ResizeWithDirection, err)
		}
		return envelope(pluginproto.CommandName_ResizeWithDirection, &pluginproto.PluginCommand_ResizeWithDirectionPayload{
			ResizeWithDirectionPayload: &pluginproto.ResizePayload{Resize: resize},
		}), nil

	case plugin.FocusNextPane:
		return envelope(pluginproto.CommandName_FocusNextPane, nil), nil

	case plugin.FocusPreviousPane:
		return envelope(pluginproto.CommandName_FocusPreviousPane, nil), nil

	case plugin.MoveFocus:
		payload, err := c.movePayload(pluginproto.CommandName_MoveFocus, command.Direction)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_MoveFocus, &pluginproto.PluginCommand_MoveFocusPayload{
			MoveFocusPayload: payload,
		}), nil

	case plugin.MoveFocusOrTab:
		payload, err := c.movePayload(pluginproto.CommandName_MoveFocusOrTab, command.Direction)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_MoveFocusOrTab, &pluginproto.PluginCommand_MoveFocusOrTabPayload{
			MoveFocusOrTabPayload: payload,
		}), nil

	case plugin.Detach:
		return envelope(pluginproto.CommandName_Detach, nil), nil

	case plugin.EditScrollback:
		return envelope(pluginproto.CommandName_EditScrollback, nil), nil

	case plugin.Write:
		return envelope(pluginproto.CommandName_Write, &pluginproto.PluginCommand_WritePayload{
			WritePayload: command.Bytes,
		}), nil

	case plugin.WriteChars:
		return envelope(pluginproto.CommandName_WriteChars, &pluginproto.PluginCommand_WriteCharsPayload{
			WriteCharsPayload: command.Chars,
		}), nil

	case plugin.ToggleTab:
		return envelope(pluginproto.CommandName_ToggleTab, nil), nil

	case plugin.MovePane:
		return envelope(pluginproto.CommandName_MovePane, nil), nil

	case plugin.MovePaneWithDirection:
		payload, err := c.movePayload(pluginproto.CommandName_MovePaneWithDirection, command.Direction)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_MovePaneWithDirection, &pluginproto.PluginCommand_MovePaneWithDirectionPayload{
			MovePaneWithDirectionPayload: payload,
		}), nil

	case plugin.ClearScreen:
		return envelope(pluginproto.CommandName_ClearScreen, nil), nil

	case plugin.ScrollUp:
		return envelope(pluginproto.CommandName_ScrollUp, nil), nil

	case plugin.ScrollDown:
		return envelope(pluginproto.CommandName_ScrollDown, nil), nil

	case plugin.ScrollToTop:
		return envelope(pluginproto.CommandName_ScrollToTop, nil), nil

	case plugin.ScrollToBottom:
		return envelope(pluginproto.CommandName_ScrollToBottom, nil), nil

	case plugin.PageScrollUp:
		return envelope(pluginproto.CommandName_PageScrollUp, nil), nil

	case plugin.PageScrollDown:
		return envelope(pluginproto.CommandName_PageScrollDown, nil), nil

	case plugin.ToggleFocusFullscreen:
		return envelope(pluginproto.CommandName_ToggleFocusFullscreen, nil), nil

	case plugin.TogglePaneFrames:
		return envelope(pluginproto.CommandName_TogglePaneFrames, nil), nil

	case plugin.TogglePaneEmbedOrEject:
		return envelope(pluginproto.CommandName_TogglePaneEmbedOrEject, nil), nil

	case plugin.UndoRenamePane:
		return envelope(pluginproto.CommandName_UndoRenamePane, nil), nil

	case plugin.CloseFocus:
		return envelope(pluginproto.CommandName_CloseFocus, nil), nil

	case plugin.ToggleActiveTabSync:
		return envelope(pluginproto.CommandName_ToggleActiveTabSync, nil), nil

	case plugin.CloseFocusedTab:
		return envelope(pluginproto.CommandName_CloseFocusedTab, nil), nil

	case plugin.UndoRenameTab:
		return envelope(pluginproto.CommandName_UndoRenameTab, nil), nil

	case plugin.QuitHost:
		return envelope(pluginproto.CommandName_QuitHost, nil), nil

	case plugin.PreviousSwapLayout:
		return envelope(pluginproto.CommandName_PreviousSwapLayout, nil), nil

	case plugin.NextSwapLayout:
		return envelope(pluginproto.CommandName_NextSwapLayout, nil), nil

	case plugin.GoToTabName:
		return envelope(pluginproto.CommandName_GoToTabName, &pluginproto.PluginCommand_GoToTabNamePayload{
			GoToTabNamePayload: command.Name,
		}), nil

	case plugin.FocusOrCreateTab:
		return envelope(pluginproto.CommandName_FocusOrCreateTab, &pluginproto.PluginCommand_FocusOrCreateTabPayload{
			FocusOrCreateTabPayload: command.Name,
		}), nil

	case plugin.GoToTab:
		index, err := c.widen(pluginproto.CommandName_GoToTab, command.TabIndex)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_GoToTab, &pluginproto.PluginCommand_GoToTabPayload{
			GoToTabPayload: index,
		}), nil

	case plugin.StartOrReloadPlugin:
		return envelope(pluginproto.CommandName_StartOrReloadPlugin, &pluginproto.PluginCommand_StartOrReloadPluginPayload{
			StartOrReloadPluginPayload: command.URL,
		}), nil

	case plugin.CloseTerminalPane:
		id, err := c.widen(pluginproto.CommandName_CloseTerminalPane, command.PaneID)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_CloseTerminalPane, &pluginproto.PluginCommand_CloseTerminalPanePayload{
			CloseTerminalPanePayload: id,
		}), nil

	case plugin.ClosePluginPane:
		id, err := c.widen(pluginproto.CommandName_ClosePluginPane, command.PaneID)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_ClosePluginPane, &pluginproto.PluginCommand_ClosePluginPanePayload{
			ClosePluginPanePayload: id,
		}), nil

	case plugin.FocusTerminalPane:
		payload, err := c.paneFocusPayload(pluginproto.CommandName_FocusTerminalPane, command.PaneID, command.ShouldFloatIfHidden)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_FocusTerminalPane, &pluginproto.PluginCommand_FocusTerminalPanePayload{
			FocusTerminalPanePayload: payload,
		}), nil

	case plugin.FocusPluginPane:
		payload, err := c.paneFocusPayload(pluginproto.CommandName_FocusPluginPane, command.PaneID, command.ShouldFloatIfHidden)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_FocusPluginPane, &pluginproto.PluginCommand_FocusPluginPanePayload{
			FocusPluginPanePayload: payload,
		}), nil

	case plugin.RenameTerminalPane:
		payload, err := c.renamePayload(pluginproto.CommandName_RenameTerminalPane, command.PaneID, command.Name)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_RenameTerminalPane, &pluginproto.PluginCommand_RenameTerminalPanePayload{
			RenameTerminalPanePayload: payload,
		}), nil

	case plugin.RenamePluginPane:
		payload, err := c.renamePayload(pluginproto.CommandName_RenamePluginPane, command.PaneID, command.Name)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_RenamePluginPane, &pluginproto.PluginCommand_RenamePluginPanePayload{
			RenamePluginPanePayload: payload,
		}), nil

	case plugin.RenameTab:
		payload, err := c.renamePayload(pluginproto.CommandName_RenameTab, command.TabIndex, command.Name)
		if err != nil {
			return nil, err
		}
		return envelope(pluginproto.CommandName_RenameTab, &pluginproto.PluginCommand_RenameTabPayload{
			RenameTabPayload: payload,
		}), nil

	case plugin.ReportPanic:
		return envelope(pluginproto.CommandName_ReportCrash, &pluginproto.PluginCommand_ReportCrashPayload{
			ReportCrashPayload: command.Message,
		}), nil

	case plugin.RequestPluginPermissions:
		codes := make([]pluginproto.PermissionType, 0, len(command.Permissions))
		for _, permission := range command.Permissions {
			code, err := c.nested.PermissionToWire(permission)
			if err != nil {
				return nil, nestedFailure(pluginproto.CommandName_RequestPluginPermissions, err)
			}
			codes = append(codes, code)
		}
		return envelope(pluginproto.CommandName_RequestPluginPermissions, &pluginproto.PluginCommand_RequestPluginPermissionPayload{
			RequestPluginPermissionPayload: &pluginproto.RequestPluginPermissionPayload{Permissions: codes},
		}), nil

	case plugin.SwitchSession:
		return envelope(pluginproto.CommandName_SwitchSession, &pluginproto.PluginCommand_SwitchSessionPayload{
			SwitchSessionPayload: switchSessionPayload(command.Target),
		}), nil
	}

	return nil, &Error{
		Kind:    ErrUnrecognizedCommand,
		Command: -1,
		Err:     fmt.Errorf("unsupported command type %T", command),
	}
}

func envelope(name pluginproto.CommandName, payload pluginproto.Payload) *pluginproto.PluginCommand {
	return &pluginproto.PluginCommand{Name: name, Payload: payload}
}

// eventNameList emits event types in ascending order so the encoding
// of a set is deterministic.
func (c *Codec) eventNameList(name pluginproto.CommandName, events plugin.EventTypeSet) (*pluginproto.EventNameList, error) {
	list := &pluginproto.EventNameList{}
	for _, eventType := range events.Sorted() {
		wire, err := c.nested.EventTypeToWire(eventType)
		if err != nil {
			return nil, nestedFailure(name, err)
		}
		list.EventTypes = append(list.EventTypes, wire)
	}
	return list, nil
}

func (c *Codec) filePayload(name pluginproto.CommandName, file plugin.FileToOpen) (*pluginproto.OpenFilePayload, error) {
	wire, err := c.nested.FileToWire(file)
	if err != nil {
		return nil, nestedFailure(name, err)
	}
	return &pluginproto.OpenFilePayload{FileToOpen: wire}, nil
}

func (c *Codec) commandPayload(name pluginproto.CommandName, command plugin.CommandToRun) (*pluginproto.OpenCommandPanePayload, error) {
	wire, err := c.nested.CommandToWire(command)
	if err != nil {
		return nil, nestedFailure(name, err)
	}
	return &pluginproto.OpenCommandPanePayload{CommandToRun: wire}, nil
}

func (c *Codec) messagePayload(name pluginproto.CommandName, message plugin.PluginMessage) (*pluginproto.PluginMessagePayload, error) {
	wire, err := c.nested.MessageToWire(message)
	if err != nil {
		return nil, nestedFailure(name, err)
	}
	return &pluginproto.PluginMessagePayload{Message: wire}, nil
}

func (c *Codec) movePayload(name pluginproto.CommandName, direction plugin.Direction) (*pluginproto.MovePayload, error) {
	wire, err := c.nested.DirectionToWire(direction)
	if err != nil {
		return nil, nestedFailure(name, err)
	}
	return &pluginproto.MovePayload{Direction: wire}, nil
}

func (c *Codec) paneFocusPayload(name pluginproto.CommandName, paneID uint32, shouldFloat bool) (*pluginproto.PaneIdAndShouldFloat, error) {
	id, err := c.widen(name, paneID)
	if err != nil {
		return nil, err
	}
	return &pluginproto.PaneIdAndShouldFloat{PaneId: id, ShouldFloat: shouldFloat}, nil
}

func (c *Codec) renamePayload(name pluginproto.CommandName, id uint32, newName string) (*pluginproto.IdAndNewName, error) {
	wireID, err := c.widen(name, id)
	if err != nil {
		return nil, err
	}
	return &pluginproto.IdAndNewName{Id: wireID, NewName: newName}, nil
}

// switchSessionPayload sets the pane id and its kind together or not
// at all.
func switchSessionPayload(target plugin.ConnectToSession) *pluginproto.SwitchSessionPayload {
	payload := &pluginproto.SwitchSessionPayload{
		Name:        clonePointer(target.Name),
		TabPosition: clonePointer(target.TabPosition),
	}
	if target.Pane != nil {
		id := target.Pane.ID
		isPlugin := target.Pane.IsPlugin
		payload.PaneId = &id
		payload.PaneIdIsPlugin = &isPlugin
	}
	return payload
}
