// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugincodec

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/pluginwire/lib/plugin"
	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

// Decode converts a wire envelope into a domain command. The returned
// error is always an [*Error]. A nil envelope is ErrMalformedPayload
// with Command -1.
func (c *Codec) Decode(envelope *pluginproto.PluginCommand) (plugin.Command, error) {
	if envelope == nil {
		return nil, newError(ErrMalformedPayload, -1, errors.New("nil envelope"))
	}
	name := envelope.Name
	if !name.Valid() {
		return nil, newError(ErrUnrecognizedCommand, name, nil)
	}

	expected := name.ExpectedArm()
	if expected == pluginproto.ArmNone {
		if envelope.Payload != nil {
			return nil, newError(ErrUnexpectedPayload, name, fmt.Errorf("got %s", envelope.Payload.Arm()))
		}
		return payloadlessCommand(name), nil
	}

	if envelope.Payload == nil {
		return nil, newError(ErrMissingPayload, name, nil)
	}
	if arm := envelope.Payload.Arm(); arm != expected {
		return nil, newError(ErrMismatchedPayload, name, fmt.Errorf("expected %s, got %s", expected, arm))
	}
	if pluginproto.IsNilPayload(envelope.Payload) {
		return nil, malformed(name, expected.String())
	}
	return c.decodePayload(name, envelope.Payload)
}

// decodePayload converts a payload already known to be in name's arm.
func (c *Codec) decodePayload(name pluginproto.CommandName, payload pluginproto.Payload) (plugin.Command, error) {
	switch p := payload.(type) {
	case *pluginproto.PluginCommand_SubscribePayload:
		if p.SubscribePayload == nil || p.SubscribePayload.Subscriptions == nil {
			return nil, malformed(name, "subscriptions")
		}
		events, err := c.eventTypes(name, p.SubscribePayload.Subscriptions)
		if err != nil {
			return nil, err
		}
		return plugin.Subscribe{Events: events}, nil

	case *pluginproto.PluginCommand_UnsubscribePayload:
		if p.UnsubscribePayload == nil || p.UnsubscribePayload.Subscriptions == nil {
			return nil, malformed(name, "subscriptions")
		}
		events, err := c.eventTypes(name, p.UnsubscribePayload.Subscriptions)
		if err != nil {
			return nil, err
		}
		return plugin.Unsubscribe{Events: events}, nil

	case *pluginproto.PluginCommand_SetSelectablePayload:
		return plugin.SetSelectable{Selectable: p.SetSelectablePayload}, nil

	case *pluginproto.PluginCommand_OpenFilePayload:
		file, err := c.file(name, p.OpenFilePayload)
		if err != nil {
			return nil, err
		}
		return plugin.OpenFile{File: file}, nil

	case *pluginproto.PluginCommand_OpenFileFloatingPayload:
		file, err := c.file(name, p.OpenFileFloatingPayload)
		if err != nil {
			return nil, err
		}
		return plugin.OpenFileFloating{File: file}, nil

	case *pluginproto.PluginCommand_OpenTerminalPayload:
		file, err := c.file(name, p.OpenTerminalPayload)
		if err != nil {
			return nil, err
		}
		return plugin.OpenTerminal{Cwd: file}, nil

	case *pluginproto.PluginCommand_OpenTerminalFloatingPayload:
		file, err := c.file(name, p.OpenTerminalFloatingPayload)
		if err != nil {
			return nil, err
		}
		return plugin.OpenTerminalFloating{Cwd: file}, nil

	case *pluginproto.PluginCommand_OpenCommandPanePayload:
		command, err := c.commandToRun(name, p.OpenCommandPanePayload)
		if err != nil {
			return nil, err
		}
		return plugin.OpenCommandPane{Command: command}, nil

	case *pluginproto.PluginCommand_OpenCommandPaneFloatingPayload:
		command, err := c.commandToRun(name, p.OpenCommandPaneFloatingPayload)
		if err != nil {
			return nil, err
		}
		return plugin.OpenCommandPaneFloating{Command: command}, nil

	case *pluginproto.PluginCommand_SwitchTabToPayload:
		if p.SwitchTabToPayload == nil {
			return nil, malformed(name, "tab index")
		}
		index, err := c.narrow(name, p.SwitchTabToPayload.TabIndex)
		if err != nil {
			return nil, err
		}
		return plugin.SwitchTabTo{TabIndex: index}, nil

	case *pluginproto.PluginCommand_SetTimeoutPayload:
		if p.SetTimeoutPayload == nil {
			return nil, malformed(name, "seconds")
		}
		return plugin.SetTimeout{Seconds: p.SetTimeoutPayload.Seconds}, nil

	case *pluginproto.PluginCommand_ExecCmdPayload:
		if p.ExecCmdPayload == nil {
			return nil, malformed(name, "command line")
		}
		return plugin.ExecCmd{CommandLine: nilIfEmpty(p.ExecCmdPayload.CommandLine)}, nil

	case *pluginproto.PluginCommand_PostMessageToPayload:
		message, err := c.message(name, p.PostMessageToPayload)
		if err != nil {
			return nil, err
		}
		return plugin.PostMessageTo{Message: message}, nil

	case *pluginproto.PluginCommand_PostMessageToPluginPayload:
		message, err := c.message(name, p.PostMessageToPluginPayload)
		if err != nil {
			return nil, err
		}
		return plugin.PostMessageToPlugin{Message: message}, nil

	case *pluginproto.PluginCommand_ShowSelfPayload:
		return plugin.ShowSelf{ShouldFloatIfHidden: p.ShowSelfPayload}, nil

	case *pluginproto.PluginCommand_SwitchToModePayload:
		if p.SwitchToModePayload == nil || p.SwitchToModePayload.InputMode == nil {
			return nil, malformed(name, "input mode")
		}
		mode, err := c.nested.InputModeFromWire(p.SwitchToModePayload.InputMode)
		if err != nil {
			return nil, nestedFailure(name, err)
		}
		return plugin.SwitchToMode{Mode: mode}, nil

	case *pluginproto.PluginCommand_NewTabsWithLayoutPayload:
		return plugin.NewTabsWithLayout{Layout: p.NewTabsWithLayoutPayload}, nil

	case *pluginproto.PluginCommand_ResizePayload:
		if p.ResizePayload == nil || p.ResizePayload.Resize == nil {
			return nil, malformed(name, "resize")
		}
		action, err := c.nested.ResizeFromWire(p.ResizePayload.Resize)
		if err != nil {
			return nil, nestedFailure(name, err)
		}
		return plugin.Resize{Action: action}, nil

	case *pluginproto.PluginCommand_ResizeWithDirectionPayload:
		if p.ResizeWithDirectionPayload == nil || p.ResizeWithDirectionPayload.Resize == nil {
			return nil, malformed(name, "resize")
		}
		strategy, err := c.nested.ResizeStrategyFromWire(p.ResizeWithDirectionPayload.Resize)
		if err != nil {
			return nil, nestedFailure(name, err)
		}
		return plugin.ResizeWithDirection{Strategy: strategy}, nil

	case *pluginproto.PluginCommand_MoveFocusPayload:
		direction, err := c.direction(name, p.MoveFocusPayload)
		if err != nil {
			return nil, err
		}
		return plugin.MoveFocus{Direction: direction}, nil

	case *pluginproto.PluginCommand_MoveFocusOrTabPayload:
		direction, err := c.direction(name, p.MoveFocusOrTabPayload)
		if err != nil {
			return nil, err
		}
		return plugin.MoveFocusOrTab{Direction: direction}, nil

	case *pluginproto.PluginCommand_WritePayload:
		return plugin.Write{Bytes: nilIfEmpty(p.WritePayload)}, nil

	case *pluginproto.PluginCommand_WriteCharsPayload:
		return plugin.WriteChars{Chars: p.WriteCharsPayload}, nil

	case *pluginproto.PluginCommand_MovePaneWithDirectionPayload:
		direction, err := c.direction(name, p.MovePaneWithDirectionPayload)
		if err != nil {
			return nil, err
		}
		return plugin.MovePaneWithDirection{Direction: direction}, nil

	case *pluginproto.PluginCommand_GoToTabNamePayload:
		return plugin.GoToTabName{Name: p.GoToTabNamePayload}, nil

	case *pluginproto.PluginCommand_FocusOrCreateTabPayload:
		return plugin.FocusOrCreateTab{Name: p.FocusOrCreateTabPayload}, nil

	case *pluginproto.PluginCommand_GoToTabPayload:
		index, err := c.narrow(name, p.GoToTabPayload)
		if err != nil {
			return nil, err
		}
		return plugin.GoToTab{TabIndex: index}, nil

	case *pluginproto.PluginCommand_StartOrReloadPluginPayload:
		return plugin.StartOrReloadPlugin{URL: p.StartOrReloadPluginPayload}, nil

	case *pluginproto.PluginCommand_CloseTerminalPanePayload:
		id, err := c.narrow(name, p.CloseTerminalPanePayload)
		if err != nil {
			return nil, err
		}
		return plugin.CloseTerminalPane{PaneID: id}, nil

	case *pluginproto.PluginCommand_ClosePluginPanePayload:
		id, err := c.narrow(name, p.ClosePluginPanePayload)
		if err != nil {
			return nil, err
		}
		return plugin.ClosePluginPane{PaneID: id}, nil

	case *pluginproto.PluginCommand_FocusTerminalPanePayload:
		id, float, err := c.paneFocus(name, p.FocusTerminalPanePayload)
		if err != nil {
			return nil, err
		}
		return plugin.FocusTerminalPane{PaneID: id, ShouldFloatIfHidden: float}, nil

	case *pluginproto.PluginCommand_FocusPluginPanePayload:
		id, float, err := c.paneFocus(name, p.FocusPluginPanePayload)
		if err != nil {
			return nil, err
		}
		return plugin.FocusPluginPane{PaneID: id, ShouldFloatIfHidden: float}, nil

	case *pluginproto.PluginCommand_RenameTerminalPanePayload:
		id, newName, err := c.rename(name, p.RenameTerminalPanePayload)
		if err != nil {
			return nil, err
		}
		return plugin.RenameTerminalPane{PaneID: id, Name: newName}, nil

	case *pluginproto.PluginCommand_RenamePluginPanePayload:
		id, newName, err := c.rename(name, p.RenamePluginPanePayload)
		if err != nil {
			return nil, err
		}
		return plugin.RenamePluginPane{PaneID: id, Name: newName}, nil

	case *pluginproto.PluginCommand_RenameTabPayload:
		index, newName, err := c.rename(name, p.RenameTabPayload)
		if err != nil {
			return nil, err
		}
		return plugin.RenameTab{TabIndex: index, Name: newName}, nil

	case *pluginproto.PluginCommand_ReportCrashPayload:
		return plugin.ReportPanic{Message: p.ReportCrashPayload}, nil

	case *pluginproto.PluginCommand_RequestPluginPermissionPayload:
		if p.RequestPluginPermissionPayload == nil {
			return nil, malformed(name, "permissions")
		}
		permissions, err := c.permissions(name, p.RequestPluginPermissionPayload.Permissions)
		if err != nil {
			return nil, err
		}
		return plugin.RequestPluginPermissions{Permissions: permissions}, nil

	case *pluginproto.PluginCommand_SwitchSessionPayload:
		if p.SwitchSessionPayload == nil {
			return nil, malformed(name, "session target")
		}
		target, err := connectToSession(name, p.SwitchSessionPayload)
		if err != nil {
			return nil, err
		}
		return plugin.SwitchSession{Target: target}, nil
	}

	// Reached only if a Payload implementation exists that the switch
	// above does not list, which means the vocabulary and this file
	// have drifted apart.
	return nil, newError(ErrMismatchedPayload, name, fmt.Errorf("unhandled payload type %T", payload))
}

func payloadlessCommand(name pluginproto.CommandName) plugin.Command {
	switch name {
	case pluginproto.CommandName_GetPluginIds:
		return plugin.GetPluginIDs{}
	case pluginproto.CommandName_GetHostVersion:
		return plugin.GetHostVersion{}
	case pluginproto.CommandName_HideSelf:
		return plugin.HideSelf{}
	case pluginproto.CommandName_NewTab:
		return plugin.NewTab{}
	case pluginproto.CommandName_GoToNextTab:
		return plugin.GoToNextTab{}
	case pluginproto.CommandName_GoToPreviousTab:
		return plugin.GoToPreviousTab{}
	case pluginproto.CommandName_FocusNextPane:
		return plugin.FocusNextPane{}
	case pluginproto.CommandName_FocusPreviousPane:
		return plugin.FocusPreviousPane{}
	case pluginproto.CommandName_Detach:
		return plugin.Detach{}
	case pluginproto.CommandName_EditScrollback:
		return plugin.EditScrollback{}
	case pluginproto.CommandName_ToggleTab:
		return plugin.ToggleTab{}
	case pluginproto.CommandName_MovePane:
		return plugin.MovePane{}
	case pluginproto.CommandName_ClearScreen:
		return plugin.ClearScreen{}
	case pluginproto.CommandName_ScrollUp:
		return plugin.ScrollUp{}
	case pluginproto.CommandName_ScrollDown:
		return plugin.ScrollDown{}
	case pluginproto.CommandName_ScrollToTop:
		return plugin.ScrollToTop{}
	case pluginproto.CommandName_ScrollToBottom:
		return plugin.ScrollToBottom{}
	case pluginproto.CommandName_PageScrollUp:
		return plugin.PageScrollUp{}
	case pluginproto.CommandName_PageScrollDown:
		return plugin.PageScrollDown{}
	case pluginproto.CommandName_ToggleFocusFullscreen:
		return plugin.ToggleFocusFullscreen{}
	case pluginproto.CommandName_TogglePaneFrames:
		return plugin.TogglePaneFrames{}
	case pluginproto.CommandName_TogglePaneEmbedOrEject:
		return plugin.TogglePaneEmbedOrEject{}
	case pluginproto.CommandName_UndoRenamePane:
		return plugin.UndoRenamePane{}
	case pluginproto.CommandName_CloseFocus:
		return plugin.CloseFocus{}
	case pluginproto.CommandName_ToggleActiveTabSync:
		return plugin.ToggleActiveTabSync{}
	case pluginproto.CommandName_CloseFocusedTab:
		return plugin.CloseFocusedTab{}
	case pluginproto.CommandName_UndoRenameTab:
		return plugin.UndoRenameTab{}
	case pluginproto.CommandName_QuitHost:
		return plugin.QuitHost{}
	case pluginproto.CommandName_PreviousSwapLayout:
		return plugin.PreviousSwapLayout{}
	case pluginproto.CommandName_NextSwapLayout:
		return plugin.NextSwapLayout{}
	}
	panic(fmt.Sprintf("plugincodec: %s has no payload but no command either", name))
}

func (c *Codec) eventTypes(name pluginproto.CommandName, list *pluginproto.EventNameList) (plugin.EventTypeSet, error) {
	if len(list.EventTypes) == 0 {
		return nil, nil
	}
	events := make(plugin.EventTypeSet, len(list.EventTypes))
	for _, wire := range list.EventTypes {
		eventType, err := c.nested.EventTypeFromWire(wire)
		if err != nil {
			return nil, nestedFailure(name, err)
		}
		events[eventType] = struct{}{}
	}
	return events, nil
}

func (c *Codec) file(name pluginproto.CommandName, payload *pluginproto.OpenFilePayload) (plugin.FileToOpen, error) {
	if payload == nil || payload.FileToOpen == nil {
		return plugin.FileToOpen{}, malformed(name, "file to open")
	}
	file, err := c.nested.FileFromWire(payload.FileToOpen)
	if err != nil {
		return plugin.FileToOpen{}, nestedFailure(name, err)
	}
	return file, nil
}

func (c *Codec) commandToRun(name pluginproto.CommandName, payload *pluginproto.OpenCommandPanePayload) (plugin.CommandToRun, error) {
	if payload == nil || payload.CommandToRun == nil {
		return plugin.CommandToRun{}, malformed(name, "command to run")
	}
	command, err := c.nested.CommandFromWire(payload.CommandToRun)
	if err != nil {
		return plugin.CommandToRun{}, nestedFailure(name, err)
	}
	return command, nil
}

func (c *Codec) message(name pluginproto.CommandName, payload *pluginproto.PluginMessagePayload) (plugin.PluginMessage, error) {
	if payload == nil || payload.Message == nil {
		return plugin.PluginMessage{}, malformed(name, "message")
	}
	message, err := c.nested.MessageFromWire(payload.Message)
	if err != nil {
		return plugin.PluginMessage{}, nestedFailure(name, err)
	}
	return message, nil
}

func (c *Codec) direction(name pluginproto.CommandName, payload *pluginproto.MovePayload) (plugin.Direction, error) {
	if payload == nil || payload.Direction == nil {
		return 0, malformed(name, "direction")
	}
	direction, err := c.nested.DirectionFromWire(payload.Direction)
	if err != nil {
		return 0, nestedFailure(name, err)
	}
	return direction, nil
}

func (c *Codec) paneFocus(name pluginproto.CommandName, payload *pluginproto.PaneIdAndShouldFloat) (uint32, bool, error) {
	if payload == nil {
		return 0, false, malformed(name, "pane id")
	}
	id, err := c.narrow(name, payload.PaneId)
	if err != nil {
		return 0, false, err
	}
	return id, payload.ShouldFloat, nil
}

func (c *Codec) rename(name pluginproto.CommandName, payload *pluginproto.IdAndNewName) (uint32, string, error) {
	if payload == nil {
		return 0, "", malformed(name, "id and new name")
	}
	id, err := c.narrow(name, payload.Id)
	if err != nil {
		return 0, "", err
	}
	return id, payload.NewName, nil
}

// permissions converts each code, dropping the ones the nested
// converter rejects unless strict permissions are on.
func (c *Codec) permissions(name pluginproto.CommandName, codes []pluginproto.PermissionType) ([]plugin.PermissionType, error) {
	var permissions []plugin.PermissionType
	var rejected []error
	for _, code := range codes {
		permission, err := c.nested.PermissionFromWire(code)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		permissions = append(permissions, permission)
	}
	if c.strictPermissions && len(rejected) > 0 {
		return nil, nestedFailure(name, errors.Join(rejected...))
	}
	return permissions, nil
}

// connectToSession enforces that the pane id and its kind travel
// together.
func connectToSession(name pluginproto.CommandName, payload *pluginproto.SwitchSessionPayload) (plugin.ConnectToSession, error) {
	target := plugin.ConnectToSession{
		Name:        clonePointer(payload.Name),
		TabPosition: clonePointer(payload.TabPosition),
	}
	switch {
	case payload.PaneId != nil && payload.PaneIdIsPlugin != nil:
		target.Pane = &plugin.PaneRef{ID: *payload.PaneId, IsPlugin: *payload.PaneIdIsPlugin}
	case payload.PaneId != nil:
		return plugin.ConnectToSession{}, newError(ErrMalformedSessionSwitch, name,
			errors.New("pane id is set without pane_id_is_plugin"))
	case payload.PaneIdIsPlugin != nil:
		return plugin.ConnectToSession{}, newError(ErrMalformedSessionSwitch, name,
			errors.New("pane_id_is_plugin is set without pane id"))
	}
	return target, nil
}

func clonePointer[T any](value *T) *T {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}

// nilIfEmpty maps an empty slice to nil; see the plugin package doc.
func nilIfEmpty[T any](values []T) []T {
	if len(values) == 0 {
		return nil
	}
	return values
}
