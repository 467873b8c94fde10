// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugin

import "fmt"

// InputMode is the host's keyboard input mode.
type InputMode uint8

const (
	ModeNormal InputMode = iota
	ModeLocked
	ModeResize
	ModePane
	ModeTab
	ModeScroll
	ModeEnterSearch
	ModeSearch
	ModeRenameTab
	ModeRenamePane
	ModeSession
	ModeMove
	ModePrompt
	ModeTmux

	inputModeCount
)

var inputModeNames = [inputModeCount]string{
	"Normal",
	"Locked",
	"Resize",
	"Pane",
	"Tab",
	"Scroll",
	"EnterSearch",
	"Search",
	"RenameTab",
	"RenamePane",
	"Session",
	"Move",
	"Prompt",
	"Tmux",
}

// Valid reports whether the mode is one of the defined constants.
func (m InputMode) Valid() bool { return m < inputModeCount }

func (m InputMode) String() string {
	if m.Valid() {
		return inputModeNames[m]
	}
	return fmt.Sprintf("InputMode(%d)", uint8(m))
}
