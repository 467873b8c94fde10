// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pluginproto

import (
	"encoding/hex"

	"github.com/bureau-foundation/pluginwire/lib/codec"
	"github.com/zeebo/blake3"
)

// PluginCommand is the wire envelope: a tag and at most one payload
// arm. A nil Payload is the no-payload case.
type PluginCommand struct {
	Name    CommandName
	Payload Payload
}

// Arm returns the arm the envelope carries, or ArmNone.
func (c *PluginCommand) Arm() Arm {
	if c.Payload == nil {
		return ArmNone
	}
	return c.Payload.Arm()
}

// commandArms maps each payload-carrying tag to the single arm it
// accepts. Tags absent from the map carry no payload.
var commandArms = map[CommandName]Arm{
	CommandName_Subscribe:                ArmSubscribePayload,
	CommandName_Unsubscribe:              ArmUnsubscribePayload,
	CommandName_SetSelectable:            ArmSetSelectablePayload,
	CommandName_OpenFile:                 ArmOpenFilePayload,
	CommandName_OpenFileFloating:         ArmOpenFileFloatingPayload,
	CommandName_OpenTerminal:             ArmOpenTerminalPayload,
	CommandName_OpenTerminalFloating:     ArmOpenTerminalFloatingPayload,
	CommandName_OpenCommandPane:          ArmOpenCommandPanePayload,
	CommandName_OpenCommandPaneFloating:  ArmOpenCommandPaneFloatingPayload,
	CommandName_SwitchTabTo:              ArmSwitchTabToPayload,
	CommandName_SetTimeout:               ArmSetTimeoutPayload,
	CommandName_ExecCmd:                  ArmExecCmdPayload,
	CommandName_PostMessageTo:            ArmPostMessageToPayload,
	CommandName_PostMessageToPlugin:      ArmPostMessageToPluginPayload,
	CommandName_ShowSelf:                 ArmShowSelfPayload,
	CommandName_SwitchToMode:             ArmSwitchToModePayload,
	CommandName_NewTabsWithLayout:        ArmNewTabsWithLayoutPayload,
	CommandName_Resize:                   ArmResizePayload,
	CommandName_ResizeWithDirection:      ArmResizeWithDirectionPayload,
	CommandName_MoveFocus:                ArmMoveFocusPayload,
	CommandName_MoveFocusOrTab:           ArmMoveFocusOrTabPayload,
	CommandName_Write:                    ArmWritePayload,
	CommandName_WriteChars:               ArmWriteCharsPayload,
	CommandName_MovePaneWithDirection:    ArmMovePaneWithDirectionPayload,
	CommandName_GoToTabName:              ArmGoToTabNamePayload,
	CommandName_FocusOrCreateTab:         ArmFocusOrCreateTabPayload,
	CommandName_GoToTab:                  ArmGoToTabPayload,
	CommandName_StartOrReloadPlugin:      ArmStartOrReloadPluginPayload,
	CommandName_CloseTerminalPane:        ArmCloseTerminalPanePayload,
	CommandName_ClosePluginPane:          ArmClosePluginPanePayload,
	CommandName_FocusTerminalPane:        ArmFocusTerminalPanePayload,
	CommandName_FocusPluginPane:          ArmFocusPluginPanePayload,
	CommandName_RenameTerminalPane:       ArmRenameTerminalPanePayload,
	CommandName_RenamePluginPane:         ArmRenamePluginPanePayload,
	CommandName_RenameTab:                ArmRenameTabPayload,
	CommandName_ReportCrash:              ArmReportCrashPayload,
	CommandName_RequestPluginPermissions: ArmRequestPluginPermissionPayload,
	CommandName_SwitchSession:            ArmSwitchSessionPayload,
}

// ExpectedArm returns the arm the tag requires, or ArmNone for tags
// that carry no payload and for tags outside the vocabulary.
func (n CommandName) ExpectedArm() Arm {
	return commandArms[n]
}

// VocabularyEntry describes one tag: the arm it requires and the shape
// of that arm's value.
type VocabularyEntry struct {
	Name  CommandName `json:"name"`
	Arm   Arm         `json:"arm,omitempty"`
	Shape Shape       `json:"shape"`
}

// Vocabulary returns the full command table in tag order. The table
// is built fresh on every call; callers may modify it.
func Vocabulary() []VocabularyEntry {
	table := make([]VocabularyEntry, commandNameCount)
	for i := range table {
		name := CommandName(i)
		arm := name.ExpectedArm()
		table[i] = VocabularyEntry{Name: name, Arm: arm, Shape: arm.Shape()}
	}
	return table
}

// Fingerprint is a BLAKE3 digest identifying a vocabulary version.
type Fingerprint [32]byte

func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// vocabularyDomainKey is the BLAKE3 key for vocabulary fingerprints:
// the ASCII domain name, zero-padded to 32 bytes.
var vocabularyDomainKey = [32]byte{
	'p', 'l', 'u', 'g', 'i', 'n', 'w', 'i', 'r', 'e', '.', 'v', 'o', 'c', 'a', 'b',
	'u', 'l', 'a', 'r', 'y', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var vocabularyFingerprint = func() Fingerprint {
	encoded, err := codec.Marshal(Vocabulary())
	if err != nil {
		panic("pluginproto: vocabulary encoding failed: " + err.Error())
	}
	hasher, err := blake3.NewKeyed(vocabularyDomainKey[:])
	if err != nil {
		panic("pluginproto: blake3 keyed hasher: " + err.Error())
	}
	hasher.Write(encoded)
	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint
}()

// VocabularyFingerprint returns the keyed BLAKE3 hash of the
// deterministic CBOR encoding of [Vocabulary]. Any change to a tag
// number, an arm number, or an arm's shape changes the fingerprint.
func VocabularyFingerprint() Fingerprint {
	return vocabularyFingerprint
}
