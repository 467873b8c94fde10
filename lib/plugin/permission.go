// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugin

import "fmt"

// PermissionType is a capability a plugin must be granted before the
// host executes the commands that need it.
type PermissionType uint8

const (
	PermissionReadApplicationState PermissionType = iota
	PermissionChangeApplicationState
	PermissionOpenFiles
	PermissionRunCommands
	PermissionOpenTerminalsOrPlugins
	PermissionWriteToStdin

	permissionTypeCount
)

var permissionTypeNames = [permissionTypeCount]string{
	"ReadApplicationState",
	"ChangeApplicationState",
	"OpenFiles",
	"RunCommands",
	"OpenTerminalsOrPlugins",
	"WriteToStdin",
}

// Valid reports whether the permission is one of the defined constants.
func (p PermissionType) Valid() bool { return p < permissionTypeCount }

func (p PermissionType) String() string {
	if p.Valid() {
		return permissionTypeNames[p]
	}
	return fmt.Sprintf("PermissionType(%d)", uint8(p))
}
