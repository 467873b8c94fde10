// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugin

// ConnectToSession is the target of a session switch. Every field is
// optional: a nil Name switches within the current session, a nil
// TabPosition keeps the session's focused tab, and a nil Pane keeps the
// tab's focused pane.
type ConnectToSession struct {
	Name        *string
	TabPosition *uint32
	Pane        *PaneRef
}

// PaneRef identifies a pane. Terminal and plugin panes have separate id
// spaces, so the id is meaningless without IsPlugin.
type PaneRef struct {
	ID       uint32
	IsPlugin bool
}
