// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package plugin defines the in-process representation of the commands
// a sandboxed plugin issues to its terminal host.
//
// [Command] is a closed tagged union: every command is a struct type in
// this package, and the unexported marker method keeps other packages
// from adding variants. Commands are plain values. They are built fresh
// for each message, never mutated after construction, and carry no
// references to host state.
//
// Nested values ([FileToOpen], [CommandToRun], [PluginMessage],
// [ResizeStrategy], [ConnectToSession], and the enumerations
// [EventType], [InputMode], [ResizeAction], [Direction],
// [PermissionType]) are the domain side of the wire conversions in
// lib/plugincodec. This package has no dependency on the wire format.
//
// An empty slice or set and a nil one are the same command: the wire
// forms cannot tell them apart, and decoding always yields nil.
package plugin
