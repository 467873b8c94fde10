// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugin

// FileToOpen names a file for an editor or terminal pane. LineNumber
// is nil when no line was requested. An empty Cwd means the host's
// default working directory.
type FileToOpen struct {
	Path       string
	LineNumber *int
	Cwd        string
}

// CommandToRun is a program and its arguments for a command pane. An
// empty Cwd means the host's default working directory.
type CommandToRun struct {
	Path string
	Args []string
	Cwd  string
}

// PluginMessage is a message exchanged between a plugin and its
// workers. An empty WorkerName addresses no particular worker.
type PluginMessage struct {
	Name       string
	Payload    string
	WorkerName string
}
