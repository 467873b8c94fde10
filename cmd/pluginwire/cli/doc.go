// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the pluginwire
// tool.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct whose tagged
// fields become flags ([FlagsFromParams]), and a Run function. Commands
// are assembled into a tree in cmd/pluginwire/root.go and dispatched via
// [Command.Execute], which handles flag parsing, subcommand routing, and
// structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Shared parameter groups compose by embedding: [JSONOutput] adds
// --json, [ConfigParams] adds --config and loads lib/config. Errors
// returned from commands are categorized with [Validation], [NotFound],
// and [Internal]; [ExitError] carries a non-zero exit code for commands
// that have already reported their own failures.
//
// Human-readable output goes through a [Styler], which colors verdicts
// and highlights JSON only when stdout is a terminal.
package cli
