// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the
// pluginwire binary.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// These default to "unknown" / "0.1.0-dev" when not injected, which
// occurs during development builds and test runs.
//
// [Info] formats the build for --version. [Full] adds what decides
// wire compatibility between two builds: the command vocabulary
// fingerprint and the capture format version.
//
//	go build -ldflags "-X github.com/bureau-foundation/pluginwire/lib/version.GitCommit=$(git rev-parse --short HEAD)"
package version
