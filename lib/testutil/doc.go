// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for pluginwire
// packages.
//
// [WriteFile] writes a fixture into a test-scoped temporary directory
// and returns its path.
//
// [RequireReceive] encapsulates the timeout safety valve pattern
// (select with time.After fallback) so that concurrency tests do not
// need direct time.After calls. It is the only place in the test suite
// where a real wall-clock timeout is used.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no pluginwire-internal dependencies.
package testutil
