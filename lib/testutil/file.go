// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name inside a fresh t.TempDir() and
// returns the absolute path. Pass directory to place several fixtures
// side by side; an empty directory allocates a new one.
//
//	path := testutil.WriteFile(t, "", "pluginwire.yaml", "wire:\n  format: cbor\n")
func WriteFile(t testing.TB, directory, name, content string) string {
	t.Helper()
	if directory == "" {
		directory = t.TempDir()
	}
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
