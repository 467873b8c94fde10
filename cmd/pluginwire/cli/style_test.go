// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestStylerPlainForBuffers(t *testing.T) {
	t.Parallel()

	styler := NewStyler(&bytes.Buffer{})
	if styler.Color() {
		t.Fatal("Styler for a buffer reports color")
	}

	for name, got := range map[string]string{
		"JSON":  styler.JSON(`{"name":"HideSelf"}`),
		"Good":  styler.Good("ok"),
		"Bad":   styler.Bad("FAILED"),
		"Faint": styler.Faint("# header"),
	} {
		if strings.Contains(got, "\x1b[") {
			t.Errorf("%s emitted escape sequences: %q", name, got)
		}
	}
	if got := styler.Good("ok"); got != "ok" {
		t.Errorf("Good = %q, want %q", got, "ok")
	}
}

func TestStylerColor(t *testing.T) {
	t.Parallel()

	styler := NewStylerWithProfile(&bytes.Buffer{}, termenv.ANSI256)
	if !styler.Color() {
		t.Fatal("ANSI256 Styler reports no color")
	}

	bad := styler.Bad("FAILED")
	if !strings.Contains(bad, "FAILED") || !strings.Contains(bad, "\x1b[") {
		t.Errorf("Bad = %q, want styled FAILED", bad)
	}

	highlighted := styler.JSON(`{"name":"HideSelf"}`)
	if !strings.Contains(highlighted, "\x1b[") {
		t.Errorf("JSON = %q, want escape sequences", highlighted)
	}
	if !strings.Contains(highlighted, "HideSelf") {
		t.Errorf("JSON = %q lost its content", highlighted)
	}
}
