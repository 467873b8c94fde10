// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"slices"
	"testing"
)

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      string
	}{
		{EventModeUpdate, "ModeUpdate"},
		{EventKey, "Key"},
		{EventSessionUpdate, "SessionUpdate"},
		{EventType(200), "EventType(200)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.eventType.String(); got != tt.want {
				t.Errorf("EventType(%d).String() = %q, want %q", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestParseEventType(t *testing.T) {
	t.Parallel()

	for eventType := EventModeUpdate; eventType.Valid(); eventType++ {
		parsed, err := ParseEventType(eventType.String())
		if err != nil {
			t.Fatalf("ParseEventType(%q) failed: %v", eventType, err)
		}
		if parsed != eventType {
			t.Errorf("ParseEventType(%q) = %v, want %v", eventType, parsed, eventType)
		}
	}

	if _, err := ParseEventType("Resize"); err == nil {
		t.Error("ParseEventType(\"Resize\") should fail")
	}
}

func TestEventTypeSetCollapsesDuplicates(t *testing.T) {
	t.Parallel()

	set := NewEventTypeSet(EventTimer, EventKey, EventTimer, EventModeUpdate)
	if len(set) != 3 {
		t.Fatalf("len(set) = %d, want 3", len(set))
	}
	if !set.Contains(EventKey) {
		t.Error("set should contain Key")
	}
	if set.Contains(EventMouse) {
		t.Error("set should not contain Mouse")
	}

	want := []EventType{EventModeUpdate, EventKey, EventTimer}
	if got := set.Sorted(); !slices.Equal(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	if !ModeTmux.Valid() || InputMode(14).Valid() {
		t.Error("InputMode validity boundary is wrong")
	}
	if !ResizeDecrease.Valid() || ResizeAction(2).Valid() {
		t.Error("ResizeAction validity boundary is wrong")
	}
	if !DirectionDown.Valid() || Direction(4).Valid() {
		t.Error("Direction validity boundary is wrong")
	}
	if !PermissionWriteToStdin.Valid() || PermissionType(6).Valid() {
		t.Error("PermissionType validity boundary is wrong")
	}
	if got := InputMode(99).String(); got != "InputMode(99)" {
		t.Errorf("InputMode(99).String() = %q", got)
	}
	if got := PermissionOpenFiles.String(); got != "OpenFiles" {
		t.Errorf("PermissionOpenFiles.String() = %q", got)
	}
}
