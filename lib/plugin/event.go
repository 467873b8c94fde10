// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"fmt"
	"slices"
)

// EventType identifies a kind of host event a plugin can subscribe to.
type EventType uint8

const (
	EventModeUpdate EventType = iota
	EventTabUpdate
	EventPaneUpdate
	EventKey
	EventMouse
	EventTimer
	EventCopyToClipboard
	EventSystemClipboardFailure
	EventInputReceived
	EventVisible
	EventCustomMessage
	EventFileSystemCreate
	EventFileSystemRead
	EventFileSystemUpdate
	EventFileSystemDelete
	EventPermissionRequestResult
	EventSessionUpdate

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"ModeUpdate",
	"TabUpdate",
	"PaneUpdate",
	"Key",
	"Mouse",
	"Timer",
	"CopyToClipboard",
	"SystemClipboardFailure",
	"InputReceived",
	"Visible",
	"CustomMessage",
	"FileSystemCreate",
	"FileSystemRead",
	"FileSystemUpdate",
	"FileSystemDelete",
	"PermissionRequestResult",
	"SessionUpdate",
}

// Valid reports whether the event type is one of the defined constants.
func (t EventType) Valid() bool { return t < eventTypeCount }

func (t EventType) String() string {
	if t.Valid() {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// ParseEventType returns the event type with the given name.
func ParseEventType(name string) (EventType, error) {
	for i, candidate := range eventTypeNames {
		if candidate == name {
			return EventType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event type %q", name)
}

// EventTypeSet is an unordered set of event types. Duplicates in a
// subscription collapse into one entry.
type EventTypeSet map[EventType]struct{}

// NewEventTypeSet returns a set holding the given event types.
func NewEventTypeSet(types ...EventType) EventTypeSet {
	set := make(EventTypeSet, len(types))
	for _, eventType := range types {
		set[eventType] = struct{}{}
	}
	return set
}

// Contains reports whether eventType is in the set.
func (s EventTypeSet) Contains(eventType EventType) bool {
	_, ok := s[eventType]
	return ok
}

// Sorted returns the members in ascending order. Encoders use this so
// the same set always produces the same bytes.
func (s EventTypeSet) Sorted() []EventType {
	types := make([]EventType, 0, len(s))
	for eventType := range s {
		types = append(types, eventType)
	}
	slices.Sort(types)
	return types
}
