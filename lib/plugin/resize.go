// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugin

import "fmt"

// ResizeAction grows or shrinks a pane.
type ResizeAction uint8

const (
	ResizeIncrease ResizeAction = iota
	ResizeDecrease
)

// Valid reports whether the action is one of the defined constants.
func (a ResizeAction) Valid() bool { return a <= ResizeDecrease }

func (a ResizeAction) String() string {
	switch a {
	case ResizeIncrease:
		return "Increase"
	case ResizeDecrease:
		return "Decrease"
	default:
		return fmt.Sprintf("ResizeAction(%d)", uint8(a))
	}
}

// Direction is a side of a pane.
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// Valid reports whether the direction is one of the defined constants.
func (d Direction) Valid() bool { return d <= DirectionDown }

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ResizeStrategy describes a resize toward an optional side. A nil
// Direction resizes on all sides. InvertOnBoundary flips the action
// when the pane already touches the screen edge in Direction; the wire
// form does not carry it and decoding always yields false.
type ResizeStrategy struct {
	Resize           ResizeAction
	Direction        *Direction
	InvertOnBoundary bool
}
