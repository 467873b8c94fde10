// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package plugincodec

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/pluginwire/lib/pluginproto"
)

// Error kinds. Match them with errors.Is against any error returned by
// this package.
var (
	ErrUnrecognizedCommand    = errors.New("unrecognized plugin command")
	ErrUnexpectedPayload      = errors.New("unexpected payload")
	ErrMissingPayload         = errors.New("missing payload")
	ErrMismatchedPayload      = errors.New("mismatched payload")
	ErrMalformedPayload       = errors.New("malformed payload")
	ErrNestedConversion       = errors.New("nested conversion failed")
	ErrMalformedSessionSwitch = errors.New("malformed session switch payload")
	ErrValueOutOfRange        = errors.New("value out of range")
)

// Error describes why one envelope or command could not be converted.
// Kind is one of the Err* sentinels. Command is the tag involved; it is
// -1 when Encode is handed a value that is not a known command type.
// Err carries detail or the nested conversion's own error and may be
// nil.
type Error struct {
	Kind    error
	Command pluginproto.CommandName
	Err     error
}

func (e *Error) Error() string {
	var message string
	switch e.Kind {
	case ErrUnrecognizedCommand:
		if e.Command < 0 {
			message = "unrecognized plugin command"
		} else {
			message = fmt.Sprintf("unrecognized plugin command %d", int32(e.Command))
		}
	case ErrUnexpectedPayload:
		message = fmt.Sprintf("%s should not have a payload", e.Command)
	case ErrMissingPayload:
		message = fmt.Sprintf("missing payload for %s", e.Command)
	case ErrMismatchedPayload:
		message = fmt.Sprintf("mismatched payload for %s", e.Command)
	case ErrMalformedPayload:
		message = fmt.Sprintf("malformed %s payload", e.Command)
	case ErrMalformedSessionSwitch:
		message = ErrMalformedSessionSwitch.Error()
	default:
		message = fmt.Sprintf("%s payload: %v", e.Command, e.Kind)
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

// Unwrap exposes both the kind and the cause, so errors.Is matches
// either one.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, name pluginproto.CommandName, cause error) *Error {
	return &Error{Kind: kind, Command: name, Err: cause}
}

func malformed(name pluginproto.CommandName, field string) *Error {
	return newError(ErrMalformedPayload, name, fmt.Errorf("%s is absent", field))
}

func nestedFailure(name pluginproto.CommandName, err error) *Error {
	return newError(ErrNestedConversion, name, err)
}
