// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package wireint

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes codec errors for fast dispatch.
// Using an enum allows efficient error checking on the hot path.
type ErrorKind uint8

const (
	// ErrKindOK indicates no error occurred
	ErrKindOK ErrorKind = iota
	// ErrKindOutOfBounds indicates a read/write at or beyond the buffer end
	ErrKindOutOfBounds
	// ErrKindOutOfRange indicates a value outside the representable or
	// declared range: a native-path magnitude past the safe-integer limit,
	// a non-minimal compact-size encoding, or a big-integer accumulation
	// past the 64-bit ceiling
	ErrKindOutOfRange
)

// Error is a lightweight error type optimized for hot path performance.
// It stores error details without allocating until Error() is called.
type Error struct {
	kind    ErrorKind
	message string // pre-formatted message, empty for field-based formatting
	// For out of bounds errors
	offset int
	need   int
	size   int
}

// Ok returns true if no error occurred
func (e Error) Ok() bool {
	return e.kind == ErrKindOK
}

// HasError returns true if an error occurred
func (e Error) HasError() bool {
	return e.kind != ErrKindOK
}

// Kind returns the error kind for fast dispatch
func (e Error) Kind() ErrorKind {
	return e.kind
}

// Error implements the error interface with lazy formatting
func (e Error) Error() string {
	switch e.kind {
	case ErrKindOK:
		return ""
	case ErrKindOutOfBounds:
		if e.message != "" {
			return e.message
		}
		return fmt.Sprintf("out of bounds: offset=%d, need=%d, size=%d", e.offset, e.need, e.size)
	default:
		if e.message != "" {
			return e.message
		}
		return fmt.Sprintf("wireint error: kind=%d", e.kind)
	}
}

// OutOfBoundsError creates an out of bounds error
func OutOfBoundsError(offset, need, size int) Error {
	return Error{
		kind:   ErrKindOutOfBounds,
		offset: offset,
		need:   need,
		size:   size,
	}
}

// OutOfRangeError creates an out of range error
func OutOfRangeError(msg string) Error {
	return Error{
		kind:    ErrKindOutOfRange,
		message: msg,
	}
}

// OutOfRangeErrorf creates a formatted out of range error
func OutOfRangeErrorf(format string, args ...any) Error {
	return Error{
		kind:    ErrKindOutOfRange,
		message: fmt.Sprintf(format, args...),
	}
}

// IsOutOfBounds reports whether err is a codec error with kind
// ErrKindOutOfBounds.
func IsOutOfBounds(err error) bool {
	var e Error
	return errors.As(err, &e) && e.kind == ErrKindOutOfBounds
}

// IsOutOfRange reports whether err is a codec error with kind
// ErrKindOutOfRange.
func IsOutOfRange(err error) bool {
	var e Error
	return errors.As(err, &e) && e.kind == ErrKindOutOfRange
}

// Pointer receiver methods for *Error (used for cursor error accumulation)

// SetError sets the error if no error has occurred yet (first-error-wins)
func (e *Error) SetError(err error) {
	if e == nil || e.kind != ErrKindOK {
		return
	}
	if ce, ok := err.(Error); ok {
		*e = ce
	} else if err != nil {
		*e = Error{
			kind:    ErrKindOutOfRange,
			message: err.Error(),
		}
	}
}

// TakeError returns the error and clears it
func (e *Error) TakeError() error {
	if e == nil || e.kind == ErrKindOK {
		return nil
	}
	result := *e
	*e = Error{kind: ErrKindOK}
	return result
}

// CheckError returns the error if one occurred, nil otherwise
func (e *Error) CheckError() error {
	if e == nil || e.kind == ErrKindOK {
		return nil
	}
	return *e
}
