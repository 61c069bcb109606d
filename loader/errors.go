// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors and the positioned ParseError of the map loader.

package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors; every failure returned by Load/Read matches exactly one
// of them through errors.Is.
var (
	// ErrOpen indicates a file that could not be opened.
	ErrOpen = errors.New("loader: cannot open file")

	// ErrHeader indicates a missing or unexpected header line.
	ErrHeader = errors.New("loader: unexpected header")

	// ErrField indicates a row with the wrong number of fields or an unparsable number.
	ErrField = errors.New("loader: malformed field")

	// ErrInvalid indicates a row whose values break a format or range rule.
	ErrInvalid = errors.New("loader: invalid value")

	// ErrDuplicate indicates a point or route ID seen earlier in the same file.
	ErrDuplicate = errors.New("loader: duplicate id")

	// ErrUnknownEndpoint indicates a route endpoint that is not in the points file.
	ErrUnknownEndpoint = errors.New("loader: unknown route endpoint")
)

// ParseError locates a failure inside an input file. Line is 1-based;
// 0 means the failure is not tied to a line (e.g. ErrOpen).
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}

	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
