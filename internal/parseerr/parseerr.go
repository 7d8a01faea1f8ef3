// Copyright 2026 The sb2dot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parseerr defines the fatal error shape the decoder panics with
// when it hits a structurally malformed profile: a short
// read, a malformed header, or any other structural failure there is no
// recovering from.
package parseerr

import (
	"errors"
	"fmt"
)

// Code classifies the kind of fatal failure.
type Code int

const (
	// CodeShortRead means a read ran past the end of the blob.
	CodeShortRead Code = iota
	// CodeBadHeader means the container header could not be parsed.
	CodeBadHeader
	// CodeBadAlignment means a filter-node offset was not 8-aligned.
	CodeBadAlignment
	// CodeBadRegexIndex means a filter referenced a regex-table index out of range.
	CodeBadRegexIndex
)

var messages = [...]string{
	CodeShortRead:     "short read",
	CodeBadHeader:     "malformed header",
	CodeBadAlignment:  "unaligned filter-node offset",
	CodeBadRegexIndex: "regex-table index out of range",
}

// Error is a fatal profile-decoding error, naming the byte offset at which
// it occurred.
type Error struct {
	Code   Code
	Offset int
}

// New builds an *Error for code at offset.
func New(code Code, offset int) *Error {
	return &Error{Code: code, Offset: offset}
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("sb2dot: %s at offset %d/%#x", messages[e.Code], e.Offset, e.Offset)
}

// Is reports whether target is an *Error with the same Code, so
// errors.Is(err, parseerr.New(code, 0)) matches regardless of offset.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// Panic raises a fatal parse error. Cursor reads and other infallible-by-
// contract operations call this on an out-of-bounds access; callers at a
// package's public boundary recover it back into an error return.
func Panic(code Code, offset int) {
	panic(New(code, offset))
}

// Recover converts a panicked *Error into *err, leaving other panics to
// propagate. Intended for `defer parseerr.Recover(&err)` at the top of a
// public entry point.
func Recover(err *error) {
	if r := recover(); r != nil {
		if pe, ok := r.(*Error); ok {
			*err = pe
			return
		}
		panic(r)
	}
}
