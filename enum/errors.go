/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package enum

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// UnknownErr is the kind reported for errors that did not come from this package.
	UnknownErr ErrorKind = iota
	InvalidDeclarationErr
	TypeMismatchErr
	DuplicateValueErr
	DuplicateNameErr
	UnknownNameErr
	UnknownValueErr
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownErr:
		return "unknown error"
	case InvalidDeclarationErr:
		return "invalid declaration"
	case TypeMismatchErr:
		return "type mismatch"
	case DuplicateValueErr:
		return "duplicate value"
	case DuplicateNameErr:
		return "duplicate name"
	case UnknownNameErr:
		return "unknown name"
	case UnknownValueErr:
		return "unknown value"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Fatal reports whether the kind can only occur while an enumeration is
// being defined. Lookups return TypeMismatch too, so it is not reported
// here; TypeMismatch is fatal only when returned from a definition.
func (k ErrorKind) Fatal() bool {
	switch k {
	case InvalidDeclarationErr, DuplicateValueErr, DuplicateNameErr:
		return true
	default:
		return false
	}
}

// Error is returned by definitions and lookups. Subject is the member name
// or the rendered value the error is about.
type Error struct {
	Kind    ErrorKind
	Enum    string
	Subject string
	Detail  string
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidDeclaration = &Error{Kind: InvalidDeclarationErr}
	ErrTypeMismatch       = &Error{Kind: TypeMismatchErr}
	ErrDuplicateValue     = &Error{Kind: DuplicateValueErr}
	ErrDuplicateName      = &Error{Kind: DuplicateNameErr}
	ErrUnknownName        = &Error{Kind: UnknownNameErr}
	ErrUnknownValue       = &Error{Kind: UnknownValueErr}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Enum != "" {
		msg = "enum " + e.Enum + ": " + msg
	}
	if e.Subject != "" {
		msg += " " + e.Subject
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return (t.Enum == "" || t.Enum == e.Enum) && (t.Subject == "" || t.Subject == e.Subject)
}

func newError(kind ErrorKind, enum, subject, detail string) *Error {
	return &Error{Kind: kind, Enum: enum, Subject: subject, Detail: detail}
}

// IsEnumError reports whether err is, or wraps, an *Error and returns its kind.
// For aggregated definition errors the kind of the first one is returned.
// For any other error it returns false and UnknownErr.
func IsEnumError(err error) (is bool, kind ErrorKind) {
	var enumErr *Error
	if errors.As(err, &enumErr) {
		return true, enumErr.Kind
	}
	return false, UnknownErr
}
