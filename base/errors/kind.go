// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "strings"

// Kind is the category of a conversion failure.
type Kind int32

const (
	// Domain is a profile or channel parameter outside of its
	// declared valid range.
	Domain Kind = iota + 1

	// Degenerate is a numerical degeneracy, such as a singular
	// matrix or a zero divisor, that has no documented fallback.
	Degenerate

	// Unsupported is a request for a model, formula, or profile
	// that does not exist.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case Domain:
		return "domain error"
	case Degenerate:
		return "numerical degeneracy"
	case Unsupported:
		return "unsupported conversion"
	}
	return "unknown error"
}

// Sentinel errors for each [Kind], for use with [Is].
var (
	ErrDomain      = &Error{Kind: Domain}
	ErrDegenerate  = &Error{Kind: Degenerate}
	ErrUnsupported = &Error{Kind: Unsupported}
)

// Error is a kinded error returned by the conversion packages.
// Op names the failing operation and Subject the model, profile,
// or component it concerns.
type Error struct {
	Kind    Kind
	Op      string
	Subject string
	Err     error
}

// Errorf returns a new [Error] of the given kind, wrapping err if it is non-nil.
func Errorf(kind Kind, op, subject string, err error) *Error {
	return &Error{Kind: kind, Op: op, Subject: subject, Err: err}
}

// NewKind returns a new [Error] of the given kind with a plain message.
func NewKind(kind Kind, op, subject, msg string) *Error {
	return &Error{Kind: kind, Op: op, Subject: subject, Err: New(msg)}
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Subject != "" {
		b.WriteString(e.Subject)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an [*Error] of the same kind,
// so that errors.Is(err, ErrDomain) matches any domain error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// KindOf returns the [Kind] of the first [*Error] in err's tree,
// or 0 if there is none.
func KindOf(err error) Kind {
	var e *Error
	if As(err, &e) {
		return e.Kind
	}
	return 0
}
