// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error by how it is surfaced to callers.
type Kind int

const (
	KindStorage Kind = iota
	KindValidation
	KindAuth
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "storage"
	}
}

// Error is a typed failure. Code is the stable machine-readable name,
// Message is safe to show to clients, Err is the wrapped cause (never shown).
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same Code, so sentinels with a
// replaced message still satisfy errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of e with a more specific client message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

var (
	ErrInvalidInput      = &Error{Kind: KindValidation, Code: "InvalidInput", Message: "invalid input"}
	ErrDuplicateUsername = &Error{Kind: KindConflict, Code: "DuplicateUsername", Message: "username already taken"}
	ErrUserNotFound      = &Error{Kind: KindAuth, Code: "UserNotFound", Message: "user not found"}
	ErrBadCredentials    = &Error{Kind: KindAuth, Code: "BadCredentials", Message: "wrong password"}
	ErrMissingToken      = &Error{Kind: KindAuth, Code: "MissingToken", Message: "no token provided"}
	ErrInvalidToken      = &Error{Kind: KindAuth, Code: "InvalidToken", Message: "invalid token"}
	ErrExpiredToken      = &Error{Kind: KindAuth, Code: "ExpiredToken", Message: "token expired"}
	ErrInvalidPoll       = &Error{Kind: KindValidation, Code: "InvalidPoll", Message: "question and both options are required"}
	ErrPollNotFound      = &Error{Kind: KindNotFound, Code: "PollNotFound", Message: "poll not found"}
	ErrInvalidOption     = &Error{Kind: KindValidation, Code: "InvalidOption", Message: "option is not part of this poll"}
	ErrVoteNotFound      = &Error{Kind: KindNotFound, Code: "VoteNotFound", Message: "no vote recorded for this poll"}
)

// Storage wraps a persistence failure. The cause is kept for logging only.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Code: "StorageError", Message: "internal error", Err: err}
}

// As extracts the outermost *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf reports err's Kind. Untyped errors count as storage failures.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindStorage
}
