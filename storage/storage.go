// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package storage holds the errors shared by storage implementations.
package storage

import "errors"

var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrPollNotFound     = errors.New("poll not found")
	ErrVoteNotFound     = errors.New("vote not found")
	ErrReferenceMissing = errors.New("referenced row does not exist")
)
