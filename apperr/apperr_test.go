// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("ledger.CreatePoll: %w", ErrInvalidPoll.WithMessage("question is required"))

	assert.ErrorIs(t, err, ErrInvalidPoll)
	assert.NotErrorIs(t, err, ErrInvalidOption)

	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "question is required", e.Message)
	assert.Equal(t, KindValidation, e.Kind)
}

func TestWithMessageDoesNotMutateSentinel(t *testing.T) {
	_ = ErrPollNotFound.WithMessage("poll 7 not found")
	assert.Equal(t, "poll not found", ErrPollNotFound.Message)
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := fmt.Errorf("op: %w", Storage(cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindStorage, KindOf(err))

	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "internal error", e.Message)
	assert.NotContains(t, e.Message, "disk")
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{ErrInvalidInput, KindValidation},
		{ErrDuplicateUsername, KindConflict},
		{ErrBadCredentials, KindAuth},
		{ErrExpiredToken, KindAuth},
		{ErrPollNotFound, KindNotFound},
		{errors.New("plain"), KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
