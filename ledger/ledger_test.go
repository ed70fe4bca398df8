// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-vote/apperr"
	"github.com/danielhkuo/quickly-vote/ledger/mocks"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/storage"
	"github.com/danielhkuo/quickly-vote/storage/sqlstore"
	"github.com/danielhkuo/quickly-vote/testutil"
)

var coffee = models.Poll{ID: 1, Question: "Coffee?", OptionA: "Yes", OptionB: "No"}

func newMockLedger(t *testing.T) (*VoteLedger, *mocks.MockPollStore, *mocks.MockVoteStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	polls := mocks.NewMockPollStore(ctrl)
	votes := mocks.NewMockVoteStore(ctrl)
	return New(testutil.DiscardLogger(), polls, votes), polls, votes
}

func TestCreatePoll_Invalid(t *testing.T) {
	l, _, _ := newMockLedger(t)

	tests := []struct {
		name                       string
		question, optionA, optionB string
	}{
		{"empty question", "", "Yes", "No"},
		{"empty option A", "Coffee?", "", "No"},
		{"empty option B", "Coffee?", "Yes", ""},
		{"blank question", "   ", "Yes", "No"},
		{"all empty", "", "", ""},
		{"same options", "Coffee?", "Yes", "Yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.CreatePoll(context.Background(), tt.question, tt.optionA, tt.optionB)
			assert.ErrorIs(t, err, apperr.ErrInvalidPoll)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestCreatePoll_StorageFailure(t *testing.T) {
	l, polls, _ := newMockLedger(t)
	polls.EXPECT().SavePoll(gomock.Any(), "Coffee?", "Yes", "No").Return(models.Poll{}, errors.New("disk full"))

	_, err := l.CreatePoll(context.Background(), "Coffee?", "Yes", "No")
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func TestCastVote_PollNotFound(t *testing.T) {
	l, polls, _ := newMockLedger(t)
	polls.EXPECT().Poll(gomock.Any(), int64(99)).
		Return(models.Poll{}, fmt.Errorf("storage.sqlstore.Poll: %w", storage.ErrPollNotFound))

	// no UpsertVote expected
	err := l.CastVote(context.Background(), 99, 1, "Yes")
	assert.ErrorIs(t, err, apperr.ErrPollNotFound)
}

func TestCastVote_InvalidOption(t *testing.T) {
	l, polls, _ := newMockLedger(t)
	polls.EXPECT().Poll(gomock.Any(), coffee.ID).Return(coffee, nil).Times(3)

	for _, option := range []string{"Maybe", "yes", ""} {
		err := l.CastVote(context.Background(), coffee.ID, 1, option)
		assert.ErrorIs(t, err, apperr.ErrInvalidOption, "option %q", option)
	}
}

func TestCastVote_MissingUser(t *testing.T) {
	l, polls, votes := newMockLedger(t)
	polls.EXPECT().Poll(gomock.Any(), coffee.ID).Return(coffee, nil)
	votes.EXPECT().UpsertVote(gomock.Any(), coffee.ID, int64(5), "Yes").
		Return(fmt.Errorf("storage.sqlstore.UpsertVote: %w", storage.ErrReferenceMissing))

	err := l.CastVote(context.Background(), coffee.ID, 5, "Yes")
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestCastVote_StorageFailure(t *testing.T) {
	l, polls, votes := newMockLedger(t)
	polls.EXPECT().Poll(gomock.Any(), coffee.ID).Return(coffee, nil)
	votes.EXPECT().UpsertVote(gomock.Any(), coffee.ID, int64(5), "No").Return(errors.New("database is locked"))

	err := l.CastVote(context.Background(), coffee.ID, 5, "No")
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func TestTally_PollNotFound(t *testing.T) {
	l, polls, _ := newMockLedger(t)
	polls.EXPECT().Poll(gomock.Any(), int64(3)).Return(models.Poll{}, storage.ErrPollNotFound)

	_, err := l.Tally(context.Background(), 3)
	assert.ErrorIs(t, err, apperr.ErrPollNotFound)
}

func TestListPolls_StorageFailure(t *testing.T) {
	l, polls, _ := newMockLedger(t)
	polls.EXPECT().Polls(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := l.ListPolls(context.Background())
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func newSQLLedger(t *testing.T) (*VoteLedger, *sql.DB) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	store := sqlstore.New(conn)
	return New(testutil.DiscardLogger(), store, store), conn
}

func TestCreateAndListPolls(t *testing.T) {
	l, _ := newSQLLedger(t)
	ctx := context.Background()

	polls, err := l.ListPolls(ctx)
	require.NoError(t, err)
	assert.Empty(t, polls)

	first, err := l.CreatePoll(ctx, "Coffee?", "Yes", "No")
	require.NoError(t, err)
	second, err := l.CreatePoll(ctx, "Tabs or spaces?", "Tabs", "Spaces")
	require.NoError(t, err)

	polls, err = l.ListPolls(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Poll{first, second}, polls)
}

func TestRevoteReplaces(t *testing.T) {
	l, conn := newSQLLedger(t)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, conn, "alice")
	poll, err := l.CreatePoll(ctx, "Coffee?", "Yes", "No")
	require.NoError(t, err)

	require.NoError(t, l.CastVote(ctx, poll.ID, userID, "Yes"))
	require.NoError(t, l.CastVote(ctx, poll.ID, userID, "No"))

	assert.Equal(t, 1, testutil.CountVoteRows(t, conn, poll.ID, userID))

	tally, err := l.Tally(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, tally["No"])
	assert.Zero(t, tally["Yes"])

	vote, err := l.MyVote(ctx, poll.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "No", vote.ChosenOption)
}

func TestSameVoteTwiceIsNoop(t *testing.T) {
	l, conn := newSQLLedger(t)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, conn, "alice")
	poll, err := l.CreatePoll(ctx, "Coffee?", "Yes", "No")
	require.NoError(t, err)

	require.NoError(t, l.CastVote(ctx, poll.ID, userID, "Yes"))
	require.NoError(t, l.CastVote(ctx, poll.ID, userID, "Yes"))

	tally, err := l.Tally(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Tally{"Yes": 1}, tally)
}

func TestCastVoteUnknownPollCreatesNoRow(t *testing.T) {
	l, conn := newSQLLedger(t)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, conn, "alice")

	err := l.CastVote(ctx, 12345, userID, "Yes")
	assert.ErrorIs(t, err, apperr.ErrPollNotFound)
	assert.Zero(t, testutil.CountVoteRows(t, conn, 12345, userID))

	_, err = l.Tally(ctx, 12345)
	assert.ErrorIs(t, err, apperr.ErrPollNotFound)

	_, err = l.MyVote(ctx, 12345, userID)
	assert.ErrorIs(t, err, apperr.ErrPollNotFound)
}

func TestCastVoteInvalidOptionCreatesNoRow(t *testing.T) {
	l, conn := newSQLLedger(t)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, conn, "alice")
	poll, err := l.CreatePoll(ctx, "Coffee?", "Yes", "No")
	require.NoError(t, err)

	err = l.CastVote(ctx, poll.ID, userID, "Maybe")
	assert.ErrorIs(t, err, apperr.ErrInvalidOption)
	assert.Zero(t, testutil.CountVoteRows(t, conn, poll.ID, userID))

	_, err = l.MyVote(ctx, poll.ID, userID)
	assert.ErrorIs(t, err, apperr.ErrVoteNotFound)
}

func TestCastVoteUnknownUser(t *testing.T) {
	l, _ := newSQLLedger(t)
	ctx := context.Background()

	poll, err := l.CreatePoll(ctx, "Coffee?", "Yes", "No")
	require.NoError(t, err)

	err = l.CastVote(ctx, poll.ID, 777, "Yes")
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestTallyEmptyPoll(t *testing.T) {
	l, _ := newSQLLedger(t)
	ctx := context.Background()

	poll, err := l.CreatePoll(ctx, "Coffee?", "Yes", "No")
	require.NoError(t, err)

	tally, err := l.Tally(ctx, poll.ID)
	require.NoError(t, err)
	assert.Empty(t, tally)
}

// Concurrent casts from the same user on the same poll, e.g. a double click.
func TestConcurrentCastSameUser(t *testing.T) {
	l, conn := newSQLLedger(t)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, conn, "alice")
	poll, err := l.CreatePoll(ctx, "Coffee?", "Yes", "No")
	require.NoError(t, err)

	const n = 25
	var wg sync.WaitGroup
	var failures atomic.Int32

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			option := poll.OptionA
			if i%3 == 0 {
				option = poll.OptionB
			}
			if err := l.CastVote(ctx, poll.ID, userID, option); err != nil {
				failures.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Zero(t, failures.Load())
	assert.Equal(t, 1, testutil.CountVoteRows(t, conn, poll.ID, userID))

	tally, err := l.Tally(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, tally[poll.OptionA]+tally[poll.OptionB])
}

// Many users voting at once on one poll must each be counted exactly once.
func TestConcurrentCastManyUsers(t *testing.T) {
	l, conn := newSQLLedger(t)
	ctx := context.Background()

	poll, err := l.CreatePoll(ctx, "Coffee?", "Yes", "No")
	require.NoError(t, err)

	const n = 12
	users := make([]int64, n)
	for i := range users {
		users[i] = testutil.CreateTestUser(t, conn, fmt.Sprintf("voter-%d", i))
	}

	var wg sync.WaitGroup
	for i, userID := range users {
		wg.Add(1)
		go func(i int, userID int64) {
			defer wg.Done()
			option := "Yes"
			if i%2 == 1 {
				option = "No"
			}
			// every user double-submits
			assert.NoError(t, l.CastVote(ctx, poll.ID, userID, option))
			assert.NoError(t, l.CastVote(ctx, poll.ID, userID, option))
		}(i, userID)
	}
	wg.Wait()

	tally, err := l.Tally(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Tally{"Yes": n / 2, "No": n / 2}, tally)
}
