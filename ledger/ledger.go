// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

//go:generate mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sl "github.com/14kear/sso-prettyslog/slogpretty/errors"

	"github.com/danielhkuo/quickly-vote/apperr"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/storage"
)

type PollStore interface {
	SavePoll(ctx context.Context, question, optionA, optionB string) (models.Poll, error)
	Poll(ctx context.Context, pollID int64) (models.Poll, error)
	Polls(ctx context.Context) ([]models.Poll, error)
}

type VoteStore interface {
	UpsertVote(ctx context.Context, pollID, userID int64, chosenOption string) error
	Vote(ctx context.Context, pollID, userID int64) (models.Vote, error)
	Tally(ctx context.Context, pollID int64) (models.Tally, error)
}

// VoteLedger records one vote per (poll, user) and computes tallies on read.
// It trusts the user id it is given; callers authenticate first.
type VoteLedger struct {
	log   *slog.Logger
	polls PollStore
	votes VoteStore
}

func New(log *slog.Logger, polls PollStore, votes VoteStore) *VoteLedger {
	return &VoteLedger{log: log, polls: polls, votes: votes}
}

// CreatePoll stores a two-option poll.
// Fails with apperr.ErrInvalidPoll if a field is blank or both options are the same.
func (l *VoteLedger) CreatePoll(ctx context.Context, question, optionA, optionB string) (models.Poll, error) {
	const op = "ledger.CreatePoll"

	log := l.log.With(slog.String("op", op))

	if strings.TrimSpace(question) == "" || strings.TrimSpace(optionA) == "" || strings.TrimSpace(optionB) == "" {
		return models.Poll{}, fmt.Errorf("%s: %w", op, apperr.ErrInvalidPoll)
	}
	if optionA == optionB {
		return models.Poll{}, fmt.Errorf("%s: %w", op, apperr.ErrInvalidPoll.WithMessage("options must differ"))
	}

	poll, err := l.polls.SavePoll(ctx, question, optionA, optionB)
	if err != nil {
		log.Error("failed to save poll", sl.Err(err))
		return models.Poll{}, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}

	log.Info("poll created", slog.Int64("poll_id", poll.ID))
	return poll, nil
}

// ListPolls returns all polls in creation order
func (l *VoteLedger) ListPolls(ctx context.Context) ([]models.Poll, error) {
	const op = "ledger.ListPolls"

	polls, err := l.polls.Polls(ctx)
	if err != nil {
		l.log.Error("failed to list polls", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}

	return polls, nil
}

// CastVote sets userID's vote on pollID to chosenOption, replacing any
// earlier vote. Re-voting is not an error.
func (l *VoteLedger) CastVote(ctx context.Context, pollID, userID int64, chosenOption string) error {
	const op = "ledger.CastVote"

	log := l.log.With(slog.String("op", op), slog.Int64("poll_id", pollID), slog.Int64("user_id", userID))

	poll, err := l.poll(ctx, op, pollID)
	if err != nil {
		return err
	}

	if !poll.HasOption(chosenOption) {
		log.Info("rejected unknown option", slog.String("option", chosenOption))
		return fmt.Errorf("%s: %w", op, apperr.ErrInvalidOption)
	}

	if err := l.votes.UpsertVote(ctx, pollID, userID, chosenOption); err != nil {
		if errors.Is(err, storage.ErrReferenceMissing) {
			log.Warn("vote references missing user")
			return fmt.Errorf("%s: %w", op, apperr.ErrUserNotFound)
		}
		log.Error("failed to upsert vote", sl.Err(err))
		return fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}

	log.Info("vote recorded", slog.String("option", chosenOption))
	return nil
}

// Tally counts votes per option. Options nobody chose are absent.
func (l *VoteLedger) Tally(ctx context.Context, pollID int64) (models.Tally, error) {
	const op = "ledger.Tally"

	if _, err := l.poll(ctx, op, pollID); err != nil {
		return nil, err
	}

	tally, err := l.votes.Tally(ctx, pollID)
	if err != nil {
		l.log.Error("failed to tally votes", slog.String("op", op), slog.Int64("poll_id", pollID), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}

	return tally, nil
}

// MyVote returns the option userID currently holds on pollID.
// Fails with apperr.ErrVoteNotFound if the user has not voted.
func (l *VoteLedger) MyVote(ctx context.Context, pollID, userID int64) (models.Vote, error) {
	const op = "ledger.MyVote"

	if _, err := l.poll(ctx, op, pollID); err != nil {
		return models.Vote{}, err
	}

	vote, err := l.votes.Vote(ctx, pollID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrVoteNotFound) {
			return models.Vote{}, fmt.Errorf("%s: %w", op, apperr.ErrVoteNotFound)
		}
		l.log.Error("failed to load vote", slog.String("op", op), slog.Int64("poll_id", pollID), sl.Err(err))
		return models.Vote{}, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}

	return vote, nil
}

func (l *VoteLedger) poll(ctx context.Context, op string, pollID int64) (models.Poll, error) {
	poll, err := l.polls.Poll(ctx, pollID)
	if err != nil {
		if errors.Is(err, storage.ErrPollNotFound) {
			return models.Poll{}, fmt.Errorf("%s: %w", op, apperr.ErrPollNotFound)
		}
		l.log.Error("failed to load poll", slog.String("op", op), slog.Int64("poll_id", pollID), sl.Err(err))
		return models.Poll{}, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return poll, nil
}
