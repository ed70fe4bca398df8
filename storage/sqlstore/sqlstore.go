// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sqlstore implements persistence over database/sql.
// Queries are written once and run unchanged on postgres and sqlite.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/storage"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping checks that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveUser inserts a user. The UNIQUE constraint on username decides
// concurrent registrations: the loser gets storage.ErrUserExists.
func (s *Store) SaveUser(ctx context.Context, username string, passHash []byte) (int64, error) {
	const op = "storage.sqlstore.SaveUser"

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, username, passHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// User looks up a user by exact (case-sensitive) username
func (s *Store) User(ctx context.Context, username string) (models.User, error) {
	const op = "storage.sqlstore.User"

	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash FROM users WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Store) SavePoll(ctx context.Context, question, optionA, optionB string) (models.Poll, error) {
	const op = "storage.sqlstore.SavePoll"

	poll := models.Poll{Question: question, OptionA: optionA, OptionB: optionB}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO polls (question, option_a, option_b)
		VALUES ($1, $2, $3)
		RETURNING id
	`, question, optionA, optionB).Scan(&poll.ID)
	if err != nil {
		return models.Poll{}, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

func (s *Store) Poll(ctx context.Context, pollID int64) (models.Poll, error) {
	const op = "storage.sqlstore.Poll"

	var poll models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question, option_a, option_b FROM polls WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Question, &poll.OptionA, &poll.OptionB)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Poll{}, fmt.Errorf("%s: %w", op, storage.ErrPollNotFound)
		}
		return models.Poll{}, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

// Polls returns every poll in insertion order
func (s *Store) Polls(ctx context.Context) ([]models.Poll, error) {
	const op = "storage.sqlstore.Polls"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, option_a, option_b FROM polls ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Question, &p.OptionA, &p.OptionB); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return polls, nil
}

// UpsertVote records chosenOption as the user's only vote on the poll.
// Insert-or-update is a single statement keyed by UNIQUE (poll_id, user_id),
// so concurrent calls for the same pair always leave exactly one row holding
// the last writer's option.
func (s *Store) UpsertVote(ctx context.Context, pollID, userID int64, chosenOption string) error {
	const op = "storage.sqlstore.UpsertVote"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (poll_id, user_id, chosen_option)
		VALUES ($1, $2, $3)
		ON CONFLICT (poll_id, user_id)
		DO UPDATE SET chosen_option = excluded.chosen_option, updated_at = CURRENT_TIMESTAMP
	`, pollID, userID, chosenOption)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrReferenceMissing)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) Vote(ctx context.Context, pollID, userID int64) (models.Vote, error) {
	const op = "storage.sqlstore.Vote"

	vote := models.Vote{PollID: pollID, UserID: userID}
	err := s.db.QueryRowContext(ctx, `
		SELECT chosen_option FROM votes WHERE poll_id = $1 AND user_id = $2
	`, pollID, userID).Scan(&vote.ChosenOption)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vote{}, fmt.Errorf("%s: %w", op, storage.ErrVoteNotFound)
		}
		return models.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	return vote, nil
}

// Tally counts live votes per option in one statement. Options without
// votes do not appear.
func (s *Store) Tally(ctx context.Context, pollID int64) (models.Tally, error) {
	const op = "storage.sqlstore.Tally"

	rows, err := s.db.QueryContext(ctx, `
		SELECT chosen_option, COUNT(*) FROM votes
		WHERE poll_id = $1
		GROUP BY chosen_option
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	tally := models.Tally{}
	for rows.Next() {
		var option string
		var count int
		if err := rows.Scan(&option, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tally[option] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tally, nil
}
