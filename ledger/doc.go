// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the vote ledger: polls, votes and tallies.

# Polls

Polls have a question and exactly two option labels. They are immutable once
created and listed in creation order:

	poll, err := l.CreatePoll(ctx, "Coffee?", "Yes", "No")
	polls, err := l.ListPolls(ctx)

# Votes

Each (poll, user) pair holds at most one vote. CastVote validates the poll and
option, then upserts in a single statement keyed by the pair's unique
constraint:

	NoVote ──cast(X)──▶ Voted(X) ──cast(Y)──▶ Voted(Y)

Casting the same option twice is a no-op; casting a different option moves
the vote. There is no "already voted" error and no deletion.

# Tallies

Tally groups live vote rows by option on every call. Options without votes
are omitted, callers treat a missing key as zero.

# Errors

  - apperr.ErrInvalidPoll: blank field or identical options
  - apperr.ErrPollNotFound: unknown poll id
  - apperr.ErrInvalidOption: option is neither of the poll's labels
  - apperr.ErrVoteNotFound: MyVote before any vote
*/
package ledger
