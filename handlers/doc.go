// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct over the service interface it needs:

  - AuthHandler: registration and login (Accounts, TokenIssuer)
  - PollHandler: poll creation and listing (PollService)
  - VotingHandler: casting votes, tallies, own vote (VoteService)

ledger.VoteLedger satisfies both PollService and VoteService:

	voteLedger := ledger.New(log, store, store)
	pollHandler := handlers.NewPollHandler(voteLedger)
	votingHandler := handlers.NewVotingHandler(voteLedger)

# Accounts

	POST /register → Register (201, returns userId)
	POST /login    → Login (returns a session token)

# Polls and Votes

All routes below require Authorization: Bearer <token>. The caller's user id
comes from the token, never from the body.

	GET  /polls                → ListPolls
	POST /polls                → CreatePoll
	POST /votes                → CastVote (insert or replace)
	GET  /votes/{pollId}       → Tally
	GET  /votes/{pollId}/mine  → MyVote

Errors are written by middleware.WriteError as {"error": code, "message": ...}.
*/
package handlers
