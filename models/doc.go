// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names are camelCase.

# Request Types

  - CredentialsRequest: username, password (register and login)
  - CreatePollRequest: question, optionA, optionB
  - CastVoteRequest: pollId, chosenOption

# Response Types

  - RegisterResponse: message, userId
  - LoginResponse: message, token
  - CastVoteResponse: success
  - MyVoteResponse: pollId, chosenOption
  - Tally: option label → count
  - ErrorResponse: error (machine code), message

# Domain Types

  - User: id, username, password hash (never serialized)
  - Poll: id, question and two option labels
  - Vote: one row per (poll, user)
*/
package models
