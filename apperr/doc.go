// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apperr defines the typed failures returned by the service layer.

# Kinds

Every failure belongs to one Kind, which decides how the HTTP layer reports it:

  - KindValidation: malformed or missing input (400)
  - KindAuth: missing, invalid or expired token, wrong password (401/403)
  - KindConflict: duplicate username (409)
  - KindNotFound: unknown poll (404)
  - KindStorage: persistence failure (500, generic message)

# Sentinels

Services wrap sentinels with an operation prefix:

	return fmt.Errorf("%s: %w", op, apperr.ErrPollNotFound)

Callers test with errors.Is. Matching is by Code, so a sentinel refined with
WithMessage still matches.
*/
package apperr
