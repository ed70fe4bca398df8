// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session tokens.

# Password Hashing

PasswordHasher is the hash + compare capability used by the credential store.
BcryptHasher implements it with golang.org/x/crypto/bcrypt:

	h, err := auth.NewBcryptHasher(auth.DefaultCost)
	hash, err := h.Hash(password)
	err = h.Compare(hash, attempt) // apperr.ErrBadCredentials on mismatch

bcrypt embeds a random salt in every hash and compares in constant time.
Passwords longer than 72 bytes are rejected with apperr.ErrInvalidInput.

# Session Tokens

SessionAuthority issues HS256 JWTs carrying the user id (sub), issue time
(iat), expiry (exp, default two hours) and a random token id (jti):

	sa, err := auth.NewSessionAuthority(cfg.SigningSecret)
	token, err := sa.Issue(userID)
	userID, err := sa.Verify(token)

Verify fails with:

  - apperr.ErrMissingToken when the token is empty
  - apperr.ErrInvalidToken on a bad signature, a foreign algorithm or a malformed token
  - apperr.ErrExpiredToken once the clock reaches exp

Tokens are stateless. There is no revocation list, so rotating the signing
secret is the only way to invalidate outstanding tokens.
*/
package auth
