// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter builds the services over db, registers every endpoint on an
http.ServeMux and wraps it in CORS:

	handler, err := router.NewRouter(db, cfg, log)

It fails if the signing secret is empty or the bcrypt cost is out of range.

# Endpoints

Public:

	GET  /health   - Liveness plus database ping (503 when unreachable)
	GET  /         - Banner
	POST /register - Create account
	POST /login    - Exchange credentials for a session token

Authenticated (Authorization: Bearer <token>):

	GET  /polls                - List polls
	POST /polls                - Create poll
	POST /votes                - Cast or change vote
	GET  /votes/{pollId}       - Tally
	GET  /votes/{pollId}/mine  - Caller's vote

# CORS

Origins come from cfg.AllowedOrigins ("*" by default). Preflight requests are
answered by github.com/rs/cors before reaching the mux.
*/
package router
