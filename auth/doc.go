// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session token verification utilities.

# Session Tokens

Login itself is delegated to the external identity provider; this server
only verifies the tokens it hands out. Tokens use HMAC-SHA256 to stay
deterministic and verifiable without a session table:

	token := auth.MintSessionToken(userID, salt)
	userID, err := auth.ValidateSessionToken(token, salt)

A token is "<userID>.<signature>" where the signature is URL-safe base64
without padding. Validation uses constant-time comparison. MintSessionToken
exists for the provider side of the contract and for tests.

# IP Hashing

For privacy-preserving abuse detection on the search tracker:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
