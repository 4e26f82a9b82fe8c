// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// sign computes the HMAC-SHA256 signature for a user id.
func sign(userID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(userID))
	sum := h.Sum(nil)
	// URL-safe base64 and trimmed padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// MintSessionToken creates a verifiable session token for a user id.
// The identity provider issues these after its own login flow; this server
// only ever verifies them. Format: "<userID>.<signature>".
func MintSessionToken(userID, salt string) string {
	return userID + "." + sign(userID, salt)
}

// ValidateSessionToken checks a session token and returns the user id it
// was minted for.
func ValidateSessionToken(token, salt string) (string, error) {
	userID, sig, ok := strings.Cut(token, ".")
	if !ok || userID == "" {
		return "", ErrInvalidSessionToken
	}
	expected := sign(userID, salt)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSessionToken
	}
	return userID, nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
