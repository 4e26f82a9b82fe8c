// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "errors"

// Error taxonomy surfaced by aggregation and ranking logic. Handlers map
// these to status codes at the boundary; nothing below the boundary retries.
var (
	// ErrInvalidArgument marks a malformed or missing identifier → 400
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a lookup that matched no entity → 404
	ErrNotFound = errors.New("not found")
)
