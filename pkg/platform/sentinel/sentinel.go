package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped);
// services decide whether to translate them or let them propagate.
//
//   - ErrNotFound: the row or key does not exist
//   - ErrConflict: a uniqueness or foreign-key constraint rejected the write
//   - ErrExpired: a stored credential is past its expiry
//   - ErrUnavailable: the backing service cannot be reached
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrExpired     = errors.New("expired")
	ErrUnavailable = errors.New("unavailable")
)
