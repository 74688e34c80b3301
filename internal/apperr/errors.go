// Package apperr defines the error taxonomy shared by the storage and
// service layers. Callers classify failures with errors.Is and the HTTP
// layer maps each class to a status code in one place.
package apperr

import "errors"

var (
	// ErrNotFound: the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: the caller lacks the role or ownership for the action.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidState: a transition was attempted from a non-matching state.
	// The caller should refresh and retry manually.
	ErrInvalidState = errors.New("invalid state")
	// ErrConflict: a duplicate pending resource already exists.
	ErrConflict = errors.New("conflict")
	// ErrUpstream: the database or Redis failed or timed out. Safe to retry
	// with backoff at the caller's discretion.
	ErrUpstream = errors.New("upstream unavailable")
)
