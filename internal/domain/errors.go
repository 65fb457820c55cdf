package domain

import "errors"

var (
	// ErrNotFound marks missing apps or empty read paths.
	ErrNotFound = errors.New("not found")
	// ErrSourceUnavailable marks a run-level collector failure: the review
	// source could not be reached for any configured app.
	ErrSourceUnavailable = errors.New("review source unavailable")
)
