package service

import "errors"

// Integrity failures block the write entirely; the boundary layer translates
// them into client-facing 4xx responses with errors.Is.
var (
	// ErrNotFound marks an operation addressing a missing record.
	ErrNotFound = errors.New("record not found")

	// ErrMissingReference marks a create whose foreign key points at a
	// nonexistent parent record.
	ErrMissingReference = errors.New("referenced record does not exist")

	// ErrAlreadyExists marks a uniqueness violation (duplicate tipster
	// profile, duplicate follow).
	ErrAlreadyExists = errors.New("record already exists")
)
