package store

import "errors"

var (
	// ErrNotFound is returned when a point lookup, replace, or delete targets
	// a document that doesn't exist.
	ErrNotFound = errors.New("store: document not found")

	// ErrAlreadyExists is returned when attempting to create a document with
	// an existing id.
	ErrAlreadyExists = errors.New("store: document already exists")
)
