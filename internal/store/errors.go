package store

import "errors"

var (
	// ErrInvalidInput indicates malformed user input, such as a blank
	// description or a non-numeric task id.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the referenced task id does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrCorruptStore indicates the store file exists but cannot be parsed.
	// The file is left untouched; no state is silently discarded.
	ErrCorruptStore = errors.New("store file is corrupt")

	// ErrPersistence indicates the underlying write failed.
	ErrPersistence = errors.New("failed to persist store")
)
