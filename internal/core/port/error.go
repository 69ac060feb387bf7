package port

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a record with the same identifier already exists
	ErrConflict = errors.New("conflict")
)
