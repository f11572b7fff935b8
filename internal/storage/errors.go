// internal/storage/errors.go
package storage

import "errors"

var (
	// ErrNotFound is returned when the referenced entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned on a unique-key violation, such as two
	// products sharing a normalized slug.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidID is returned for identifiers that are not well-formed,
	// before any lookup is attempted.
	ErrInvalidID = errors.New("malformed identifier")
)
