// Package uuid wraps google/uuid so that IDs can be bound from
// path and query parameters.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

// ErrInvalid is returned when a parameter is not a valid UUID.
var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam parses a path or query parameter. The empty string
// is the Nil UUID, which means "not set" for filters.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return ErrInvalid
	}

	*u = UUID{parsed}
	return nil
}

// IsSet reports if the UUID holds anything else than the Nil UUID.
func (u UUID) IsSet() bool {
	return u.UUID != google_uuid.Nil
}
