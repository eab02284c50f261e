// Package uuid wraps github.com/google/uuid with request parameter binding.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is a resource ID that gin can bind from query and URI parameters.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID. Query filters bound to Nil are treated as unset.
var Nil UUID

// New returns a random UUID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// NewString returns a random UUID as a string.
func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam implements gin's binding.BindUnmarshaler. The empty string
// binds to Nil so that optional ID filters can be left out of a request.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
