package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string for new records, falling back to
// a random v4 if the system clock refuses to cooperate.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
