package utils

import "github.com/google/uuid"

// NewID returns a new random identifier for persisted documents.
func NewID() string {
	return uuid.NewString()
}
