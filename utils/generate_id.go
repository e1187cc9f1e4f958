package utils

import (
	"github.com/google/uuid"
)

// GenerateNoteID returns a new unique note identifier.
func GenerateNoteID() string {
	return uuid.New().String()
}
