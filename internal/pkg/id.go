package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - generates a new unique player identity.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
