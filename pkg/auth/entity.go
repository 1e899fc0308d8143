package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account that owns screening history.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
