package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is an operator login for the management console. It is kept
// deliberately small: the core treats authentication as a gate, not as an
// authorization model.
type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string // bcrypt hash; never serialized outward.
	FullName     string
	Email        string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
