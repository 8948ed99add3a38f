package repository

import (
	"context"
	"errors"

	"rpromo/internal/domain/entity"
)

// ErrAccountNotFound is returned when no operator account matches.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository persists operator logins. The application only ever
// needs a lookup by username and administrative create/deactivate, so the
// contract stays small.
type AccountRepository interface {
	// FindByUsername returns the account with the given username,
	// or ErrAccountNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new operator account.
	Create(ctx context.Context, account *entity.Account) error

	// SetActive flips the active flag on an existing account.
	SetActive(ctx context.Context, username string, active bool) error
}
