package accountRepo

import (
	"context"

	"github.com/funabab/ilivercare-app/models"
)

// Repository defines data access for accounts. GetByEmail returns
// (nil, nil) when no account matches.
type Repository interface {
	// Create inserts a new account, assigning its id and timestamps.
	Create(ctx context.Context, account *models.Account) error
	// GetByID retrieves an account by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// GetByEmail retrieves an account by email.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// MarkEmailVerified flips the account's emailVerified flag.
	MarkEmailVerified(ctx context.Context, id string) error
}

// ErrNotFound is returned by lookups and mutations that matched no account.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "account not found" }
