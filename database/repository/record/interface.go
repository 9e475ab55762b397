package recordRepo

import (
	"context"

	"github.com/funabab/ilivercare-app/models"
)

// Repository defines data access for liver records. GetByID returns
// (nil, nil) when no record exists so callers can decide how much to
// reveal about missing documents.
type Repository interface {
	// Create inserts a new record, assigning its id and timestamps, and
	// returns the id.
	Create(ctx context.Context, record models.LiverRecord) (string, error)
	// GetByID fetches a record by its unique id.
	GetByID(ctx context.Context, id string) (*models.LiverRecord, error)
	// GetByAuthorID fetches all records owned by the given account.
	GetByAuthorID(ctx context.Context, authorID string) ([]models.LiverRecord, error)
	// Update applies a partial update document and refreshes updatedAt.
	Update(ctx context.Context, id string, fields map[string]any) error
	// UpdateStatus sets only the record's status and refreshes updatedAt.
	UpdateStatus(ctx context.Context, id string, status models.RecordStatus) error
	// DeleteByID removes a record.
	DeleteByID(ctx context.Context, id string) error
}

// ErrNotFound is returned by mutations that matched no document.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "record not found" }
