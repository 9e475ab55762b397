package record

import (
	"context"

	recordRepo "github.com/funabab/ilivercare-app/database/repository/record"
	"github.com/funabab/ilivercare-app/models"
	"github.com/funabab/ilivercare-app/schemas"
)

// RecordService defines business logic for liver-record operations. Every
// operation is scoped to the calling account; records owned by other
// accounts are indistinguishable from missing ones.
type RecordService interface {
	// Create validates and persists a new record owned by authorID,
	// returning the new record id.
	Create(ctx context.Context, authorID string, req schemas.CreateLiverRecord) (string, error)
	// List returns all records owned by authorID.
	List(ctx context.Context, authorID string) ([]models.LiverRecord, error)
	// Get returns a single owned record.
	Get(ctx context.Context, authorID, id string) (*models.LiverRecord, error)
	// Update edits the title and clinical values of an owned record.
	Update(ctx context.Context, authorID, id string, req schemas.UpdateLiverRecord) (*models.LiverRecord, error)
	// Delete removes an owned record. Irreversible.
	Delete(ctx context.Context, authorID, id string) error
}

// DefaultRecordService is the production implementation.
type DefaultRecordService struct {
	Repo recordRepo.Repository
}
