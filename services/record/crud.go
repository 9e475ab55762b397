package record

import (
	"context"

	"github.com/funabab/ilivercare-app/apperr"
	"github.com/funabab/ilivercare-app/models"
	"github.com/funabab/ilivercare-app/schemas"
	"github.com/funabab/ilivercare-app/utils"

	"go.uber.org/zap"
)

// Create validates the payload and persists a new record. The author id and
// initial status always come from the server, never the payload.
func (s *DefaultRecordService) Create(ctx context.Context, authorID string, req schemas.CreateLiverRecord) (string, error) {
	if authorID == "" {
		return "", apperr.Unauthenticated("User not authenticated")
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	rec := req.Record()
	rec.AuthorID = authorID
	rec.Status = models.StatusUnevaluated

	id, err := s.Repo.Create(ctx, rec)
	if err != nil {
		utils.GetLogger().Error("Create: failed to create record", zap.Error(err))
		return "", apperr.Internal("Something went wrong while creating record", err)
	}
	return id, nil
}

// List returns every record owned by the calling account.
func (s *DefaultRecordService) List(ctx context.Context, authorID string) ([]models.LiverRecord, error) {
	if authorID == "" {
		return nil, apperr.Unauthenticated("User not authenticated")
	}

	records, err := s.Repo.GetByAuthorID(ctx, authorID)
	if err != nil {
		utils.GetLogger().Error("List: failed to fetch records", zap.String("aid", authorID), zap.Error(err))
		return nil, apperr.Internal("Something went wrong while fetching records", err)
	}
	return records, nil
}

// Get returns an owned record. Missing records and records owned by another
// account both surface as not-found.
func (s *DefaultRecordService) Get(ctx context.Context, authorID, id string) (*models.LiverRecord, error) {
	if authorID == "" {
		return nil, apperr.Unauthenticated("User not authenticated")
	}

	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		utils.GetLogger().Error("Get: failed to fetch record", zap.String("id", id), zap.Error(err))
		return nil, apperr.Internal("Something went wrong while fetching record", err)
	}
	if rec == nil || rec.AuthorID != authorID {
		return nil, apperr.NotFound("Record not found")
	}
	return rec, nil
}

// Update edits the title and clinical values of an owned record and
// refreshes updatedAt. Author id and status are not reachable through this
// path.
func (s *DefaultRecordService) Update(ctx context.Context, authorID, id string, req schemas.UpdateLiverRecord) (*models.LiverRecord, error) {
	if _, err := s.Get(ctx, authorID, id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"title":                     req.Title,
		"age":                       req.Age.Float64(),
		"gender":                    req.Gender.Float64(),
		"totalBilirubin":            req.TotalBilirubin.Float64(),
		"directBilirubin":           req.DirectBilirubin.Float64(),
		"alkalinePhosphotase":       req.AlkalinePhosphotase.Float64(),
		"alamineAminotransferase":   req.AlamineAminotransferase.Float64(),
		"aspartateAminotransferase": req.AspartateAminotransferase.Float64(),
		"totalProtiens":             req.TotalProtiens.Float64(),
		"albumin":                   req.Albumin.Float64(),
		"albuminAndGlobulinRatio":   req.AlbuminAndGlobulinRatio.Float64(),
	}

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		utils.GetLogger().Error("Update: failed to update record", zap.String("id", id), zap.Error(err))
		return nil, apperr.Internal("Something went wrong while updating record", err)
	}
	return s.Get(ctx, authorID, id)
}

// Delete removes an owned record. No cascading side effects.
func (s *DefaultRecordService) Delete(ctx context.Context, authorID, id string) error {
	if _, err := s.Get(ctx, authorID, id); err != nil {
		return err
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		utils.GetLogger().Error("Delete: failed to delete record", zap.String("id", id), zap.Error(err))
		return apperr.Internal("Something went wrong while deleting record", err)
	}
	return nil
}
