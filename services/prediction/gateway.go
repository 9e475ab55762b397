package prediction

import (
	"context"

	"github.com/funabab/ilivercare-app/apperr"
	"github.com/funabab/ilivercare-app/models"
	"github.com/funabab/ilivercare-app/schemas"
	"github.com/funabab/ilivercare-app/utils"

	"go.uber.org/zap"
)

// positiveLabel is the classifier output mapped to a positive status; every
// other label maps to negative.
const positiveLabel = 1

// Predict runs the one-shot classification flow: authorize, classify,
// persist. Only the record's status and updatedAt change. Re-invoking on an
// already evaluated record recomputes and overwrites the prior result.
func (s *DefaultPredictionService) Predict(ctx context.Context, callerID string, req schemas.PredictLiverRecord) (models.RecordStatus, error) {
	logger := utils.GetLogger()

	if callerID == "" {
		return "", apperr.Unauthenticated("User not authenticated")
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	rec, err := s.Repo.GetByID(ctx, req.RecordID)
	if err != nil {
		logger.Error("Predict: failed to fetch record", zap.String("id", req.RecordID), zap.Error(err))
		return "", apperr.Internal("Something went wrong while running prediction", err)
	}
	if rec == nil || rec.AuthorID != callerID {
		return "", apperr.NotFound("Record not found")
	}

	label, err := s.Classifier.Predict(req.Features())
	if err != nil {
		logger.Error("Predict: classifier failed", zap.String("id", req.RecordID), zap.Error(err))
		return "", apperr.Internal("Something went wrong while running prediction", err)
	}

	status := models.StatusNegative
	if label == positiveLabel {
		status = models.StatusPositive
	}

	if err := s.Repo.UpdateStatus(ctx, req.RecordID, status); err != nil {
		logger.Error("Predict: failed to persist status", zap.String("id", req.RecordID), zap.Error(err))
		return "", apperr.Internal("Something went wrong while running prediction", err)
	}

	logger.Debug("Predict: record classified",
		zap.String("id", req.RecordID),
		zap.Int("label", label),
		zap.String("status", string(status)),
	)
	return status, nil
}
