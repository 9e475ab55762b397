package prediction

import (
	"context"

	recordRepo "github.com/funabab/ilivercare-app/database/repository/record"
	"github.com/funabab/ilivercare-app/models"
	"github.com/funabab/ilivercare-app/schemas"
)

// Classifier maps a feature vector to a discrete label. Implementations are
// pure functions over a fixed model; they mutate no state.
type Classifier interface {
	Predict(features []float64) (int, error)
}

// PredictionService converts a record's lab values into a binary
// classification and persists it on the record.
type PredictionService interface {
	// Predict authorizes callerID against record ownership, classifies the
	// payload's ten features and writes the resulting status back.
	Predict(ctx context.Context, callerID string, req schemas.PredictLiverRecord) (models.RecordStatus, error)
}

// DefaultPredictionService is the production implementation.
type DefaultPredictionService struct {
	Repo       recordRepo.Repository
	Classifier Classifier
}
