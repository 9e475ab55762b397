package prediction

import (
	"context"
	"errors"
	"testing"

	"github.com/funabab/ilivercare-app/apperr"
	recordRepo "github.com/funabab/ilivercare-app/database/repository/record"
	"github.com/funabab/ilivercare-app/models"
	"github.com/funabab/ilivercare-app/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ recordRepo.Repository = (*MockRecordRepository)(nil)

// MockRecordRepository is a function-field mock of recordRepo.Repository.
// Only the calls the prediction flow makes are implemented.
type MockRecordRepository struct {
	GetByIDFunc      func(ctx context.Context, id string) (*models.LiverRecord, error)
	UpdateStatusFunc func(ctx context.Context, id string, status models.RecordStatus) error

	UpdateStatusCalls int
}

func (m *MockRecordRepository) Create(context.Context, models.LiverRecord) (string, error) {
	return "", errors.New("Create not implemented in mock")
}

func (m *MockRecordRepository) GetByID(ctx context.Context, id string) (*models.LiverRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockRecordRepository) GetByAuthorID(context.Context, string) ([]models.LiverRecord, error) {
	return nil, errors.New("GetByAuthorID not implemented in mock")
}

func (m *MockRecordRepository) Update(context.Context, string, map[string]any) error {
	return errors.New("Update not implemented in mock")
}

func (m *MockRecordRepository) UpdateStatus(ctx context.Context, id string, status models.RecordStatus) error {
	m.UpdateStatusCalls++
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return errors.New("UpdateStatusFunc not implemented in mock")
}

func (m *MockRecordRepository) DeleteByID(context.Context, string) error {
	return errors.New("DeleteByID not implemented in mock")
}

// fixedClassifier returns a constant label.
type fixedClassifier struct {
	label int
	err   error

	features []float64
}

func (c *fixedClassifier) Predict(features []float64) (int, error) {
	c.features = features
	return c.label, c.err
}

func ownedRecord(id, authorID string) *models.LiverRecord {
	return &models.LiverRecord{ID: id, AuthorID: authorID, Status: models.StatusUnevaluated}
}

func predictPayload(recordID string) schemas.PredictLiverRecord {
	return schemas.PredictLiverRecord{
		RecordID: recordID,
		ClinicalValues: schemas.ClinicalValues{
			Age:                       schemas.NumberOf(65),
			Gender:                    schemas.NumberOf(1),
			TotalBilirubin:            schemas.NumberOf(0.7),
			DirectBilirubin:           schemas.NumberOf(0.1),
			AlkalinePhosphotase:       schemas.NumberOf(187),
			AlamineAminotransferase:   schemas.NumberOf(16),
			AspartateAminotransferase: schemas.NumberOf(18),
			TotalProtiens:             schemas.NumberOf(6.8),
			Albumin:                   schemas.NumberOf(3.3),
			AlbuminAndGlobulinRatio:   schemas.NumberOf(0.9),
		},
	}
}

func TestPredictMapsLabelsToStatus(t *testing.T) {
	cases := []struct {
		name  string
		label int
		want  models.RecordStatus
	}{
		{"label one is positive", 1, models.StatusPositive},
		{"label two is negative", 2, models.StatusNegative},
		{"label zero is negative", 0, models.StatusNegative},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var persisted models.RecordStatus
			repo := &MockRecordRepository{
				GetByIDFunc: func(_ context.Context, id string) (*models.LiverRecord, error) {
					return ownedRecord(id, "acct-1"), nil
				},
				UpdateStatusFunc: func(_ context.Context, _ string, status models.RecordStatus) error {
					persisted = status
					return nil
				},
			}
			svc := &DefaultPredictionService{Repo: repo, Classifier: &fixedClassifier{label: tc.label}}

			status, err := svc.Predict(context.Background(), "acct-1", predictPayload("rec-1"))
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
			assert.Equal(t, tc.want, persisted)
			assert.Equal(t, 1, repo.UpdateStatusCalls)
		})
	}
}

func TestPredictSendsFeaturesInModelOrder(t *testing.T) {
	clf := &fixedClassifier{label: 1}
	repo := &MockRecordRepository{
		GetByIDFunc: func(_ context.Context, id string) (*models.LiverRecord, error) {
			return ownedRecord(id, "acct-1"), nil
		},
		UpdateStatusFunc: func(context.Context, string, models.RecordStatus) error { return nil },
	}
	svc := &DefaultPredictionService{Repo: repo, Classifier: clf}

	_, err := svc.Predict(context.Background(), "acct-1", predictPayload("rec-1"))
	require.NoError(t, err)
	assert.Equal(t, []float64{65, 1, 0.7, 0.1, 187, 16, 18, 6.8, 3.3, 0.9}, clf.features)
}

func TestPredictForeignRecordIsNotFoundWithoutMutation(t *testing.T) {
	repo := &MockRecordRepository{
		GetByIDFunc: func(_ context.Context, id string) (*models.LiverRecord, error) {
			return ownedRecord(id, "acct-2"), nil
		},
	}
	svc := &DefaultPredictionService{Repo: repo, Classifier: &fixedClassifier{label: 1}}

	_, err := svc.Predict(context.Background(), "acct-1", predictPayload("rec-1"))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
	assert.Zero(t, repo.UpdateStatusCalls)
}

func TestPredictMissingRecordIsNotFound(t *testing.T) {
	repo := &MockRecordRepository{
		GetByIDFunc: func(context.Context, string) (*models.LiverRecord, error) {
			return nil, nil
		},
	}
	svc := &DefaultPredictionService{Repo: repo, Classifier: &fixedClassifier{label: 1}}

	_, err := svc.Predict(context.Background(), "acct-1", predictPayload("rec-404"))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
	assert.Zero(t, repo.UpdateStatusCalls)
}

func TestPredictRequiresIdentity(t *testing.T) {
	svc := &DefaultPredictionService{Repo: &MockRecordRepository{}, Classifier: &fixedClassifier{label: 1}}

	_, err := svc.Predict(context.Background(), "", predictPayload("rec-1"))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthenticated, apperr.CodeOf(err))
}

func TestPredictRejectsInvalidPayload(t *testing.T) {
	svc := &DefaultPredictionService{Repo: &MockRecordRepository{}, Classifier: &fixedClassifier{label: 1}}

	req := predictPayload("rec-1")
	req.Age = schemas.Number{}
	_, err := svc.Predict(context.Background(), "acct-1", req)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestPredictClassifierFailureIsInternal(t *testing.T) {
	repo := &MockRecordRepository{
		GetByIDFunc: func(_ context.Context, id string) (*models.LiverRecord, error) {
			return ownedRecord(id, "acct-1"), nil
		},
	}
	svc := &DefaultPredictionService{
		Repo:       repo,
		Classifier: &fixedClassifier{err: errors.New("dimension mismatch")},
	}

	_, err := svc.Predict(context.Background(), "acct-1", predictPayload("rec-1"))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
	assert.Zero(t, repo.UpdateStatusCalls)
}
