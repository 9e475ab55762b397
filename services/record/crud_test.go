package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/funabab/ilivercare-app/apperr"
	recordRepo "github.com/funabab/ilivercare-app/database/repository/record"
	"github.com/funabab/ilivercare-app/models"
	"github.com/funabab/ilivercare-app/schemas"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that the mock satisfies the repository contract.
var _ recordRepo.Repository = (*MockRecordRepository)(nil)

// MockRecordRepository is a function-field mock of recordRepo.Repository.
type MockRecordRepository struct {
	CreateFunc        func(ctx context.Context, record models.LiverRecord) (string, error)
	GetByIDFunc       func(ctx context.Context, id string) (*models.LiverRecord, error)
	GetByAuthorIDFunc func(ctx context.Context, authorID string) ([]models.LiverRecord, error)
	UpdateFunc        func(ctx context.Context, id string, fields map[string]any) error
	UpdateStatusFunc  func(ctx context.Context, id string, status models.RecordStatus) error
	DeleteByIDFunc    func(ctx context.Context, id string) error
}

func (m *MockRecordRepository) Create(ctx context.Context, record models.LiverRecord) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return "", errors.New("CreateFunc not implemented in mock")
}

func (m *MockRecordRepository) GetByID(ctx context.Context, id string) (*models.LiverRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockRecordRepository) GetByAuthorID(ctx context.Context, authorID string) ([]models.LiverRecord, error) {
	if m.GetByAuthorIDFunc != nil {
		return m.GetByAuthorIDFunc(ctx, authorID)
	}
	return nil, errors.New("GetByAuthorIDFunc not implemented in mock")
}

func (m *MockRecordRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockRecordRepository) UpdateStatus(ctx context.Context, id string, status models.RecordStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return errors.New("UpdateStatusFunc not implemented in mock")
}

func (m *MockRecordRepository) DeleteByID(ctx context.Context, id string) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return errors.New("DeleteByIDFunc not implemented in mock")
}

// memoryRecordRepo is a map-backed repository for round-trip tests.
type memoryRecordRepo struct {
	records map[string]models.LiverRecord
}

var _ recordRepo.Repository = (*memoryRecordRepo)(nil)

func newMemoryRecordRepo() *memoryRecordRepo {
	return &memoryRecordRepo{records: make(map[string]models.LiverRecord)}
}

func (r *memoryRecordRepo) Create(_ context.Context, record models.LiverRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.records[record.ID] = record
	return record.ID, nil
}

func (r *memoryRecordRepo) GetByID(_ context.Context, id string) (*models.LiverRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *memoryRecordRepo) GetByAuthorID(_ context.Context, authorID string) ([]models.LiverRecord, error) {
	var out []models.LiverRecord
	for _, rec := range r.records {
		if rec.AuthorID == authorID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryRecordRepo) Update(_ context.Context, id string, fields map[string]any) error {
	rec, ok := r.records[id]
	if !ok {
		return recordRepo.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "title":
			rec.Title = v.(string)
		case "age":
			rec.Age = v.(float64)
		case "gender":
			rec.Gender = v.(float64)
		case "totalBilirubin":
			rec.TotalBilirubin = v.(float64)
		case "directBilirubin":
			rec.DirectBilirubin = v.(float64)
		case "alkalinePhosphotase":
			rec.AlkalinePhosphotase = v.(float64)
		case "alamineAminotransferase":
			rec.AlamineAminotransferase = v.(float64)
		case "aspartateAminotransferase":
			rec.AspartateAminotransferase = v.(float64)
		case "totalProtiens":
			rec.TotalProtiens = v.(float64)
		case "albumin":
			rec.Albumin = v.(float64)
		case "albuminAndGlobulinRatio":
			rec.AlbuminAndGlobulinRatio = v.(float64)
		}
	}
	rec.UpdatedAt = time.Now()
	r.records[id] = rec
	return nil
}

func (r *memoryRecordRepo) UpdateStatus(_ context.Context, id string, status models.RecordStatus) error {
	rec, ok := r.records[id]
	if !ok {
		return recordRepo.ErrNotFound
	}
	rec.Status = status
	rec.UpdatedAt = time.Now()
	r.records[id] = rec
	return nil
}

func (r *memoryRecordRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return recordRepo.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func validClinicalValues() schemas.ClinicalValues {
	return schemas.ClinicalValues{
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
	}
}

func validCreatePayload() schemas.CreateLiverRecord {
	return schemas.CreateLiverRecord{
		Title:          "Routine checkup",
		AuthorID:       "acct-1",
		Status:         models.StatusUnevaluated,
		ClinicalValues: validClinicalValues(),
	}
}

func TestCreateStampsOwnershipAndStatus(t *testing.T) {
	var created models.LiverRecord
	svc := &DefaultRecordService{Repo: &MockRecordRepository{
		CreateFunc: func(_ context.Context, record models.LiverRecord) (string, error) {
			created = record
			return "rec-1", nil
		},
	}}

	req := validCreatePayload()
	// Even a payload claiming another author and an evaluated status gets
	// stamped from the server side.
	req.AuthorID = "someone-else"
	req.Status = models.StatusPositive

	id, err := svc.Create(context.Background(), "acct-1", req)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", id)
	assert.Equal(t, "acct-1", created.AuthorID)
	assert.Equal(t, models.StatusUnevaluated, created.Status)
}

func TestCreateRequiresIdentity(t *testing.T) {
	svc := &DefaultRecordService{Repo: &MockRecordRepository{}}

	_, err := svc.Create(context.Background(), "", validCreatePayload())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthenticated, apperr.CodeOf(err))
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	svc := &DefaultRecordService{Repo: &MockRecordRepository{}}

	req := validCreatePayload()
	req.Albumin = schemas.Number{}
	_, err := svc.Create(context.Background(), "acct-1", req)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestGetHidesForeignRecords(t *testing.T) {
	svc := &DefaultRecordService{Repo: &MockRecordRepository{
		GetByIDFunc: func(_ context.Context, id string) (*models.LiverRecord, error) {
			return &models.LiverRecord{ID: id, AuthorID: "acct-2"}, nil
		},
	}}

	_, err := svc.Get(context.Background(), "acct-1", "rec-1")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestListScopedToOwner(t *testing.T) {
	svc := &DefaultRecordService{Repo: &MockRecordRepository{
		GetByAuthorIDFunc: func(_ context.Context, authorID string) ([]models.LiverRecord, error) {
			assert.Equal(t, "acct-1", authorID)
			return []models.LiverRecord{{ID: "rec-1", AuthorID: authorID}}, nil
		},
	}}

	records, err := svc.List(context.Background(), "acct-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].ID)
}

func TestUpdateNeverTouchesOwnershipOrStatus(t *testing.T) {
	repo := newMemoryRecordRepo()
	svc := &DefaultRecordService{Repo: repo}

	id, err := svc.Create(context.Background(), "acct-1", validCreatePayload())
	require.NoError(t, err)

	update := schemas.UpdateLiverRecord{
		Title:          "Follow-up",
		ClinicalValues: validClinicalValues(),
	}
	update.Albumin = schemas.NumberOf(4.1)

	updated, err := svc.Update(context.Background(), "acct-1", id, update)
	require.NoError(t, err)
	assert.Equal(t, "Follow-up", updated.Title)
	assert.Equal(t, 4.1, updated.Albumin)
	assert.Equal(t, "acct-1", updated.AuthorID)
	assert.Equal(t, models.StatusUnevaluated, updated.Status)
}

func TestUpdateForeignRecordIsNotFound(t *testing.T) {
	repo := newMemoryRecordRepo()
	svc := &DefaultRecordService{Repo: repo}

	id, err := svc.Create(context.Background(), "acct-1", validCreatePayload())
	require.NoError(t, err)

	update := schemas.UpdateLiverRecord{Title: "x", ClinicalValues: validClinicalValues()}
	_, err = svc.Update(context.Background(), "acct-2", id, update)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestCreateGetRoundTrip(t *testing.T) {
	repo := newMemoryRecordRepo()
	svc := &DefaultRecordService{Repo: repo}

	req := validCreatePayload()
	id, err := svc.Create(context.Background(), "acct-1", req)
	require.NoError(t, err)

	rec, err := svc.Get(context.Background(), "acct-1", id)
	require.NoError(t, err)

	assert.Equal(t, id, rec.ID)
	assert.Equal(t, req.Title, rec.Title)
	assert.Equal(t, "acct-1", rec.AuthorID)
	assert.Equal(t, models.StatusUnevaluated, rec.Status)
	assert.Equal(t, 65.0, rec.Age)
	assert.Equal(t, 1.0, rec.Gender)
	assert.Equal(t, 0.7, rec.TotalBilirubin)
	assert.Equal(t, 0.1, rec.DirectBilirubin)
	assert.Equal(t, 187.0, rec.AlkalinePhosphotase)
	assert.Equal(t, 16.0, rec.AlamineAminotransferase)
	assert.Equal(t, 18.0, rec.AspartateAminotransferase)
	assert.Equal(t, 6.8, rec.TotalProtiens)
	assert.Equal(t, 3.3, rec.Albumin)
	assert.Equal(t, 0.9, rec.AlbuminAndGlobulinRatio)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	repo := newMemoryRecordRepo()
	svc := &DefaultRecordService{Repo: repo}

	id, err := svc.Create(context.Background(), "acct-1", validCreatePayload())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "acct-1", id))

	_, err = svc.Get(context.Background(), "acct-1", id)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestDeleteForeignRecordLeavesItAlone(t *testing.T) {
	repo := newMemoryRecordRepo()
	svc := &DefaultRecordService{Repo: repo}

	id, err := svc.Create(context.Background(), "acct-1", validCreatePayload())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "acct-2", id)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	rec, err := svc.Get(context.Background(), "acct-1", id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
}
