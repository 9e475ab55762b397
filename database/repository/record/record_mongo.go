package recordRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/funabab/ilivercare-app/database"
	"github.com/funabab/ilivercare-app/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns a Repository backed by the liverRecords
// collection.
func NewMongoRecordRepo() Repository {
	repo := &mongoRecordRepo{
		coll: database.DB().Collection("liverRecords"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *mongoRecordRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "aid", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new liver record and returns its ID.
func (r *mongoRecordRepo) Create(ctx context.Context, record models.LiverRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to create record: %w", err)
	}
	return record.ID, nil
}

// GetByID returns a liver record by its ID, or (nil, nil) when absent.
func (r *mongoRecordRepo) GetByID(ctx context.Context, id string) (*models.LiverRecord, error) {
	var record models.LiverRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch record with id %s: %w", id, err)
	}
	return &record, nil
}

// GetByAuthorID fetches all records owned by a specific account.
func (r *mongoRecordRepo) GetByAuthorID(ctx context.Context, authorID string) ([]models.LiverRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"aid": authorID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.LiverRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}

// Update applies a partial update and refreshes updatedAt.
func (r *mongoRecordRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update record with id %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus sets the record's status only, refreshing updatedAt.
func (r *mongoRecordRepo) UpdateStatus(ctx context.Context, id string, status models.RecordStatus) error {
	return r.Update(ctx, id, map[string]any{"status": status})
}

// DeleteByID removes a liver record by ID.
func (r *mongoRecordRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete record with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
