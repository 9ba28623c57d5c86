package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindpulse/internal/model"
)

// CheckInRepo handles MongoDB operations for completed check-ins
type CheckInRepo interface {
	Save(ctx context.Context, checkIn *model.CheckIn) error
	GetByID(ctx context.Context, id string) (*model.CheckIn, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]*model.CheckIn, error)
}

type checkInRepo struct {
	collection *mongo.Collection
}

// NewCheckInRepo creates a new check-in repository
func NewCheckInRepo(db *mongo.Database) CheckInRepo {
	return &checkInRepo{
		collection: db.Collection("checkins"),
	}
}

// EnsureCheckInIndexes creates the indexes the check-in queries rely on
func EnsureCheckInIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("checkins").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "completedAt", Value: -1}},
	})
	return err
}

func (r *checkInRepo) Save(ctx context.Context, checkIn *model.CheckIn) error {
	if checkIn.CompletedAt.IsZero() {
		checkIn.CompletedAt = time.Now()
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": checkIn.ID}, checkIn, opts)
	return err
}

func (r *checkInRepo) GetByID(ctx context.Context, id string) (*model.CheckIn, error) {
	var checkIn model.CheckIn
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&checkIn)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkIn, nil
}

func (r *checkInRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]*model.CheckIn, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	checkIns := []*model.CheckIn{}
	if err := cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	return checkIns, nil
}
