package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindpulse/internal/model"
)

// DefaultBankID is the document ID of the active question bank
const DefaultBankID = "default"

// QuestionBankRepo stores question bank documents
type QuestionBankRepo interface {
	Get(ctx context.Context, id string) (*model.QuestionBank, error)
	Save(ctx context.Context, bank *model.QuestionBank) error
}

type questionBankRepo struct {
	collection *mongo.Collection
}

// NewQuestionBankRepo creates a new question bank repository
func NewQuestionBankRepo(db *mongo.Database) QuestionBankRepo {
	return &questionBankRepo{
		collection: db.Collection("question_banks"),
	}
}

func (r *questionBankRepo) Get(ctx context.Context, id string) (*model.QuestionBank, error) {
	var bank model.QuestionBank
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&bank)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *questionBankRepo) Save(ctx context.Context, bank *model.QuestionBank) error {
	if bank.ID == "" {
		bank.ID = DefaultBankID
	}
	bank.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": bank.ID}, bank, opts)
	return err
}
