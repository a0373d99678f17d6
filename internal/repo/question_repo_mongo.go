package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
)

type MongoQuestionRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoQuestionRepo(db *mongo.Database, timeout time.Duration) *MongoQuestionRepo {
	return &MongoQuestionRepo{coll: db.Collection("questions"), timeout: timeout}
}

func (r *MongoQuestionRepo) Insert(ctx context.Context, question *models.Question) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, question)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoQuestionRepo) CountByIDs(ctx context.Context, ids []string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return int(n), err
}
