package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
)

type MongoContestRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoContestRepo(db *mongo.Database, timeout time.Duration) *MongoContestRepo {
	return &MongoContestRepo{coll: db.Collection("contests"), timeout: timeout}
}

func (r *MongoContestRepo) Create(ctx context.Context, contest *models.Contest) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, contest)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoContestRepo) List(ctx context.Context) ([]models.Contest, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoContestRepo) GetByID(ctx context.Context, id string) (*models.Contest, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var contest models.Contest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&contest); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contest, nil
}

func (r *MongoContestRepo) UpdateStatus(ctx context.Context, id string, status models.ContestStatus) (*models.Contest, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"status": status}})
}

func (r *MongoContestRepo) UpdateAssignedUsers(ctx context.Context, id string, userIDs []string) (*models.Contest, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"assigned_users": userIDs}})
}

func (r *MongoContestRepo) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*models.Contest, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var contest models.Contest
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&contest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contest, nil
}

func (r *MongoContestRepo) ListAssigned(ctx context.Context, userID string, status models.ContestStatus) ([]models.Contest, error) {
	return r.find(ctx, bson.M{"status": status, "assigned_users": userID})
}

func (r *MongoContestRepo) find(ctx context.Context, filter bson.M) ([]models.Contest, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contests := []models.Contest{}
	if err := cursor.All(ctx, &contests); err != nil {
		return nil, err
	}
	return contests, nil
}
