package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

type ActivityRepository struct {
	Coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{Coll: db.Collection("activities")}
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *entity.Activity) error {
	_, err := r.Coll.InsertOne(ctx, activity)
	return err
}

func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*entity.Activity, error) {
	var activity entity.Activity
	err := r.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&activity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]entity.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.Coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	activities := []entity.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Coll.CountDocuments(ctx, filter)
}

func (r *ActivityRepository) UpdateByID(ctx context.Context, id string, set bson.M) (*entity.Activity, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var activity entity.Activity
	err := r.Coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&activity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
