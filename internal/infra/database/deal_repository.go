package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

type DealRepository struct {
	Coll *mongo.Collection
}

func NewDealRepository(db *mongo.Database) *DealRepository {
	return &DealRepository{Coll: db.Collection("deals")}
}

func (r *DealRepository) Insert(ctx context.Context, deal *entity.Deal) error {
	_, err := r.Coll.InsertOne(ctx, deal)
	return err
}

func (r *DealRepository) FindByID(ctx context.Context, id string) (*entity.Deal, error) {
	var deal entity.Deal
	err := r.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&deal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]entity.Deal, error) {
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

	deals := []entity.Deal{}
	if err := cursor.All(ctx, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *DealRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Coll.CountDocuments(ctx, filter)
}

func (r *DealRepository) UpdateByID(ctx context.Context, id string, set bson.M) (*entity.Deal, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var deal entity.Deal
	err := r.Coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&deal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// GroupByStage sums deal values per stage on top of the count, feeding the
// pipeline chart on the dashboard.
func (r *DealRepository) GroupByStage(ctx context.Context, match bson.M) ([]entity.GroupCount, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":         "$stage",
			"count":       bson.M{"$sum": 1},
			"total_value": bson.M{"$sum": "$value"},
		}},
	}

	cursor, err := r.Coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	groups := []entity.GroupCount{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
