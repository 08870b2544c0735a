package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

type LeadRepository struct {
	Coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{Coll: db.Collection("leads")}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	_, err := r.Coll.InsertOne(ctx, lead)
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Find returns the page of leads matching filter, newest first.
// A limit of zero means no limit (used by the admin user-detail path).
func (r *LeadRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]entity.Lead, error) {
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

	leads := []entity.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *LeadRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Coll.CountDocuments(ctx, filter)
}

func (r *LeadRepository) UpdateByID(ctx context.Context, id string, set bson.M) (*entity.Lead, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var lead entity.Lead
	err := r.Coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) GroupByStatus(ctx context.Context, match bson.M) ([]entity.GroupCount, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
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
