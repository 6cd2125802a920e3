package activity

import (
	"context"
	"time"

	"sales-crm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry *Activity) error
	ListByOwner(ctx context.Context, ownerID string, limit int64) ([]Activity, error)
	DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error)
	PurgeOlderThan(ctx context.Context, ownerID string, cutoff time.Time) (int64, error)
}

type ActivityRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewActivityRepository(mongodb *database.MongodbDB) ActivityRepository {
	return &ActivityRepositoryImpl{
		Collection: mongodb.DB.Collection("activities"),
	}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, entry *Activity) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, entry)
	return err
}

func (r *ActivityRepositoryImpl) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]Activity, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	entries := make([]Activity, 0)
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ActivityRepositoryImpl) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *ActivityRepositoryImpl) PurgeOlderThan(ctx context.Context, ownerID string, cutoff time.Time) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, bson.M{
		"owner_id":   ownerID,
		"created_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
