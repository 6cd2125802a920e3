package client

import (
	"context"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClientRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Client, error)
	FindByID(ctx context.Context, ownerID, id string) (*Client, error)
	Create(ctx context.Context, record *Client) error
	Update(ctx context.Context, ownerID, id string, set bson.M) error
	Delete(ctx context.Context, ownerID, id string) error
	DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error)
}

type ClientRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewClientRepository(mongodb *database.MongodbDB) ClientRepository {
	return &ClientRepositoryImpl{
		Collection: mongodb.DB.Collection("clients"),
	}
}

func ownerFilter(ownerID, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common_models.ErrNotFound
	}
	return bson.M{"_id": oid, "owner_id": ownerID}, nil
}

func (r *ClientRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]Client, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	records := make([]Client, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ClientRepositoryImpl) FindByID(ctx context.Context, ownerID, id string) (*Client, error) {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return nil, err
	}
	var record Client
	if err := r.Collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common_models.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, record *Client) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, record)
	return err
}

func (r *ClientRepositoryImpl) Update(ctx context.Context, ownerID, id string, set bson.M) error {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return err
	}
	res, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return common_models.ErrNotFound
	}
	return nil
}

func (r *ClientRepositoryImpl) Delete(ctx context.Context, ownerID, id string) error {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return err
	}
	res, err := r.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return common_models.ErrNotFound
	}
	return nil
}

func (r *ClientRepositoryImpl) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
