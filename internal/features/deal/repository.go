package deal

import (
	"context"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DealRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Deal, error)
	FindByID(ctx context.Context, ownerID, id string) (*Deal, error)
	Create(ctx context.Context, record *Deal) error
	Update(ctx context.Context, ownerID, id string, set bson.M) error
	Delete(ctx context.Context, ownerID, id string) error
	DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error)
}

type DealRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewDealRepository(mongodb *database.MongodbDB) DealRepository {
	return &DealRepositoryImpl{
		Collection: mongodb.DB.Collection("deals"),
	}
}

func ownerFilter(ownerID, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common_models.ErrNotFound
	}
	return bson.M{"_id": oid, "owner_id": ownerID}, nil
}

func (r *DealRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]Deal, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	records := make([]Deal, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *DealRepositoryImpl) FindByID(ctx context.Context, ownerID, id string) (*Deal, error) {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return nil, err
	}
	var record Deal
	if err := r.Collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common_models.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *DealRepositoryImpl) Create(ctx context.Context, record *Deal) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, record)
	return err
}

func (r *DealRepositoryImpl) Update(ctx context.Context, ownerID, id string, set bson.M) error {
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

func (r *DealRepositoryImpl) Delete(ctx context.Context, ownerID, id string) error {
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

func (r *DealRepositoryImpl) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
