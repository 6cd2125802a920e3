package settings

import (
	"context"

	"sales-crm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*UserSettings, error)
	Upsert(ctx context.Context, s *UserSettings) error
	ListAll(ctx context.Context) ([]UserSettings, error)
}

type SettingsRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSettingsRepository(mongodb *database.MongodbDB) SettingsRepository {
	return &SettingsRepositoryImpl{
		Collection: mongodb.DB.Collection("user_settings"),
	}
}

func (r *SettingsRepositoryImpl) GetByOwner(ctx context.Context, ownerID string) (*UserSettings, error) {
	var s UserSettings
	err := r.Collection.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepositoryImpl) Upsert(ctx context.Context, s *UserSettings) error {
	filter := bson.M{"owner_id": s.OwnerID}
	update := bson.M{"$set": s}
	opts := options.Update().SetUpsert(true)
	_, err := r.Collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// ListAll feeds the retention job, which walks every user.
func (r *SettingsRepositoryImpl) ListAll(ctx context.Context) ([]UserSettings, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	all := make([]UserSettings, 0)
	if err = cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}
