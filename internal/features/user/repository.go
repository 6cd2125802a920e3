package user

import (
	"context"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

type UserRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewUserRepository(mongodb *database.MongodbDB) UserRepository {
	return &UserRepositoryImpl{
		Collection: mongodb.DB.Collection("users"),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, user)
	return err
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*User, error) {
	var usr User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&usr)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common_models.ErrNotFound
		}
		return nil, err
	}
	return &usr, nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common_models.ErrNotFound
	}
	var usr User
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&usr)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common_models.ErrNotFound
		}
		return nil, err
	}
	return &usr, nil
}
