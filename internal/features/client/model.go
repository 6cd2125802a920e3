package client

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClientStatus string

const (
	StatusActive   ClientStatus = "active"
	StatusInactive ClientStatus = "inactive"
	StatusProspect ClientStatus = "prospect"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusProspect:
		return true
	}
	return false
}

// TotalValue is entered by hand. It is not derived from won deals and
// no invariant ties the two together.
type Client struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     string             `bson:"owner_id" json:"owner_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	Position    string             `bson:"position,omitempty" json:"position,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Status      ClientStatus       `bson:"status" json:"status"`
	TotalValue  float64            `bson:"total_value" json:"total_value"`
	LastContact *time.Time         `bson:"last_contact,omitempty" json:"last_contact,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
