package settings

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserSettings is a singleton per owner, created lazily on first save.
// DataRetentionDays only has an effect when the retention job is
// enabled; the value is stored either way.
type UserSettings struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID            string             `bson:"owner_id" json:"owner_id"`
	CompanyName        string             `bson:"company_name" json:"company_name"`
	CompanyAddress     string             `bson:"company_address" json:"company_address"`
	CompanyPhone       string             `bson:"company_phone" json:"company_phone"`
	CompanyEmail       string             `bson:"company_email" json:"company_email"`
	Currency           string             `bson:"currency" json:"currency"`
	Timezone           string             `bson:"timezone" json:"timezone"`
	Language           string             `bson:"language" json:"language"`
	EmailNotifications bool               `bson:"email_notifications" json:"email_notifications"`
	PushNotifications  bool               `bson:"push_notifications" json:"push_notifications"`
	DealReminders      bool               `bson:"deal_reminders" json:"deal_reminders"`
	LeadAutoAssignment bool               `bson:"lead_auto_assignment" json:"lead_auto_assignment"`
	DataRetentionDays  int                `bson:"data_retention_days" json:"data_retention_days"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// DefaultSettings are returned when an owner has never saved.
func DefaultSettings(ownerID string) *UserSettings {
	return &UserSettings{
		OwnerID:            ownerID,
		Currency:           "RUB",
		Timezone:           "Europe/Moscow",
		Language:           "ru",
		EmailNotifications: true,
		PushNotifications:  true,
		DealReminders:      true,
		LeadAutoAssignment: false,
		DataRetentionDays:  365,
	}
}
