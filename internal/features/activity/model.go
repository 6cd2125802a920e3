package activity

import (
	"time"

	common_models "sales-crm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityType string

// Manual activity types a user logs from the UI.
const (
	TypeCall    ActivityType = "call"
	TypeEmail   ActivityType = "email"
	TypeMeeting ActivityType = "meeting"
	TypeNote    ActivityType = "note"
	TypeTask    ActivityType = "task"
)

// Synthetic types emitted after entity mutations.
const (
	TypeLeadCreated      ActivityType = "lead_created"
	TypeLeadUpdated      ActivityType = "lead_updated"
	TypeLeadDeleted      ActivityType = "lead_deleted"
	TypeClientCreated    ActivityType = "client_created"
	TypeClientUpdated    ActivityType = "client_updated"
	TypeClientDeleted    ActivityType = "client_deleted"
	TypeDealCreated      ActivityType = "deal_created"
	TypeDealUpdated      ActivityType = "deal_updated"
	TypeDealDeleted      ActivityType = "deal_deleted"
	TypeDealStageChanged ActivityType = "deal_stage_changed"
)

var manualTypes = map[ActivityType]bool{
	TypeCall:    true,
	TypeEmail:   true,
	TypeMeeting: true,
	TypeNote:    true,
	TypeTask:    true,
}

// IsManualType reports whether users may create entries of this type
// directly. Synthetic types only come out of the outbox.
func IsManualType(t ActivityType) bool {
	return manualTypes[t]
}

// Activity is an append-only history entry. Nothing updates these;
// they only ever disappear through the bulk wipe or the retention job.
type Activity struct {
	ID          primitive.ObjectID        `bson:"_id,omitempty" json:"id"`
	OwnerID     string                    `bson:"owner_id" json:"owner_id"`
	Type        ActivityType              `bson:"type" json:"type"`
	Title       string                    `bson:"title,omitempty" json:"title,omitempty"`
	Description string                    `bson:"description" json:"description"`
	EntityRef   *common_models.EntityRef  `bson:"entity_ref,omitempty" json:"entity_ref,omitempty"`
	CreatedAt   time.Time                 `bson:"created_at" json:"created_at"`
}
