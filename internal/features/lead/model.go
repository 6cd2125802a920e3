package lead

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeadStatus string

const (
	StatusNew         LeadStatus = "new"
	StatusContacted   LeadStatus = "contacted"
	StatusQualified   LeadStatus = "qualified"
	StatusProposal    LeadStatus = "proposal"
	StatusNegotiation LeadStatus = "negotiation"
	StatusClosedWon   LeadStatus = "closed_won"
	StatusClosedLost  LeadStatus = "closed_lost"
)

var validStatuses = map[LeadStatus]bool{
	StatusNew:         true,
	StatusContacted:   true,
	StatusQualified:   true,
	StatusProposal:    true,
	StatusNegotiation: true,
	StatusClosedWon:   true,
	StatusClosedLost:  true,
}

func (s LeadStatus) Valid() bool {
	return validStatuses[s]
}

// Source stays a free-form string; these are the suggested values the
// form offers.
const (
	SourceWebsite     = "website"
	SourceAdvertising = "advertising"
	SourceSocial      = "social"
	SourceReferral    = "referral"
	SourceColdCall    = "cold_call"
)

type Lead struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   string             `bson:"owner_id" json:"owner_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string             `bson:"company,omitempty" json:"company,omitempty"`
	Position  string             `bson:"position,omitempty" json:"position,omitempty"`
	Source    string             `bson:"source" json:"source"`
	Status    LeadStatus         `bson:"status" json:"status"`
	Value     float64            `bson:"value,omitempty" json:"value,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
