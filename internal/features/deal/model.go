package deal

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DealStage string

const (
	StageNew         DealStage = "new"
	StageQualified   DealStage = "qualified"
	StageProposal    DealStage = "proposal"
	StageNegotiation DealStage = "negotiation"
	StageClosedWon   DealStage = "closed_won"
	StageClosedLost  DealStage = "closed_lost"
)

// StageOrder is the board's fixed column order.
var StageOrder = []DealStage{
	StageNew,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

func (s DealStage) Valid() bool {
	for _, stage := range StageOrder {
		if s == stage {
			return true
		}
	}
	return false
}

// Closed reports whether the stage counts toward the win rate.
func (s DealStage) Closed() bool {
	return s == StageClosedWon || s == StageClosedLost
}

const DefaultProbability = 50

// Probability is freely editable and intentionally not derived from
// the stage. A deal references at most one of LeadID/ClientID.
type Deal struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID           string             `bson:"owner_id" json:"owner_id"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Value             float64            `bson:"value" json:"value"`
	Stage             DealStage          `bson:"stage" json:"stage"`
	Probability       int                `bson:"probability" json:"probability"`
	ExpectedCloseDate *time.Time         `bson:"expected_close_date,omitempty" json:"expected_close_date,omitempty"`
	LeadID            string             `bson:"lead_id,omitempty" json:"lead_id,omitempty"`
	ClientID          string             `bson:"client_id,omitempty" json:"client_id,omitempty"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}
