package deal

import (
	"context"
	"fmt"
	"time"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/features/activity"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
)

type DealDraft struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Value             float64    `json:"value"`
	Stage             string     `json:"stage"`
	Probability       *int       `json:"probability"`
	ExpectedCloseDate *time.Time `json:"expected_close_date"`
	LeadID            string     `json:"lead_id"`
	ClientID          string     `json:"client_id"`
	Notes             string     `json:"notes"`
}

// Validate rejects the draft before any store call is made: an empty
// title or a non-positive value never reaches the repository. A deal
// may reference a lead or a client, never both.
func (d DealDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Value, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&d.Stage, validation.By(validStageRule)),
		validation.Field(&d.Probability, validation.By(func(value interface{}) error {
			p, _ := value.(*int)
			if p != nil && (*p < 0 || *p > 100) {
				return validation.NewError("validation_deal_probability", "probability must be between 0 and 100")
			}
			return nil
		})),
		validation.Field(&d.LeadID, validation.By(func(interface{}) error {
			if d.LeadID != "" && d.ClientID != "" {
				return validation.NewError("validation_deal_ref", "deal may reference a lead or a client, not both")
			}
			return nil
		})),
	)
}

func validStageRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !DealStage(s).Valid() {
		return validation.NewError("validation_deal_stage", "unknown deal stage")
	}
	return nil
}

type ChangeStageRequest struct {
	Stage string `json:"stage"`
}

type DealService interface {
	List(ctx context.Context, ownerID, search string) ([]Deal, error)
	Board(ctx context.Context, ownerID, search string) ([]BoardColumn, error)
	Get(ctx context.Context, ownerID, id string) (*Deal, error)
	Create(ctx context.Context, ownerID string, draft DealDraft) (*Deal, error)
	Update(ctx context.Context, ownerID, id string, draft DealDraft) (*Deal, error)
	ChangeStage(ctx context.Context, ownerID, id string, stage DealStage) (*Deal, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type DealServiceImpl struct {
	Repo     DealRepository
	Recorder activity.Recorder
}

func NewDealService(repo DealRepository, recorder activity.Recorder) DealService {
	return &DealServiceImpl{Repo: repo, Recorder: recorder}
}

func (s *DealServiceImpl) List(ctx context.Context, ownerID, search string) ([]Deal, error) {
	records, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return SearchFilter(records, search), nil
}

func (s *DealServiceImpl) Board(ctx context.Context, ownerID, search string) ([]BoardColumn, error) {
	records, err := s.List(ctx, ownerID, search)
	if err != nil {
		return nil, err
	}
	return GroupByStage(records), nil
}

func (s *DealServiceImpl) Get(ctx context.Context, ownerID, id string) (*Deal, error) {
	return s.Repo.FindByID(ctx, ownerID, id)
}

func (s *DealServiceImpl) Create(ctx context.Context, ownerID string, draft DealDraft) (*Deal, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	stage := DealStage(draft.Stage)
	if draft.Stage == "" {
		stage = StageNew
	}
	probability := DefaultProbability
	if draft.Probability != nil {
		probability = *draft.Probability
	}

	now := time.Now()
	record := Deal{
		OwnerID:           ownerID,
		Title:             draft.Title,
		Description:       draft.Description,
		Value:             draft.Value,
		Stage:             stage,
		Probability:       probability,
		ExpectedCloseDate: draft.ExpectedCloseDate,
		LeadID:            draft.LeadID,
		ClientID:          draft.ClientID,
		Notes:             draft.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.Repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	s.Recorder.Record(ownerID, activity.TypeDealCreated,
		fmt.Sprintf("Created deal: %s", record.Title), entityRef(&record))

	return &record, nil
}

func (s *DealServiceImpl) Update(ctx context.Context, ownerID, id string, draft DealDraft) (*Deal, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if draft.Stage == "" {
		return nil, validation.NewError("validation_deal_stage", "stage is required on update")
	}

	probability := DefaultProbability
	if draft.Probability != nil {
		probability = *draft.Probability
	}

	set := bson.M{
		"title":               draft.Title,
		"description":         draft.Description,
		"value":               draft.Value,
		"stage":               draft.Stage,
		"probability":         probability,
		"expected_close_date": draft.ExpectedCloseDate,
		"lead_id":             draft.LeadID,
		"client_id":           draft.ClientID,
		"notes":               draft.Notes,
		"updated_at":          time.Now(),
	}
	if err := s.Repo.Update(ctx, ownerID, id, set); err != nil {
		return nil, err
	}

	record, err := s.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	s.Recorder.Record(ownerID, activity.TypeDealUpdated,
		fmt.Sprintf("Updated deal: %s", record.Title), entityRef(record))

	return record, nil
}

// ChangeStage moves a deal to any stage. There is deliberately no
// transition table: the board allows every move.
func (s *DealServiceImpl) ChangeStage(ctx context.Context, ownerID, id string, stage DealStage) (*Deal, error) {
	if !stage.Valid() {
		return nil, validation.NewError("validation_deal_stage", "unknown deal stage")
	}

	record, err := s.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	previous := record.Stage

	set := bson.M{
		"stage":      stage,
		"updated_at": time.Now(),
	}
	if err := s.Repo.Update(ctx, ownerID, id, set); err != nil {
		return nil, err
	}
	record.Stage = stage

	s.Recorder.Record(ownerID, activity.TypeDealStageChanged,
		fmt.Sprintf("Deal %q moved from %s to %s", record.Title, previous, stage), entityRef(record))

	return record, nil
}

func (s *DealServiceImpl) Delete(ctx context.Context, ownerID, id string) error {
	record, err := s.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.Recorder.Record(ownerID, activity.TypeDealDeleted,
		fmt.Sprintf("Deleted deal: %s", record.Title), nil)

	return nil
}

func entityRef(record *Deal) *common_models.EntityRef {
	return &common_models.EntityRef{
		EntityType: common_models.EntityTypeDeal,
		EntityID:   record.ID.Hex(),
	}
}
