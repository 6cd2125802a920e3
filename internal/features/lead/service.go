package lead

import (
	"context"
	"fmt"
	"time"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/features/activity"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
)

// LeadDraft carries the editable fields of the create/edit dialog.
type LeadDraft struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Company  string  `json:"company"`
	Position string  `json:"position"`
	Source   string  `json:"source"`
	Status   string  `json:"status"`
	Value    float64 `json:"value"`
	Notes    string  `json:"notes"`
}

func (d LeadDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Email, validation.Required, is.Email),
		validation.Field(&d.Status, validation.By(validStatusRule)),
		validation.Field(&d.Value, validation.Min(0.0)),
	)
}

func validStatusRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // defaulted on create
	}
	if !LeadStatus(s).Valid() {
		return validation.NewError("validation_lead_status", "unknown lead status")
	}
	return nil
}

type LeadService interface {
	List(ctx context.Context, ownerID string, filter ListFilter) ([]Lead, error)
	Get(ctx context.Context, ownerID, id string) (*Lead, error)
	Create(ctx context.Context, ownerID string, draft LeadDraft) (*Lead, error)
	Update(ctx context.Context, ownerID, id string, draft LeadDraft) (*Lead, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type LeadServiceImpl struct {
	Repo     LeadRepository
	Recorder activity.Recorder
}

func NewLeadService(repo LeadRepository, recorder activity.Recorder) LeadService {
	return &LeadServiceImpl{Repo: repo, Recorder: recorder}
}

// List loads the owner's full set and filters it in memory, the same
// way the pages do. Record counts are small enough that pushing the
// filter into the query layer is not worth it yet.
func (s *LeadServiceImpl) List(ctx context.Context, ownerID string, filter ListFilter) ([]Lead, error) {
	records, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return filter.Apply(records), nil
}

func (s *LeadServiceImpl) Get(ctx context.Context, ownerID, id string) (*Lead, error) {
	return s.Repo.FindByID(ctx, ownerID, id)
}

func (s *LeadServiceImpl) Create(ctx context.Context, ownerID string, draft LeadDraft) (*Lead, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	status := LeadStatus(draft.Status)
	if draft.Status == "" {
		status = StatusNew
	}
	source := draft.Source
	if source == "" {
		source = SourceWebsite
	}

	now := time.Now()
	record := Lead{
		OwnerID:   ownerID,
		Name:      draft.Name,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Company:   draft.Company,
		Position:  draft.Position,
		Source:    source,
		Status:    status,
		Value:     draft.Value,
		Notes:     draft.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	s.Recorder.Record(ownerID, activity.TypeLeadCreated,
		fmt.Sprintf("Created lead: %s", record.Name), entityRef(&record))

	return &record, nil
}

func (s *LeadServiceImpl) Update(ctx context.Context, ownerID, id string, draft LeadDraft) (*Lead, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		return nil, validation.NewError("validation_lead_status", "status is required on update")
	}

	set := bson.M{
		"name":       draft.Name,
		"email":      draft.Email,
		"phone":      draft.Phone,
		"company":    draft.Company,
		"position":   draft.Position,
		"source":     draft.Source,
		"status":     draft.Status,
		"value":      draft.Value,
		"notes":      draft.Notes,
		"updated_at": time.Now(),
	}
	if err := s.Repo.Update(ctx, ownerID, id, set); err != nil {
		return nil, err
	}

	record, err := s.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	s.Recorder.Record(ownerID, activity.TypeLeadUpdated,
		fmt.Sprintf("Updated lead: %s", record.Name), entityRef(record))

	return record, nil
}

func (s *LeadServiceImpl) Delete(ctx context.Context, ownerID, id string) error {
	record, err := s.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.Recorder.Record(ownerID, activity.TypeLeadDeleted,
		fmt.Sprintf("Deleted lead: %s", record.Name), nil)

	return nil
}

func entityRef(record *Lead) *common_models.EntityRef {
	return &common_models.EntityRef{
		EntityType: common_models.EntityTypeLead,
		EntityID:   record.ID.Hex(),
	}
}
