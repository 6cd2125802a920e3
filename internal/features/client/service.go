package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/features/activity"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
)

type ClientDraft struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	TotalValue  float64    `json:"total_value"`
	LastContact *time.Time `json:"last_contact"`
	Notes       string     `json:"notes"`
}

func (d ClientDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Email, validation.Required, is.Email),
		validation.Field(&d.Status, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if s != "" && !ClientStatus(s).Valid() {
				return validation.NewError("validation_client_status", "unknown client status")
			}
			return nil
		})),
		validation.Field(&d.TotalValue, validation.Min(0.0)),
	)
}

type ListFilter struct {
	Search string
	Status string
}

func (f ListFilter) Apply(records []Client) []Client {
	out := make([]Client, 0, len(records))
	for _, record := range records {
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(record.Name), needle) &&
				!strings.Contains(strings.ToLower(record.Email), needle) &&
				!strings.Contains(strings.ToLower(record.Company), needle) {
				continue
			}
		}
		if f.Status != "" && f.Status != common_models.FilterAll && string(record.Status) != f.Status {
			continue
		}
		out = append(out, record)
	}
	return out
}

type ClientService interface {
	List(ctx context.Context, ownerID string, filter ListFilter) ([]Client, error)
	Get(ctx context.Context, ownerID, id string) (*Client, error)
	Create(ctx context.Context, ownerID string, draft ClientDraft) (*Client, error)
	Update(ctx context.Context, ownerID, id string, draft ClientDraft) (*Client, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type ClientServiceImpl struct {
	Repo     ClientRepository
	Recorder activity.Recorder
}

func NewClientService(repo ClientRepository, recorder activity.Recorder) ClientService {
	return &ClientServiceImpl{Repo: repo, Recorder: recorder}
}

func (s *ClientServiceImpl) List(ctx context.Context, ownerID string, filter ListFilter) ([]Client, error) {
	records, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return filter.Apply(records), nil
}

func (s *ClientServiceImpl) Get(ctx context.Context, ownerID, id string) (*Client, error) {
	return s.Repo.FindByID(ctx, ownerID, id)
}

func (s *ClientServiceImpl) Create(ctx context.Context, ownerID string, draft ClientDraft) (*Client, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	status := ClientStatus(draft.Status)
	if draft.Status == "" {
		status = StatusActive
	}

	now := time.Now()
	record := Client{
		OwnerID:     ownerID,
		Name:        draft.Name,
		Email:       draft.Email,
		Phone:       draft.Phone,
		Company:     draft.Company,
		Position:    draft.Position,
		Address:     draft.Address,
		Status:      status,
		TotalValue:  draft.TotalValue,
		LastContact: draft.LastContact,
		Notes:       draft.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	s.Recorder.Record(ownerID, activity.TypeClientCreated,
		fmt.Sprintf("Created client: %s", record.Name), entityRef(&record))

	return &record, nil
}

func (s *ClientServiceImpl) Update(ctx context.Context, ownerID, id string, draft ClientDraft) (*Client, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		return nil, validation.NewError("validation_client_status", "status is required on update")
	}

	set := bson.M{
		"name":         draft.Name,
		"email":        draft.Email,
		"phone":        draft.Phone,
		"company":      draft.Company,
		"position":     draft.Position,
		"address":      draft.Address,
		"status":       draft.Status,
		"total_value":  draft.TotalValue,
		"last_contact": draft.LastContact,
		"notes":        draft.Notes,
		"updated_at":   time.Now(),
	}
	if err := s.Repo.Update(ctx, ownerID, id, set); err != nil {
		return nil, err
	}

	record, err := s.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	s.Recorder.Record(ownerID, activity.TypeClientUpdated,
		fmt.Sprintf("Updated client: %s", record.Name), entityRef(record))

	return record, nil
}

func (s *ClientServiceImpl) Delete(ctx context.Context, ownerID, id string) error {
	record, err := s.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.Recorder.Record(ownerID, activity.TypeClientDeleted,
		fmt.Sprintf("Deleted client: %s", record.Name), nil)

	return nil
}

func entityRef(record *Client) *common_models.EntityRef {
	return &common_models.EntityRef{
		EntityType: common_models.EntityTypeClient,
		EntityID:   record.ID.Hex(),
	}
}
