package activity

import (
	"context"
	"time"

	common_models "sales-crm/internal/common/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Recorder is what the entity services depend on. Recording is
// fire-and-forget: the caller's mutation has already succeeded and
// must not be rolled back if the history write later fails.
type Recorder interface {
	Record(ownerID string, activityType ActivityType, description string, ref *common_models.EntityRef)
}

type CreateActivityRequest struct {
	Type        ActivityType             `json:"type"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	EntityRef   *common_models.EntityRef `json:"entity_ref"`
}

func (r CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.By(func(value interface{}) error {
			t, _ := value.(ActivityType)
			if !IsManualType(t) {
				return validation.NewError("validation_activity_type", "must be one of call, email, meeting, note, task")
			}
			return nil
		})),
		validation.Field(&r.Title, validation.Required),
	)
}

type ActivityService interface {
	Recorder
	Create(ctx context.Context, ownerID string, req CreateActivityRequest) (*Activity, error)
	List(ctx context.Context, ownerID string, limit int64) ([]Activity, error)
}

type ActivityServiceImpl struct {
	Repo   ActivityRepository
	Outbox *Outbox
}

func NewActivityService(repo ActivityRepository, outbox *Outbox) ActivityService {
	return &ActivityServiceImpl{
		Repo:   repo,
		Outbox: outbox,
	}
}

func (s *ActivityServiceImpl) Record(ownerID string, activityType ActivityType, description string, ref *common_models.EntityRef) {
	s.Outbox.Enqueue(Activity{
		OwnerID:     ownerID,
		Type:        activityType,
		Description: description,
		EntityRef:   ref,
		CreatedAt:   time.Now(),
	})
}

// Create logs a manual activity (call, email, meeting, note, task).
// Unlike Record this is synchronous: the user asked for the entry and
// should see the failure.
func (s *ActivityServiceImpl) Create(ctx context.Context, ownerID string, req CreateActivityRequest) (*Activity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := Activity{
		OwnerID:     ownerID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		EntityRef:   req.EntityRef,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *ActivityServiceImpl) List(ctx context.Context, ownerID string, limit int64) ([]Activity, error) {
	return s.Repo.ListByOwner(ctx, ownerID, limit)
}
