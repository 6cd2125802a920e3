package settings

import (
	"context"
	"time"

	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type UpdateSettingsRequest struct {
	CompanyName        string `json:"company_name"`
	CompanyAddress     string `json:"company_address"`
	CompanyPhone       string `json:"company_phone"`
	CompanyEmail       string `json:"company_email"`
	Currency           string `json:"currency"`
	Timezone           string `json:"timezone"`
	Language           string `json:"language"`
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	DealReminders      bool   `json:"deal_reminders"`
	LeadAutoAssignment bool   `json:"lead_auto_assignment"`
	DataRetentionDays  int    `json:"data_retention_days"`
}

func (r UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DataRetentionDays, validation.Min(0)),
	)
}

// WipeResult reports per-collection outcomes of the danger-zone wipe.
type WipeResult struct {
	Leads      int64 `json:"leads"`
	Clients    int64 `json:"clients"`
	Deals      int64 `json:"deals"`
	Activities int64 `json:"activities"`
}

type SettingsService interface {
	Get(ctx context.Context, ownerID string) (*UserSettings, error)
	Update(ctx context.Context, ownerID string, req UpdateSettingsRequest) (*UserSettings, error)
	DeleteAllData(ctx context.Context, ownerID string) (*WipeResult, error)
}

type SettingsServiceImpl struct {
	Repo         SettingsRepository
	LeadRepo     lead.LeadRepository
	ClientRepo   client.ClientRepository
	DealRepo     deal.DealRepository
	ActivityRepo activity.ActivityRepository
	Logger       *zap.Logger
}

func NewSettingsService(
	repo SettingsRepository,
	leadRepo lead.LeadRepository,
	clientRepo client.ClientRepository,
	dealRepo deal.DealRepository,
	activityRepo activity.ActivityRepository,
	logger *zap.Logger,
) SettingsService {
	return &SettingsServiceImpl{
		Repo:         repo,
		LeadRepo:     leadRepo,
		ClientRepo:   clientRepo,
		DealRepo:     dealRepo,
		ActivityRepo: activityRepo,
		Logger:       logger,
	}
}

func (s *SettingsServiceImpl) Get(ctx context.Context, ownerID string) (*UserSettings, error) {
	stored, err := s.Repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return DefaultSettings(ownerID), nil
	}
	return stored, nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, ownerID string, req UpdateSettingsRequest) (*UserSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing.CreatedAt.IsZero() {
		existing.CreatedAt = now
	}

	updated := UserSettings{
		ID:                 existing.ID,
		OwnerID:            ownerID,
		CompanyName:        req.CompanyName,
		CompanyAddress:     req.CompanyAddress,
		CompanyPhone:       req.CompanyPhone,
		CompanyEmail:       req.CompanyEmail,
		Currency:           req.Currency,
		Timezone:           req.Timezone,
		Language:           req.Language,
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		DealReminders:      req.DealReminders,
		LeadAutoAssignment: req.LeadAutoAssignment,
		DataRetentionDays:  req.DataRetentionDays,
		CreatedAt:          existing.CreatedAt,
		UpdatedAt:          now,
	}

	if err := s.Repo.Upsert(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAllData wipes the owner's four collections concurrently.
// A collection that fails is reported back instead of leaving the
// caller guessing which half of their data survived.
func (s *SettingsServiceImpl) DeleteAllData(ctx context.Context, ownerID string) (*WipeResult, error) {
	var result WipeResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.LeadRepo.DeleteAllByOwner(gctx, ownerID)
		result.Leads = n
		return err
	})
	g.Go(func() error {
		n, err := s.ClientRepo.DeleteAllByOwner(gctx, ownerID)
		result.Clients = n
		return err
	})
	g.Go(func() error {
		n, err := s.DealRepo.DeleteAllByOwner(gctx, ownerID)
		result.Deals = n
		return err
	})
	g.Go(func() error {
		n, err := s.ActivityRepo.DeleteAllByOwner(gctx, ownerID)
		result.Activities = n
		return err
	})

	if err := g.Wait(); err != nil {
		s.Logger.Error("bulk wipe finished with errors",
			zap.String("owner_id", ownerID), zap.Error(err))
		return &result, err
	}

	s.Logger.Info("bulk wipe complete",
		zap.String("owner_id", ownerID),
		zap.Int64("leads", result.Leads),
		zap.Int64("clients", result.Clients),
		zap.Int64("deals", result.Deals),
		zap.Int64("activities", result.Activities))

	return &result, nil
}
