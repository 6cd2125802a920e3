package analytics

import (
	"context"
	"time"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"

	"golang.org/x/sync/errgroup"
)

// activityFeedLimit matches the cap the analytics screen loads.
const activityFeedLimit = 100

type AnalyticsService interface {
	Report(ctx context.Context, ownerID string, days int) (*Report, error)
}

type AnalyticsServiceImpl struct {
	LeadRepo     lead.LeadRepository
	ClientRepo   client.ClientRepository
	DealRepo     deal.DealRepository
	ActivityRepo activity.ActivityRepository
}

func NewAnalyticsService(
	leadRepo lead.LeadRepository,
	clientRepo client.ClientRepository,
	dealRepo deal.DealRepository,
	activityRepo activity.ActivityRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		LeadRepo:     leadRepo,
		ClientRepo:   clientRepo,
		DealRepo:     dealRepo,
		ActivityRepo: activityRepo,
	}
}

// Report loads the owner's four sets with a fixed fan-out, then hands
// them to the pure computation. Unknown windows fall back to 30 days.
func (s *AnalyticsServiceImpl) Report(ctx context.Context, ownerID string, days int) (*Report, error) {
	if !validWindow(days) {
		days = 30
	}

	var (
		leads      []lead.Lead
		clients    []client.Client
		deals      []deal.Deal
		activities []activity.Activity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		leads, err = s.LeadRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		clients, err = s.ClientRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		deals, err = s.DealRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		activities, err = s.ActivityRepo.ListByOwner(gctx, ownerID, activityFeedLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildReport(leads, clients, deals, activities, days, time.Now()), nil
}

func validWindow(days int) bool {
	for _, w := range common_models.AnalyticsWindows {
		if days == w {
			return true
		}
	}
	return false
}
