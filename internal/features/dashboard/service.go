package dashboard

import (
	"context"

	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"

	"golang.org/x/sync/errgroup"
)

const recentActivityLimit = 10

// Overview is the landing screen payload: headline totals plus the
// latest activity entries.
type Overview struct {
	TotalLeads       int                 `json:"total_leads"`
	TotalClients     int                 `json:"total_clients"`
	TotalDeals       int                 `json:"total_deals"`
	TotalRevenue     float64             `json:"total_revenue"` // value of won deals
	RecentActivities []activity.Activity `json:"recent_activities"`
}

type DashboardService interface {
	Overview(ctx context.Context, ownerID string) (*Overview, error)
}

type DashboardServiceImpl struct {
	LeadRepo     lead.LeadRepository
	ClientRepo   client.ClientRepository
	DealRepo     deal.DealRepository
	ActivityRepo activity.ActivityRepository
}

func NewDashboardService(
	leadRepo lead.LeadRepository,
	clientRepo client.ClientRepository,
	dealRepo deal.DealRepository,
	activityRepo activity.ActivityRepository,
) DashboardService {
	return &DashboardServiceImpl{
		LeadRepo:     leadRepo,
		ClientRepo:   clientRepo,
		DealRepo:     dealRepo,
		ActivityRepo: activityRepo,
	}
}

func (s *DashboardServiceImpl) Overview(ctx context.Context, ownerID string) (*Overview, error) {
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
		activities, err = s.ActivityRepo.ListByOwner(gctx, ownerID, recentActivityLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &Overview{
		TotalLeads:       len(leads),
		TotalClients:     len(clients),
		TotalDeals:       len(deals),
		RecentActivities: activities,
	}
	for _, d := range deals {
		if d.Stage == deal.StageClosedWon {
			overview.TotalRevenue += d.Value
		}
	}
	return overview, nil
}
