package dashboard

import (
	"context"
	"testing"
	"time"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubLeadRepo struct{ leads []lead.Lead }

func (r stubLeadRepo) ListByOwner(ctx context.Context, ownerID string) ([]lead.Lead, error) {
	return r.leads, nil
}
func (r stubLeadRepo) FindByID(ctx context.Context, ownerID, id string) (*lead.Lead, error) {
	return nil, common_models.ErrNotFound
}
func (r stubLeadRepo) Create(ctx context.Context, record *lead.Lead) error { return nil }
func (r stubLeadRepo) Update(ctx context.Context, ownerID, id string, set bson.M) error {
	return nil
}
func (r stubLeadRepo) Delete(ctx context.Context, ownerID, id string) error { return nil }
func (r stubLeadRepo) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	return 0, nil
}

type stubClientRepo struct{ clients []client.Client }

func (r stubClientRepo) ListByOwner(ctx context.Context, ownerID string) ([]client.Client, error) {
	return r.clients, nil
}
func (r stubClientRepo) FindByID(ctx context.Context, ownerID, id string) (*client.Client, error) {
	return nil, common_models.ErrNotFound
}
func (r stubClientRepo) Create(ctx context.Context, record *client.Client) error { return nil }
func (r stubClientRepo) Update(ctx context.Context, ownerID, id string, set bson.M) error {
	return nil
}
func (r stubClientRepo) Delete(ctx context.Context, ownerID, id string) error { return nil }
func (r stubClientRepo) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	return 0, nil
}

type stubDealRepo struct{ deals []deal.Deal }

func (r stubDealRepo) ListByOwner(ctx context.Context, ownerID string) ([]deal.Deal, error) {
	return r.deals, nil
}
func (r stubDealRepo) FindByID(ctx context.Context, ownerID, id string) (*deal.Deal, error) {
	return nil, common_models.ErrNotFound
}
func (r stubDealRepo) Create(ctx context.Context, record *deal.Deal) error { return nil }
func (r stubDealRepo) Update(ctx context.Context, ownerID, id string, set bson.M) error {
	return nil
}
func (r stubDealRepo) Delete(ctx context.Context, ownerID, id string) error { return nil }
func (r stubDealRepo) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	return 0, nil
}

type stubActivityRepo struct {
	activities []activity.Activity
	lastLimit  int64
}

func (r *stubActivityRepo) Create(ctx context.Context, entry *activity.Activity) error { return nil }
func (r *stubActivityRepo) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]activity.Activity, error) {
	r.lastLimit = limit
	return r.activities, nil
}
func (r *stubActivityRepo) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	return 0, nil
}
func (r *stubActivityRepo) PurgeOlderThan(ctx context.Context, ownerID string, cutoff time.Time) (int64, error) {
	return 0, nil
}

func TestOverview(t *testing.T) {
	activityRepo := &stubActivityRepo{activities: []activity.Activity{
		{Type: activity.TypeCall, Title: "Intro call"},
	}}
	service := NewDashboardService(
		stubLeadRepo{leads: []lead.Lead{{Name: "Anna"}, {Name: "Boris"}}},
		stubClientRepo{clients: []client.Client{{Name: "Gregor"}}},
		stubDealRepo{deals: []deal.Deal{
			{Stage: deal.StageClosedWon, Value: 500},
			{Stage: deal.StageClosedWon, Value: 250},
			{Stage: deal.StageNew, Value: 9000},
			{Stage: deal.StageClosedLost, Value: 700},
		}},
		activityRepo,
	)

	overview, err := service.Overview(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, 2, overview.TotalLeads)
	assert.Equal(t, 1, overview.TotalClients)
	assert.Equal(t, 4, overview.TotalDeals)
	// Revenue counts won deals only.
	assert.Equal(t, 750.0, overview.TotalRevenue)
	assert.Len(t, overview.RecentActivities, 1)
	assert.Equal(t, int64(recentActivityLimit), activityRepo.lastLimit)
}

func TestOverviewEmpty(t *testing.T) {
	service := NewDashboardService(stubLeadRepo{}, stubClientRepo{}, stubDealRepo{}, &stubActivityRepo{})

	overview, err := service.Overview(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Zero(t, overview.TotalLeads)
	assert.Zero(t, overview.TotalRevenue)
}
