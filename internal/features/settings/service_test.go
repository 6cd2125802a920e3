package settings

import (
	"context"
	"errors"
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
	"go.uber.org/zap"
)

type fakeSettingsRepo struct {
	stored map[string]UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{stored: make(map[string]UserSettings)}
}

func (r *fakeSettingsRepo) GetByOwner(ctx context.Context, ownerID string) (*UserSettings, error) {
	s, ok := r.stored[ownerID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, s *UserSettings) error {
	r.stored[s.OwnerID] = *s
	return nil
}

func (r *fakeSettingsRepo) ListAll(ctx context.Context) ([]UserSettings, error) {
	out := make([]UserSettings, 0, len(r.stored))
	for _, s := range r.stored {
		out = append(out, s)
	}
	return out, nil
}

// countingWiper stands in for the four entity repositories; only the
// DeleteAllByOwner path matters here.
type countingWiper struct {
	count int64
	err   error
}

func (w countingWiper) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	return w.count, w.err
}

type wipeLeadRepo struct{ countingWiper }

func (wipeLeadRepo) ListByOwner(ctx context.Context, ownerID string) ([]lead.Lead, error) {
	return nil, nil
}
func (wipeLeadRepo) FindByID(ctx context.Context, ownerID, id string) (*lead.Lead, error) {
	return nil, common_models.ErrNotFound
}
func (wipeLeadRepo) Create(ctx context.Context, record *lead.Lead) error { return nil }
func (wipeLeadRepo) Update(ctx context.Context, ownerID, id string, set bson.M) error {
	return nil
}
func (wipeLeadRepo) Delete(ctx context.Context, ownerID, id string) error { return nil }

type wipeClientRepo struct{ countingWiper }

func (wipeClientRepo) ListByOwner(ctx context.Context, ownerID string) ([]client.Client, error) {
	return nil, nil
}
func (wipeClientRepo) FindByID(ctx context.Context, ownerID, id string) (*client.Client, error) {
	return nil, common_models.ErrNotFound
}
func (wipeClientRepo) Create(ctx context.Context, record *client.Client) error { return nil }
func (wipeClientRepo) Update(ctx context.Context, ownerID, id string, set bson.M) error {
	return nil
}
func (wipeClientRepo) Delete(ctx context.Context, ownerID, id string) error { return nil }

type wipeDealRepo struct{ countingWiper }

func (wipeDealRepo) ListByOwner(ctx context.Context, ownerID string) ([]deal.Deal, error) {
	return nil, nil
}
func (wipeDealRepo) FindByID(ctx context.Context, ownerID, id string) (*deal.Deal, error) {
	return nil, common_models.ErrNotFound
}
func (wipeDealRepo) Create(ctx context.Context, record *deal.Deal) error { return nil }
func (wipeDealRepo) Update(ctx context.Context, ownerID, id string, set bson.M) error {
	return nil
}
func (wipeDealRepo) Delete(ctx context.Context, ownerID, id string) error { return nil }

type wipeActivityRepo struct{ countingWiper }

func (wipeActivityRepo) Create(ctx context.Context, entry *activity.Activity) error { return nil }
func (wipeActivityRepo) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]activity.Activity, error) {
	return nil, nil
}
func (wipeActivityRepo) PurgeOlderThan(ctx context.Context, ownerID string, cutoff time.Time) (int64, error) {
	return 0, nil
}

func newTestService(repo SettingsRepository, leads, clients, deals, activities countingWiper) SettingsService {
	return NewSettingsService(
		repo,
		wipeLeadRepo{leads},
		wipeClientRepo{clients},
		wipeDealRepo{deals},
		wipeActivityRepo{activities},
		zap.NewNop(),
	)
}

func TestSettingsGetReturnsDefaults(t *testing.T) {
	service := newTestService(newFakeSettingsRepo(), countingWiper{}, countingWiper{}, countingWiper{}, countingWiper{})

	got, err := service.Get(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, "owner-1", got.OwnerID)
	assert.Equal(t, "RUB", got.Currency)
	assert.Equal(t, "Europe/Moscow", got.Timezone)
	assert.Equal(t, "ru", got.Language)
	assert.True(t, got.EmailNotifications)
	assert.False(t, got.LeadAutoAssignment)
	assert.Equal(t, 365, got.DataRetentionDays)
}

func TestSettingsUpdatePersists(t *testing.T) {
	repo := newFakeSettingsRepo()
	service := newTestService(repo, countingWiper{}, countingWiper{}, countingWiper{}, countingWiper{})

	updated, err := service.Update(context.Background(), "owner-1", UpdateSettingsRequest{
		CompanyName:       "Demo Trading LLC",
		Currency:          "EUR",
		Timezone:          "Europe/Berlin",
		Language:          "en",
		DataRetentionDays: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", updated.Currency)
	assert.False(t, updated.UpdatedAt.IsZero())

	got, err := service.Get(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Demo Trading LLC", got.CompanyName)
	assert.Equal(t, 90, got.DataRetentionDays)
}

func TestSettingsUpdateRejectsNegativeRetention(t *testing.T) {
	service := newTestService(newFakeSettingsRepo(), countingWiper{}, countingWiper{}, countingWiper{}, countingWiper{})

	_, err := service.Update(context.Background(), "owner-1", UpdateSettingsRequest{
		DataRetentionDays: -1,
	})
	assert.Error(t, err)
}

func TestDeleteAllDataAggregatesCounts(t *testing.T) {
	service := newTestService(newFakeSettingsRepo(),
		countingWiper{count: 6},
		countingWiper{count: 4},
		countingWiper{count: 6},
		countingWiper{count: 25},
	)

	result, err := service.DeleteAllData(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Leads)
	assert.Equal(t, int64(4), result.Clients)
	assert.Equal(t, int64(6), result.Deals)
	assert.Equal(t, int64(25), result.Activities)
}

func TestDeleteAllDataReportsPartialFailure(t *testing.T) {
	service := newTestService(newFakeSettingsRepo(),
		countingWiper{count: 6},
		countingWiper{err: errors.New("clients collection unavailable")},
		countingWiper{count: 6},
		countingWiper{count: 25},
	)

	result, err := service.DeleteAllData(context.Background(), "owner-1")
	assert.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(6), result.Leads)
	assert.Zero(t, result.Clients)
}
