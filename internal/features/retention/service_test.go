package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-crm/internal/config"
	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSettingsRepo struct {
	all []settings.UserSettings
}

func (r staticSettingsRepo) GetByOwner(ctx context.Context, ownerID string) (*settings.UserSettings, error) {
	return nil, nil
}

func (r staticSettingsRepo) Upsert(ctx context.Context, s *settings.UserSettings) error {
	return nil
}

func (r staticSettingsRepo) ListAll(ctx context.Context) ([]settings.UserSettings, error) {
	return r.all, nil
}

type purgeCall struct {
	ownerID string
	cutoff  time.Time
}

type purgingActivityRepo struct {
	calls   []purgeCall
	perCall int64
	failFor string
}

func (r *purgingActivityRepo) Create(ctx context.Context, entry *activity.Activity) error {
	return nil
}

func (r *purgingActivityRepo) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]activity.Activity, error) {
	return nil, nil
}

func (r *purgingActivityRepo) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	return 0, nil
}

func (r *purgingActivityRepo) PurgeOlderThan(ctx context.Context, ownerID string, cutoff time.Time) (int64, error) {
	if ownerID == r.failFor {
		return 0, errors.New("purge failed")
	}
	r.calls = append(r.calls, purgeCall{ownerID: ownerID, cutoff: cutoff})
	return r.perCall, nil
}

func TestSweepHonorsRetentionDays(t *testing.T) {
	settingsRepo := staticSettingsRepo{all: []settings.UserSettings{
		{OwnerID: "owner-1", DataRetentionDays: 30},
		{OwnerID: "owner-2", DataRetentionDays: 0},   // keep forever
		{OwnerID: "owner-3", DataRetentionDays: 365},
	}}
	activityRepo := &purgingActivityRepo{perCall: 5}

	scheduler := NewScheduler(settingsRepo, activityRepo, &config.Config{}, zap.NewNop())
	purged, err := scheduler.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), purged)

	require.Len(t, activityRepo.calls, 2)
	assert.Equal(t, "owner-1", activityRepo.calls[0].ownerID)
	assert.Equal(t, "owner-3", activityRepo.calls[1].ownerID)

	// The 30-day cutoff lands roughly a month back.
	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, activityRepo.calls[0].cutoff, time.Minute)
}

func TestSweepContinuesPastFailingOwner(t *testing.T) {
	settingsRepo := staticSettingsRepo{all: []settings.UserSettings{
		{OwnerID: "owner-1", DataRetentionDays: 30},
		{OwnerID: "owner-2", DataRetentionDays: 30},
	}}
	activityRepo := &purgingActivityRepo{perCall: 3, failFor: "owner-1"}

	scheduler := NewScheduler(settingsRepo, activityRepo, &config.Config{}, zap.NewNop())
	purged, err := scheduler.Sweep(context.Background())

	assert.Error(t, err)
	assert.Equal(t, int64(3), purged)
	require.Len(t, activityRepo.calls, 1)
	assert.Equal(t, "owner-2", activityRepo.calls[0].ownerID)
}

func TestStartDisabled(t *testing.T) {
	scheduler := NewScheduler(staticSettingsRepo{}, &purgingActivityRepo{}, &config.Config{RetentionEnabled: false}, zap.NewNop())
	require.NoError(t, scheduler.Start())
	scheduler.Stop()
}

func TestStartRejectsBadCron(t *testing.T) {
	cfg := &config.Config{RetentionEnabled: true, RetentionCron: "not a cron"}
	scheduler := NewScheduler(staticSettingsRepo{}, &purgingActivityRepo{}, cfg, zap.NewNop())
	assert.Error(t, scheduler.Start())
}
