package retention

import (
	"context"
	"fmt"
	"time"

	"sales-crm/internal/config"
	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/settings"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// purgeTimeout bounds a single scheduled sweep across all users.
const purgeTimeout = 5 * time.Minute

// Scheduler runs the periodic activity retention sweep. Each user's
// settings carry a data_retention_days value; entries older than that
// window are deleted. A value of zero means keep forever.
type Scheduler struct {
	SettingsRepo settings.SettingsRepository
	ActivityRepo activity.ActivityRepository
	Config       *config.Config
	Logger       *zap.Logger

	scheduler *cron.Cron
}

func NewScheduler(
	settingsRepo settings.SettingsRepository,
	activityRepo activity.ActivityRepository,
	cfg *config.Config,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		SettingsRepo: settingsRepo,
		ActivityRepo: activityRepo,
		Config:       cfg,
		Logger:       logger,
	}
}

func (s *Scheduler) Start() error {
	if !s.Config.RetentionEnabled {
		s.Logger.Info("retention scheduler disabled")
		return nil
	}
	if _, err := cron.ParseStandard(s.Config.RetentionCron); err != nil {
		return fmt.Errorf("invalid retention cron expression %q: %w", s.Config.RetentionCron, err)
	}

	s.scheduler = cron.New()
	if _, err := s.scheduler.AddFunc(s.Config.RetentionCron, s.runSweep); err != nil {
		return fmt.Errorf("failed to schedule retention sweep: %w", err)
	}
	s.scheduler.Start()

	s.Logger.Info("retention scheduler started",
		zap.String("schedule", s.Config.RetentionCron))
	return nil
}

func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
	}
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	if _, err := s.Sweep(ctx); err != nil {
		s.Logger.Error("retention sweep failed", zap.Error(err))
	}
}

// Sweep walks every stored settings document and purges expired
// activity entries for owners that opted into a retention window.
// One failing owner does not stop the walk.
func (s *Scheduler) Sweep(ctx context.Context) (int64, error) {
	all, err := s.SettingsRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}

	var purged int64
	var lastErr error
	now := time.Now()
	for _, cfg := range all {
		if cfg.DataRetentionDays <= 0 {
			continue
		}
		cutoff := now.AddDate(0, 0, -cfg.DataRetentionDays)
		n, err := s.ActivityRepo.PurgeOlderThan(ctx, cfg.OwnerID, cutoff)
		if err != nil {
			s.Logger.Error("retention purge failed for owner",
				zap.String("owner_id", cfg.OwnerID), zap.Error(err))
			lastErr = err
			continue
		}
		if n > 0 {
			s.Logger.Info("purged expired activities",
				zap.String("owner_id", cfg.OwnerID),
				zap.Int("retention_days", cfg.DataRetentionDays),
				zap.Int64("purged", n))
		}
		purged += n
	}
	return purged, lastErr
}
