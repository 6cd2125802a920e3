package export

import (
	"context"
	"fmt"
	"time"

	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"
	"sales-crm/internal/features/settings"
	"sales-crm/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type ExportService interface {
	BuildDocument(ctx context.Context, ownerID string) (*Document, error)
	RenderXLSX(doc *Document) ([]byte, error)
}

type ExportServiceImpl struct {
	UserRepo     user.UserRepository
	SettingsRepo settings.SettingsRepository
	LeadRepo     lead.LeadRepository
	ClientRepo   client.ClientRepository
	DealRepo     deal.DealRepository
	ActivityRepo activity.ActivityRepository
}

func NewExportService(
	userRepo user.UserRepository,
	settingsRepo settings.SettingsRepository,
	leadRepo lead.LeadRepository,
	clientRepo client.ClientRepository,
	dealRepo deal.DealRepository,
	activityRepo activity.ActivityRepository,
) ExportService {
	return &ExportServiceImpl{
		UserRepo:     userRepo,
		SettingsRepo: settingsRepo,
		LeadRepo:     leadRepo,
		ClientRepo:   clientRepo,
		DealRepo:     dealRepo,
		ActivityRepo: activityRepo,
	}
}

func (s *ExportServiceImpl) BuildDocument(ctx context.Context, ownerID string) (*Document, error) {
	doc := &Document{
		ExportDate: time.Now().Format(time.RFC3339),
		User:       UserInfo{ID: ownerID},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		usr, err := s.UserRepo.FindByID(gctx, ownerID)
		if err != nil {
			// Dev-mode owners have no user record; export the data anyway.
			return nil
		}
		doc.User.Email = usr.Email
		doc.User.DisplayName = usr.DisplayName
		return nil
	})
	g.Go(func() (err error) {
		doc.Settings, err = s.SettingsRepo.GetByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		doc.Data.Leads, err = s.LeadRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		doc.Data.Clients, err = s.ClientRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		doc.Data.Deals, err = s.DealRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		doc.Data.Activities, err = s.ActivityRepo.ListByOwner(gctx, ownerID, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc.Statistics = BuildStatistics(doc.Data)
	return doc, nil
}

// BuildStatistics derives the summary block from the exported data, so
// the counts in the file always match its contents.
func BuildStatistics(data DataSection) Statistics {
	stats := Statistics{
		TotalLeads:      len(data.Leads),
		TotalClients:    len(data.Clients),
		TotalDeals:      len(data.Deals),
		TotalActivities: len(data.Activities),
	}
	for _, d := range data.Deals {
		stats.TotalDealValue += d.Value
	}
	return stats
}

// FileName builds the download name for a given format extension,
// stamped with the export day.
func FileName(ext string, now time.Time) string {
	return fmt.Sprintf("crm-export-%s.%s", now.Format("2006-01-02"), ext)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func formatID(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}
