package deal

import (
	"context"
	"testing"

	common_models "sales-crm/internal/common/models"
	"sales-crm/internal/features/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeDealRepo struct {
	records map[string]Deal
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{records: make(map[string]Deal)}
}

func (r *fakeDealRepo) ListByOwner(ctx context.Context, ownerID string) ([]Deal, error) {
	out := make([]Deal, 0)
	for _, d := range r.records {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDealRepo) FindByID(ctx context.Context, ownerID, id string) (*Deal, error) {
	d, ok := r.records[id]
	if !ok || d.OwnerID != ownerID {
		return nil, common_models.ErrNotFound
	}
	return &d, nil
}

func (r *fakeDealRepo) Create(ctx context.Context, record *Deal) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	r.records[record.ID.Hex()] = *record
	return nil
}

func (r *fakeDealRepo) Update(ctx context.Context, ownerID, id string, set bson.M) error {
	d, ok := r.records[id]
	if !ok || d.OwnerID != ownerID {
		return common_models.ErrNotFound
	}
	if v, ok := set["stage"].(DealStage); ok {
		d.Stage = v
	}
	if v, ok := set["stage"].(string); ok {
		d.Stage = DealStage(v)
	}
	r.records[id] = d
	return nil
}

func (r *fakeDealRepo) Delete(ctx context.Context, ownerID, id string) error {
	d, ok := r.records[id]
	if !ok || d.OwnerID != ownerID {
		return common_models.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeDealRepo) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	for id, d := range r.records {
		if d.OwnerID == ownerID {
			delete(r.records, id)
			n++
		}
	}
	return n, nil
}

type stageRecorder struct {
	descriptions []string
	types        []activity.ActivityType
}

func (f *stageRecorder) Record(ownerID string, activityType activity.ActivityType, description string, ref *common_models.EntityRef) {
	f.types = append(f.types, activityType)
	f.descriptions = append(f.descriptions, description)
}

func intPtr(v int) *int { return &v }

func TestDealDraftValidate(t *testing.T) {
	valid := DealDraft{Title: "Renewal", Value: 1000}

	tests := []struct {
		name    string
		mutate  func(*DealDraft)
		wantErr bool
	}{
		{"valid draft", func(d *DealDraft) {}, false},
		{"missing title", func(d *DealDraft) { d.Title = "" }, true},
		{"zero value", func(d *DealDraft) { d.Value = 0 }, true},
		{"negative value", func(d *DealDraft) { d.Value = -5 }, true},
		{"unknown stage", func(d *DealDraft) { d.Stage = "parked" }, true},
		{"known stage", func(d *DealDraft) { d.Stage = "negotiation" }, false},
		{"probability over 100", func(d *DealDraft) { d.Probability = intPtr(101) }, true},
		{"probability negative", func(d *DealDraft) { d.Probability = intPtr(-1) }, true},
		{"probability boundary", func(d *DealDraft) { d.Probability = intPtr(100) }, false},
		{"lead and client together", func(d *DealDraft) { d.LeadID = "l1"; d.ClientID = "c1" }, true},
		{"lead alone", func(d *DealDraft) { d.LeadID = "l1" }, false},
		{"client alone", func(d *DealDraft) { d.ClientID = "c1" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)
			err := draft.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDealServiceCreateDefaults(t *testing.T) {
	repo := newFakeDealRepo()
	service := NewDealService(repo, &stageRecorder{})

	created, err := service.Create(context.Background(), "owner-1", DealDraft{
		Title: "Renewal",
		Value: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, StageNew, created.Stage)
	assert.Equal(t, DefaultProbability, created.Probability)
}

func TestDealServiceCreateInvalidNeverStores(t *testing.T) {
	repo := newFakeDealRepo()
	service := NewDealService(repo, &stageRecorder{})

	_, err := service.Create(context.Background(), "owner-1", DealDraft{Title: "Free deal"})
	assert.Error(t, err)
	assert.Empty(t, repo.records)
}

func TestDealServiceChangeStage(t *testing.T) {
	repo := newFakeDealRepo()
	recorder := &stageRecorder{}
	service := NewDealService(repo, recorder)

	created, err := service.Create(context.Background(), "owner-1", DealDraft{
		Title: "Renewal",
		Value: 1000,
	})
	require.NoError(t, err)

	moved, err := service.ChangeStage(context.Background(), "owner-1", created.ID.Hex(), StageClosedWon)
	require.NoError(t, err)
	assert.Equal(t, StageClosedWon, moved.Stage)

	require.Len(t, recorder.types, 2)
	assert.Equal(t, activity.TypeDealStageChanged, recorder.types[1])
	assert.Equal(t, `Deal "Renewal" moved from new to closed_won`, recorder.descriptions[1])

	// Any move is allowed, including straight back out of a closed stage.
	reopened, err := service.ChangeStage(context.Background(), "owner-1", created.ID.Hex(), StageQualified)
	require.NoError(t, err)
	assert.Equal(t, StageQualified, reopened.Stage)
}

func TestDealServiceChangeStageRejectsUnknown(t *testing.T) {
	repo := newFakeDealRepo()
	service := NewDealService(repo, &stageRecorder{})

	created, err := service.Create(context.Background(), "owner-1", DealDraft{
		Title: "Renewal",
		Value: 1000,
	})
	require.NoError(t, err)

	_, err = service.ChangeStage(context.Background(), "owner-1", created.ID.Hex(), "parked")
	assert.Error(t, err)

	stored, err := service.Get(context.Background(), "owner-1", created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, StageNew, stored.Stage)
}

func TestDealServiceOwnerScoping(t *testing.T) {
	repo := newFakeDealRepo()
	service := NewDealService(repo, &stageRecorder{})

	created, err := service.Create(context.Background(), "owner-1", DealDraft{
		Title: "Renewal",
		Value: 1000,
	})
	require.NoError(t, err)

	_, err = service.ChangeStage(context.Background(), "owner-2", created.ID.Hex(), StageClosedWon)
	assert.ErrorIs(t, err, common_models.ErrNotFound)
}
