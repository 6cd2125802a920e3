package export

import (
	"bytes"
	"testing"
	"time"

	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildStatisticsEmpty(t *testing.T) {
	stats := BuildStatistics(DataSection{})

	assert.Zero(t, stats.TotalLeads)
	assert.Zero(t, stats.TotalClients)
	assert.Zero(t, stats.TotalDeals)
	assert.Zero(t, stats.TotalActivities)
	assert.Zero(t, stats.TotalDealValue)
}

func TestBuildStatistics(t *testing.T) {
	data := DataSection{
		Leads:   []lead.Lead{{Name: "Anna"}, {Name: "Boris"}},
		Clients: []client.Client{{Name: "Gregor"}},
		Deals: []deal.Deal{
			{Title: "A", Value: 1000},
			{Title: "B", Value: 250.5},
			{Title: "C", Value: 0},
		},
		Activities: []activity.Activity{{Type: activity.TypeCall}},
	}

	stats := BuildStatistics(data)
	assert.Equal(t, 2, stats.TotalLeads)
	assert.Equal(t, 1, stats.TotalClients)
	assert.Equal(t, 3, stats.TotalDeals)
	assert.Equal(t, 1, stats.TotalActivities)
	assert.Equal(t, 1250.5, stats.TotalDealValue)
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "crm-export-2026-03-15.json", FileName("json", now))
	assert.Equal(t, "crm-export-2026-03-15.xlsx", FileName("xlsx", now))
}

func TestRenderXLSX(t *testing.T) {
	lastContact := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	doc := &Document{
		ExportDate: time.Now().Format(time.RFC3339),
		User:       UserInfo{ID: "owner-1", Email: "demo@example.com"},
		Data: DataSection{
			Leads: []lead.Lead{
				{Name: "Anna", Email: "anna@example.com", Status: lead.StatusNew, Value: 100},
			},
			Clients: []client.Client{
				{Name: "Gregor", Status: client.StatusActive, LastContact: &lastContact},
			},
			Deals: []deal.Deal{
				{Title: "Renewal", Value: 1000, Stage: deal.StageClosedWon, Probability: 100},
			},
			Activities: []activity.Activity{
				{Type: activity.TypeCall, Title: "Intro call", CreatedAt: time.Now()},
			},
		},
	}
	doc.Statistics = BuildStatistics(doc.Data)

	service := &ExportServiceImpl{}
	payload, err := service.RenderXLSX(doc)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Leads", "Clients", "Deals", "Activities"}, f.GetSheetList())

	name, err := f.GetCellValue("Leads", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Anna", name)

	title, err := f.GetCellValue("Deals", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Renewal", title)
}

func TestRenderXLSXEmptyData(t *testing.T) {
	doc := &Document{User: UserInfo{ID: "owner-1"}}
	doc.Statistics = BuildStatistics(doc.Data)

	service := &ExportServiceImpl{}
	payload, err := service.RenderXLSX(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}
