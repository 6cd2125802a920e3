package analytics

import (
	"testing"
	"time"

	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return reportNow.AddDate(0, 0, -n)
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil, nil, nil, nil, 30, reportNow)

	assert.Equal(t, 30, report.WindowDays)
	assert.Zero(t, report.TotalDeals)
	assert.Zero(t, report.TotalDealValue)
	assert.Zero(t, report.AverageDealValue)
	assert.Zero(t, report.WinRate)
	assert.Zero(t, report.ConversionRate)
	assert.Len(t, report.DealsByStage, len(deal.StageOrder))
	assert.Empty(t, report.LeadsBySource)
	assert.Len(t, report.TimeSeries, 30)
}

// Win rate only counts closed deals; with none closed it stays 0
// rather than dividing by zero.
func TestBuildReportWinRate(t *testing.T) {
	openOnly := []deal.Deal{
		{Stage: deal.StageNew, Value: 100, CreatedAt: daysAgo(1)},
		{Stage: deal.StageProposal, Value: 200, CreatedAt: daysAgo(2)},
	}
	report := BuildReport(nil, nil, openOnly, nil, 30, reportNow)
	assert.Zero(t, report.WinRate)

	closed := []deal.Deal{
		{Stage: deal.StageClosedWon, Value: 300, CreatedAt: daysAgo(1)},
		{Stage: deal.StageClosedWon, Value: 100, CreatedAt: daysAgo(2)},
		{Stage: deal.StageClosedLost, Value: 500, CreatedAt: daysAgo(3)},
		{Stage: deal.StageNew, Value: 50, CreatedAt: daysAgo(4)},
	}
	report = BuildReport(nil, nil, closed, nil, 30, reportNow)
	assert.InDelta(t, 66.666, report.WinRate, 0.01)
	assert.Equal(t, 400.0, report.WonValue)
	assert.Equal(t, 500.0, report.LostValue)
	assert.Equal(t, 950.0, report.TotalDealValue)
	assert.InDelta(t, 237.5, report.AverageDealValue, 0.001)
}

// Deal totals respect the trailing window; an old deal drops out.
func TestBuildReportWindowing(t *testing.T) {
	deals := []deal.Deal{
		{Stage: deal.StageClosedWon, Value: 100, CreatedAt: daysAgo(5)},
		{Stage: deal.StageClosedWon, Value: 900, CreatedAt: daysAgo(45)},
	}
	report := BuildReport(nil, nil, deals, nil, 30, reportNow)

	assert.Equal(t, 1, report.TotalDeals)
	assert.Equal(t, 100.0, report.TotalDealValue)
	assert.Equal(t, 100.0, report.WinRate)
}

func TestBuildReportConversionRate(t *testing.T) {
	leads := []lead.Lead{
		{CreatedAt: daysAgo(1)},
		{CreatedAt: daysAgo(2)},
		{CreatedAt: daysAgo(3)},
		{CreatedAt: daysAgo(4)},
	}
	clients := []client.Client{
		{CreatedAt: daysAgo(1)},
	}
	report := BuildReport(leads, clients, nil, nil, 30, reportNow)
	assert.Equal(t, 25.0, report.ConversionRate)

	// No leads in the window: rate stays 0.
	report = BuildReport(nil, clients, nil, nil, 30, reportNow)
	assert.Zero(t, report.ConversionRate)
}

func TestBuildReportTimeSeries(t *testing.T) {
	leads := []lead.Lead{
		{CreatedAt: daysAgo(0)},
		{CreatedAt: daysAgo(0)},
		{CreatedAt: daysAgo(3)},
	}
	deals := []deal.Deal{
		{Stage: deal.StageClosedWon, Value: 500, CreatedAt: daysAgo(3)},
		{Stage: deal.StageNew, Value: 100, CreatedAt: daysAgo(3)},
	}

	report := BuildReport(leads, nil, deals, nil, 7, reportNow)
	series := report.TimeSeries
	require.Len(t, series, 7)

	// Oldest first, one point per calendar day, newest is today.
	assert.Equal(t, daysAgo(6).Format("2006-01-02"), series[0].Date)
	assert.Equal(t, reportNow.Format("2006-01-02"), series[6].Date)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
	}

	today := series[6]
	assert.Equal(t, 2, today.Leads)

	threeBack := series[3]
	assert.Equal(t, 1, threeBack.Leads)
	assert.Equal(t, 2, threeBack.Deals)
	// Only the won deal counts as revenue.
	assert.Equal(t, 500.0, threeBack.Revenue)

	// Untouched days are zero-filled, not missing.
	assert.Zero(t, series[1].Leads)
	assert.Zero(t, series[1].Revenue)
}

func TestBuildReportBreakdownOrdering(t *testing.T) {
	leads := []lead.Lead{
		{Source: "website", CreatedAt: daysAgo(1)},
		{Source: "website", CreatedAt: daysAgo(2)},
		{Source: "referral", CreatedAt: daysAgo(3)},
		{Source: "", CreatedAt: daysAgo(4)},
	}
	report := BuildReport(leads, nil, nil, nil, 30, reportNow)

	require.Len(t, report.LeadsBySource, 3)
	assert.Equal(t, CountBucket{Name: "website", Count: 2}, report.LeadsBySource[0])
	// Ties break alphabetically.
	assert.Equal(t, CountBucket{Name: "referral", Count: 1}, report.LeadsBySource[1])
	assert.Equal(t, CountBucket{Name: "unknown", Count: 1}, report.LeadsBySource[2])
}

func TestBuildReportActivityBreakdown(t *testing.T) {
	activities := []activity.Activity{
		{Type: activity.TypeCall},
		{Type: activity.TypeCall},
		{Type: activity.TypeLeadCreated},
	}
	report := BuildReport(nil, nil, nil, activities, 30, reportNow)

	require.Len(t, report.ActivitiesByType, 2)
	assert.Equal(t, CountBucket{Name: "call", Count: 2}, report.ActivitiesByType[0])
}

func TestValidWindow(t *testing.T) {
	assert.True(t, validWindow(7))
	assert.True(t, validWindow(30))
	assert.True(t, validWindow(90))
	assert.True(t, validWindow(365))
	assert.False(t, validWindow(0))
	assert.False(t, validWindow(14))
	assert.False(t, validWindow(-30))
}
