package analytics

import "sales-crm/internal/features/deal"

// StageBreakdown is one row of the deals-per-stage chart.
type StageBreakdown struct {
	Stage deal.DealStage `json:"stage"`
	Count int            `json:"count"`
	Value float64        `json:"value"`
}

// CountBucket is a generic name/count pair for pie charts.
type CountBucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TimePoint is one calendar day of the trailing-window series.
type TimePoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD, local time
	Leads   int     `json:"leads"`
	Clients int     `json:"clients"`
	Deals   int     `json:"deals"`
	Revenue float64 `json:"revenue"` // value of won deals created that day
}

// Report is everything the analytics screen renders, computed in one
// pass over the owner's full record sets.
type Report struct {
	WindowDays       int     `json:"window_days"`
	TotalDeals       int     `json:"total_deals"`
	TotalDealValue   float64 `json:"total_deal_value"`
	WonValue         float64 `json:"won_value"`
	LostValue        float64 `json:"lost_value"`
	AverageDealValue float64 `json:"average_deal_value"`
	// WinRate and ConversionRate are percentages.
	WinRate        float64 `json:"win_rate"`
	ConversionRate float64 `json:"conversion_rate"`

	DealsByStage     []StageBreakdown `json:"deals_by_stage"`
	LeadsBySource    []CountBucket    `json:"leads_by_source"`
	LeadsByStatus    []CountBucket    `json:"leads_by_status"`
	ActivitiesByType []CountBucket    `json:"activities_by_type"`
	TimeSeries       []TimePoint      `json:"time_series"`
}
