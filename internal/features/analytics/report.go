package analytics

import (
	"sort"
	"time"

	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"
)

const dayKey = "2006-01-02"

// BuildReport derives every analytics figure from the full loaded
// sets. Pure function of its inputs; `now` anchors the trailing
// window so tests can pin it.
//
// Windowing quirks carried over from the original screen: the totals,
// win rate, conversion rate and stage breakdown respect the window,
// while the source/status/type breakdowns and the time series always
// look at the full sets.
func BuildReport(
	leads []lead.Lead,
	clients []client.Client,
	deals []deal.Deal,
	activities []activity.Activity,
	days int,
	now time.Time,
) *Report {
	cutoff := now.AddDate(0, 0, -days)

	windowDeals := make([]deal.Deal, 0, len(deals))
	for _, d := range deals {
		if !d.CreatedAt.Before(cutoff) {
			windowDeals = append(windowDeals, d)
		}
	}
	windowLeads := 0
	for _, l := range leads {
		if !l.CreatedAt.Before(cutoff) {
			windowLeads++
		}
	}
	windowClients := 0
	for _, c := range clients {
		if !c.CreatedAt.Before(cutoff) {
			windowClients++
		}
	}

	report := &Report{
		WindowDays: days,
		TotalDeals: len(windowDeals),
	}

	var wonCount, lostCount int
	for _, d := range windowDeals {
		report.TotalDealValue += d.Value
		switch d.Stage {
		case deal.StageClosedWon:
			wonCount++
			report.WonValue += d.Value
		case deal.StageClosedLost:
			lostCount++
			report.LostValue += d.Value
		}
	}

	if len(windowDeals) > 0 {
		report.AverageDealValue = report.TotalDealValue / float64(len(windowDeals))
	}
	// Win rate is defined as 0 when no deal has closed yet.
	if wonCount+lostCount > 0 {
		report.WinRate = float64(wonCount) / float64(wonCount+lostCount) * 100
	}
	// Not a true funnel: the counted clients are not proven to have
	// come from the counted leads.
	if windowLeads > 0 {
		report.ConversionRate = float64(windowClients) / float64(windowLeads) * 100
	}

	report.DealsByStage = dealsByStage(windowDeals)
	report.LeadsBySource = countBuckets(len(leads), func(i int) string { return leads[i].Source })
	report.LeadsByStatus = countBuckets(len(leads), func(i int) string { return string(leads[i].Status) })
	report.ActivitiesByType = countBuckets(len(activities), func(i int) string { return string(activities[i].Type) })
	report.TimeSeries = buildTimeSeries(leads, clients, deals, days, now)

	return report
}

func dealsByStage(deals []deal.Deal) []StageBreakdown {
	rows := make([]StageBreakdown, len(deal.StageOrder))
	index := make(map[deal.DealStage]int, len(deal.StageOrder))
	for i, stage := range deal.StageOrder {
		rows[i] = StageBreakdown{Stage: stage}
		index[stage] = i
	}
	for _, d := range deals {
		i, ok := index[d.Stage]
		if !ok {
			continue
		}
		rows[i].Count++
		rows[i].Value += d.Value
	}
	return rows
}

func countBuckets(n int, key func(int) string) []CountBucket {
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		k := key(i)
		if k == "" {
			k = "unknown"
		}
		counts[k]++
	}

	buckets := make([]CountBucket, 0, len(counts))
	for name, count := range counts {
		buckets = append(buckets, CountBucket{Name: name, Count: count})
	}
	// Deterministic order: biggest first, ties alphabetically.
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}

// buildTimeSeries walks every calendar day backward from today and
// emits exactly one point per day, oldest first, zero-filled.
func buildTimeSeries(
	leads []lead.Lead,
	clients []client.Client,
	deals []deal.Deal,
	days int,
	now time.Time,
) []TimePoint {
	type dayTotals struct {
		leads   int
		clients int
		deals   int
		revenue float64
	}
	totals := make(map[string]*dayTotals)
	at := func(key string) *dayTotals {
		t, ok := totals[key]
		if !ok {
			t = &dayTotals{}
			totals[key] = t
		}
		return t
	}

	for _, l := range leads {
		at(l.CreatedAt.Format(dayKey)).leads++
	}
	for _, c := range clients {
		at(c.CreatedAt.Format(dayKey)).clients++
	}
	for _, d := range deals {
		t := at(d.CreatedAt.Format(dayKey))
		t.deals++
		if d.Stage == deal.StageClosedWon {
			t.revenue += d.Value
		}
	}

	series := make([]TimePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := now.AddDate(0, 0, -i).Format(dayKey)
		point := TimePoint{Date: key}
		if t, ok := totals[key]; ok {
			point.Leads = t.leads
			point.Clients = t.clients
			point.Deals = t.deals
			point.Revenue = t.revenue
		}
		series = append(series, point)
	}
	return series
}
