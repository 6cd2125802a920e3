package export

import (
	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"
	"sales-crm/internal/features/settings"
)

// Document is the full account snapshot a user downloads from the
// settings screen. The JSON and XLSX exporters both render it.
type Document struct {
	ExportDate string                 `json:"export_date"`
	User       UserInfo               `json:"user"`
	Settings   *settings.UserSettings `json:"settings,omitempty"`
	Data       DataSection            `json:"data"`
	Statistics Statistics             `json:"statistics"`
}

type UserInfo struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

type DataSection struct {
	Leads      []lead.Lead         `json:"leads"`
	Clients    []client.Client     `json:"clients"`
	Deals      []deal.Deal         `json:"deals"`
	Activities []activity.Activity `json:"activities"`
}

type Statistics struct {
	TotalLeads      int     `json:"total_leads"`
	TotalClients    int     `json:"total_clients"`
	TotalDeals      int     `json:"total_deals"`
	TotalActivities int     `json:"total_activities"`
	TotalDealValue  float64 `json:"total_deal_value"`
}
