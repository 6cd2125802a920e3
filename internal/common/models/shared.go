package models

import "errors"

// ErrNotFound is returned by repositories when an id does not resolve
// to a record owned by the requesting user.
var ErrNotFound = errors.New("record not found")

// Entity types referenced by activity log entries.
type EntityType string

const (
	EntityTypeLead   EntityType = "lead"
	EntityTypeClient EntityType = "client"
	EntityTypeDeal   EntityType = "deal"
)

// EntityRef points an activity entry at the record that triggered it.
type EntityRef struct {
	EntityType EntityType `bson:"entity_type" json:"entity_type"`
	EntityID   string     `bson:"entity_id" json:"entity_id"`
}

// Sentinel value that disables a categorical filter.
const FilterAll = "all"

// Trailing windows selectable on the analytics screen, in days.
var AnalyticsWindows = []int{7, 30, 90, 365}
