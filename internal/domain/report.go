package domain

import "time"

type ImportEventLevel string

const (
	LevelInfo    ImportEventLevel = "info"
	LevelWarning ImportEventLevel = "warning"
	LevelError   ImportEventLevel = "error"
)

// ImportEvent is one append-only log entry from an import run. Events
// are never mutated or removed; insertion order is significant.
type ImportEvent struct {
	Level     ImportEventLevel `bson:"level" json:"level"`
	Message   string           `bson:"message" json:"message"`
	Timestamp time.Time        `bson:"timestamp" json:"timestamp"`
}

// ImportSummary carries the explicit creation counters the orchestrator
// tracks at the point of creation, independent of log message text.
type ImportSummary struct {
	RestaurantsProcessed int `bson:"restaurants_processed" json:"restaurants_processed"`
	MenusCreated         int `bson:"menus_created" json:"menus_created"`
	MenuItemsCreated     int `bson:"menu_items_created" json:"menu_items_created"`
	AssociationsCreated  int `bson:"associations_created" json:"associations_created"`
}

// ImportReport is the aggregated outcome of one import run. Reports are
// transient: built fresh per run, returned to the caller, not persisted
// except as part of an async task's result.
type ImportReport struct {
	RunID   string                   `bson:"run_id" json:"run_id"`
	Success bool                     `bson:"success" json:"success"`
	Counts  map[ImportEventLevel]int `bson:"counts" json:"counts"`
	Events  []ImportEvent            `bson:"events" json:"events"`
	Summary ImportSummary            `bson:"summary_data" json:"summary_data"`
	Elapsed time.Duration            `bson:"elapsed" json:"elapsed"`
}

// ImportResponse is the external response shape exposed to callers.
type ImportResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Results *ImportResults `json:"results"`
}

type ImportResults struct {
	RestaurantsProcessed int           `json:"restaurants_processed"`
	MenusCreated         int           `json:"menus_created"`
	MenuItemsCreated     int           `json:"menu_items_created"`
	AssociationsCreated  int           `json:"associations_created"`
	Errors               int           `json:"errors"`
	Warnings             int           `json:"warnings"`
	Logs                 []ImportEvent `json:"logs"`
}
