package contract

import "time"

// RunSummary is the stored header of one saved schedule run.
type RunSummary struct {
	ID             string    `json:"id"`
	GeneratedAt    time.Time `json:"generated_at"`
	Rate           float64   `json:"rate"`
	ItemCount      int       `json:"item_count"`
	ScheduledCount int       `json:"scheduled_count"`
	WarningCount   int       `json:"warning_count"`
}

// RunDetail is a saved run together with its scheduled items.
type RunDetail struct {
	Run   RunSummary      `json:"run"`
	Items []ScheduledItem `json:"items"`
}
