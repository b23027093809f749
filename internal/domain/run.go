package domain

import "time"

// ScheduleRun is one persisted execution of the schedule pipeline, along
// with the configuration that produced it. Items are stored separately and
// joined by run ID.
type ScheduleRun struct {
	ID                  string
	GeneratedAt         time.Time
	Rate                float64
	PlaceholderResource string
	ItemCount           int
	ScheduledCount      int
	WarningCount        int
	CreatedAt           time.Time
}
