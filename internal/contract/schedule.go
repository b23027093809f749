package contract

import "time"

// RecordInput is one raw work request row as supplied by an aggregation
// adapter. Optional fields left empty or nil are defaulted by the engine.
type RecordInput struct {
	ScopeID   string   `json:"scope_id"`
	PhaseID   string   `json:"phase_id"`
	RequestID string   `json:"request_id"`
	Resource  string   `json:"resource,omitempty"`
	Placement *int     `json:"placement,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
}

// ScopeTotalInput is the authoritative quantity total for one scope.
type ScopeTotalInput struct {
	ScopeID       string  `json:"scope_id"`
	TotalQuantity float64 `json:"total_quantity"`
}

// ScheduleRequest carries everything one pipeline run consumes. Now is the
// scheduling origin; nil means the wall clock at invocation. Persist saves
// the run to the local database after a successful build.
type ScheduleRequest struct {
	Records     []RecordInput
	ScopeTotals []ScopeTotalInput
	Now         *time.Time
	Persist     bool
}

// ScheduledItem is one fully resolved work request in the response.
// Start and End are YYYY-MM-DD; both are nil for zero-quantity items.
type ScheduledItem struct {
	ScopeID      string  `json:"scope_id"`
	PhaseID      string  `json:"phase_id"`
	RequestID    string  `json:"request_id"`
	Resource     string  `json:"resource"`
	Placement    int     `json:"placement"`
	Quantity     float64 `json:"quantity"`
	DurationDays int     `json:"duration_days"`
	Start        *string `json:"start,omitempty"`
	End          *string `json:"end,omitempty"`
}

// ScheduleResponse is the full outcome of one pipeline run.
type ScheduleResponse struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Rate        float64         `json:"rate"`
	Items       []ScheduledItem `json:"items"`
	Diagnostics []Diagnostic    `json:"diagnostics,omitempty"`
	Saved       bool            `json:"saved,omitempty"`
}

// WarningCount returns the number of warning-level diagnostics.
func (r *ScheduleResponse) WarningCount() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// ScheduledCount returns the number of items that received dates.
func (r *ScheduleResponse) ScheduledCount() int {
	n := 0
	for _, it := range r.Items {
		if it.Start != nil {
			n++
		}
	}
	return n
}
