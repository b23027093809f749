package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlanFile is the JSON aggregation format: one file standing in for the
// three source sheets a schedule is assembled from.
type PlanFile struct {
	ScopeTotals  []ScopeTotalRow  `json:"scope_totals"`
	PhaseActuals []PhaseActualRow `json:"phase_actuals,omitempty"`
	WorkRequests []WorkRequestRow `json:"work_requests"`
}

// ScopeTotalRow is the authoritative quantity total for one scope.
type ScopeTotalRow struct {
	ScopeID       string  `json:"scope_id"`
	TotalQuantity float64 `json:"total_quantity"`
}

// PhaseActualRow is a known quantity for one (scope, phase) pair. It feeds
// work requests that do not carry their own quantity; anything still
// unknown afterwards is filled by allocation.
type PhaseActualRow struct {
	ScopeID  string  `json:"scope_id"`
	PhaseID  string  `json:"phase_id"`
	Quantity float64 `json:"quantity"`
}

// WorkRequestRow is one schedulable row of the target sheet.
type WorkRequestRow struct {
	ScopeID   string   `json:"scope_id"`
	PhaseID   string   `json:"phase_id"`
	RequestID string   `json:"request_id"`
	Resource  string   `json:"resource,omitempty"`
	Placement *int     `json:"placement,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
}

// LoadPlanFile reads and parses a plan JSON file.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan PlanFile
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &plan, nil
}
