package service

import (
	"context"

	"github.com/alexanderramin/linework/internal/contract"
	"github.com/alexanderramin/linework/internal/scheduler"
)

// ScheduleService runs the full pipeline: record validation, quantity
// allocation, timeline building, and (optionally) run persistence.
type ScheduleService interface {
	BuildSchedule(ctx context.Context, cfg scheduler.Config, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
}

// RunService exposes the saved run history.
type RunService interface {
	List(ctx context.Context, limit int) ([]contract.RunSummary, error)
	Get(ctx context.Context, id string) (*contract.RunDetail, error)
	Delete(ctx context.Context, id string) error
}
