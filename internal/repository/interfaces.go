package repository

import (
	"context"

	"github.com/alexanderramin/linework/internal/domain"
)

// RunRepo persists schedule runs and their scheduled items. Implementations
// are constructed over a db.DBTX so the same code serves both direct access
// and transactional composition through a unit of work.
type RunRepo interface {
	CreateRun(ctx context.Context, run *domain.ScheduleRun) error
	CreateItem(ctx context.Context, runID string, item *domain.WorkItem) error
	GetRun(ctx context.Context, id string) (*domain.ScheduleRun, error)
	ListRuns(ctx context.Context, limit int) ([]*domain.ScheduleRun, error)
	ListItems(ctx context.Context, runID string) ([]*domain.WorkItem, error)
	DeleteRun(ctx context.Context, id string) error
}
