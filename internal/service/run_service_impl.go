package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/linework/internal/contract"
	"github.com/alexanderramin/linework/internal/domain"
	"github.com/alexanderramin/linework/internal/repository"
)

type runService struct {
	runs repository.RunRepo
}

// NewRunService creates the run-history service over the given repository.
func NewRunService(runs repository.RunRepo) RunService {
	return &runService{runs: runs}
}

func (s *runService) List(ctx context.Context, limit int) ([]contract.RunSummary, error) {
	runs, err := s.runs.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	out := make([]contract.RunSummary, 0, len(runs))
	for _, r := range runs {
		out = append(out, toRunSummary(r))
	}
	return out, nil
}

func (s *runService) Get(ctx context.Context, id string) (*contract.RunDetail, error) {
	run, err := s.runs.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.runs.ListItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading items for run %s: %w", id, err)
	}
	return &contract.RunDetail{
		Run:   toRunSummary(run),
		Items: toScheduledItems(items, run.Rate),
	}, nil
}

func (s *runService) Delete(ctx context.Context, id string) error {
	return s.runs.DeleteRun(ctx, id)
}

func toRunSummary(r *domain.ScheduleRun) contract.RunSummary {
	return contract.RunSummary{
		ID:             r.ID,
		GeneratedAt:    r.GeneratedAt,
		Rate:           r.Rate,
		ItemCount:      r.ItemCount,
		ScheduledCount: r.ScheduledCount,
		WarningCount:   r.WarningCount,
	}
}
