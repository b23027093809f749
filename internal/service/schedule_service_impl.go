package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/linework/internal/contract"
	"github.com/alexanderramin/linework/internal/db"
	"github.com/alexanderramin/linework/internal/domain"
	"github.com/alexanderramin/linework/internal/repository"
	"github.com/alexanderramin/linework/internal/scheduler"
	"github.com/google/uuid"
)

type scheduleService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewScheduleService creates the schedule pipeline service. uow may be nil
// when run persistence is not configured; requests with Persist set then
// fail explicitly instead of silently dropping the run.
func NewScheduleService(uow db.UnitOfWork, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) BuildSchedule(ctx context.Context, cfg scheduler.Config, req contract.ScheduleRequest) (resp *contract.ScheduleResponse, err error) {
	started := time.Now()
	defer func() {
		event := UseCaseEvent{
			Name:      "build_schedule",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			StartedAt: started,
		}
		if resp != nil {
			event.Fields = map[string]any{
				"items":       len(resp.Items),
				"diagnostics": len(resp.Diagnostics),
				"saved":       resp.Saved,
			}
		}
		s.observer.ObserveUseCase(ctx, event)
	}()

	// Configuration problems are the only fatal failure mode; nothing
	// partially computed is ever returned.
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}

	items, diags := buildItems(req.Records, cfg)

	totals := make(map[string]float64, len(req.ScopeTotals))
	for _, st := range req.ScopeTotals {
		totals[st.ScopeID] = st.TotalQuantity
	}

	diags = append(diags, scheduler.AllocateQuantities(items, totals)...)
	scheduler.BuildTimeline(items, cfg, now)

	resp = &contract.ScheduleResponse{
		RunID:       uuid.New().String(),
		GeneratedAt: now,
		Rate:        cfg.Rate,
		Items:       toScheduledItems(items, cfg.Rate),
		Diagnostics: diags,
	}

	if req.Persist {
		if err = s.saveRun(ctx, cfg, resp, items); err != nil {
			return nil, fmt.Errorf("saving run: %w", err)
		}
		resp.Saved = true
	}

	return resp, nil
}

// buildItems constructs WorkItems from raw records, applying the configured
// defaults and collecting warnings for records that cannot participate.
func buildItems(records []contract.RecordInput, cfg scheduler.Config) ([]*domain.WorkItem, []contract.Diagnostic) {
	items := make([]*domain.WorkItem, 0, len(records))
	var diags []contract.Diagnostic
	seen := make(map[string]bool, len(records))

	for i, rec := range records {
		resource := domain.CoalesceStr(rec.Resource, cfg.PlaceholderResource)
		placement := domain.IntFromPtrWithDefault(cfg.PlacementSentinel, rec.Placement)

		item, err := domain.NewWorkItem(rec.ScopeID, rec.PhaseID, rec.RequestID, resource, placement, rec.Quantity, i)
		if err != nil {
			diags = append(diags, contract.Diagnostic{
				Severity:  contract.SeverityWarning,
				Code:      contract.DiagRecordInvalid,
				ScopeID:   rec.ScopeID,
				PhaseID:   rec.PhaseID,
				RequestID: rec.RequestID,
				Message:   fmt.Sprintf("record %d excluded: %v", i, err),
			})
			continue
		}

		if seen[item.Key()] {
			diags = append(diags, contract.Diagnostic{
				Severity:  contract.SeverityWarning,
				Code:      contract.DiagDuplicateRecord,
				ScopeID:   item.ScopeID,
				PhaseID:   item.PhaseID,
				RequestID: item.RequestID,
				Message:   fmt.Sprintf("record %d repeats %s; first record wins", i, item.Key()),
			})
			continue
		}
		seen[item.Key()] = true

		item.ID = uuid.New().String()
		items = append(items, item)
	}

	return items, diags
}

func (s *scheduleService) saveRun(ctx context.Context, cfg scheduler.Config, resp *contract.ScheduleResponse, items []*domain.WorkItem) error {
	if s.uow == nil {
		return fmt.Errorf("run persistence is not configured")
	}

	run := &domain.ScheduleRun{
		ID:                  resp.RunID,
		GeneratedAt:         resp.GeneratedAt,
		Rate:                cfg.Rate,
		PlaceholderResource: cfg.PlaceholderResource,
		ItemCount:           len(items),
		ScheduledCount:      resp.ScheduledCount(),
		WarningCount:        resp.WarningCount(),
		CreatedAt:           time.Now().UTC(),
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteRunRepo(tx)
		if err := repo.CreateRun(ctx, run); err != nil {
			return err
		}
		for _, it := range items {
			if err := repo.CreateItem(ctx, run.ID, it); err != nil {
				return err
			}
		}
		return nil
	})
}

func toScheduledItems(items []*domain.WorkItem, rate float64) []contract.ScheduledItem {
	out := make([]contract.ScheduledItem, 0, len(items))
	for _, it := range items {
		out = append(out, contract.ScheduledItem{
			ScopeID:      it.ScopeID,
			PhaseID:      it.PhaseID,
			RequestID:    it.RequestID,
			Resource:     it.Resource,
			Placement:    it.Placement,
			Quantity:     it.QuantityValue(),
			DurationDays: it.Duration(rate),
			Start:        formatDate(it.Start),
			End:          formatDate(it.End),
		})
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
