package testutil

import (
	"github.com/alexanderramin/linework/internal/contract"
	"github.com/alexanderramin/linework/internal/domain"
	"github.com/google/uuid"
)

// Record options
type RecordOption func(*contract.RecordInput)

func WithResource(name string) RecordOption {
	return func(r *contract.RecordInput) {
		r.Resource = name
	}
}

func WithPlacement(p int) RecordOption {
	return func(r *contract.RecordInput) {
		r.Placement = &p
	}
}

func WithQuantity(q float64) RecordOption {
	return func(r *contract.RecordInput) {
		r.Quantity = &q
	}
}

// NewRecord builds a raw input record for schedule pipeline tests.
func NewRecord(scopeID, phaseID, requestID string, opts ...RecordOption) contract.RecordInput {
	rec := contract.RecordInput{
		ScopeID:   scopeID,
		PhaseID:   phaseID,
		RequestID: requestID,
	}
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

// WorkItem options
type ItemOption func(*domain.WorkItem)

func WithItemResource(name string) ItemOption {
	return func(w *domain.WorkItem) {
		w.Resource = name
	}
}

func WithItemPlacement(p int) ItemOption {
	return func(w *domain.WorkItem) {
		w.Placement = p
	}
}

func WithItemQuantity(q float64) ItemOption {
	return func(w *domain.WorkItem) {
		w.Quantity = &q
	}
}

func WithItemSeq(seq int) ItemOption {
	return func(w *domain.WorkItem) {
		w.Seq = seq
	}
}

// NewTestItem builds a constructed WorkItem, defaulted the way the pipeline
// would: a concrete resource and the standard placement sentinel.
func NewTestItem(scopeID, phaseID, requestID string, opts ...ItemOption) *domain.WorkItem {
	w := &domain.WorkItem{
		ID:        uuid.New().String(),
		ScopeID:   scopeID,
		PhaseID:   phaseID,
		RequestID: requestID,
		Resource:  "Crew A",
		Placement: 9999,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
