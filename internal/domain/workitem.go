package domain

import (
	"math"
	"time"
)

// WorkItem is the unit of scheduling: one work request inside a phase of a
// scope, assigned to a single resource.
//
// Mutable fields are owned by pipeline stage: the allocator is the only
// writer of Quantity, the timeline builder the only writer of Start and End.
// Everything else is fixed at construction.
type WorkItem struct {
	ID        string
	ScopeID   string
	PhaseID   string
	RequestID string

	// Resource is never empty; records arriving without one get the
	// configured placeholder resource at construction.
	Resource string

	// Placement orders items within one resource's timeline. Records
	// without a placement carry the configured sentinel so they sort
	// after all explicitly placed work.
	Placement int

	// Quantity is nil until a value is known. The allocator fills every
	// nil entry, so after allocation it is always set (possibly to zero).
	Quantity *float64

	Start *time.Time
	End   *time.Time

	// Seq is the zero-based input position, kept for stable ordering and
	// persistence.
	Seq int
}

// NewWorkItem validates and builds a WorkItem from one input record.
// Resource and placement must already be defaulted by the caller.
func NewWorkItem(scopeID, phaseID, requestID, resource string, placement int, quantity *float64, seq int) (*WorkItem, error) {
	switch {
	case scopeID == "":
		return nil, &ValidationError{Field: "scope_id", Message: "is required"}
	case phaseID == "":
		return nil, &ValidationError{Field: "phase_id", Message: "is required"}
	case requestID == "":
		return nil, &ValidationError{Field: "request_id", Message: "is required"}
	}
	if quantity != nil && *quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Message: "must not be negative"}
	}

	return &WorkItem{
		ScopeID:   scopeID,
		PhaseID:   phaseID,
		RequestID: requestID,
		Resource:  resource,
		Placement: placement,
		Quantity:  quantity,
		Seq:       seq,
	}, nil
}

// Key uniquely identifies the work request within one run.
func (w *WorkItem) Key() string {
	return w.ScopeID + "/" + w.PhaseID + "/" + w.RequestID
}

// QuantityValue returns the quantity, or 0 when none has been assigned yet.
func (w *WorkItem) QuantityValue() float64 {
	if w.Quantity == nil {
		return 0
	}
	return *w.Quantity
}

// Duration returns the whole days of work at the given daily rate.
// Zero-quantity items have zero duration and are never scheduled.
func (w *WorkItem) Duration(rate float64) int {
	q := w.QuantityValue()
	if q <= 0 || rate <= 0 {
		return 0
	}
	return int(math.Ceil(q / rate))
}

// Scheduled reports whether the timeline builder assigned dates.
func (w *WorkItem) Scheduled() bool {
	return w.Start != nil && w.End != nil
}
