package contract

// Severity classifies a diagnostic. Nothing at warning level stops a run;
// the response carries diagnostics next to the schedule (partial success).
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

type DiagnosticCode string

const (
	// DiagRecordInvalid: a record is missing a required identifier or
	// carries a negative quantity. The record is excluded from the run.
	DiagRecordInvalid DiagnosticCode = "RECORD_INVALID"
	// DiagDuplicateRecord: a later record repeats an earlier record's
	// (scope, phase, request) key. The first record wins.
	DiagDuplicateRecord DiagnosticCode = "DUPLICATE_RECORD"
	// DiagAllocationGap: a scope has no usable total on record, so its
	// unknown quantities stay at zero and the items go unscheduled.
	DiagAllocationGap DiagnosticCode = "ALLOCATION_GAP"
)

// Diagnostic is a per-record or per-scope condition reported alongside a
// successful schedule.
type Diagnostic struct {
	Severity  Severity       `json:"severity"`
	Code      DiagnosticCode `json:"code"`
	ScopeID   string         `json:"scope_id,omitempty"`
	PhaseID   string         `json:"phase_id,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Message   string         `json:"message"`
}
