package importer

import "fmt"

// ValidatePlanFile checks the plan file for structural errors before
// conversion. Returns a slice of all errors found.
//
// Work request rows are deliberately not checked here: per-record problems
// (missing identifiers, negative quantities) are handled leniently by the
// schedule pipeline, which drops the record and reports a warning instead
// of failing the whole file.
func ValidatePlanFile(plan *PlanFile) []error {
	var errs []error

	seenScopes := make(map[string]bool)
	for i, st := range plan.ScopeTotals {
		prefix := fmt.Sprintf("scope_totals[%d]", i)
		if st.ScopeID == "" {
			errs = append(errs, fmt.Errorf("%s.scope_id is required", prefix))
		} else if seenScopes[st.ScopeID] {
			errs = append(errs, fmt.Errorf("%s.scope_id: duplicate scope %q", prefix, st.ScopeID))
		} else {
			seenScopes[st.ScopeID] = true
		}
		if st.TotalQuantity < 0 {
			errs = append(errs, fmt.Errorf("%s.total_quantity must not be negative, got %v", prefix, st.TotalQuantity))
		}
	}

	seenPhases := make(map[string]bool)
	for i, pa := range plan.PhaseActuals {
		prefix := fmt.Sprintf("phase_actuals[%d]", i)
		if pa.ScopeID == "" {
			errs = append(errs, fmt.Errorf("%s.scope_id is required", prefix))
		}
		if pa.PhaseID == "" {
			errs = append(errs, fmt.Errorf("%s.phase_id is required", prefix))
		}
		if pa.ScopeID != "" && pa.PhaseID != "" {
			key := phaseKey(pa.ScopeID, pa.PhaseID)
			if seenPhases[key] {
				errs = append(errs, fmt.Errorf("%s: duplicate actual for scope %q phase %q", prefix, pa.ScopeID, pa.PhaseID))
			} else {
				seenPhases[key] = true
			}
		}
		if pa.Quantity < 0 {
			errs = append(errs, fmt.Errorf("%s.quantity must not be negative, got %v", prefix, pa.Quantity))
		}
	}

	if len(plan.WorkRequests) == 0 {
		errs = append(errs, fmt.Errorf("work_requests must not be empty"))
	}

	return errs
}
