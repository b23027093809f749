package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/linework/internal/contract"
	"github.com/alexanderramin/linework/internal/domain"
)

// AllocateQuantities fills in every unknown quantity by splitting each
// scope's unallocated remainder evenly across that scope's unknown items.
// Items whose scope has no usable total are left at zero quantity and a
// warning diagnostic is reported for the scope.
//
// The share is ceil(remainder / unknown-count) for every item, so a scope
// can end up slightly over its total when the remainder does not divide
// evenly. That bias is deliberate: a job must never look finished just
// because rounding swallowed its share.
//
// Scopes are independent of each other and the operation is idempotent:
// once every item carries a quantity there is nothing left to assign.
func AllocateQuantities(items []*domain.WorkItem, totals map[string]float64) []contract.Diagnostic {
	byScope := make(map[string][]*domain.WorkItem)
	var order []string
	for _, it := range items {
		if _, seen := byScope[it.ScopeID]; !seen {
			order = append(order, it.ScopeID)
		}
		byScope[it.ScopeID] = append(byScope[it.ScopeID], it)
	}

	var diags []contract.Diagnostic
	for _, scopeID := range order {
		var assignedSum float64
		var unassigned []*domain.WorkItem
		for _, it := range byScope[scopeID] {
			if it.Quantity != nil {
				assignedSum += *it.Quantity
			} else {
				unassigned = append(unassigned, it)
			}
		}
		if len(unassigned) == 0 {
			continue
		}

		total, ok := totals[scopeID]
		if !ok || total <= 0 {
			zeroFill(unassigned)
			diags = append(diags, contract.Diagnostic{
				Severity: contract.SeverityWarning,
				Code:     contract.DiagAllocationGap,
				ScopeID:  scopeID,
				Message:  fmt.Sprintf("scope %q has no usable total; %d item(s) left at zero quantity", scopeID, len(unassigned)),
			})
			continue
		}

		remainder := total - assignedSum
		if remainder <= 0 {
			// Known quantities already meet or exceed the scope total.
			zeroFill(unassigned)
			continue
		}

		share := math.Ceil(remainder / float64(len(unassigned)))
		for _, it := range unassigned {
			s := share
			it.Quantity = &s
		}
	}

	return diags
}

func zeroFill(items []*domain.WorkItem) {
	for _, it := range items {
		zero := 0.0
		it.Quantity = &zero
	}
}
