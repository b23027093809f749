package importer

import "github.com/alexanderramin/linework/internal/contract"

// ConvertPlanFile turns a validated plan file into a schedule request,
// joining phase actuals into work requests that do not carry a quantity of
// their own. A request's explicit quantity always wins over the actual.
// Call ValidatePlanFile first; Convert assumes the file is structurally
// sound.
func ConvertPlanFile(plan *PlanFile) contract.ScheduleRequest {
	actuals := make(map[string]float64, len(plan.PhaseActuals))
	for _, pa := range plan.PhaseActuals {
		actuals[phaseKey(pa.ScopeID, pa.PhaseID)] = pa.Quantity
	}

	records := make([]contract.RecordInput, 0, len(plan.WorkRequests))
	for _, wr := range plan.WorkRequests {
		quantity := wr.Quantity
		if quantity == nil {
			if q, ok := actuals[phaseKey(wr.ScopeID, wr.PhaseID)]; ok {
				v := q
				quantity = &v
			}
		}
		records = append(records, contract.RecordInput{
			ScopeID:   wr.ScopeID,
			PhaseID:   wr.PhaseID,
			RequestID: wr.RequestID,
			Resource:  wr.Resource,
			Placement: wr.Placement,
			Quantity:  quantity,
		})
	}

	totals := make([]contract.ScopeTotalInput, 0, len(plan.ScopeTotals))
	for _, st := range plan.ScopeTotals {
		totals = append(totals, contract.ScopeTotalInput{
			ScopeID:       st.ScopeID,
			TotalQuantity: st.TotalQuantity,
		})
	}

	return contract.ScheduleRequest{Records: records, ScopeTotals: totals}
}

func phaseKey(scopeID, phaseID string) string {
	return scopeID + "\x00" + phaseID
}
