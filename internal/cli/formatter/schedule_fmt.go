package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/linework/internal/contract"
)

// maxBarDays caps the timeline bar so one long job cannot blow up the layout.
const maxBarDays = 30

// FormatSchedule renders the full schedule grouped by resource, followed by
// diagnostics and a summary line.
func FormatSchedule(resp *contract.ScheduleResponse) string {
	var b strings.Builder

	b.WriteString(Header("Crew Schedule"))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("run %s · generated %s · rate %.2f units/day",
		resp.RunID, resp.GeneratedAt.Format("2006-01-02"), resp.Rate)))
	b.WriteString("\n\n")

	byResource := make(map[string][]contract.ScheduledItem)
	var order []string
	for _, it := range resp.Items {
		if _, seen := byResource[it.Resource]; !seen {
			order = append(order, it.Resource)
		}
		byResource[it.Resource] = append(byResource[it.Resource], it)
	}

	for _, resource := range order {
		b.WriteString(Bold(resource))
		b.WriteString("\n")
		b.WriteString(RenderTable(
			[]string{"PLACE", "SCOPE", "PHASE", "REQUEST", "QTY", "DAYS", "START", "END", ""},
			itemRows(byResource[resource]),
		))
		b.WriteString("\n")
	}

	if len(resp.Diagnostics) > 0 {
		b.WriteString(Header("Diagnostics"))
		b.WriteString("\n")
		for _, d := range resp.Diagnostics {
			b.WriteString(fmt.Sprintf("%s  %s  %s\n", SeverityIndicator(d.Severity), Dim(string(d.Code)), d.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString(Dim(fmt.Sprintf("%d item(s) · %d scheduled · %d warning(s)",
		len(resp.Items), resp.ScheduledCount(), resp.WarningCount())))
	b.WriteString("\n")

	return b.String()
}

// itemRows builds table rows for scheduled items, shared with the run views.
func itemRows(items []contract.ScheduledItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		start, end := Dim("—"), Dim("—")
		if it.Start != nil {
			start = *it.Start
		}
		if it.End != nil {
			end = *it.End
		}
		rows = append(rows, []string{
			strconv.Itoa(it.Placement),
			it.ScopeID,
			it.PhaseID,
			it.RequestID,
			formatQuantity(it.Quantity),
			strconv.Itoa(it.DurationDays),
			start,
			end,
			timelineBar(it.DurationDays),
		})
	}
	return rows
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// timelineBar draws a proportional bar for a duration, one cell per day.
func timelineBar(days int) string {
	if days <= 0 {
		return ""
	}
	if days > maxBarDays {
		return StyleBlue.Render(strings.Repeat("█", maxBarDays) + "…")
	}
	return StyleBlue.Render(strings.Repeat("█", days))
}
