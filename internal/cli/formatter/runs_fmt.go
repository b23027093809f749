package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/linework/internal/contract"
)

// FormatRunList renders the saved-run history as a table.
func FormatRunList(runs []contract.RunSummary) string {
	var b strings.Builder
	b.WriteString(Header("Saved Runs"))
	b.WriteString("\n")

	if len(runs) == 0 {
		b.WriteString(Dim("no saved runs"))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.GeneratedAt.Format("2006-01-02"),
			fmt.Sprintf("%.2f", r.Rate),
			strconv.Itoa(r.ItemCount),
			strconv.Itoa(r.ScheduledCount),
			strconv.Itoa(r.WarningCount),
		})
	}
	b.WriteString(RenderTable(
		[]string{"RUN", "GENERATED", "RATE", "ITEMS", "SCHEDULED", "WARNINGS"},
		rows,
	))
	return b.String()
}

// FormatRunDetail renders one saved run with its scheduled items.
func FormatRunDetail(detail *contract.RunDetail) string {
	var b strings.Builder
	b.WriteString(Header("Run " + detail.Run.ID))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("generated %s · rate %.2f units/day · %d item(s) · %d warning(s)",
		detail.Run.GeneratedAt.Format("2006-01-02"), detail.Run.Rate,
		detail.Run.ItemCount, detail.Run.WarningCount)))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(
		[]string{"PLACE", "SCOPE", "PHASE", "REQUEST", "QTY", "DAYS", "START", "END", ""},
		itemRows(detail.Items),
	))
	return b.String()
}
