package scheduler

import (
	"sort"

	"github.com/alexanderramin/linework/internal/domain"
)

// SortByPlacement orders items for one resource's timeline: placement
// ascending, input order preserved for ties. Records without a placement
// carry the sentinel from construction, so they land after all explicitly
// placed work.
func SortByPlacement(items []*domain.WorkItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Placement < items[j].Placement
	})
}
