package scheduler

import (
	"time"

	"github.com/alexanderramin/linework/internal/domain"
)

// BuildTimeline assigns expected start and end dates to every item with a
// positive duration. Items are grouped by resource; each resource runs its
// own cursor forward from the reference time, one job after another, with
// no shared calendar between resources.
//
// Zero-duration items are skipped entirely: they receive no dates and do
// not move their resource's cursor.
//
// The placement order is an external priority and is respected exactly;
// the builder never reorders work to shorten a resource's makespan.
func BuildTimeline(items []*domain.WorkItem, cfg Config, now time.Time) {
	byResource := make(map[string][]*domain.WorkItem)
	var order []string
	for _, it := range items {
		if _, seen := byResource[it.Resource]; !seen {
			order = append(order, it.Resource)
		}
		byResource[it.Resource] = append(byResource[it.Resource], it)
	}

	origin := DateOf(now)
	for _, resource := range order {
		queue := byResource[resource]
		SortByPlacement(queue)

		cursor := origin
		for _, it := range queue {
			d := it.Duration(cfg.Rate)
			if d == 0 {
				continue
			}
			start := cursor
			end := cursor.AddDate(0, 0, d-1)
			it.Start = &start
			it.End = &end
			cursor = end.AddDate(0, 0, 1)
		}
	}
}

// DateOf truncates a timestamp to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
