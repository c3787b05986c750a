package calendar

import (
	"time"

	"canvascal/internal/fetcher"
)

// Day is one slot of a week bucket.
type Day struct {
	Name        string
	Assignments []fetcher.Assignment
}

// WeekBucket groups the assignments of one Monday-starting calendar week
// into exactly seven day slots, Monday through Sunday. Derived on every
// display call; never stored.
type WeekBucket struct {
	WeekStart time.Time
	Days      []Day
}

// GroupByWeek partitions an already-sorted assignment sequence into
// contiguous week buckets. Input must be sorted ascending by due time; week
// starts are then monotonic, so a single forward pass suffices: a new bucket
// opens whenever the computed week start changes.
func GroupByWeek(sorted []fetcher.Assignment) []WeekBucket {
	var buckets []WeekBucket

	for _, a := range sorted {
		ws := weekStart(a.DueAt)
		if len(buckets) == 0 || !ws.Equal(buckets[len(buckets)-1].WeekStart) {
			buckets = append(buckets, newBucket(ws))
		}
		bucket := &buckets[len(buckets)-1]
		idx := weekdayIndex(a.DueAt)
		bucket.Days[idx].Assignments = append(bucket.Days[idx].Assignments, a)
	}

	return buckets
}

func newBucket(ws time.Time) WeekBucket {
	bucket := WeekBucket{WeekStart: ws, Days: make([]Day, 7)}
	for i := range bucket.Days {
		bucket.Days[i].Name = ws.AddDate(0, 0, i).Weekday().String()
	}
	return bucket
}

// weekStart returns midnight of the Monday of t's week.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -weekdayIndex(t))
}

// weekdayIndex maps Monday..Sunday to 0..6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
