package statements

import (
	"sort"
	"strings"
)

// FilterByDate returns the items whose date falls on the given calendar day.
// Comparison is by civil date component only. The returned slice is a new
// view; the collection is never modified.
func FilterByDate(items []Item, day string) []Item {
	day = normalizeDay(day)
	var result []Item
	for _, item := range items {
		if normalizeDay(item.Date) == day {
			result = append(result, item)
		}
	}
	return result
}

// SortItems returns a sorted copy of the items. Newest and oldest order by
// CreatedAt, alphabetical orders case-insensitively by text, and completed
// groups completed items after incomplete ones while otherwise preserving
// the prior ordering. An unknown order returns an unsorted copy.
func SortItems(items []Item, order SortOption) []Item {
	result := make([]Item, len(items))
	copy(result, items)

	switch order {
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	case SortAlphabetical:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Text) < strings.ToLower(result[j].Text)
		})
	case SortCompleted:
		sort.SliceStable(result, func(i, j int) bool {
			return !result[i].Completed && result[j].Completed
		})
	}
	return result
}

// SplitTimeline partitions a day's items into the activity feed (current and
// future items) and the log feed (past items). Both slices are views; the
// input is never modified.
func SplitTimeline(items []Item) (activity, log []Item) {
	for _, item := range items {
		if item.EffectiveTimeline() == TimelinePast {
			log = append(log, item)
		} else {
			activity = append(activity, item)
		}
	}
	return activity, log
}
