package statements

import (
	"time"

	"github.com/deepnoodle-ai/statements/dates"
	"github.com/deepnoodle-ai/statements/slogger"
)

// ApplyContext carries the interaction context an action batch is applied
// under.
type ApplyContext struct {
	// SelectedDate is the currently selected day (YYYY-MM-DD). It is the
	// default date for additions and the scope for clear actions.
	SelectedDate string

	// RawText is the user's verbatim input, used as the item text when an
	// add action omits its own.
	RawText string

	// Now stamps CreatedAt on new items. Zero means time.Now().
	Now time.Time

	// Logger receives per-action debug logs. Nil means no logging.
	Logger slogger.Logger
}

// Result is the outcome of applying a batch.
type Result struct {
	// Items is the new collection. The input collection is never mutated.
	Items []Item

	// SortBy is the display ordering preference declared by the last sort
	// action in the batch, or empty if the batch declared none.
	SortBy SortOption
}

// Apply reconciles an action batch into a collection and returns the new
// collection. It is pure with respect to its inputs: the given slice is
// copied, not modified, and no state is retained between calls.
//
// The classifier's output is untrusted. Every structural rule is enforced
// here regardless of what the prompt instructed: actions with missing
// required-in-practice fields, unknown ids, or unknown enum values are
// silently skipped. Partial progress is preferred over batch atomicity, so
// Apply never fails.
//
// TodoID lookups resolve against the pre-batch snapshot only. Items added
// earlier in the same batch cannot be targeted by later actions; their ids
// were not known to the classifier when it emitted the batch.
func Apply(items []Item, batch Batch, apctx ApplyContext) Result {
	logger := apctx.Logger
	if logger == nil {
		logger = slogger.DefaultLogger
	}
	now := apctx.Now
	if now.IsZero() {
		now = time.Now()
	}

	snapshot := make(map[string]bool, len(items))
	for _, item := range items {
		snapshot[item.ID] = true
	}

	next := make([]Item, len(items))
	copy(next, items)

	result := Result{}
	for _, action := range batch.Actions {
		switch action.Action {
		case ActionAdd:
			next = applyAdd(next, action, apctx, now)

		case ActionDelete:
			if action.TodoID == "" || !snapshot[action.TodoID] {
				logger.Debug("skipping delete with unresolvable id", "todo_id", action.TodoID)
				continue
			}
			next = remove(next, action.TodoID)

		case ActionMark:
			if action.TodoID == "" || !snapshot[action.TodoID] {
				logger.Debug("skipping mark with unresolvable id", "todo_id", action.TodoID)
				continue
			}
			next = applyMark(next, action)

		case ActionEdit:
			if action.TodoID == "" || !snapshot[action.TodoID] || action.Text == "" {
				logger.Debug("skipping incomplete edit", "todo_id", action.TodoID)
				continue
			}
			next = applyEdit(next, action)

		case ActionSort:
			if action.SortBy.IsValid() {
				result.SortBy = action.SortBy
			}

		case ActionClear:
			next = applyClear(next, action, apctx.SelectedDate)

		default:
			logger.Debug("skipping unknown action", "action", string(action.Action))
		}
	}

	result.Items = next
	return result
}

func applyAdd(items []Item, action Action, apctx ApplyContext, now time.Time) []Item {
	text := action.Text
	if text == "" {
		text = apctx.RawText
	}
	if text == "" {
		return items
	}

	date := apctx.SelectedDate
	if action.TargetDate != "" {
		date = action.TargetDate
	}

	item := Item{
		ID:        NewItemID(items),
		Text:      text,
		Completed: false,
		Date:      date,
		Time:      action.Time,
		Emoji:     action.Emoji,
		Category:  action.Category,
		Timeline:  action.Timeline,
		CreatedAt: now,
	}
	return append(items, item.normalized())
}

func applyMark(items []Item, action Action) []Item {
	for i, item := range items {
		if item.ID != action.TodoID {
			continue
		}
		switch action.Status {
		case StatusComplete:
			items[i].Completed = true
		case StatusIncomplete:
			items[i].Completed = false
		default:
			items[i].Completed = !item.Completed
		}
		break
	}
	return items
}

func applyEdit(items []Item, action Action) []Item {
	for i, item := range items {
		if item.ID != action.TodoID {
			continue
		}
		item.Text = action.Text
		if action.TargetDate != "" {
			item.Date = action.TargetDate
		}
		if action.Time != "" {
			item.Time = action.Time
		}
		if action.Category != "" {
			item.Category = action.Category
		}
		if action.Timeline != "" {
			item.Timeline = action.Timeline
		}
		items[i] = item.normalized()
		break
	}
	return items
}

// applyClear removes items within the selected day only. Clearing never
// reaches outside the current view's scope, and an absent selection is a
// no-op rather than an implicit clear-all.
func applyClear(items []Item, action Action, selectedDate string) []Item {
	day := normalizeDay(selectedDate)
	var keep func(Item) bool
	switch action.ListToClear {
	case ClearAll:
		keep = func(item Item) bool { return normalizeDay(item.Date) != day }
	case ClearCompleted:
		keep = func(item Item) bool { return normalizeDay(item.Date) != day || !item.Completed }
	case ClearIncomplete:
		keep = func(item Item) bool { return normalizeDay(item.Date) != day || item.Completed }
	default:
		return items
	}

	result := items[:0:0]
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

func remove(items []Item, id string) []Item {
	result := items[:0:0]
	for _, item := range items {
		if item.ID != id {
			result = append(result, item)
		}
	}
	return result
}

// normalizeDay reduces a date string to its civil date component for
// comparisons.
func normalizeDay(date string) string {
	return dates.Normalize(date)
}
