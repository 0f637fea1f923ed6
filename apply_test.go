package statements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() ApplyContext {
	return ApplyContext{
		SelectedDate: "2024-04-10",
		RawText:      "raw input text",
		Now:          time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestApplyAdd(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "existing", Date: "2024-04-10"}}

	batch := Batch{Actions: []Action{{
		Action:   ActionAdd,
		Text:     "drink 4l of water",
		Category: CategoryGoal,
		Timeline: TimelineFuture,
		Time:     "9:00",
	}}}
	result := Apply(items, batch, testContext())

	require.Len(t, result.Items, 2)
	added := result.Items[1]
	assert.NotEmpty(t, added.ID)
	assert.NotEqual(t, "aaa", added.ID)
	assert.Equal(t, "drink 4l of water", added.Text)
	assert.False(t, added.Completed)
	assert.Equal(t, "2024-04-10", added.Date, "defaults to the selected day")
	assert.Equal(t, "09:00", added.Time, "time is normalized on add")
	assert.Equal(t, CategoryGoal, added.Category)
	assert.Equal(t, TimelineFuture, added.Timeline)

	// Input collection untouched
	assert.Len(t, items, 1)
}

func TestApplyAddTargetDate(t *testing.T) {
	batch := Batch{Actions: []Action{{
		Action:     ActionAdd,
		Text:       "buy groceries",
		TargetDate: "2024-04-11",
	}}}
	result := Apply(nil, batch, testContext())
	require.Len(t, result.Items, 1)
	assert.Equal(t, "2024-04-11", result.Items[0].Date)
}

func TestApplyAddFallsBackToRawText(t *testing.T) {
	batch := Batch{Actions: []Action{{Action: ActionAdd}}}
	result := Apply(nil, batch, testContext())
	require.Len(t, result.Items, 1)
	assert.Equal(t, "raw input text", result.Items[0].Text)

	// No action text and no raw text means nothing to add
	apctx := testContext()
	apctx.RawText = ""
	result = Apply(nil, batch, apctx)
	assert.Empty(t, result.Items)
}

func TestApplyAddUnsetClassification(t *testing.T) {
	// Category and timeline pass through unset; defaulting belongs to the
	// display layer.
	batch := Batch{Actions: []Action{{Action: ActionAdd, Text: "note"}}}
	result := Apply(nil, batch, testContext())
	require.Len(t, result.Items, 1)
	assert.Empty(t, result.Items[0].Category)
	assert.Empty(t, result.Items[0].Timeline)
}

func TestApplyDelete(t *testing.T) {
	items := []Item{
		{ID: "aaa", Text: "one", Date: "2024-04-10"},
		{ID: "bbb", Text: "two", Date: "2024-04-10"},
	}

	result := Apply(items, Batch{Actions: []Action{{Action: ActionDelete, TodoID: "aaa"}}}, testContext())
	require.Len(t, result.Items, 1)
	assert.Equal(t, "bbb", result.Items[0].ID)

	// Unknown and missing ids are no-ops, not errors
	result = Apply(items, Batch{Actions: []Action{{Action: ActionDelete, TodoID: "zzz"}}}, testContext())
	assert.Equal(t, items, result.Items)
	result = Apply(items, Batch{Actions: []Action{{Action: ActionDelete}}}, testContext())
	assert.Equal(t, items, result.Items)
}

func TestApplyMarkIdempotent(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "drink 2l of water", Date: "2024-04-10"}}
	mark := Batch{Actions: []Action{{Action: ActionMark, TodoID: "aaa", Status: StatusComplete}}}

	result := Apply(items, mark, testContext())
	require.True(t, result.Items[0].Completed)

	// Marking complete twice stays complete
	result = Apply(result.Items, mark, testContext())
	assert.True(t, result.Items[0].Completed)

	unmark := Batch{Actions: []Action{{Action: ActionMark, TodoID: "aaa", Status: StatusIncomplete}}}
	result = Apply(result.Items, unmark, testContext())
	assert.False(t, result.Items[0].Completed)
}

func TestApplyMarkToggle(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "x", Date: "2024-04-10"}}
	toggle := Batch{Actions: []Action{{Action: ActionMark, TodoID: "aaa"}}}

	result := Apply(items, toggle, testContext())
	assert.True(t, result.Items[0].Completed)

	// Toggling twice restores the original value
	result = Apply(result.Items, toggle, testContext())
	assert.False(t, result.Items[0].Completed)
}

func TestApplyMarkUnknownID(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "x", Date: "2024-04-10"}}
	result := Apply(items, Batch{Actions: []Action{{Action: ActionMark, TodoID: "nope"}}}, testContext())
	assert.Equal(t, items, result.Items)
}

func TestApplyEdit(t *testing.T) {
	created := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	items := []Item{{
		ID:        "aaa",
		Text:      "drink 4l of water",
		Date:      "2024-04-10",
		Time:      "08:00",
		Category:  CategoryGoal,
		Timeline:  TimelineFuture,
		CreatedAt: created,
	}}

	// The quantitative merge shape: the classifier computed the remaining
	// amount and emitted a single edit on the existing item.
	batch := Batch{Actions: []Action{{
		Action: ActionEdit,
		TodoID: "aaa",
		Text:   "drink 2l of water",
	}}}
	result := Apply(items, batch, testContext())

	require.Len(t, result.Items, 1, "edit must not duplicate the item")
	edited := result.Items[0]
	assert.Equal(t, "aaa", edited.ID, "id never changes")
	assert.Equal(t, "drink 2l of water", edited.Text)
	assert.False(t, edited.Completed, "partial progress never marks complete")
	assert.Equal(t, "2024-04-10", edited.Date, "omitted fields keep existing values")
	assert.Equal(t, "08:00", edited.Time)
	assert.Equal(t, CategoryGoal, edited.Category)
	assert.Equal(t, TimelineFuture, edited.Timeline)
	assert.Equal(t, created, edited.CreatedAt, "createdAt is immutable")
}

func TestApplyEditFieldOverrides(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "call mom", Date: "2024-04-10"}}
	batch := Batch{Actions: []Action{{
		Action:     ActionEdit,
		TodoID:     "aaa",
		Text:       "call mom at lunch",
		TargetDate: "2024-4-11",
		Time:       "12:0",
		Category:   CategoryReminder,
		Timeline:   TimelineFuture,
	}}}
	result := Apply(items, batch, testContext())
	edited := result.Items[0]
	assert.Equal(t, "2024-04-11", edited.Date, "dates renormalize on edit")
	assert.Equal(t, "12:00", edited.Time, "times renormalize on edit")
	assert.Equal(t, CategoryReminder, edited.Category)
	assert.Equal(t, TimelineFuture, edited.Timeline)
}

func TestApplyEditWithoutTextIsNoOp(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "keep me", Date: "2024-04-10"}}
	batch := Batch{Actions: []Action{{Action: ActionEdit, TodoID: "aaa", TargetDate: "2024-04-12"}}}
	result := Apply(items, batch, testContext())
	assert.Equal(t, items, result.Items)
}

func TestApplyEditUnknownID(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "keep me", Date: "2024-04-10"}}
	batch := Batch{Actions: []Action{{Action: ActionEdit, TodoID: "zzz", Text: "new"}}}
	result := Apply(items, batch, testContext())
	assert.Equal(t, items, result.Items)
}

func TestApplySort(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "x", Date: "2024-04-10"}}
	batch := Batch{Actions: []Action{{Action: ActionSort, SortBy: SortAlphabetical}}}
	result := Apply(items, batch, testContext())
	assert.Equal(t, SortAlphabetical, result.SortBy)
	assert.Equal(t, items, result.Items, "sort mutates nothing")

	// Invalid sort options are ignored
	batch = Batch{Actions: []Action{{Action: ActionSort, SortBy: "sideways"}}}
	result = Apply(items, batch, testContext())
	assert.Empty(t, result.SortBy)
}

func TestApplyClear(t *testing.T) {
	items := []Item{
		{ID: "a", Text: "done today", Date: "2024-04-10", Completed: true},
		{ID: "b", Text: "open today", Date: "2024-04-10"},
		{ID: "c", Text: "other day", Date: "2024-04-09", Completed: true},
	}

	tests := []struct {
		name    string
		list    ClearList
		wantIDs []string
	}{
		{"all clears the selected day only", ClearAll, []string{"c"}},
		{"completed", ClearCompleted, []string{"b", "c"}},
		{"incomplete", ClearIncomplete, []string{"a", "c"}},
		{"missing selection is a no-op", "", []string{"a", "b", "c"}},
		{"unknown selection is a no-op", "everything", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := Batch{Actions: []Action{{Action: ActionClear, ListToClear: tt.list}}}
			result := Apply(items, batch, testContext())
			var ids []string
			for _, item := range result.Items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplyBatchOrder(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "old", Date: "2024-04-10"}}
	batch := Batch{Actions: []Action{
		{Action: ActionAdd, Text: "first"},
		{Action: ActionMark, TodoID: "aaa", Status: StatusComplete},
		{Action: ActionAdd, Text: "second"},
	}}
	result := Apply(items, batch, testContext())
	require.Len(t, result.Items, 3)
	assert.True(t, result.Items[0].Completed)
	assert.Equal(t, "first", result.Items[1].Text)
	assert.Equal(t, "second", result.Items[2].Text)
}

func TestApplyUnknownActionKind(t *testing.T) {
	items := []Item{{ID: "aaa", Text: "x", Date: "2024-04-10"}}
	batch := Batch{Actions: []Action{{Action: "explode"}}}
	result := Apply(items, batch, testContext())
	assert.Equal(t, items, result.Items)
}

func TestApplyFallbackBatch(t *testing.T) {
	result := Apply(nil, FallbackBatch("i drank some water"), testContext())
	require.Len(t, result.Items, 1)
	assert.Equal(t, "i drank some water", result.Items[0].Text)
	assert.False(t, result.Items[0].Completed)
	assert.Equal(t, "2024-04-10", result.Items[0].Date)
}
