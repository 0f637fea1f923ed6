package statements

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemID(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]+$`)

	id := NewItemID(nil)
	assert.Len(t, id, idLength)
	assert.True(t, pattern.MatchString(id))

	// Collisions with existing ids are retried away
	seen := make(map[string]bool)
	var items []Item
	for i := 0; i < 200; i++ {
		id := NewItemID(items)
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
		items = append(items, Item{ID: id})
	}
}

func TestEffectiveDefaults(t *testing.T) {
	item := Item{}
	assert.Equal(t, CategoryStatement, item.EffectiveCategory())
	assert.Equal(t, TimelineCurrent, item.EffectiveTimeline())

	item = Item{Category: CategoryGoal, Timeline: TimelinePast}
	assert.Equal(t, CategoryGoal, item.EffectiveCategory())
	assert.Equal(t, TimelinePast, item.EffectiveTimeline())
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already normal", "15:00", "15:00"},
		{"unpadded hour", "9:30", "09:30"},
		{"unpadded both", "9:5", "09:05"},
		{"midnight", "0:0", "00:00"},
		{"empty", "", ""},
		{"hour out of range", "25:00", ""},
		{"minute out of range", "12:75", ""},
		{"not a clock", "noonish", ""},
		{"missing minute", "12", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeClock(tt.input))
		})
	}
}

func TestItemNormalized(t *testing.T) {
	item := Item{Date: "2024-4-5", Time: "9:30"}
	normalized := item.normalized()
	assert.Equal(t, "2024-04-05", normalized.Date)
	assert.Equal(t, "09:30", normalized.Time)
}
