package statements

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/deepnoodle-ai/statements/dates"
)

// Category classifies what kind of statement an item is.
type Category string

const (
	CategoryGoal      Category = "goal"
	CategoryTask      Category = "task"
	CategoryReminder  Category = "reminder"
	CategoryStatement Category = "statement"
)

// Timeline is the temporal bucket a statement belongs to, independent of
// its calendar date. Past items surface in the log feed, current and future
// items in the activity feed.
type Timeline string

const (
	TimelinePast    Timeline = "past"
	TimelineCurrent Timeline = "current"
	TimelineFuture  Timeline = "future"
)

// Item is one entry in the personal list.
//
// ID is unique across the collection, assigned at creation and never
// changed. CreatedAt is set once and used only for newest/oldest ordering.
type Item struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	Time      string    `json:"time,omitempty"`
	Emoji     string    `json:"emoji,omitempty"`
	Category  Category  `json:"category,omitempty"`
	Timeline  Timeline  `json:"timeline,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// EffectiveCategory returns the category with the display default applied.
// The executor stores whatever the classifier emitted, including nothing;
// anything not clearly actionable reads as a plain statement.
func (i Item) EffectiveCategory() Category {
	if i.Category == "" {
		return CategoryStatement
	}
	return i.Category
}

// EffectiveTimeline returns the timeline with the display default applied.
func (i Item) EffectiveTimeline() Timeline {
	if i.Timeline == "" {
		return TimelineCurrent
	}
	return i.Timeline
}

// normalized reserializes the item's date and time representations. Applied
// on every add and edit so stored values stay in YYYY-MM-DD and HH:mm form.
func (i Item) normalized() Item {
	i.Date = dates.Normalize(i.Date)
	i.Time = normalizeClock(i.Time)
	return i
}

// normalizeClock pads an H:m or HH:m style clock string to HH:mm. Values
// that are not a 24-hour clock time are dropped; "no specific time" is the
// defined fallback for unusable input.
func normalizeClock(clock string) string {
	if clock == "" {
		return ""
	}
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return ""
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const idLength = 8

// NewItemID generates a random lowercase-alphanumeric token that does not
// collide with any id already in the collection.
func NewItemID(items []Item) string {
	existing := make(map[string]bool, len(items))
	for _, item := range items {
		existing[item.ID] = true
	}
	for {
		id := randomToken(idLength)
		if !existing[id] {
			return id
		}
	}
}

func randomToken(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// a time-derived token so item creation still succeeds.
		now := time.Now().UnixNano()
		for i := range buf {
			buf[i] = idAlphabet[int(now>>uint(i*4))%len(idAlphabet)]
		}
		return string(buf)
	}
	for i := range buf {
		buf[i] = idAlphabet[int(buf[i])%len(idAlphabet)]
	}
	return string(buf)
}
