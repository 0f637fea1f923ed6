package classify

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/statements"
)

// promptRules carries the classification rules sent to the completion
// service. The taxonomy, date handling, and quantitative-progress policy are
// instruction data for the model; the executor enforces the structural rules
// independently, so nothing here is trusted at apply time.
const promptRules = `You are the AI for "Statements", a personal micro-blogging application where "the network is you".
Your goal is to organize the user's thoughts into a structured feed of "Statements".

## Core Concepts

### 1. Timelines (The "When")
Classify the statement into one of three timelines:
- **Past Self** ("past"): Actions completed, history, reflection. (e.g., "I ran 5km", "I read a book").
- **Current Self** ("current"): What is happening now, current focus. (e.g., "Reading a book", "Working on project").
- **Future Self** ("future"): Aspirations, planned actions, queue. (e.g., "I want to run", "Buy milk", "Remind me").

### 2. Categories (The "What")
Classify the statement into one of these categories:
- **Goal** ("goal"): Long-term objectives, aspirations, desires. (e.g., "Run 3km everyday", "Read 12 books this year"). Usually associated with "want to", "aiming to".
- **Task** ("task"): Actionable items, to-dos. (e.g., "Buy running shoes", "Call Mom").
- **Reminder** ("reminder"): Time-sensitive alerts. (e.g., "Remind me to call at 5pm").
- **Statement** ("statement"): General thoughts, observations, or updates that don't fit strictly into the above (default for generic posts).
`

const promptLogic = `## Logic
- **Analyze the User's Intent**:
    - "I want to start running" -> Action: "add", Text: "start running", Timeline: "future", Category: "goal"
    - "Buy milk" -> Action: "add", Text: "buy milk", Timeline: "future", Category: "task"
    - "I ran 5km" -> Action: "add", Text: "ran 5km", Timeline: "past", Category: "statement" (or task if tracking completion)
- **Existing Todos**:
    - You have access to the current list.
    - If the user says "I bought milk" and "buy milk" is in the list -> Action: "mark", Status: "complete", TodoId: <id>.
    - If not in list, maybe they just want to log it -> Action: "add", Timeline: "past".
`

const promptQuantitative = `## Quantitative Updates
- **Tracking Progress**:
    - If the user reports partial progress on a task (e.g., "I drank 2L of water") and a corresponding task exists (e.g., "Drink 4L of water"):
    - **Do NOT** mark the original task as complete unless the goal is fully reached.
    - **Edit** the existing task to reflect the remaining amount.
    - Example:
        - Existing Task: "drink 4l of water"
        - User Input: "I drank 2L of water"
        - Analysis: 4L (Goal) - 2L (Progress) = 2L (Remaining)
        - Action: "edit", TodoId: <matching_id>, Text: "drink 2l of water" (calculated remaining).
    - Do not create a separate log entry for the progress unless explicitly asked.
    - If the reported progress reaches the full target, use Action: "mark", Status: "complete", TodoId: <matching_id> instead of an edit.
`

// buildPrompt assembles the instruction document for one classification
// call. The resolved today/tomorrow strings are embedded so the model never
// reasons about "now" itself, and the current item snapshot is embedded as
// ground truth for cross-referencing existing entries.
func buildPrompt(text, emoji string, items []statements.Item, timezone, today, tomorrow string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Today's date is: %s (Timezone: %s)\n", today, timezone)
	fmt.Fprintf(&b, "The user has entered the following text: %s\n", text)
	if emoji != "" {
		fmt.Fprintf(&b, "The user has also entered the following emoji: %s\n", emoji)
	}
	b.WriteString("\n")
	b.WriteString(promptRules)
	b.WriteString("\n")

	b.WriteString("## Date & Time Parsing\n")
	b.WriteString("The user can specify dates and times naturally.\n")
	fmt.Fprintf(&b, "- \"add buy groceries today\" -> targetDate: %s\n", today)
	fmt.Fprintf(&b, "- \"add buy groceries tomorrow\" -> targetDate: %s\n", tomorrow)
	fmt.Fprintf(&b, "- \"meeting at 3pm tomorrow\" -> time: \"15:00\", targetDate: %s\n\n", tomorrow)
	b.WriteString("Extract the date (YYYY-MM-DD) and time (HH:mm, 24-hour).\n")
	b.WriteString("If no date is specified:\n")
	fmt.Fprintf(&b, "- For \"future\" timeline items (tasks/reminders), default to today (%s) unless \"someday\" is implied.\n", today)
	b.WriteString("- For \"past\" items, default to today if it just happened, or infer from context (e.g., \"yesterday\").\n\n")

	b.WriteString(promptLogic)
	b.WriteString("\n")

	if len(items) > 0 {
		b.WriteString("<todo_list>\n")
		for _, item := range items {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", item.ID, item.Text, item.Emoji)
		}
		b.WriteString("</todo_list>\n\n")
	}

	b.WriteString(promptQuantitative)
	b.WriteString("\n")

	b.WriteString("## Strict Rules\n")
	b.WriteString("- **Always** return an array of actions.\n")
	b.WriteString("- **Actions**: add, delete, mark, sort, edit, clear\n")
	b.WriteString("- **Format**: Lowercase text for the todo content.\n")

	return b.String()
}
