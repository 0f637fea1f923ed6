package statements

// ActionType identifies one kind of mutation instruction.
type ActionType string

const (
	ActionAdd    ActionType = "add"
	ActionDelete ActionType = "delete"
	ActionMark   ActionType = "mark"
	ActionSort   ActionType = "sort"
	ActionEdit   ActionType = "edit"
	ActionClear  ActionType = "clear"
)

// IsValid reports whether the action type is one of the known kinds.
func (t ActionType) IsValid() bool {
	switch t {
	case ActionAdd, ActionDelete, ActionMark, ActionSort, ActionEdit, ActionClear:
		return true
	}
	return false
}

// SortOption is a display ordering preference.
type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortOldest       SortOption = "oldest"
	SortAlphabetical SortOption = "alphabetical"
	SortCompleted    SortOption = "completed"
)

// IsValid reports whether the sort option is known.
func (s SortOption) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortAlphabetical, SortCompleted:
		return true
	}
	return false
}

// Status is the target completion state for a mark action. An absent status
// means toggle.
type Status string

const (
	StatusComplete   Status = "complete"
	StatusIncomplete Status = "incomplete"
)

// ClearList selects which items a clear action removes.
type ClearList string

const (
	ClearAll        ClearList = "all"
	ClearCompleted  ClearList = "completed"
	ClearIncomplete ClearList = "incomplete"
)

// Action is one instruction emitted by the classifier. All payload fields
// are optional at the schema level; each action kind has required-in-practice
// fields that the executor checks before applying it. The struct tags drive
// the JSON schema sent to the completion service.
type Action struct {
	Action      ActionType `json:"action" description:"The action to take" enum:"add,delete,mark,sort,edit,clear" required:"true"`
	Text        string     `json:"text,omitempty" description:"The text of the todo item"`
	TodoID      string     `json:"todoId,omitempty" description:"The id of the todo item to act upon"`
	Emoji       string     `json:"emoji,omitempty" description:"The emoji of the todo item"`
	TargetDate  string     `json:"targetDate,omitempty" description:"The target date for the todo item in YYYY-MM-DD format"`
	Time        string     `json:"time,omitempty" description:"The time for the todo item in HH:mm format (24-hour)"`
	Category    Category   `json:"category,omitempty" description:"The category of the statement" enum:"goal,task,reminder,statement"`
	Timeline    Timeline   `json:"timeline,omitempty" description:"The timeline the statement belongs to" enum:"past,current,future"`
	SortBy      SortOption `json:"sortBy,omitempty" description:"The sort order" enum:"newest,oldest,alphabetical,completed"`
	Status      Status     `json:"status,omitempty" description:"The status of the todo item, used for the mark action" enum:"complete,incomplete"`
	ListToClear ClearList  `json:"listToClear,omitempty" description:"The list to clear" enum:"all,completed,incomplete"`
}

// Batch is an ordered sequence of actions produced by the classifier for a
// single user input. Actions apply in emission order.
type Batch struct {
	Actions []Action `json:"actions" description:"The ordered list of actions to take" required:"true"`
}

// FallbackBatch synthesizes the batch applied when classification fails: a
// single add carrying the raw input text verbatim.
func FallbackBatch(text string) Batch {
	return Batch{Actions: []Action{{Action: ActionAdd, Text: text}}}
}
