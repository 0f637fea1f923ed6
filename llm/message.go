package llm

// Role indicates the role of a message in a conversation. Either "user",
// "assistant", or "system".
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
	System    Role = "system"
)

func (r Role) String() string {
	return string(r)
}

// Message is a single text message in a conversation.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// NewUserTextMessage creates a new user message with the given text.
func NewUserTextMessage(text string) *Message {
	return &Message{Role: User, Text: text}
}

// NewSystemMessage creates a new system message with the given text.
func NewSystemMessage(text string) *Message {
	return &Message{Role: System, Text: text}
}

// NewAssistantTextMessage creates a new assistant message with the given text.
func NewAssistantTextMessage(text string) *Message {
	return &Message{Role: Assistant, Text: text}
}
