package classify

import (
	"fmt"

	"github.com/deepnoodle-ai/statements/llm"
	"github.com/deepnoodle-ai/statements/providers/fireworks"
	"github.com/deepnoodle-ai/statements/providers/groq"
	"github.com/deepnoodle-ai/statements/providers/openai"
)

// Model aliases selectable by the user. Each maps to a provider and an
// underlying model name.
const (
	ModelDefault = "statements-default"
	ModelQwen    = "statements-qwen"
	ModelOpenAI  = "statements-openai"
	ModelR1      = "statements-r1"
)

// ModelOption describes one selectable model for display.
type ModelOption struct {
	ID   string
	Name string
}

// ModelOptions lists the selectable models.
var ModelOptions = []ModelOption{
	{ID: ModelOpenAI, Name: "GPT-5 Mini"},
	{ID: ModelDefault, Name: "GPT-OSS 120B (Groq)"},
	{ID: ModelQwen, Name: "Qwen QwQ 32B"},
	{ID: ModelR1, Name: "DeepSeek R1"},
}

// NewProvider returns the completion provider for a model alias. Unknown
// aliases are an error; there is no silent fallback to a different service.
func NewProvider(alias string) (llm.LLM, error) {
	switch alias {
	case "", ModelDefault:
		return groq.New(groq.WithModel("openai/gpt-oss-120b")), nil
	case ModelQwen:
		return groq.New(groq.WithModel("qwen-qwq-32b")), nil
	case ModelOpenAI:
		return openai.New(openai.WithModel("gpt-5-mini")), nil
	case ModelR1:
		return fireworks.New(), nil
	default:
		return nil, fmt.Errorf("unknown model: %s", alias)
	}
}
