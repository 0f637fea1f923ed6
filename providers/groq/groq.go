// Package groq implements the llm.LLM interface for Groq's OpenAI-compatible
// chat completions API.
package groq

import (
	"net/http"
	"os"

	"github.com/deepnoodle-ai/statements/llm"
	"github.com/deepnoodle-ai/statements/providers/openaichat"
)

var (
	DefaultModel     = "openai/gpt-oss-120b"
	DefaultEndpoint  = "https://api.groq.com/openai/v1/chat/completions"
	DefaultMaxTokens = 4096
)

var _ llm.LLM = &Provider{}

type Provider struct {
	apiKey    string
	endpoint  string
	model     string
	maxTokens int
	client    *http.Client

	// Embedded generic chat completions provider
	*openaichat.Provider
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:    os.Getenv("GROQ_API_KEY"),
		endpoint:  DefaultEndpoint,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
		client:    openaichat.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Pass the options through to the wrapped provider
	p.Provider = openaichat.New(
		openaichat.WithName("groq"),
		openaichat.WithAPIKey(p.apiKey),
		openaichat.WithEndpoint(p.endpoint),
		openaichat.WithModel(p.model),
		openaichat.WithMaxTokens(p.maxTokens),
		openaichat.WithClient(p.client),
	)
	return p
}

// Option configures the provider.
type Option func(*Provider)

// WithAPIKey sets the API key.
func WithAPIKey(apiKey string) Option {
	return func(p *Provider) {
		p.apiKey = apiKey
	}
}

// WithEndpoint sets the endpoint.
func WithEndpoint(endpoint string) Option {
	return func(p *Provider) {
		p.endpoint = endpoint
	}
}

// WithModel sets the default model.
func WithModel(model string) Option {
	return func(p *Provider) {
		p.model = model
	}
}

// WithMaxTokens sets the default max tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(p *Provider) {
		p.maxTokens = maxTokens
	}
}

// WithClient sets the HTTP client.
func WithClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}
