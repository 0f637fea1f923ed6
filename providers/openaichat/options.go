package openaichat

import "net/http"

// Option configures the provider.
type Option func(*Provider)

// WithName overrides the provider name used in logs and errors.
func WithName(name string) Option {
	return func(p *Provider) {
		p.name = name
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(apiKey string) Option {
	return func(p *Provider) {
		p.apiKey = apiKey
	}
}

// WithEndpoint sets the chat completions endpoint URL.
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

// WithClient sets the HTTP client used for requests.
func WithClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}
