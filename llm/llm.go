// Package llm defines the provider-neutral contract for text completion
// calls. Providers implement the LLM interface; callers configure a
// generation with functional options.
package llm

import (
	"context"

	"github.com/deepnoodle-ai/statements/schema"
	"github.com/deepnoodle-ai/statements/slogger"
)

// LLM is implemented by completion providers.
type LLM interface {
	// Name identifies the provider.
	Name() string

	// Generate a response from the LLM by passing messages.
	Generate(ctx context.Context, messages []*Message, opts ...Option) (*Response, error)
}

// Option is a function that configures a generation.
type Option func(*Config)

// Config holds configuration parameters for LLM generation.
type Config struct {
	Model          string
	SystemPrompt   string
	MaxTokens      *int
	Temperature    *float64
	ResponseFormat *ResponseFormat
	Logger         slogger.Logger
}

// Apply the given options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithModel sets the model for the generation.
func WithModel(model string) Option {
	return func(config *Config) {
		config.Model = model
	}
}

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(systemPrompt string) Option {
	return func(config *Config) {
		config.SystemPrompt = systemPrompt
	}
}

// WithMaxTokens sets the max tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(config *Config) {
		config.MaxTokens = &maxTokens
	}
}

// WithTemperature sets the temperature.
func WithTemperature(temperature float64) Option {
	return func(config *Config) {
		config.Temperature = &temperature
	}
}

// WithResponseFormat constrains the response format.
func WithResponseFormat(format *ResponseFormat) Option {
	return func(config *Config) {
		config.ResponseFormat = format
	}
}

// WithJSONSchema constrains the response to a named JSON schema.
func WithJSONSchema(name string, s *schema.Schema) Option {
	return func(config *Config) {
		config.ResponseFormat = &ResponseFormat{
			Type:   ResponseFormatTypeJSONSchema,
			Name:   name,
			Schema: s,
		}
	}
}

// WithLogger sets the logger used during the generation.
func WithLogger(logger slogger.Logger) Option {
	return func(config *Config) {
		config.Logger = logger
	}
}
