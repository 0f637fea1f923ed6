// Package openaichat implements the llm.LLM interface against any
// OpenAI-compatible chat completions endpoint. Provider packages such as
// groq and fireworks wrap it with their own endpoints and defaults.
package openaichat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/deepnoodle-ai/statements/llm"
	"github.com/deepnoodle-ai/statements/providers"
	"github.com/deepnoodle-ai/statements/retry"
	"github.com/deepnoodle-ai/statements/slogger"
)

var (
	DefaultModel     = "gpt-4o-mini"
	DefaultEndpoint  = "https://api.openai.com/v1/chat/completions"
	DefaultMaxTokens = 4096
	DefaultClient    = &http.Client{Timeout: 300 * time.Second}
)

var _ llm.LLM = &Provider{}

type Provider struct {
	name      string
	apiKey    string
	endpoint  string
	model     string
	maxTokens int
	client    *http.Client
}

func New(opts ...Option) *Provider {
	p := &Provider{
		name:      "openai-chat",
		apiKey:    os.Getenv("OPENAI_API_KEY"),
		endpoint:  DefaultEndpoint,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
		client:    DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.Option) (*llm.Response, error) {
	config := &llm.Config{}
	config.Apply(opts...)

	logger := config.Logger
	if logger == nil {
		logger = slogger.Ctx(ctx)
	}

	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	model := config.Model
	if model == "" {
		model = p.model
	}
	maxTokens := config.MaxTokens
	if maxTokens == nil {
		maxTokens = &p.maxTokens
	}

	request := Request{
		Model:       model,
		Messages:    convertMessages(messages),
		MaxTokens:   maxTokens,
		Temperature: config.Temperature,
	}
	if config.SystemPrompt != "" {
		request.Messages = append([]Message{{
			Role:    "system",
			Content: config.SystemPrompt,
		}}, request.Messages...)
	}
	if format := config.ResponseFormat; format != nil {
		request.ResponseFormat = convertResponseFormat(format)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	var result Response
	err = retry.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("error creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+p.apiKey)

		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("error making request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			if resp.StatusCode == http.StatusTooManyRequests {
				logger.Warn("rate limit exceeded",
					"provider", p.name,
					"status", resp.StatusCode)
			}
			return providers.NewError(resp.StatusCode, string(respBody))
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("empty response from %s api", p.name)
	}
	choice := result.Choices[0]

	logger.Debug("generation complete",
		"provider", p.name,
		"model", model,
		"input_tokens", result.Usage.PromptTokens,
		"output_tokens", result.Usage.CompletionTokens)

	return &llm.Response{
		ID:         result.ID,
		Model:      model,
		StopReason: choice.FinishReason,
		Message: llm.Message{
			Role: llm.Assistant,
			Text: choice.Message.Content,
		},
		Usage: llm.Usage{
			InputTokens:  result.Usage.PromptTokens,
			OutputTokens: result.Usage.CompletionTokens,
		},
	}, nil
}

func convertMessages(messages []*llm.Message) []Message {
	result := make([]Message, 0, len(messages))
	for _, message := range messages {
		result = append(result, Message{
			Role:    message.Role.String(),
			Content: message.Text,
		})
	}
	return result
}

func convertResponseFormat(format *llm.ResponseFormat) *ResponseFormat {
	switch format.Type {
	case llm.ResponseFormatTypeJSONSchema:
		return &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchema{
				Name:   format.Name,
				Schema: format.Schema,
				Strict: true,
			},
		}
	case llm.ResponseFormatTypeJSON:
		return &ResponseFormat{Type: "json_object"}
	default:
		return nil
	}
}
