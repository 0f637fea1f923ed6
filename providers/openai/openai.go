// Package openai implements the llm.LLM interface using the official
// OpenAI Go SDK.
package openai

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/statements/llm"
	"github.com/deepnoodle-ai/statements/slogger"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

var (
	DefaultModel     = "gpt-5-mini"
	DefaultMaxTokens = 4096
)

var _ llm.LLM = &Provider{}

type Provider struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    openaisdk.Client
}

func New(opts ...Option) *Provider {
	p := &Provider{
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(p)
	}
	var clientOpts []option.RequestOption
	if p.apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(p.apiKey))
	}
	if p.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(p.baseURL))
	}
	p.client = openaisdk.NewClient(clientOpts...)
	return p
}

func (p *Provider) Name() string {
	return "openai"
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
	maxTokens := p.maxTokens
	if config.MaxTokens != nil {
		maxTokens = *config.MaxTokens
	}

	params := openaisdk.ChatCompletionNewParams{
		Model:               shared.ChatModel(model),
		Messages:            encodeMessages(messages, config.SystemPrompt),
		MaxCompletionTokens: openaisdk.Int(int64(maxTokens)),
	}
	if config.Temperature != nil {
		params.Temperature = openaisdk.Float(*config.Temperature)
	}
	if format := config.ResponseFormat; format != nil && format.Type == llm.ResponseFormatTypeJSONSchema {
		params.ResponseFormat = openaisdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   format.Name,
					Schema: format.Schema,
					Strict: openaisdk.Bool(true),
				},
			},
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("empty response from openai api")
	}
	choice := completion.Choices[0]

	logger.Debug("generation complete",
		"provider", "openai",
		"model", model,
		"input_tokens", completion.Usage.PromptTokens,
		"output_tokens", completion.Usage.CompletionTokens)

	return &llm.Response{
		ID:         completion.ID,
		Model:      model,
		StopReason: string(choice.FinishReason),
		Message: llm.Message{
			Role: llm.Assistant,
			Text: choice.Message.Content,
		},
		Usage: llm.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

func encodeMessages(messages []*llm.Message, systemPrompt string) []openaisdk.ChatCompletionMessageParamUnion {
	result := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	if systemPrompt != "" {
		result = append(result, openaisdk.SystemMessage(systemPrompt))
	}
	for _, message := range messages {
		switch message.Role {
		case llm.Assistant:
			result = append(result, openaisdk.AssistantMessage(message.Text))
		case llm.System:
			result = append(result, openaisdk.SystemMessage(message.Text))
		default:
			result = append(result, openaisdk.UserMessage(message.Text))
		}
	}
	return result
}
