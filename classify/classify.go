// Package classify turns raw user text into a typed action batch by calling
// an external completion service with a schema-constrained prompt.
//
// The classifier owns prompt construction and response validation only; the
// semantics of applying the resulting batch belong to statements.Apply,
// which re-checks every structural rule because the model's output is
// untrusted.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/deepnoodle-ai/statements"
	"github.com/deepnoodle-ai/statements/dates"
	"github.com/deepnoodle-ai/statements/llm"
	"github.com/deepnoodle-ai/statements/schema"
	"github.com/deepnoodle-ai/statements/slogger"
)

// DefaultTimezone applies when a request does not name one.
const DefaultTimezone = "UTC"

// ClassificationError reports a failed classification call: a service
// error, a response that does not conform to the action schema, or an
// empty batch. Callers recover with statements.FallbackBatch.
type ClassificationError struct {
	Reason string
	Err    error
}

func (e *ClassificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classification failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("classification failed: %s", e.Reason)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// Options configures a Classifier.
type Options struct {
	// LLM is the completion provider. Required.
	LLM llm.LLM

	// Model overrides the provider's default model.
	Model string

	// Logger receives debug logs. Defaults to the devnull logger.
	Logger slogger.Logger
}

// Classifier builds classification prompts and validates the responses.
type Classifier struct {
	llm         llm.LLM
	model       string
	logger      slogger.Logger
	batchSchema *schema.Schema
}

// New creates a Classifier.
func New(opts Options) (*Classifier, error) {
	if opts.LLM == nil {
		return nil, fmt.Errorf("classifier requires an llm provider")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slogger.DefaultLogger
	}
	batchSchema, err := schema.Generate(statements.Batch{})
	if err != nil {
		return nil, fmt.Errorf("error generating action schema: %w", err)
	}
	return &Classifier{
		llm:         opts.LLM,
		model:       opts.Model,
		logger:      logger,
		batchSchema: batchSchema,
	}, nil
}

// Request is one classification call.
type Request struct {
	// Text is the raw user input, typed or transcribed.
	Text string

	// Emoji is an optional user-chosen glyph hint.
	Emoji string

	// Items is the current snapshot the model cross-references against.
	Items []statements.Item

	// Timezone resolves "today" and "tomorrow". Defaults to UTC.
	Timezone string

	// Now is the reference instant. Zero means time.Now().
	Now time.Time
}

// DetermineAction classifies the request into an ordered action batch.
// Temperature is pinned to zero for reproducibility. Failures of any kind
// return a *ClassificationError; the defined recovery is applying
// statements.FallbackBatch with the verbatim input.
func (c *Classifier) DetermineAction(ctx context.Context, req Request) (*statements.Batch, error) {
	timezone := req.Timezone
	if timezone == "" {
		timezone = DefaultTimezone
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	today := dates.Resolve(now, timezone)
	tomorrow := dates.Tomorrow(today)
	prompt := buildPrompt(req.Text, req.Emoji, req.Items, timezone, today, tomorrow)

	c.logger.Debug("determining action",
		"text", req.Text,
		"timezone", timezone,
		"today", today,
		"items", len(req.Items))

	start := time.Now()
	response, err := c.llm.Generate(ctx,
		[]*llm.Message{llm.NewUserTextMessage(prompt)},
		llm.WithModel(c.model),
		llm.WithTemperature(0),
		llm.WithJSONSchema("actions", c.batchSchema),
		llm.WithLogger(c.logger),
	)
	if err != nil {
		return nil, &ClassificationError{Reason: "completion call failed", Err: err}
	}

	batch, err := parseBatch(response.Text())
	if err != nil {
		return nil, &ClassificationError{Reason: "response did not conform to the action schema", Err: err}
	}
	if len(batch.Actions) == 0 {
		return nil, &ClassificationError{Reason: "empty action batch"}
	}

	c.logger.Info("determined actions",
		"count", len(batch.Actions),
		"duration", time.Since(start),
		"input_tokens", response.Usage.InputTokens,
		"output_tokens", response.Usage.OutputTokens)

	return batch, nil
}

// parseBatch decodes the model's JSON into a Batch. Code fences are
// stripped first; some models wrap JSON output even under a constrained
// response format.
func parseBatch(text string) (*statements.Batch, error) {
	cleaned := stripCodeFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("empty response text")
	}
	var batch statements.Batch
	if err := json.Unmarshal([]byte(cleaned), &batch); err != nil {
		return nil, fmt.Errorf("error decoding action batch: %w", err)
	}
	return &batch, nil
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
