// Package transcribe converts recorded speech to text using the ElevenLabs
// speech-to-text API. The rest of the system consumes the transcript as
// plain text input; nothing downstream knows the text was spoken.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/deepnoodle-ai/statements/providers"
	"github.com/deepnoodle-ai/statements/retry"
	"github.com/deepnoodle-ai/statements/slogger"
)

var (
	DefaultModel    = "scribe_v1"
	DefaultEndpoint = "https://api.elevenlabs.io/v1/speech-to-text"
	DefaultClient   = &http.Client{Timeout: 120 * time.Second}
)

// TranscriptionError reports a failed transcription: missing audio or a
// service failure.
type TranscriptionError struct {
	Reason string
	Err    error
}

func (e *TranscriptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transcription failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("transcription failed: %s", e.Reason)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// Client calls the speech-to-text service.
type Client struct {
	apiKey   string
	endpoint string
	model    string
	client   *http.Client
	logger   slogger.Logger
}

// New creates a transcription client.
func New(opts ...Option) *Client {
	c := &Client{
		apiKey:   os.Getenv("ELEVENLABS_API_KEY"),
		endpoint: DefaultEndpoint,
		model:    DefaultModel,
		client:   DefaultClient,
		logger:   slogger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures the client.
type Option func(*Client)

// WithAPIKey sets the API key.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithEndpoint sets the endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithModel sets the transcription model.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithClient sets the HTTP client.
func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger.
func WithLogger(logger slogger.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

type response struct {
	Text string `json:"text"`
}

// Transcribe uploads audio bytes and returns the transcript. Empty audio is
// rejected before any network call.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", &TranscriptionError{Reason: "no audio provided"}
	}
	if filename == "" {
		filename = "audio.webm"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("model_id", c.model); err != nil {
		return "", &TranscriptionError{Reason: "error building request", Err: err}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", &TranscriptionError{Reason: "error building request", Err: err}
	}
	if _, err := part.Write(audio); err != nil {
		return "", &TranscriptionError{Reason: "error building request", Err: err}
	}
	if err := writer.Close(); err != nil {
		return "", &TranscriptionError{Reason: "error building request", Err: err}
	}

	c.logger.Debug("transcribing audio", "bytes", len(audio), "model", c.model)

	var result response
	err = retry.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body.Bytes()))
		if err != nil {
			return fmt.Errorf("error creating request: %w", err)
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("xi-api-key", c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("error making request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			return providers.NewError(resp.StatusCode, string(respBody))
		}
		return json.NewDecoder(resp.Body).Decode(&result)
	})
	if err != nil {
		return "", &TranscriptionError{Reason: "service error", Err: err}
	}

	return result.Text, nil
}
