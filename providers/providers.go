// Package providers contains implementations of the llm.LLM interface for
// different completion services, plus the error type they share.
package providers

import "fmt"

// ProviderError represents an error returned by an LLM provider API. It
// carries the HTTP status code so the retry package can classify it.
type ProviderError struct {
	statusCode int
	body       string
}

// NewError creates a new ProviderError.
func NewError(statusCode int, body string) *ProviderError {
	return &ProviderError{statusCode: statusCode, body: body}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider api error (status %d): %s", e.statusCode, e.body)
}

func (e *ProviderError) StatusCode() int {
	return e.statusCode
}
