// Package inference sends analysis prompts to a remote model endpoint and
// accumulates the streamed response, retrying transient failures with
// exponential backoff.
package inference

import (
	"context"
	"fmt"
	"strings"
)

// Request carries one fully-formed analysis request. Created per file,
// consumed once, not retained.
type Request struct {
	Prompt       string
	SystemPrompt string
	Model        string
	MaxTokens    int
}

// Streamer delivers a model response as an ordered sequence of text chunks.
type Streamer interface {
	Stream(ctx context.Context, req Request, emit func(chunk string)) error
	Name() string
}

// New creates a provider by name. An empty name derives the provider from
// the model identifier via DetectProvider.
func New(provider, model string) (Streamer, error) {
	if provider == "" {
		provider = DetectProvider(model)
	}
	switch provider {
	case "replicate":
		return NewReplicate()
	case "openai":
		return NewOpenAI()
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// DetectProvider maps a model identifier to a provider name.
// "owner/name" style identifiers are Replicate models; everything else is
// sent to the OpenAI-compatible backend.
func DetectProvider(model string) string {
	if strings.Contains(model, "/") {
		return "replicate"
	}
	return "openai"
}
