package inference

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sashabaranov/go-openai"
)

// OpenAI streams chat completions from the OpenAI API or any
// OpenAI-compatible endpoint (set OPENAI_BASE_URL to point elsewhere).
type OpenAI struct {
	client *openai.Client
}

// NewOpenAI creates an OpenAI provider from the environment.
func NewOpenAI() (*OpenAI, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}
	cfg := openai.DefaultConfig(key)
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg)}, nil
}

func (o *OpenAI) Name() string { return "openai" }

// Stream opens a chat-completion stream for req and emits each content
// delta in arrival order until the stream ends.
func (o *OpenAI) Stream(ctx context.Context, req Request, emit func(chunk string)) error {
	stream, err := o.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Stream: true,
	})
	if err != nil {
		return fmt.Errorf("creating stream: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading stream: %w", err)
		}
		if len(resp.Choices) > 0 {
			emit(resp.Choices[0].Delta.Content)
		}
	}
}
