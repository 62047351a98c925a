package inference

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultReplicateURL = "https://api.replicate.com/v1"

// Replicate streams predictions from the Replicate HTTP API.
// A prediction is created with stream enabled, then its server-sent event
// stream is consumed until the done event.
type Replicate struct {
	apiToken string
	baseURL  string
	client   *http.Client
}

// NewReplicate creates a Replicate provider from the environment.
func NewReplicate() (*Replicate, error) {
	token := os.Getenv("REPLICATE_API_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("REPLICATE_API_TOKEN environment variable is not set")
	}
	return &Replicate{
		apiToken: token,
		baseURL:  defaultReplicateURL,
		client:   &http.Client{Timeout: 300 * time.Second},
	}, nil
}

func (r *Replicate) Name() string { return "replicate" }

type replicateInput struct {
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"system_prompt,omitempty"`
	MaxTokens    int    `json:"max_tokens,omitempty"`
}

type replicateCreateRequest struct {
	Input  replicateInput `json:"input"`
	Stream bool           `json:"stream"`
}

type replicateCreateResponse struct {
	ID   string `json:"id"`
	URLs struct {
		Stream string `json:"stream"`
		Get    string `json:"get"`
	} `json:"urls"`
}

// Stream creates a streaming prediction for req.Model and emits each output
// chunk in arrival order.
func (r *Replicate) Stream(ctx context.Context, req Request, emit func(chunk string)) error {
	streamURL, err := r.createPrediction(ctx, req)
	if err != nil {
		return err
	}
	return r.consumeStream(ctx, streamURL, emit)
}

// createPrediction starts a prediction and returns its event stream URL.
func (r *Replicate) createPrediction(ctx context.Context, req Request) (string, error) {
	body := replicateCreateRequest{
		Input: replicateInput{
			Prompt:       req.Prompt,
			SystemPrompt: req.SystemPrompt,
			MaxTokens:    req.MaxTokens,
		},
		Stream: true,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s/predictions", r.baseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+r.apiToken)

	httpResp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != 200 && httpResp.StatusCode != 201 {
		return "", fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result replicateCreateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if result.URLs.Stream == "" {
		return "", fmt.Errorf("no stream URL in prediction response")
	}
	return result.URLs.Stream, nil
}

// consumeStream reads server-sent events from streamURL until the done
// event. Output event data is emitted as-is; an error event aborts the
// stream.
func (r *Replicate) consumeStream(ctx context.Context, streamURL string, emit func(chunk string)) error {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", streamURL, nil)
	if err != nil {
		return fmt.Errorf("creating stream request: %w", err)
	}
	httpReq.Header.Set("Accept", "text/event-stream")
	httpReq.Header.Set("Cache-Control", "no-store")

	httpResp, err := r.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("opening stream: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != 200 {
		respBody, _ := io.ReadAll(httpResp.Body)
		return fmt.Errorf("stream error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	scanner := bufio.NewScanner(httpResp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var event string
	var data []string
	for scanner.Scan() {
		line := scanner.Text()

		// A blank line terminates the current event.
		if line == "" {
			switch event {
			case "output":
				emit(strings.Join(data, "\n"))
			case "error":
				return fmt.Errorf("model error: %s", strings.Join(data, "\n"))
			case "done":
				return nil
			}
			event = ""
			data = data[:0]
			continue
		}

		if value, ok := strings.CutPrefix(line, "event:"); ok {
			event = strings.TrimSpace(value)
			continue
		}
		if value, ok := strings.CutPrefix(line, "data:"); ok {
			data = append(data, strings.TrimPrefix(value, " "))
			continue
		}
		// Comments (lines starting with ":") and unknown fields are ignored.
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}
	return fmt.Errorf("stream ended without done event")
}
