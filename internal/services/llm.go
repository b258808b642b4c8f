package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// LLM talks to an OpenAI-compatible chat completion API. Both the
// recommendations endpoint and the chat assistant go through it; callers
// treat it as a black box that may fail.
type LLM struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewLLM() *LLM {
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &LLM{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  os.Getenv("LLM_API_KEY"),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (l *LLM) Enabled() bool {
	return l != nil && l.apiKey != ""
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string     `json:"model"`
	Messages []ChatTurn `json:"messages"`
	Stream   bool       `json:"stream,omitempty"`
}

// Complete runs one non-streaming completion and returns the assistant text.
func (l *LLM) Complete(ctx context.Context, turns []ChatTurn) (string, error) {
	if !l.Enabled() {
		return "", fmt.Errorf("LLM not configured")
	}

	body, err := json.Marshal(chatRequest{Model: l.model, Messages: turns})
	if err != nil {
		return "", err
	}

	resp, err := l.do(ctx, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Stream runs a streaming completion, invoking onToken for each content delta.
// Returns the full assistant text once the stream ends.
func (l *LLM) Stream(ctx context.Context, turns []ChatTurn, onToken func(token string)) (string, error) {
	if !l.Enabled() {
		return "", fmt.Errorf("LLM not configured")
	}

	body, err := json.Marshal(chatRequest{Model: l.model, Messages: turns, Stream: true})
	if err != nil {
		return "", err
	}

	resp, err := l.do(ctx, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			break
		}

		var chunk struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
			} `json:"choices"`
		}
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			continue
		}
		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			full.WriteString(chunk.Choices[0].Delta.Content)
			onToken(chunk.Choices[0].Delta.Content)
		}
	}
	if err := scanner.Err(); err != nil {
		return full.String(), err
	}
	return full.String(), nil
}

func (l *LLM) do(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+l.apiKey)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("LLM API returned %d", resp.StatusCode)
	}
	return resp, nil
}
