package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LLMConfig represents the external LLM integration configuration
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// LLMClient is the opaque external LLM call the assistant shells use:
// fire-and-await, no streaming, no retries.
type LLMClient struct {
	config LLMConfig
	client *http.Client
}

// NewLLMClient creates a new LLM integration client
func NewLLMClient(config LLMConfig) *LLMClient {
	return &LLMClient{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type llmErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// InvokeLLM sends the accumulated conversation as a single prompt string and
// returns the completion text. An optional context string is prefixed as the
// system message.
func (c *LLMClient) InvokeLLM(ctx context.Context, prompt, systemContext string) (string, error) {
	if c.config.APIKey == "" {
		return "", errors.New("LLM API key not configured")
	}

	body := chatCompletionRequest{Model: c.config.Model}
	if systemContext != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: systemContext})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: prompt})

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal LLM request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create LLM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read LLM response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var parsed llmErrorResponse
		if json.Unmarshal(bodyBytes, &parsed) == nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("LLM returned %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("LLM returned %d", resp.StatusCode)
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("LLM response has no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
