package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MenuGenerator produces a short free-text menu for a restaurant. The chat
// engine treats it as an optional collaborator: any error falls back to the
// static catalog menu and never aborts the turn.
type MenuGenerator interface {
	GenerateMenu(ctx context.Context, restaurant string) (string, error)
}

// OpenAIGenerator speaks the OpenAI-compatible chat-completions API
// (OpenRouter by default).
type OpenAIGenerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenAIGenerator(apiKey, baseURL, model string) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return &OpenAIGenerator{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (g *OpenAIGenerator) GenerateMenu(ctx context.Context, restaurant string) (string, error) {
	req := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: fmt.Sprintf(
					"You are a helpful assistant generating restaurant menus. Create a short menu with 5-6 items for %s, using emojis and prices.",
					restaurant,
				),
			},
			{
				Role:    "user",
				Content: fmt.Sprintf("Give me the menu for %s", restaurant),
			},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("menu API error %d: %s", resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// MockGenerator returns a canned menu, for offline runs and tests.
type MockGenerator struct{}

func (MockGenerator) GenerateMenu(ctx context.Context, restaurant string) (string, error) {
	return fmt.Sprintf("🍜 %s specials\n1. Chef's Choice - $9.99\n2. House Soup - $4.99", restaurant), nil
}

var _ MenuGenerator = (*OpenAIGenerator)(nil)
var _ MenuGenerator = MockGenerator{}
