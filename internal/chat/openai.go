package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/laasya2505/kuber-ai-assignment/internal/config"
)

// Generator produces advisory text for a user message. Implementations
// may fail; callers are expected to degrade gracefully.
type Generator interface {
	Generate(ctx context.Context, message string) (string, error)
}

const systemPrompt = `You are Kuber AI, an expert gold investment advisor from India. You provide detailed, helpful, and encouraging advice about gold investment benefits.

Key points to remember:
- Gold is an excellent hedge against inflation in India
- Digital gold offers convenience without storage hassles
- Indians have cultural affinity for gold
- Current gold prices around ₹6,500 per gram
- Digital gold is backed by physical gold in secure vaults
- Minimum investment can be as low as ₹100
- Provide practical, actionable advice
- Be enthusiastic but professional
- Give detailed explanations (150-200 words)`

// OpenAIClient calls an OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewOpenAIClient(cfg config.Config) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  cfg.OpenAIAPIKey,
		model:   cfg.OpenAIModel,
		baseURL: strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		client:  &http.Client{Timeout: cfg.OpenAITimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *OpenAIClient) Generate(ctx context.Context, message string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("openai api key not configured")
	}

	payload := completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   250,
		Temperature: 0.7,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("openai: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("openai: status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
