package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/centradial/centradial/internal/common"
	"github.com/centradial/centradial/internal/model"
)

const defaultAnthropicBaseURL = "https://api.anthropic.com"

// anthropicClient implements the Client interface for the Anthropic API.
type anthropicClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// newAnthropicClient creates a new Anthropic API client.
func newAnthropicClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "claude-3-5-haiku-20241022"
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &anthropicClient{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     baseURL,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// ExtractMessages sends the file as a base64 content block followed by the
// extraction instruction.
func (c *anthropicClient) ExtractMessages(ctx context.Context, data []byte, mimeType string) ([]string, error) {
	fileBlock := map[string]any{
		"type": "document",
		"source": map[string]any{
			"type":       "base64",
			"media_type": mimeType,
			"data":       base64.StdEncoding.EncodeToString(data),
		},
	}
	if strings.HasPrefix(mimeType, "image/") {
		fileBlock["type"] = "image"
	}

	requestBody := map[string]any{
		"model":       c.model,
		"max_tokens":  c.maxTokens,
		"temperature": c.temperature,
		"system":      "You are a conversation transcriber. Respond only with the requested JSON, no commentary.",
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					fileBlock,
					{"type": "text", "text": extractionPrompt},
				},
			},
		},
	}

	content, err := c.complete(ctx, requestBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
	}

	return parseSentences(content), nil
}

// AssessSentence sends a single sentence for structured risk assessment.
func (c *anthropicClient) AssessSentence(ctx context.Context, sentence string) (model.RiskRecord, error) {
	requestBody := map[string]any{
		"model":       c.model,
		"max_tokens":  c.maxTokens,
		"temperature": c.temperature,
		"system":      "You are a calm, empathetic scam-risk assessor. Respond only with the requested JSON object.",
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": fmt.Sprintf(assessmentPrompt, sentence),
			},
		},
	}

	content, err := c.complete(ctx, requestBody)
	if err != nil {
		return model.RiskRecord{}, fmt.Errorf("assessment request failed: %w", err)
	}

	return parseRiskRecord(content)
}

// complete performs one messages call and returns the model's text output.
func (c *anthropicClient) complete(ctx context.Context, requestBody map[string]any) (string, error) {
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	return response.Content[0].Text, nil
}

// anthropicResponse represents the Anthropic API response structure.
type anthropicResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Role       string `json:"role"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Content    []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}
