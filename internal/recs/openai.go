package recs

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

const systemPrompt = `You are a product recommendation engine for an online storefront.
Given a product catalog and a user's browsing history (most recent first),
pick the catalog products the user is most likely to buy next. Do not
recommend products already in the browsing history.
Respond with ONLY a JSON object of the form {"productIds": ["..."]}.`

// OpenAIOracle calls an OpenAI-compatible chat-completions endpoint and
// parses the model's JSON reply into a Response.
type OpenAIOracle struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

func NewOpenAIOracle(apiKey, baseURL, model string) *OpenAIOracle {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIOracle{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *OpenAIOracle) Recommend(ctx context.Context, req Request) (Response, error) {
	if o.apiKey == "" {
		return Response{}, fmt.Errorf("oracle API key not configured")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal oracle input: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(payload)},
		},
		Temperature: 0.2,
		MaxTokens:   256,
	})
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	httpResp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("oracle request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read oracle response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("oracle returned status %d: %s", httpResp.StatusCode, truncateForLog(string(respBody), 200))
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return Response{}, fmt.Errorf("failed to decode oracle response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return Response{}, fmt.Errorf("oracle response has no choices")
	}

	var out Response
	content := stripJSONFences(chat.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return Response{}, fmt.Errorf("oracle reply is not valid JSON: %w", err)
	}
	if out.ProductIDs == nil {
		// A reply without the field still counts as a valid empty answer
		out.ProductIDs = []string{}
	}
	return out, nil
}

// stripJSONFences removes a markdown code fence some models wrap their
// JSON reply in.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func truncateForLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
