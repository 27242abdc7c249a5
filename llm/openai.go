package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fuatnargis/telyna-ai/config"
)

const openaiURL = "https://api.openai.com/v1/chat/completions"

// OpenAIClient is the alternate provider behind the same Generator
// interface, for OpenAI-compatible chat-completion endpoints.
type OpenAIClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if apiKey == "" {
		config.Logger.Error("OPENAI_API_KEY is not set")
	}
	return &OpenAIClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *OpenAIClient) GenerateContent(ctx context.Context, contents []Content) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	// The chat-completion message shape differs from Gemini's: one content
	// string per entry, assistant instead of model.
	messages := make([]map[string]interface{}, 0, len(contents))
	for _, content := range contents {
		role := "user"
		if content.Role == RoleModel {
			role = "assistant"
		}
		text := ""
		if len(content.Parts) > 0 {
			text = content.Parts[0].Text
		}
		messages = append(messages, map[string]interface{}{
			"role":    role,
			"content": text,
		})
	}

	body := map[string]interface{}{
		"model":       c.model,
		"messages":    messages,
		"temperature": config.GenTemperature,
		"top_p":       config.GenTopP,
		"max_tokens":  config.GenMaxOutputTokens,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openaiURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return "", fmt.Errorf("%w: status %d", ErrInvalidKey, resp.StatusCode)
		}
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	return extractTextFromOpenAIResponse(res)
}

// Extract text from OpenAI API response
func extractTextFromOpenAIResponse(res map[string]interface{}) (string, error) {
	choices, ok := res["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid choice format")
	}

	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("no message in choice")
	}

	text, ok := message["content"].(string)
	if !ok {
		return "", fmt.Errorf("no content in message")
	}

	return text, nil
}
