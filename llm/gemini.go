package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fuatnargis/telyna-ai/config"
)

const geminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash-8b:generateContent"

// GeminiClient calls the generativelanguage REST endpoint. It is an
// explicit dependency passed into the session controller, never a global.
type GeminiClient struct {
	apiKey     string
	httpClient *http.Client
	configured bool
}

// NewGeminiClient validates the key once at construction. A missing or
// implausibly short key is logged as a diagnostic and every subsequent call
// fails with ErrNotConfigured.
func NewGeminiClient(apiKey string) *GeminiClient {
	c := &GeminiClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	if apiKey == "" || apiKey == "your_gemini_api_key_here" {
		config.Logger.Error("GEMINI_API_KEY is not set")
		return c
	}
	if len(apiKey) < config.MinAPIKeyLength {
		config.Logger.Error("GEMINI_API_KEY appears to be invalid (too short)")
		return c
	}

	c.configured = true
	config.Logger.Infof("Gemini initialized with API key %s...%s", apiKey[:4], apiKey[len(apiKey)-4:])
	return c
}

// GenerateContent sends the framed conversation and returns the single
// complete assistant reply. No streaming, no retries.
func (c *GeminiClient) GenerateContent(ctx context.Context, contents []Content) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured
	}

	body := map[string]interface{}{
		"contents": contents,
		"generationConfig": map[string]interface{}{
			"temperature":     config.GenTemperature,
			"topK":            config.GenTopK,
			"topP":            config.GenTopP,
			"maxOutputTokens": config.GenMaxOutputTokens,
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiURL+"?key="+c.apiKey, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp)
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	return extractTextFromResponse(res)
}

// statusError reads the error body and maps it onto the failure taxonomy.
func (c *GeminiClient) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	body := strings.ToLower(string(raw))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden ||
		strings.Contains(body, "api_key_invalid") || strings.Contains(body, "api key not valid"):
		return fmt.Errorf("%w: status %d", ErrInvalidKey, resp.StatusCode)
	case strings.Contains(body, "quota"):
		return fmt.Errorf("%w: status %d", ErrQuota, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	default:
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}
}

// Extract text from Gemini API response with proper error handling
func extractTextFromResponse(res map[string]interface{}) (string, error) {
	candidates, ok := res["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate, ok := candidates[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid candidate format")
	}

	content, ok := candidate["content"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("no content in candidate")
	}

	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return "", fmt.Errorf("no parts in content")
	}

	part, ok := parts[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid part format")
	}

	text, ok := part["text"].(string)
	if !ok {
		return "", fmt.Errorf("no text in part")
	}

	return text, nil
}
