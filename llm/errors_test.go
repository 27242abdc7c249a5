package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryUnknown},
		{"sentinel not configured", ErrNotConfigured, CategoryNotConfigured},
		{"wrapped invalid key", fmt.Errorf("%w: status 403", ErrInvalidKey), CategoryInvalidKey},
		{"wrapped quota", fmt.Errorf("%w: status 429", ErrQuota), CategoryQuota},
		{"wrapped rate limit", fmt.Errorf("%w: status 429", ErrRateLimited), CategoryRateLimited},
		{"wrapped network", fmt.Errorf("%w: dial tcp", ErrNetwork), CategoryNetwork},
		{"substring api_key_invalid", errors.New("API_KEY_INVALID: check console"), CategoryInvalidKey},
		{"quota wins over 429 in message", errors.New("429: quota exceeded for project"), CategoryQuota},
		{"substring 429", errors.New("status 429 returned"), CategoryRateLimited},
		{"substring resource exhausted", errors.New("RESOURCE_EXHAUSTED"), CategoryRateLimited},
		{"substring timeout", errors.New("context timeout while dialing"), CategoryNetwork},
		{"substring no such host", errors.New("lookup api: no such host"), CategoryNetwork},
		{"unrecognized", errors.New("something odd"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.err); got != tt.want {
				t.Errorf("Categorize(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestUnconfiguredClientFailsFast(t *testing.T) {
	client := NewGeminiClient("")

	_, err := client.GenerateContent(context.Background(), nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	client = NewGeminiClient("short")
	_, err = client.GenerateContent(context.Background(), nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured for short key, got %v", err)
	}
}
