package llm

import (
	"context"
	"fmt"
	"os"
)

// Generator is the narrow contract the session controller depends on.
type Generator interface {
	GenerateContent(ctx context.Context, contents []Content) (string, error)
}

type Model string

const (
	Gemini Model = "gemini"
	OpenAI Model = "openai"
)

// NewGenerator builds the provider named by model, reading its key from the
// environment. Gemini is the default.
func NewGenerator(model Model) (Generator, error) {
	switch model {
	case Gemini, "":
		return NewGeminiClient(os.Getenv("GEMINI_API_KEY")), nil
	case OpenAI:
		return NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL")), nil
	default:
		return nil, fmt.Errorf("unsupported model: %s (supported: %s, %s)", model, Gemini, OpenAI)
	}
}
