package service

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

// Assistant is the external language-model collaborator. Any failure is
// recovered by the caller with the locally composed fallback, so
// implementations just return the error.
type Assistant interface {
	Ask(ctx context.Context, systemPrompt, userMessage string) (string, error)
	Model() string
}

// NewAssistantFromEnv picks the provider from LLM_PROVIDER
// (gemini|openrouter|none). A missing key or unknown provider yields nil,
// which keeps the chat surface in demo mode.
func NewAssistantFromEnv(ctx context.Context, log *logrus.Logger) Assistant {
	provider := os.Getenv("LLM_PROVIDER")
	switch provider {
	case "gemini":
		assistant, err := NewGeminiService(ctx)
		if err != nil {
			log.WithError(err).Warn("gemini assistant unavailable, falling back to demo responses")
			return nil
		}
		return assistant
	case "openrouter":
		assistant := NewOpenRouterService()
		if assistant.APIKey == "" {
			log.Warn("OPENROUTER_API_KEY not set, falling back to demo responses")
			return nil
		}
		return assistant
	case "", "none":
		log.Info("LLM_PROVIDER not set, chat runs in demo mode")
		return nil
	default:
		log.WithField("provider", provider).Warn("unknown LLM provider, chat runs in demo mode")
		return nil
	}
}
