package service

import (
	"context"
	"fmt"
	"time"

	"talentscope/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

type OpenRouterService struct {
	APIKey    string
	ModelName string
	client    *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		APIKey:    cfg.APIKey,
		ModelName: cfg.Model,
		client:    resty.New().SetTimeout(60 * time.Second),
	}
}

func (s *OpenRouterService) Model() string {
	return s.ModelName
}

func (s *OpenRouterService) Ask(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.ModelName,
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": userMessage},
			},
		}).
		Post(openRouterEndpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned status %d: %s", resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
