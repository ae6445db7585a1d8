package huggingface

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medinfo-be/pkg/llm"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://router.huggingface.co/v1"

type HuggingFaceProvider struct {
	model  string
	client *resty.Client
}

var _ llm.LLMProvider = &HuggingFaceProvider{}

// OpenAI compatible request/response shapes
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []llm.Message   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewHuggingFaceProvider(apiKey, baseURL, model string) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(60 * time.Second)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &HuggingFaceProvider{model: model, client: client}
}

func (p *HuggingFaceProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := llm.ApplyOptions(llm.Options{Model: p.model, MaxTokens: 500}, options...)

	body := chatRequest{Model: opts.Model, Messages: history, MaxTokens: opts.MaxTokens}
	if opts.JSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var out chatResponse
	res, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}

	if out.Error != nil {
		return "", fmt.Errorf("huggingface api returned error: %s", out.Error.Message)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("huggingface api error (status %d): %s", res.StatusCode(), res.String())
	}
	if len(out.Choices) == 0 {
		return "", errors.New("empty choices from huggingface api")
	}

	return out.Choices[0].Message.Content, nil
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
