package service

import (
	"context"
	"fmt"
	"strings"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/llm"
)

const medicalSystemPrompt = `You are MedInfo, a friendly assistant that helps people understand medicines,
generic alternatives and where to buy affordable medicines.

Rules:
- Answer in Markdown. Keep answers short and use bullet points for lists.
- Be empathetic and plain-spoken; avoid jargon unless you explain it.
- Never diagnose and never prescribe doses for a specific person.
- If symptoms sound serious, tell the user to seek medical care immediately.
- End every answer with: "_This is general information, not medical advice. Please consult a doctor or pharmacist._"`

type IAssistantService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type assistantService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewAssistantService(provider llm.LLMProvider, log logger.ILogger) IAssistantService {
	return &assistantService{
		provider: provider,
		logger:   log,
	}
}

// Chat is stateless; each request carries only the user's message.
func (s *assistantService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrInvalidInput
	}

	history := []llm.Message{
		{Role: "system", Content: medicalSystemPrompt},
		{Role: "user", Content: req.Message},
	}

	reply, err := s.provider.Chat(ctx, history, llm.WithTemperature(0.3))
	if err != nil {
		s.logger.Error("Assistant", "LLM call failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("assistant unavailable: %w", err)
	}

	return &dto.ChatResponse{Response: reply}, nil
}
