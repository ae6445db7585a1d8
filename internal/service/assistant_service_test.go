package service

import (
	"context"
	"errors"
	"testing"

	"medinfo-be/internal/dto"
	"medinfo-be/pkg/llm"
	"medinfo-be/pkg/llm/echo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	history []llm.Message
	options *llm.Options
	reply   string
	err     error
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.history = history
	p.options = llm.ApplyOptions(llm.Options{}, options...)
	return p.reply, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestAssistantService_Chat(t *testing.T) {
	ctx := context.Background()
	log := &recordingLogger{}

	t.Run("sends the system prompt and the message", func(t *testing.T) {
		provider := &stubProvider{reply: "Drink water."}
		svc := NewAssistantService(provider, log)

		res, err := svc.Chat(ctx, &dto.ChatRequest{Message: "I have a cold"})
		require.NoError(t, err)
		assert.Equal(t, "Drink water.", res.Response)

		require.Len(t, provider.history, 2)
		assert.Equal(t, "system", provider.history[0].Role)
		assert.Equal(t, medicalSystemPrompt, provider.history[0].Content)
		assert.Equal(t, llm.Message{Role: "user", Content: "I have a cold"}, provider.history[1])
		assert.InDelta(t, 0.3, provider.options.Temperature, 1e-9)
	})

	t.Run("blank message never reaches the provider", func(t *testing.T) {
		provider := &stubProvider{}
		svc := NewAssistantService(provider, log)

		_, err := svc.Chat(ctx, &dto.ChatRequest{Message: "  \n"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, provider.history)
	})

	t.Run("provider failure is wrapped", func(t *testing.T) {
		boom := errors.New("model offline")
		svc := NewAssistantService(&stubProvider{err: boom}, log)

		_, err := svc.Chat(ctx, &dto.ChatRequest{Message: "hello"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("echo provider", func(t *testing.T) {
		svc := NewAssistantService(echo.NewEchoProvider(), log)

		res, err := svc.Chat(ctx, &dto.ChatRequest{Message: "what is ibuprofen?"})
		require.NoError(t, err)
		assert.Equal(t, "AI says: You asked 'what is ibuprofen?'", res.Response)
	})
}
