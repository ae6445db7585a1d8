package panel

import (
	"context"
	"strings"
	"sync"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"
)

type ChatAPI interface {
	Chat(ctx context.Context, message string) (string, error)
}

type ChatState struct {
	Messages []client.ChatMessage
	Loading  bool
	Err      string
}

// ChatPanel keeps an append-only transcript for the lifetime of the panel.
type ChatPanel struct {
	api    ChatAPI
	logger logger.ILogger

	mu    sync.Mutex
	state ChatState
}

func NewChatPanel(api ChatAPI, log logger.ILogger) *ChatPanel {
	return &ChatPanel{api: api, logger: log}
}

func (p *ChatPanel) State() ChatState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Messages = append([]client.ChatMessage(nil), p.state.Messages...)
	return s
}

// Send appends the user's message at once and the assistant's reply when it
// arrives. Blank messages are ignored.
func (p *ChatPanel) Send(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return nil
	}

	p.mu.Lock()
	if p.state.Loading {
		p.mu.Unlock()
		return ErrBusy
	}
	p.state.Loading = true
	p.state.Err = ""
	p.state.Messages = append(p.state.Messages, client.ChatMessage{Role: client.RoleUser, Content: message})
	p.mu.Unlock()

	reply, err := p.api.Chat(ctx, message)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Loading = false
	if err != nil {
		p.state.Err = errorText(err)
		p.logger.Warn("Chat", "Assistant request failed", map[string]interface{}{"error": err.Error()})
		return err
	}
	p.state.Messages = append(p.state.Messages, client.ChatMessage{Role: client.RoleAssistant, Content: reply})
	return nil
}
