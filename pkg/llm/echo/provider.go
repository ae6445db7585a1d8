// Package echo answers without a model. It is the default provider so the
// assistant endpoint works with no LLM configured.
package echo

import (
	"context"
	"fmt"

	"medinfo-be/pkg/llm"
)

type EchoProvider struct{}

var _ llm.LLMProvider = &EchoProvider{}

func NewEchoProvider() *EchoProvider {
	return &EchoProvider{}
}

func (p *EchoProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return fmt.Sprintf("AI says: You asked '%s'", llm.LastUserMessage(history)), nil
}

func (p *EchoProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
