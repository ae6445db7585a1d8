package panel

import (
	"context"
	"sync"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"
)

type GenericAPI interface {
	Generic(ctx context.Context, name string) (client.GenericResult, error)
}

type GenericState struct {
	Name    string
	Loading bool
	Result  client.GenericResult
	Err     string
}

type GenericPanel struct {
	api    GenericAPI
	logger logger.ILogger

	mu    sync.Mutex
	state GenericState
}

func NewGenericPanel(api GenericAPI, log logger.ILogger) *GenericPanel {
	return &GenericPanel{api: api, logger: log}
}

func (p *GenericPanel) State() GenericState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Result.Brands = append([]client.Brand(nil), p.state.Result.Brands...)
	return s
}

// Lookup shows either the generic with its brands or the server's error text.
func (p *GenericPanel) Lookup(ctx context.Context, name string) error {
	p.mu.Lock()
	if p.state.Loading {
		p.mu.Unlock()
		return ErrBusy
	}
	p.state.Name = name
	p.state.Loading = true
	p.state.Result = client.GenericResult{}
	p.state.Err = ""
	p.mu.Unlock()

	result, err := p.api.Generic(ctx, name)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Loading = false
	if err != nil {
		p.state.Err = errorText(err)
		p.logger.Warn("Generic", "Lookup failed", map[string]interface{}{"name": name, "error": err.Error()})
		return err
	}
	p.state.Result = result
	return nil
}
