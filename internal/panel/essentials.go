package panel

import (
	"context"
	"sync"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"
)

type EssentialsAPI interface {
	Categories(ctx context.Context) ([]string, error)
	Essentials(ctx context.Context, category string) ([]client.Medicine, error)
}

type EssentialsState struct {
	Categories []string
	Selected   string
	Loading    bool
	Items      []client.Medicine
	Err        string
}

type EssentialsPanel struct {
	api    EssentialsAPI
	logger logger.ILogger
	seq    sequencer

	mu    sync.Mutex
	state EssentialsState
}

func NewEssentialsPanel(api EssentialsAPI, log logger.ILogger) *EssentialsPanel {
	return &EssentialsPanel{api: api, logger: log}
}

func (p *EssentialsPanel) State() EssentialsState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Categories = append([]string(nil), p.state.Categories...)
	s.Items = append([]client.Medicine(nil), p.state.Items...)
	return s
}

// LoadCategories fetches the category list shown when the panel mounts.
func (p *EssentialsPanel) LoadCategories(ctx context.Context) error {
	categories, err := p.api.Categories(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state.Err = errorText(err)
		p.logger.Warn("Essentials", "Failed to load categories", map[string]interface{}{"error": err.Error()})
		return err
	}
	p.state.Categories = categories
	return nil
}

// Select shows the medicines of category, replacing whatever was listed.
// When selections overlap, only the last one's response is applied.
func (p *EssentialsPanel) Select(ctx context.Context, category string) error {
	token := p.seq.next()

	p.mu.Lock()
	p.state.Selected = category
	p.state.Loading = true
	p.state.Items = nil
	p.state.Err = ""
	p.mu.Unlock()

	items, err := p.api.Essentials(ctx, category)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.seq.isLatest(token) {
		return nil
	}
	p.state.Loading = false
	if err != nil {
		p.state.Err = errorText(err)
		p.logger.Warn("Essentials", "Failed to load category", map[string]interface{}{"category": category, "error": err.Error()})
		return err
	}
	p.state.Items = items
	return nil
}
