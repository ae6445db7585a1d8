package panel

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"

	"github.com/ThreeDotsLabs/watermill/message"
)

type SearchAPI interface {
	Search(ctx context.Context, query string) ([]client.Medicine, error)
	Save(ctx context.Context, username string, medicineID uint) error
}

type SearchState struct {
	Query   string
	Loading bool
	Results []client.Medicine
	Err     string

	Saving  bool
	SaveErr string
}

type SearchPanel struct {
	api     SearchAPI
	session client.Session
	events  message.Publisher
	logger  logger.ILogger

	mu    sync.Mutex
	state SearchState
}

func NewSearchPanel(api SearchAPI, session client.Session, events message.Publisher, log logger.ILogger) *SearchPanel {
	return &SearchPanel{
		api:     api,
		session: session,
		events:  events,
		logger:  log,
	}
}

func (p *SearchPanel) State() SearchState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Results = append([]client.Medicine(nil), p.state.Results...)
	return s
}

// Search replaces the result set with the matches for query. A blank query
// is ignored without contacting the server.
func (p *SearchPanel) Search(ctx context.Context, query string) error {
	p.mu.Lock()
	if p.state.Loading {
		p.mu.Unlock()
		return ErrBusy
	}
	p.state.Query = query
	if strings.TrimSpace(query) == "" {
		p.mu.Unlock()
		return nil
	}
	p.state.Loading = true
	p.state.Results = nil
	p.state.Err = ""
	p.mu.Unlock()

	results, err := p.api.Search(ctx, query)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Loading = false
	if err != nil {
		p.state.Err = errorText(err)
		p.logger.Warn("Search", "Search failed", map[string]interface{}{"query": query, "error": err.Error()})
		return err
	}
	p.state.Results = results
	return nil
}

// Save adds a medicine to the user's saved list and announces it on the
// event bus. It returns once subscribers have handled the announcement.
func (p *SearchPanel) Save(ctx context.Context, medicineID uint) error {
	if !p.session.Active() {
		return ErrNoSession
	}

	p.mu.Lock()
	if p.state.Saving {
		p.mu.Unlock()
		return ErrBusy
	}
	p.state.Saving = true
	p.state.SaveErr = ""
	p.mu.Unlock()

	err := p.api.Save(ctx, p.session.Username, medicineID)
	if err == nil {
		if pubErr := publishMedicineSaved(p.events, p.session.Username, medicineID); pubErr != nil {
			err = fmt.Errorf("announce saved medicine: %w", pubErr)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Saving = false
	if err != nil {
		p.state.SaveErr = errorText(err)
		p.logger.Warn("Search", "Save failed", map[string]interface{}{"medicine_id": medicineID, "error": err.Error()})
		return err
	}
	return nil
}
