package panel

import (
	"context"
	"encoding/json"
	"sync"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"

	"github.com/ThreeDotsLabs/watermill/message"
)

type SavedAPI interface {
	Saved(ctx context.Context, username string) ([]client.Medicine, error)
}

type SavedState struct {
	Loading bool
	Items   []client.Medicine
	Err     string
}

// SavedPanel shows the user's saved medicines. The server owns the list; the
// panel only ever replaces it with a fresh read.
type SavedPanel struct {
	api     SavedAPI
	session client.Session
	logger  logger.ILogger

	mu    sync.Mutex
	state SavedState
	seq   sequencer

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSavedPanel(api SavedAPI, session client.Session, log logger.ILogger) *SavedPanel {
	return &SavedPanel{
		api:     api,
		session: session,
		logger:  log,
	}
}

func (p *SavedPanel) State() SavedState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Items = append([]client.Medicine(nil), p.state.Items...)
	return s
}

// Refresh re-reads the saved list from the server. When reads overlap, only
// the most recently started one is applied.
func (p *SavedPanel) Refresh(ctx context.Context) error {
	token := p.seq.next()

	p.mu.Lock()
	p.state.Loading = true
	p.mu.Unlock()

	items, err := p.api.Saved(ctx, p.session.Username)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.seq.isLatest(token) {
		return nil
	}
	p.state.Loading = false
	if err != nil {
		p.state.Err = errorText(err)
		p.logger.Warn("Saved", "Failed to load saved medicines", map[string]interface{}{"error": err.Error()})
		return err
	}
	p.state.Err = ""
	p.state.Items = items
	return nil
}

// Subscribe refreshes the list on every "save completed" event for this
// user. Each event is acknowledged only after the refresh finished.
func (p *SavedPanel) Subscribe(sub message.Subscriber) error {
	ctx, cancel := context.WithCancel(context.Background())
	messages, err := sub.Subscribe(ctx, TopicMedicineSaved)
	if err != nil {
		cancel()
		return err
	}

	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		for msg := range messages {
			p.handle(ctx, msg)
		}
	}()
	return nil
}

func (p *SavedPanel) handle(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload medicineSavedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		p.logger.Warn("Saved", "Dropping malformed event", map[string]interface{}{"error": err.Error()})
		return
	}
	if payload.Username != p.session.Username {
		return
	}
	_ = p.Refresh(ctx)
}

// Unsubscribe stops the event handler and waits for it to exit.
func (p *SavedPanel) Unsubscribe() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
}
