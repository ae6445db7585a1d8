package panel

import (
	"context"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"golang.org/x/sync/errgroup"
)

// API is everything the workspace panels call. *client.Client implements it.
type API interface {
	SearchAPI
	GenericAPI
	SavedAPI
	EssentialsAPI
	KendraAPI
	ChatAPI
}

var _ API = (*client.Client)(nil)

// Workspace mounts the six panels for a signed-in user. Panels share only
// the session; they never read each other's state.
type Workspace struct {
	Session    client.Session
	Search     *SearchPanel
	Generic    *GenericPanel
	Saved      *SavedPanel
	Essentials *EssentialsPanel
	Locator    *LocatorPanel
	Chat       *ChatPanel

	bus    *gochannel.GoChannel
	logger logger.ILogger
}

// NewWorkspace returns ErrNoSession when nobody is signed in; the caller
// should show the AuthController instead.
func NewWorkspace(api API, holder *SessionHolder, geolocator Geolocator, log logger.ILogger) (*Workspace, error) {
	session := holder.Current()
	if !session.Active() {
		return nil, ErrNoSession
	}

	bus := NewEventBus()
	w := &Workspace{
		Session:    session,
		Search:     NewSearchPanel(api, session, bus, log),
		Generic:    NewGenericPanel(api, log),
		Saved:      NewSavedPanel(api, session, log),
		Essentials: NewEssentialsPanel(api, log),
		Locator:    NewLocatorPanel(api, geolocator, log),
		Chat:       NewChatPanel(api, log),
		bus:        bus,
		logger:     log,
	}

	if err := w.Saved.Subscribe(bus); err != nil {
		_ = bus.Close()
		return nil, err
	}
	return w, nil
}

// Mount runs the initial loads concurrently. Failures are recorded on the
// panel that owns them; the first one is also returned for logging.
func (w *Workspace) Mount(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return w.Saved.Refresh(ctx) })
	g.Go(func() error { return w.Essentials.LoadCategories(ctx) })

	err := g.Wait()
	if err != nil {
		w.logger.Warn("Workspace", "Mount finished with errors", map[string]interface{}{"error": err.Error()})
	}
	return err
}

// Close stops the saved-list subscription and shuts the event bus down.
func (w *Workspace) Close() error {
	w.Saved.Unsubscribe()
	return w.bus.Close()
}
