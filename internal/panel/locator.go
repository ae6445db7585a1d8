package panel

import (
	"context"
	"errors"
	"sync"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"
)

// FallbackLocation is used when the device location is unavailable (New Delhi).
var FallbackLocation = client.Location{Lat: 28.6139, Lng: 77.2090}

var ErrLocationUnavailable = errors.New("location unavailable")

type Geolocator interface {
	Locate(ctx context.Context) (client.Location, error)
}

// StaticGeolocator reports a fixed location, or ErrLocationUnavailable when nil.
type StaticGeolocator struct {
	Location *client.Location
}

func (g StaticGeolocator) Locate(ctx context.Context) (client.Location, error) {
	if g.Location == nil {
		return client.Location{}, ErrLocationUnavailable
	}
	return *g.Location, nil
}

type KendraAPI interface {
	NearbyKendras(ctx context.Context, loc client.Location) ([]client.Kendra, error)
}

type LocatorPhase int

const (
	PhaseIdle LocatorPhase = iota
	PhaseAwaitingLocation
	PhaseHasLocation
	PhaseFetching
	PhaseHasResults
)

func (p LocatorPhase) String() string {
	switch p {
	case PhaseAwaitingLocation:
		return "awaiting-location"
	case PhaseHasLocation:
		return "has-location"
	case PhaseFetching:
		return "fetching"
	case PhaseHasResults:
		return "has-results"
	default:
		return "idle"
	}
}

type LocatorState struct {
	Phase        LocatorPhase
	Loading      bool
	Location     client.Location
	HasLocation  bool
	UsedFallback bool
	Kendras      []client.Kendra
}

// LocatorPanel finds Kendras near the user. The first FindNearMe only
// resolves the location; later calls fetch the nearby list.
type LocatorPanel struct {
	api        KendraAPI
	geolocator Geolocator
	logger     logger.ILogger
	seq        sequencer

	mu      sync.Mutex
	state   LocatorState
	lastErr error
}

func NewLocatorPanel(api KendraAPI, geolocator Geolocator, log logger.ILogger) *LocatorPanel {
	return &LocatorPanel{
		api:        api,
		geolocator: geolocator,
		logger:     log,
	}
}

func (p *LocatorPanel) State() LocatorState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Kendras = append([]client.Kendra(nil), p.state.Kendras...)
	return s
}

// LastError is the cause of the most recent failed fetch. It is kept for
// logging only and never shown to the user.
func (p *LocatorPanel) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

func (p *LocatorPanel) FindNearMe(ctx context.Context) error {
	p.mu.Lock()
	hasLocation := p.state.HasLocation
	loc := p.state.Location
	p.state.Loading = true
	p.state.Kendras = nil
	p.mu.Unlock()

	if !hasLocation {
		p.resolveLocation(ctx)
		return nil
	}

	p.fetch(ctx, loc)
	return nil
}

func (p *LocatorPanel) resolveLocation(ctx context.Context) {
	p.mu.Lock()
	p.state.Phase = PhaseAwaitingLocation
	p.mu.Unlock()

	loc, err := p.geolocator.Locate(ctx)
	usedFallback := false
	if err != nil {
		p.logger.Info("Locator", "Location unavailable, using fallback", map[string]interface{}{"error": err.Error()})
		loc = FallbackLocation
		usedFallback = true
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Location = loc
	p.state.HasLocation = true
	p.state.UsedFallback = usedFallback
	p.state.Phase = PhaseHasLocation
	p.state.Loading = false
}

func (p *LocatorPanel) fetch(ctx context.Context, loc client.Location) {
	token := p.seq.next()

	p.mu.Lock()
	p.state.Phase = PhaseFetching
	p.mu.Unlock()

	kendras, err := p.api.NearbyKendras(ctx, loc)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.seq.isLatest(token) {
		return
	}
	p.state.Loading = false
	p.state.Phase = PhaseHasResults
	if err != nil {
		p.lastErr = err
		p.state.Kendras = nil
		p.logger.Warn("Locator", "Nearby lookup failed", map[string]interface{}{
			"lat":   loc.Lat,
			"lng":   loc.Lng,
			"error": err.Error(),
		})
		return
	}
	p.lastErr = nil
	p.state.Kendras = kendras
}
