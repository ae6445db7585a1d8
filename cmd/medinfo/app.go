package main

import (
	"context"
	"errors"
	"strconv"

	"medinfo-be/internal/config"
	"medinfo-be/internal/panel"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"

	"github.com/spf13/cobra"
)

var errNotSignedIn = errors.New(`not signed in: run "medinfo login" or "medinfo register" first`)

// app bundles what every command needs.
type app struct {
	cfg    *config.Config
	api    *client.Client
	holder *panel.SessionHolder
	logger logger.ILogger
}

func newApp() (*app, error) {
	cfg := config.Load()

	url := cfg.Client.APIURL
	if apiURL != "" {
		url = apiURL
	}

	holder, err := panel.NewSessionHolder(panel.NewFileStore(cfg.Client.SessionFile))
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		api:    client.New(url, client.WithTimeout(timeout)),
		holder: holder,
		logger: logger.NewIsolatedLogger(cfg.Client.LogFilePath),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// geolocator reports the configured coordinates, or none so the locator
// falls back to its default.
func (a *app) geolocator(lat, lng string) panel.Geolocator {
	if lat == "" {
		lat = a.cfg.Client.Latitude
	}
	if lng == "" {
		lng = a.cfg.Client.Longitude
	}

	la, errLat := strconv.ParseFloat(lat, 64)
	ln, errLng := strconv.ParseFloat(lng, 64)
	if errLat != nil || errLng != nil {
		return panel.StaticGeolocator{}
	}
	return panel.StaticGeolocator{Location: &client.Location{Lat: la, Lng: ln}}
}

// withWorkspace mounts the panels for the signed-in user, runs fn and closes
// them. lat and lng override the configured location when set.
func withWorkspace(cmd *cobra.Command, lat, lng string, fn func(ctx context.Context, w *panel.Workspace) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	w, err := panel.NewWorkspace(a.api, a.holder, a.geolocator(lat, lng), a.logger)
	if errors.Is(err, panel.ErrNoSession) {
		return errNotSignedIn
	}
	if err != nil {
		return err
	}
	defer w.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// Mount failures stay on the panels that own them
	_ = w.Mount(ctx)

	return fn(ctx, w)
}
