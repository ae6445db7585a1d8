package panel

import (
	"errors"

	"medinfo-be/pkg/client"
)

var (
	// ErrBusy is returned when a guarded panel is asked to start a request
	// while its previous one is still loading.
	ErrBusy = errors.New("panel is busy")

	// ErrNoSession means the auth screen must be shown instead of the workspace.
	ErrNoSession = errors.New("no active session")

	ErrEmptyPost = errors.New("title and content are required")
)

// errorText is what a panel shows for a failed request.
func errorText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
