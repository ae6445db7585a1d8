package client

import (
	"encoding/json"
	"fmt"
)

// FallbackErrorMessage is shown when a failed response carries no readable message.
const FallbackErrorMessage = "Error"

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{Status: status, Message: errorMessage(body)}
}

// errorMessage reads "detail", then "message", from a JSON error body.
func errorMessage(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return FallbackErrorMessage
	}
	for _, key := range []string{"detail", "message"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return FallbackErrorMessage
}

type transportError struct {
	op  string
	err error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *transportError) Unwrap() error {
	return e.err
}
