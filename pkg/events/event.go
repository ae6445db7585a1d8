package events

import "time"

const (
	TypeUserRegistered = "user.registered"
	TypeMedicineSaved  = "medicine.saved"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the dotted event code, e.g. "medicine.saved".
	EventType() string

	Payload() map[string]interface{}

	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewUserRegistered(username string) Event {
	return BaseEvent{
		Type:       TypeUserRegistered,
		Data:       map[string]interface{}{"username": username},
		OccurredAt: time.Now(),
	}
}

func NewMedicineSaved(username string, medicineId uint) Event {
	return BaseEvent{
		Type:       TypeMedicineSaved,
		Data:       map[string]interface{}{"username": username, "medicine_id": medicineId},
		OccurredAt: time.Now(),
	}
}
