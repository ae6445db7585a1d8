package panel

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicMedicineSaved carries "save completed" notifications from the
// search panel to the saved-items panel.
const TopicMedicineSaved = "medicine.saved"

type medicineSavedPayload struct {
	Username   string `json:"username"`
	MedicineID uint   `json:"medicine_id"`
}

// NewEventBus returns an in-process bus whose Publish returns only after every
// subscriber has acknowledged the message.
func NewEventBus() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		watermill.NopLogger{},
	)
}

func publishMedicineSaved(pub message.Publisher, username string, medicineID uint) error {
	payload, err := json.Marshal(medicineSavedPayload{Username: username, MedicineID: medicineID})
	if err != nil {
		return err
	}
	return pub.Publish(TopicMedicineSaved, message.NewMessage(watermill.NewUUID(), payload))
}
