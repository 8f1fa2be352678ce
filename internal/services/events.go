package services

import (
	"log"

	"saham/pkg/rabbitmq"
)

// publishActivity sends an activity event to RabbitMQ on a best-effort
// basis. Publishing happens after the row is persisted and a failure is only
// logged: the event feed must never change what was stored.
func publishActivity(mqClient *rabbitmq.Client, event string, payload map[string]interface{}) {
	if mqClient == nil {
		log.Printf("RabbitMQ client is not initialized. Skipping %s event.", event)
		return
	}
	if err := mqClient.PublishActivity(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}
