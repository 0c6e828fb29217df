package consumer

import (
	"context"
	"log"

	"github.com/eyesoft/studio-backend/internal/events"
	"github.com/eyesoft/studio-backend/internal/mailer"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationConsumer turns scheduled booking notifications into outbound
// emails. Send failures are terminal: the mailer absorbs them into a result,
// so every well-formed message is acked exactly once and never requeued.
type NotificationConsumer struct {
	sender mailer.Sender
}

func NewNotificationConsumer(sender mailer.Sender) *NotificationConsumer {
	return &NotificationConsumer{sender: sender}
}

// Start drains deliveries on a background goroutine until the channel closes.
func (nc *NotificationConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			nc.handleMessage(msg)
		}
		log.Println("[NotificationConsumer] channel closed, stopping consumer")
	}()
}

func (nc *NotificationConsumer) handleMessage(msg amqp.Delivery) {
	ctx := context.Background()

	switch msg.RoutingKey {
	case events.RKBookingConfirmation:
		payload, err := events.Unmarshal[events.BookingConfirmation](msg.Body)
		if err != nil {
			log.Printf("[NotificationConsumer] bad confirmation payload: %v", err)
			_ = msg.Nack(false, false)
			return
		}
		if res := nc.sender.SendConfirmation(ctx, payload); !res.Success {
			log.Printf("[NotificationConsumer] confirmation for %s failed: %s", payload.BookingID, res.Error)
		}

	case events.RKBookingAdminAlert:
		payload, err := events.Unmarshal[events.BookingAdminAlert](msg.Body)
		if err != nil {
			log.Printf("[NotificationConsumer] bad admin alert payload: %v", err)
			_ = msg.Nack(false, false)
			return
		}
		if res := nc.sender.SendAdminAlert(ctx, payload); !res.Success {
			log.Printf("[NotificationConsumer] admin alert for %s failed: %s", payload.BookingID, res.Error)
		}

	default:
		log.Printf("[NotificationConsumer] skip unknown routing key %s", msg.RoutingKey)
	}

	_ = msg.Ack(false)
}
