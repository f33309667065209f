package service

import (
	"context"
	"encoding/json"
	"log"

	"redpotion-core/audit-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start loops forever; a bad message is logged and skipped, never fatal.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[audit-svc] starting order-events consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("[audit-svc] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[audit-svc] error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(event)
	}
}

func (c *Consumer) ProcessEvent(event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderCreated, domain.EventSlipSubmitted,
		domain.EventSlipApproved, domain.EventSlipRejected:
	default:
		return
	}

	if err := c.Store.RecordEvent(event); err != nil {
		log.Printf("[audit-svc] error recording event %s for order %s: %v",
			event.Type, event.OrderID, err)
		return
	}

	if err := c.Store.BumpDailyCounter(event.RestaurantID, event.Type); err != nil {
		log.Printf("[audit-svc] error bumping daily counter: %v", err)
		return
	}

	if event.Type == domain.EventSlipApproved {
		if err := c.Store.BumpPaymentCounter(event.RestaurantID); err != nil {
			log.Printf("[audit-svc] error bumping payment counter: %v", err)
			return
		}
	}

	log.Printf("[audit-svc] recorded %s for order %s", event.Type, event.OrderID)
}
