package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"restaurant-ordering/sales-svc/internal/domain"
)

const dateLayout = "2006-01-02"

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads order events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[sales-svc] starting order events consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Println("[sales-svc] consumer stopped")
				return
			}
			log.Printf("[sales-svc] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[sales-svc] error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

// ProcessEvent counts newly created orders; other event types are ignored.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderCreated {
		return
	}

	at := event.Timestamp
	if at.IsZero() {
		at = time.Now()
	}
	date := at.Format(dateLayout)

	log.Printf("[sales-svc] processing order %d (%d items) for %s", event.OrderID, len(event.Items), date)
	if err := c.Store.RecordOrder(ctx, date, event); err != nil {
		log.Printf("[sales-svc] error recording order: %v", err)
		return
	}
}

type SalesService struct {
	store StoreInterface
	now   func() time.Time
}

func NewSalesService(store StoreInterface, now func() time.Time) *SalesService {
	if now == nil {
		now = time.Now
	}
	return &SalesService{store: store, now: now}
}

func (s *SalesService) Today(ctx context.Context, limit int) (domain.DailySales, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.store.DailySales(ctx, s.now().Format(dateLayout), limit)
}
