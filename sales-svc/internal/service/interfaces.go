package service

import (
	"context"

	"restaurant-ordering/sales-svc/internal/domain"
	"restaurant-ordering/sales-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, date string, event domain.OrderEvent) error
	DailySales(ctx context.Context, date string, limit int) (domain.DailySales, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.OrderEvent)
}

type SalesServiceInterface interface {
	Today(ctx context.Context, limit int) (domain.DailySales, error)
}

var (
	_ StoreInterface        = (*storage.Store)(nil)
	_ ConsumerInterface     = (*Consumer)(nil)
	_ SalesServiceInterface = (*SalesService)(nil)
)
