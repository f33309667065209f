package service

import (
	"context"

	"redpotion-core/audit-svc/internal/domain"
	"redpotion-core/audit-svc/internal/storage"
)

type StoreInterface interface {
	RecordEvent(event domain.OrderEvent) error
	BumpDailyCounter(restaurantID, eventType string) error
	BumpPaymentCounter(restaurantID string) error
	DailySummary(restaurantID, date string) (map[string]int64, error)
	TopPaidRestaurants(date string, limit int) ([]domain.RestaurantPayments, error)
	OrderEvents(orderID string) ([]domain.AuditRecord, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(event domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
var _ ConsumerInterface = (*Consumer)(nil)
