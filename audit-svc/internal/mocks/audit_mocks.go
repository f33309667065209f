package mocks

import (
	"testing"

	"redpotion-core/audit-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t *testing.T) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StoreInterface) RecordEvent(event domain.OrderEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *StoreInterface) BumpDailyCounter(restaurantID, eventType string) error {
	args := m.Called(restaurantID, eventType)
	return args.Error(0)
}

func (m *StoreInterface) BumpPaymentCounter(restaurantID string) error {
	args := m.Called(restaurantID)
	return args.Error(0)
}

func (m *StoreInterface) DailySummary(restaurantID, date string) (map[string]int64, error) {
	args := m.Called(restaurantID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *StoreInterface) TopPaidRestaurants(date string, limit int) ([]domain.RestaurantPayments, error) {
	args := m.Called(date, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RestaurantPayments), args.Error(1)
}

func (m *StoreInterface) OrderEvents(orderID string) ([]domain.AuditRecord, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditRecord), args.Error(1)
}
