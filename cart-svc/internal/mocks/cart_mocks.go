package mocks

import (
	"context"
	"testing"

	"redpotion-core/cart-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CartStore struct {
	mock.Mock
}

func NewCartStore(t *testing.T) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartStore) CartKey(restaurantID, role string) string {
	args := m.Called(restaurantID, role)
	return args.String(0)
}

func (m *CartStore) Load(ctx context.Context, restaurantID, role string) []domain.CartLineItem {
	args := m.Called(ctx, restaurantID, role)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.CartLineItem)
}

func (m *CartStore) Save(ctx context.Context, restaurantID, role string, items []domain.CartLineItem) {
	m.Called(ctx, restaurantID, role, items)
}

func (m *CartStore) Clear(ctx context.Context, restaurantID, role string) {
	m.Called(ctx, restaurantID, role)
}

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t *testing.T) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartServiceInterface) Get(ctx context.Context, restaurantID, role string) domain.CartSummary {
	args := m.Called(ctx, restaurantID, role)
	return args.Get(0).(domain.CartSummary)
}

func (m *CartServiceInterface) AddItem(ctx context.Context, restaurantID, role string, item domain.MenuItem, addOns []domain.AddOn, quantity int) (domain.CartSummary, error) {
	args := m.Called(ctx, restaurantID, role, item, addOns, quantity)
	return args.Get(0).(domain.CartSummary), args.Error(1)
}

func (m *CartServiceInterface) UpdateQuantity(ctx context.Context, restaurantID, role, itemID string, quantity int) domain.CartSummary {
	args := m.Called(ctx, restaurantID, role, itemID, quantity)
	return args.Get(0).(domain.CartSummary)
}

func (m *CartServiceInterface) RemoveItem(ctx context.Context, restaurantID, role, itemID string) domain.CartSummary {
	args := m.Called(ctx, restaurantID, role, itemID)
	return args.Get(0).(domain.CartSummary)
}

func (m *CartServiceInterface) Clear(ctx context.Context, restaurantID, role string) {
	m.Called(ctx, restaurantID, role)
}
