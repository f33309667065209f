package service

import (
	"context"

	"redpotion-core/cart-svc/internal/domain"
)

type CartServiceInterface interface {
	Get(ctx context.Context, restaurantID, role string) domain.CartSummary
	AddItem(ctx context.Context, restaurantID, role string, item domain.MenuItem, addOns []domain.AddOn, quantity int) (domain.CartSummary, error)
	UpdateQuantity(ctx context.Context, restaurantID, role, itemID string, quantity int) domain.CartSummary
	RemoveItem(ctx context.Context, restaurantID, role, itemID string) domain.CartSummary
	Clear(ctx context.Context, restaurantID, role string)
}

type CartStore interface {
	CartKey(restaurantID, role string) string
	Load(ctx context.Context, restaurantID, role string) []domain.CartLineItem
	Save(ctx context.Context, restaurantID, role string, items []domain.CartLineItem)
	Clear(ctx context.Context, restaurantID, role string)
}

var _ CartServiceInterface = (*CartService)(nil)
