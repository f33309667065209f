package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"redpotion-core/cart-svc/internal/domain"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrWrongRestaurant = errors.New("item belongs to a different restaurant")
)

// CartService applies mutations against the last stored state and writes the
// whole list back on every change. There is no merge across concurrent
// writers, last writer wins.
type CartService struct {
	store CartStore
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

// CompositeKey makes the same multiset of add-ons produce the same line key
// regardless of selection order. An item without add-ons keeps its bare id.
func CompositeKey(baseItemID string, addOns []domain.AddOn) string {
	if len(addOns) == 0 {
		return baseItemID
	}
	ids := make([]string, 0, len(addOns))
	for _, a := range addOns {
		ids = append(ids, a.ID)
	}
	sort.Strings(ids)
	return baseItemID + "-addons-" + strings.Join(ids, "-")
}

// LineTotal charges each add-on per unit, scaled by the line quantity.
func LineTotal(item domain.CartLineItem) int64 {
	unit := item.Price
	for _, a := range item.AddOns {
		unit += a.Price
	}
	return unit * int64(item.Quantity)
}

func CartTotal(items []domain.CartLineItem) int64 {
	var total int64
	for _, item := range items {
		total += LineTotal(item)
	}
	return total
}

func ItemCount(items []domain.CartLineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func summarize(items []domain.CartLineItem) domain.CartSummary {
	return domain.CartSummary{
		Items:     items,
		Total:     CartTotal(items),
		ItemCount: ItemCount(items),
	}
}

func (s *CartService) Get(ctx context.Context, restaurantID, role string) domain.CartSummary {
	return summarize(s.store.Load(ctx, restaurantID, role))
}

func (s *CartService) AddItem(ctx context.Context, restaurantID, role string, item domain.MenuItem, addOns []domain.AddOn, quantity int) (domain.CartSummary, error) {
	if quantity < 1 {
		return domain.CartSummary{}, ErrInvalidQuantity
	}
	if item.RestaurantID != "" && item.RestaurantID != restaurantID {
		return domain.CartSummary{}, ErrWrongRestaurant
	}

	items := s.store.Load(ctx, restaurantID, role)
	key := CompositeKey(item.ID, addOns)

	found := false
	for i := range items {
		if items[i].ItemID == key {
			items[i].Quantity += quantity
			found = true
			break
		}
	}

	if !found {
		items = append(items, domain.CartLineItem{
			ItemID:        key,
			Name:          item.Name,
			Description:   item.Description,
			Category:      item.Category,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Quantity:      quantity,
			AddOns:        addOns,
			RestaurantID:  restaurantID,
		})
	}

	s.store.Save(ctx, restaurantID, role, items)
	return summarize(items), nil
}

// UpdateQuantity with a quantity of zero or below removes the line, same as
// RemoveItem.
func (s *CartService) UpdateQuantity(ctx context.Context, restaurantID, role, itemID string, quantity int) domain.CartSummary {
	if quantity <= 0 {
		return s.RemoveItem(ctx, restaurantID, role, itemID)
	}

	items := s.store.Load(ctx, restaurantID, role)
	for i := range items {
		if items[i].ItemID == itemID {
			items[i].Quantity = quantity
			break
		}
	}

	s.store.Save(ctx, restaurantID, role, items)
	return summarize(items)
}

func (s *CartService) RemoveItem(ctx context.Context, restaurantID, role, itemID string) domain.CartSummary {
	items := s.store.Load(ctx, restaurantID, role)

	kept := items[:0]
	for _, item := range items {
		if item.ItemID != itemID {
			kept = append(kept, item)
		}
	}

	s.store.Save(ctx, restaurantID, role, kept)
	return summarize(kept)
}

func (s *CartService) Clear(ctx context.Context, restaurantID, role string) {
	s.store.Clear(ctx, restaurantID, role)
}
