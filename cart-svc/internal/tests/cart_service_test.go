package tests

import (
	"context"
	"testing"

	"redpotion-core/cart-svc/internal/domain"
	"redpotion-core/cart-svc/internal/service"
	"redpotion-core/cart-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupCartService(t *testing.T) (*service.CartService, *storage.RedisCartStore) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := storage.NewRedisCartStore(rdb)
	return service.NewCartService(store), store
}

func TestCompositeKey_Deterministic(t *testing.T) {
	a := service.CompositeKey("item-1", []domain.AddOn{{ID: "cheese"}, {ID: "bacon"}})
	b := service.CompositeKey("item-1", []domain.AddOn{{ID: "bacon"}, {ID: "cheese"}})

	assert.Equal(t, a, b)
	assert.Equal(t, "item-1-addons-bacon-cheese", a)
	assert.Equal(t, "item-1", service.CompositeKey("item-1", nil))
}

func TestCartService_AddItem(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	item := domain.MenuItem{ID: "pad-thai", RestaurantID: "r1", Name: "Pad Thai", Price: 80}

	summary, err := svc.AddItem(ctx, "r1", "customer", item, nil, 1)
	assert.NoError(t, err)
	assert.Len(t, summary.Items, 1)
	assert.Equal(t, 1, summary.ItemCount)

	// Same composite key increments the existing line.
	summary, err = svc.AddItem(ctx, "r1", "customer", item, nil, 2)
	assert.NoError(t, err)
	assert.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.Items[0].Quantity)

	// Different add-on signature opens a new line.
	summary, err = svc.AddItem(ctx, "r1", "customer", item, []domain.AddOn{{ID: "egg", Name: "Egg", Price: 10}}, 1)
	assert.NoError(t, err)
	assert.Len(t, summary.Items, 2)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "r1", "customer", domain.MenuItem{ID: "x", RestaurantID: "r1"}, nil, 0)
	assert.ErrorIs(t, err, service.ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, "r1", "customer", domain.MenuItem{ID: "x", RestaurantID: "r2"}, nil, 1)
	assert.ErrorIs(t, err, service.ErrWrongRestaurant)
}

func TestCartService_QuantityFloor(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	item := domain.MenuItem{ID: "soup", RestaurantID: "r1", Name: "Tom Yum", Price: 120}

	tests := []struct {
		name     string
		quantity int
	}{
		{"zero_removes_line", 0},
		{"negative_removes_line", -3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, "r1", "customer", item, nil, 2)
			assert.NoError(t, err)

			summary := svc.UpdateQuantity(ctx, "r1", "customer", "soup", testCase.quantity)
			assert.Empty(t, summary.Items)
		})
	}
}

func TestCartService_Totals(t *testing.T) {
	line := domain.CartLineItem{
		Price:    100,
		Quantity: 2,
		AddOns:   []domain.AddOn{{Price: 10}, {Price: 5}},
	}

	// Add-on prices are per unit and scale with quantity.
	assert.Equal(t, int64(230), service.LineTotal(line))

	items := []domain.CartLineItem{line, {Price: 50, Quantity: 1}}
	assert.Equal(t, int64(280), service.CartTotal(items))
	assert.Equal(t, 3, service.ItemCount(items))
}

func TestCartStore_RoundTrip(t *testing.T) {
	_, store := setupCartService(t)
	ctx := context.Background()

	items := []domain.CartLineItem{
		{ItemID: "a", Name: "A", Price: 10, Quantity: 1, RestaurantID: "r1"},
		{ItemID: "b-addons-x-y", Name: "B", Price: 20, Quantity: 2, RestaurantID: "r1",
			AddOns: []domain.AddOn{{ID: "x", Price: 5}, {ID: "y", Price: 3}}},
	}

	store.Save(ctx, "r1", "customer", items)
	assert.Equal(t, items, store.Load(ctx, "r1", "customer"))

	store.Save(ctx, "r1", "customer", []domain.CartLineItem{})
	assert.Empty(t, store.Load(ctx, "r1", "customer"))
}

func TestCartStore_Isolation(t *testing.T) {
	_, store := setupCartService(t)
	ctx := context.Background()

	itemsA := []domain.CartLineItem{{ItemID: "a", Quantity: 1, RestaurantID: "A"}}
	itemsB := []domain.CartLineItem{{ItemID: "b", Quantity: 5, RestaurantID: "B"}}

	store.Save(ctx, "A", "customer", itemsA)
	store.Save(ctx, "B", "customer", itemsB)

	assert.Equal(t, itemsA, store.Load(ctx, "A", "customer"))
	assert.Equal(t, itemsB, store.Load(ctx, "B", "customer"))

	// Role is part of the key too.
	assert.Empty(t, store.Load(ctx, "A", "rider"))
}

func TestCartStore_CorruptPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := storage.NewRedisCartStore(rdb)
	ctx := context.Background()

	mr.Set(store.CartKey("r1", "customer"), "{not json")

	// Corrupt storage degrades to an empty cart, never an error.
	assert.Empty(t, store.Load(ctx, "r1", "customer"))
}

func TestCartService_Clear(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "r1", "customer", domain.MenuItem{ID: "x", RestaurantID: "r1", Price: 10}, nil, 1)
	assert.NoError(t, err)

	svc.Clear(ctx, "r1", "customer")
	assert.Empty(t, svc.Get(ctx, "r1", "customer").Items)
}
