package service

import (
	"context"

	"redpotion-core/catalog-svc/internal/domain"
)

type CatalogServiceInterface interface {
	GetRestaurant(ctx context.Context, identifier string) (*domain.Restaurant, error)
	GetMenu(ctx context.Context, identifier string) (*domain.Menu, error)
	GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error)
}

type AdminServiceInterface interface {
	ListRestaurants(ctx context.Context, page, limit int, status, search string) (*domain.RestaurantPage, error)
	UpdateRestaurant(ctx context.Context, id string, patch domain.RestaurantPatch) (*domain.Restaurant, error)
}

type GalleryServiceInterface interface {
	Fetch(ctx context.Context, restaurantID string) []domain.GalleryImage
}

type CatalogRepository interface {
	GetRestaurant(id string) (*domain.Restaurant, error)
	GetMenu(id string) (*domain.Menu, error)
	GetMenuItem(itemID string) (*domain.MenuItem, error)
	ListRestaurants(offset, limit int, status, search string) ([]domain.Restaurant, int, error)
	UpdateRestaurant(id string, patch domain.RestaurantPatch) (*domain.Restaurant, error)
}

type MenuCache interface {
	MenuKey(restaurantID string) string
	GetMenu(ctx context.Context, key string) (*domain.Menu, bool)
	SetMenu(ctx context.Context, key string, menu *domain.Menu)
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ AdminServiceInterface   = (*AdminService)(nil)
	_ GalleryServiceInterface = (*GalleryService)(nil)
)
