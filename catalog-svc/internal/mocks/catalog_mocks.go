package mocks

import (
	"context"
	"testing"

	"redpotion-core/catalog-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t *testing.T) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *CatalogRepository) GetMenu(id string) (*domain.Menu, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *CatalogRepository) GetMenuItem(itemID string) (*domain.MenuItem, error) {
	args := m.Called(itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) ListRestaurants(offset, limit int, status, search string) ([]domain.Restaurant, int, error) {
	args := m.Called(offset, limit, status, search)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Restaurant), args.Int(1), args.Error(2)
}

func (m *CatalogRepository) UpdateRestaurant(id string, patch domain.RestaurantPatch) (*domain.Restaurant, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t *testing.T) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCache) MenuKey(restaurantID string) string {
	args := m.Called(restaurantID)
	return args.String(0)
}

func (m *MenuCache) GetMenu(ctx context.Context, key string) (*domain.Menu, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Menu), args.Bool(1)
}

func (m *MenuCache) SetMenu(ctx context.Context, key string, menu *domain.Menu) {
	m.Called(ctx, key, menu)
}

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t *testing.T) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogServiceInterface) GetRestaurant(ctx context.Context, identifier string) (*domain.Restaurant, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *CatalogServiceInterface) GetMenu(ctx context.Context, identifier string) (*domain.Menu, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *CatalogServiceInterface) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

type AdminServiceInterface struct {
	mock.Mock
}

func NewAdminServiceInterface(t *testing.T) *AdminServiceInterface {
	m := &AdminServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AdminServiceInterface) ListRestaurants(ctx context.Context, page, limit int, status, search string) (*domain.RestaurantPage, error) {
	args := m.Called(ctx, page, limit, status, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RestaurantPage), args.Error(1)
}

func (m *AdminServiceInterface) UpdateRestaurant(ctx context.Context, id string, patch domain.RestaurantPatch) (*domain.Restaurant, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

type GalleryServiceInterface struct {
	mock.Mock
}

func NewGalleryServiceInterface(t *testing.T) *GalleryServiceInterface {
	m := &GalleryServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *GalleryServiceInterface) Fetch(ctx context.Context, restaurantID string) []domain.GalleryImage {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.GalleryImage)
}
