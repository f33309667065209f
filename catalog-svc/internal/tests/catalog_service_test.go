package tests

import (
	"context"
	"testing"

	"redpotion-core/catalog-svc/internal/domain"
	"redpotion-core/catalog-svc/internal/mocks"
	"redpotion-core/catalog-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testUUID = "550e8400-e29b-41d4-a716-446655440001"

func TestCatalogService_GetMenu_FiltersEmptyCategories(t *testing.T) {
	repository := mocks.NewCatalogRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repository, cache)
	ctx := context.Background()

	menu := &domain.Menu{
		Restaurant: domain.Restaurant{ID: testUUID, Name: "Red Potion"},
		Categories: []domain.MenuCategory{
			{ID: "c1", Name: "Noodles", Items: []domain.MenuItem{{ID: "i1", Available: true}}},
			{ID: "c2", Name: "Sold Out", Items: []domain.MenuItem{{ID: "i2", Available: false}}},
			{ID: "c3", Name: "Empty"},
		},
	}

	cache.On("MenuKey", testUUID).Return("menu:" + testUUID).Twice()
	cache.On("GetMenu", ctx, "menu:"+testUUID).Return(nil, false).Once()
	repository.On("GetMenu", testUUID).Return(menu, nil).Once()
	cache.On("SetMenu", ctx, "menu:"+testUUID, mock.Anything).Once()

	result, err := svc.GetMenu(ctx, testUUID)
	assert.NoError(t, err)
	assert.Len(t, result.Categories, 1)
	assert.Equal(t, "Noodles", result.Categories[0].Name)
}

func TestCatalogService_GetMenu_CacheHit(t *testing.T) {
	repository := mocks.NewCatalogRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repository, cache)
	ctx := context.Background()

	cached := &domain.Menu{Restaurant: domain.Restaurant{ID: testUUID}}
	cache.On("MenuKey", testUUID).Return("menu:" + testUUID).Once()
	cache.On("GetMenu", ctx, "menu:"+testUUID).Return(cached, true).Once()

	result, err := svc.GetMenu(ctx, testUUID)
	assert.NoError(t, err)
	assert.Equal(t, cached, result)
}

func TestCatalogService_GetMenu_ByAlias(t *testing.T) {
	repository := mocks.NewCatalogRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repository, cache)
	ctx := context.Background()

	// Alias resolves to the canonical id before any lookup.
	cache.On("MenuKey", testUUID).Return("menu:" + testUUID).Twice()
	cache.On("GetMenu", ctx, "menu:"+testUUID).Return(nil, false).Once()
	repository.On("GetMenu", testUUID).
		Return(&domain.Menu{Restaurant: domain.Restaurant{ID: testUUID}}, nil).Once()
	cache.On("SetMenu", ctx, "menu:"+testUUID, mock.Anything).Once()

	_, err := svc.GetMenu(ctx, "restaurant1")
	assert.NoError(t, err)
}

func TestCatalogService_GetMenu_MalformedIdentifier(t *testing.T) {
	repository := mocks.NewCatalogRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repository, cache)

	_, err := svc.GetMenu(context.Background(), "definitely-not-valid")
	assert.ErrorIs(t, err, service.ErrMalformedIdentifier)
}

func TestCatalogService_GetRestaurant_NotFound(t *testing.T) {
	repository := mocks.NewCatalogRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repository, cache)

	repository.On("GetRestaurant", testUUID).Return(nil, service.ErrRestaurantNotFound).Once()

	_, err := svc.GetRestaurant(context.Background(), testUUID)
	assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
}
