package service

import (
	"context"

	"redpotion-core/catalog-svc/internal/domain"
)

type CatalogService struct {
	repository CatalogRepository
	cache      MenuCache
}

func NewCatalogService(repository CatalogRepository, cache MenuCache) *CatalogService {
	return &CatalogService{repository: repository, cache: cache}
}

func (s *CatalogService) GetRestaurant(ctx context.Context, identifier string) (*domain.Restaurant, error) {
	id, err := Resolve(identifier)
	if err != nil {
		return nil, err
	}
	return s.repository.GetRestaurant(id)
}

// GetMenu returns the restaurant's menu with empty categories stripped. A
// category counts as empty when none of its items are available.
func (s *CatalogService) GetMenu(ctx context.Context, identifier string) (*domain.Menu, error) {
	id, err := Resolve(identifier)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if menu, ok := s.cache.GetMenu(ctx, s.cache.MenuKey(id)); ok {
			return menu, nil
		}
	}

	menu, err := s.repository.GetMenu(id)
	if err != nil {
		return nil, err
	}
	menu.Categories = filterEmptyCategories(menu.Categories)

	if s.cache != nil {
		s.cache.SetMenu(ctx, s.cache.MenuKey(id), menu)
	}
	return menu, nil
}

func (s *CatalogService) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	return s.repository.GetMenuItem(itemID)
}

func filterEmptyCategories(categories []domain.MenuCategory) []domain.MenuCategory {
	filtered := make([]domain.MenuCategory, 0, len(categories))
	for _, category := range categories {
		available := 0
		for _, item := range category.Items {
			if item.Available {
				available++
			}
		}
		if available > 0 {
			filtered = append(filtered, category)
		}
	}
	return filtered
}
