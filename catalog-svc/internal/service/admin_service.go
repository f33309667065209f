package service

import (
	"context"
	"errors"

	"redpotion-core/catalog-svc/internal/domain"
)

var ErrInvalidStatusChange = errors.New("invalid restaurant status transition")

// statusTransitions is the approval workflow: pending restaurants get
// activated or rejected, active ones can be suspended or closed, suspended
// ones reactivated or closed.
var statusTransitions = map[domain.RestaurantStatus][]domain.RestaurantStatus{
	domain.StatusPending:   {domain.StatusActive, domain.StatusRejected},
	domain.StatusActive:    {domain.StatusSuspended, domain.StatusClosed},
	domain.StatusSuspended: {domain.StatusActive, domain.StatusClosed},
}

func CanTransition(from, to domain.RestaurantStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type AdminService struct {
	repository CatalogRepository
}

func NewAdminService(repository CatalogRepository) *AdminService {
	return &AdminService{repository: repository}
}

func (s *AdminService) ListRestaurants(ctx context.Context, page, limit int, status, search string) (*domain.RestaurantPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	restaurants, total, err := s.repository.ListRestaurants((page-1)*limit, limit, status, search)
	if err != nil {
		return nil, err
	}

	return &domain.RestaurantPage{
		Restaurants: restaurants,
		Page:        page,
		Limit:       limit,
		Total:       total,
	}, nil
}

// UpdateRestaurant applies a partial update. Only fields present in the patch
// change; a status change must follow the approval workflow.
func (s *AdminService) UpdateRestaurant(ctx context.Context, id string, patch domain.RestaurantPatch) (*domain.Restaurant, error) {
	current, err := s.repository.GetRestaurant(id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status != current.Status {
		if !CanTransition(current.Status, *patch.Status) {
			return nil, ErrInvalidStatusChange
		}
	}

	return s.repository.UpdateRestaurant(id, patch)
}
