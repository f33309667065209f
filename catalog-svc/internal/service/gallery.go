package service

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"redpotion-core/catalog-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GalleryService pulls promotional images from the external image host. The
// gallery is decoration: any failure or slow response degrades to an empty
// list and the caller renders without it.
type GalleryService struct {
	BaseURL string
	Client  HTTPClient
	Timeout time.Duration
}

func NewGalleryService(baseURL string, client HTTPClient) *GalleryService {
	return &GalleryService{
		BaseURL: baseURL,
		Client:  client,
		Timeout: 5 * time.Second,
	}
}

func (s *GalleryService) Fetch(ctx context.Context, restaurantID string) []domain.GalleryImage {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", s.BaseURL+"/galleries/"+restaurantID, nil)
	if err != nil {
		log.Printf("[catalog-svc] gallery request for %s: %v", restaurantID, err)
		return []domain.GalleryImage{}
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		log.Printf("[catalog-svc] gallery fetch for %s: %v", restaurantID, err)
		return []domain.GalleryImage{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[catalog-svc] gallery fetch for %s: status %d", restaurantID, resp.StatusCode)
		return []domain.GalleryImage{}
	}

	var images []domain.GalleryImage
	if err := json.NewDecoder(resp.Body).Decode(&images); err != nil {
		log.Printf("[catalog-svc] gallery decode for %s: %v", restaurantID, err)
		return []domain.GalleryImage{}
	}
	if images == nil {
		images = []domain.GalleryImage{}
	}
	return images
}
