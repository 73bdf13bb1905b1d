package services

import (
	"rechange/cmd/api/dto"
	"rechange/repositories"
)

// GalleryService exposes the saved-results gallery to the API layer.
type GalleryService struct {
	gallery *repositories.GalleryRepository
}

func NewGalleryService(gallery *repositories.GalleryRepository) *GalleryService {
	return &GalleryService{gallery: gallery}
}

// List returns all saved results, most-recent-first.
func (s *GalleryService) List() dto.ListGalleryResponse {
	items := s.gallery.List()
	out := make([]dto.GalleryItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.GalleryItemDTO{
			ID:        item.ID,
			ImageURL:  item.ImageURL,
			Prompt:    item.Prompt,
			CreatedAt: item.CreatedAt,
		})
	}
	return dto.ListGalleryResponse{Items: out}
}
