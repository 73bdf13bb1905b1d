package dto

import "time"

// GalleryItemDTO is one saved generation result.
type GalleryItemDTO struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// ListGalleryResponse lists saved results, most-recent-first.
type ListGalleryResponse struct {
	Items []GalleryItemDTO `json:"items"`
}
