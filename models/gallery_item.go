package models

import "time"

// GalleryItem records one successful generation. The gallery is
// process-wide and append-only; deleting a session does not remove the
// items it contributed.
type GalleryItem struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	// Prompt is the user's prompt exactly as typed, which may be empty.
	// The "Enhance this image" default sent upstream is never recorded here.
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}
