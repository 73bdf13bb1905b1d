package models

import "time"

// Message roles. The model role covers both generation results and
// synthetic assistant notices.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is a single turn in a session log. Messages are append-only:
// once inserted they are never edited or reordered.
type Message struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	// SourceImageURL is set on user turns only and points at the image
	// the user uploaded for that turn.
	SourceImageURL string    `json:"source_image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ImageContext is the carry-forward image of a session: either a fresh
// upload or the previous turn's result, reused as the next turn's input.
// It is superseded as a whole on each new turn, never mutated in place.
type ImageContext struct {
	// Base64 is the raw payload without any data-URL prefix.
	Base64   string `json:"base64"`
	MimeType string `json:"mime_type"`
	// URL is the displayable data-URL reference for the same payload.
	URL string `json:"url"`
}

// Session is one independent chat thread. Messages are ordered by
// insertion, which is also chronological order.
type Session struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Messages  []Message     `json:"messages"`
	LastImage *ImageContext `json:"last_image,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}
