package dto

import "time"

// MessageDTO represents a single message in a chat session.
type MessageDTO struct {
	ID             string    `json:"id"`
	Role           string    `json:"role" example:"user"`
	Text           string    `json:"text,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	SourceImageURL string    `json:"source_image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SessionDTO represents a chat session with its full message log.
type SessionDTO struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Messages []MessageDTO `json:"messages"`
	// LastImageURL is the displayable reference of the carry-forward
	// image, when the session has one.
	LastImageURL string    `json:"last_image_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionSummaryDTO is the list-view projection of a session.
type SessionSummaryDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListSessionsResponse is the response for listing sessions,
// most-recent-first.
type ListSessionsResponse struct {
	ActiveSessionID string              `json:"active_session_id"`
	Items           []SessionSummaryDTO `json:"items"`
}

// RetitleSessionRequest renames a session.
type RetitleSessionRequest struct {
	Title string `json:"title" binding:"required" example:"Summer lookbook"`
}
