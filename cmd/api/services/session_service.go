package services

import (
	"rechange/cmd/api/dto"
	"rechange/models"
	"rechange/repositories"
)

// SessionService 는 세션 저장소 위의 얇은 서비스 계층으로,
// 저장소 스냅샷을 API 응답 형태로 변환한다.
type SessionService struct {
	sessions *repositories.SessionRepository
}

func NewSessionService(sessions *repositories.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// Create opens a fresh session and makes it active.
func (s *SessionService) Create() dto.SessionDTO {
	return SessionToDTO(s.sessions.Create())
}

// List returns all sessions, most-recent-first, with the active pointer.
func (s *SessionService) List() dto.ListSessionsResponse {
	sessions := s.sessions.List()
	items := make([]dto.SessionSummaryDTO, 0, len(sessions))
	for _, sess := range sessions {
		items = append(items, dto.SessionSummaryDTO{
			ID:           sess.ID,
			Title:        sess.Title,
			MessageCount: len(sess.Messages),
			UpdatedAt:    sess.UpdatedAt,
		})
	}
	return dto.ListSessionsResponse{
		ActiveSessionID: s.sessions.ActiveID(),
		Items:           items,
	}
}

// Get returns one session with its full message log.
func (s *SessionService) Get(id string) (dto.SessionDTO, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return dto.SessionDTO{}, err
	}
	return SessionToDTO(sess), nil
}

// Delete removes a session. The store keeps its own invariants: the
// active pointer moves on and a last-session delete synthesizes a new
// default.
func (s *SessionService) Delete(id string) error {
	return s.sessions.Delete(id)
}

// Switch makes the given session active.
func (s *SessionService) Switch(id string) error {
	return s.sessions.Switch(id)
}

// Retitle renames a session.
func (s *SessionService) Retitle(id, title string) error {
	return s.sessions.Retitle(id, title)
}

// SessionToDTO maps a session snapshot to its API projection. The
// carry-forward payload stays internal; only its displayable reference
// is exposed.
func SessionToDTO(sess models.Session) dto.SessionDTO {
	out := dto.SessionDTO{
		ID:        sess.ID,
		Title:     sess.Title,
		Messages:  MessagesToDTO(sess.Messages),
		UpdatedAt: sess.UpdatedAt,
	}
	if sess.LastImage != nil {
		out.LastImageURL = sess.LastImage.URL
	}
	return out
}
