package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"rechange/models"
)

// Default session contents, matching what a fresh workspace shows.
const (
	DefaultSessionTitle = "New Project"
	welcomeText         = "Welcome to ReChange. I'm powered by the advanced Nano Banana model. " +
		"Upload an image to start transforming your fashion or photos instantly."
)

var (
	ErrSessionNotFound = errors.New("session not found")

	// ErrGenerationInFlight is returned by BeginGeneration when the
	// session already has a pending generation. At most one generation
	// may be in flight per session.
	ErrGenerationInFlight = errors.New("generation already in flight for session")
)

type sessionRecord struct {
	session models.Session
	busy    bool
}

// SessionRepository 는 채팅 세션 컬렉션의 인메모리 저장소다.
// 모든 변경은 단일 뮤텍스 아래에서 이루어지고, 읽기는 깊은 복사본을
// 돌려주므로 렌더링 계층이 스냅샷을 안전하게 소비할 수 있다.
//
// 불변식: 컬렉션은 비어 있지 않으며 activeID 는 항상 존재하는 세션을
// 가리킨다. 마지막 세션을 지우면 기본 세션이 자동으로 합성된다.
type SessionRepository struct {
	mu       sync.Mutex
	ordered  []*sessionRecord // most-recent-first
	activeID string
}

// NewSessionRepository creates a store holding the bootstrap default
// session so the collection is never empty.
func NewSessionRepository() *SessionRepository {
	r := &SessionRepository{}
	r.insertDefaultLocked()
	return r
}

func (r *SessionRepository) insertDefaultLocked() models.Session {
	now := time.Now()
	s := models.Session{
		ID:    uuid.NewString(),
		Title: DefaultSessionTitle,
		Messages: []models.Message{{
			ID:        uuid.NewString(),
			Role:      models.RoleModel,
			Text:      welcomeText,
			CreatedAt: now,
		}},
		UpdatedAt: now,
	}
	r.ordered = append([]*sessionRecord{{session: s}}, r.ordered...)
	r.activeID = s.ID
	return cloneSession(s)
}

// Create inserts a fresh empty session at the front of the ordering and
// makes it active.
func (r *SessionRepository) Create() models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := models.Session{
		ID:        uuid.NewString(),
		Title:     "Untitled Project",
		Messages:  []models.Message{},
		UpdatedAt: time.Now(),
	}
	r.ordered = append([]*sessionRecord{{session: s}}, r.ordered...)
	r.activeID = s.ID
	return cloneSession(s)
}

// List returns snapshots of all sessions, most-recent-first.
func (r *SessionRepository) List() []models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Session, 0, len(r.ordered))
	for _, rec := range r.ordered {
		out = append(out, cloneSession(rec.session))
	}
	return out
}

// Get returns a snapshot of the session with the given id.
func (r *SessionRepository) Get(id string) (models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.findLocked(id)
	if rec == nil {
		return models.Session{}, ErrSessionNotFound
	}
	return cloneSession(rec.session), nil
}

// ActiveID returns the id of the currently active session.
func (r *SessionRepository) ActiveID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeID
}

// Switch makes the session with the given id active. A missing id is an
// explicit error and leaves the active pointer untouched.
func (r *SessionRepository) Switch(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findLocked(id) == nil {
		return ErrSessionNotFound
	}
	r.activeID = id
	return nil
}

// Delete removes the session with the given id. Deleting the active
// session activates the first remaining one; deleting the last session
// synthesizes a new default so the collection is never empty.
func (r *SessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, rec := range r.ordered {
		if rec.session.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrSessionNotFound
	}
	r.ordered = append(r.ordered[:idx], r.ordered[idx+1:]...)

	if len(r.ordered) == 0 {
		r.insertDefaultLocked()
		return nil
	}
	if r.activeID == id {
		r.activeID = r.ordered[0].session.ID
	}
	return nil
}

// AppendMessages appends msgs to the session log and refreshes its
// UpdatedAt timestamp.
func (r *SessionRepository) AppendMessages(id string, msgs ...models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.findLocked(id)
	if rec == nil {
		return ErrSessionNotFound
	}
	rec.session.Messages = append(rec.session.Messages, msgs...)
	rec.session.UpdatedAt = time.Now()
	return nil
}

// SetLastImage supersedes the session's carry-forward image.
func (r *SessionRepository) SetLastImage(id string, img models.ImageContext) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.findLocked(id)
	if rec == nil {
		return ErrSessionNotFound
	}
	copied := img
	rec.session.LastImage = &copied
	rec.session.UpdatedAt = time.Now()
	return nil
}

// Retitle replaces the session title.
func (r *SessionRepository) Retitle(id, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.findLocked(id)
	if rec == nil {
		return ErrSessionNotFound
	}
	rec.session.Title = title
	rec.session.UpdatedAt = time.Now()
	return nil
}

// BeginGeneration marks the session as having a generation in flight.
// Callers must pair it with EndGeneration.
func (r *SessionRepository) BeginGeneration(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.findLocked(id)
	if rec == nil {
		return ErrSessionNotFound
	}
	if rec.busy {
		return ErrGenerationInFlight
	}
	rec.busy = true
	return nil
}

// EndGeneration clears the in-flight mark. It is a no-op for a session
// deleted while its generation was pending.
func (r *SessionRepository) EndGeneration(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec := r.findLocked(id); rec != nil {
		rec.busy = false
	}
}

func (r *SessionRepository) findLocked(id string) *sessionRecord {
	for _, rec := range r.ordered {
		if rec.session.ID == id {
			return rec
		}
	}
	return nil
}

func cloneSession(s models.Session) models.Session {
	out := s
	out.Messages = append([]models.Message(nil), s.Messages...)
	if s.LastImage != nil {
		img := *s.LastImage
		out.LastImage = &img
	}
	return out
}
