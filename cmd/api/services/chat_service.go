package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rechange/cmd/api/dto"
	"rechange/internal/logger"
	"rechange/gateway"
	"rechange/imagecodec"
	"rechange/models"
	"rechange/repositories"
)

// Fixed chat strings. The default prompt substitutes an empty prompt on
// the upstream call only; the gallery records the user's prompt verbatim.
const (
	defaultPrompt     = "Enhance this image"
	defaultResultText = "Here is your result."
	guidanceText      = "I need an image to start working. Please upload one first."
	failureText       = "Something went wrong. Please try again."
	fallbackTitle     = "Image Edit"
	titleMaxRunes     = 25
)

// Turn outcomes.
const (
	OutcomeNoop          = "noop"
	OutcomeAwaitingImage = "awaiting_image"
	OutcomeCompleted     = "completed"
)

// ErrInvalidImage 는 업로드 페이로드가 이미지로 디코딩되지 않을 때
// 오케스트레이터에 들어가기 전에 반환된다.
var ErrInvalidImage = errors.New("uploaded payload is not a valid image")

// Generator is the gateway contract the orchestrator depends on.
type Generator interface {
	Generate(ctx context.Context, prompt, imageBase64, mimeType string) (gateway.Result, error)
}

// SendInput is one turn's input after upload validation.
type SendInput struct {
	Text string
	// Image is a freshly uploaded image, already validated and encoded.
	// Nil means the session's carry-forward image is used, if any.
	Image *models.ImageContext
}

// SendResult is the reconciled outcome of one turn.
type SendResult struct {
	Outcome string
	// Messages appended by this turn. For awaiting_image the guidance
	// message is appended asynchronously and is not included.
	Messages []models.Message
	Session  models.Session
}

// ChatService 는 한 번의 요청/응답 사이클을 조율한다: 입력 검증,
// 낙관적 메시지 삽입, 게이트웨이 호출, 결과 반영과 carry-forward 갱신.
type ChatService struct {
	sessions      *repositories.SessionRepository
	gallery       *repositories.GalleryRepository
	generator     Generator
	guidanceDelay time.Duration
}

func NewChatService(
	sessions *repositories.SessionRepository,
	gallery *repositories.GalleryRepository,
	generator Generator,
	guidanceDelay time.Duration,
) *ChatService {
	return &ChatService{
		sessions:      sessions,
		gallery:       gallery,
		generator:     generator,
		guidanceDelay: guidanceDelay,
	}
}

// DecodeUpload validates a client-supplied base64 image and converts it
// into a carry-forward context. Rejects anything that is not a
// well-formed image before it can enter a turn.
func DecodeUpload(imageBase64 string) (*models.ImageContext, error) {
	raw, err := imagecodec.DecodePayload(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	payload, mimeType, err := imagecodec.Encode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return &models.ImageContext{
		Base64:   payload,
		MimeType: mimeType,
		URL:      imagecodec.DataURL(payload, mimeType),
	}, nil
}

// Send runs one turn against the session with the given id.
//
// 상태 흐름: Idle → Validating → AwaitingImage | Sending → Reconciling → Idle.
// 게이트웨이 실패는 에러로 올리지 않고 fallback 메시지로 반영된다.
// 반환 에러는 세션 부재(ErrSessionNotFound)나 동시 생성 충돌
// (ErrGenerationInFlight)뿐이다.
func (s *ChatService) Send(ctx context.Context, sessionID string, in SendInput) (SendResult, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return SendResult{}, err
	}

	image := in.Image
	if image == nil {
		image = sess.LastImage
	}

	// Validating: nothing to act on.
	if strings.TrimSpace(in.Text) == "" && image == nil {
		return SendResult{Outcome: OutcomeNoop, Session: sess}, nil
	}

	// AwaitingImage: text without any usable image. The user turn lands
	// immediately; the guidance turn follows after a short delay without
	// holding any lock. The gateway is never contacted.
	if image == nil {
		userMsg := newMessage(models.RoleUser, in.Text)
		if err := s.sessions.AppendMessages(sessionID, userMsg); err != nil {
			return SendResult{}, err
		}
		time.AfterFunc(s.guidanceDelay, func() {
			guidance := newMessage(models.RoleModel, guidanceText)
			if err := s.sessions.AppendMessages(sessionID, guidance); err != nil {
				logger.WarnWithFields("dropping guidance message", logger.Fields{
					"session_id": sessionID,
					"error":      err.Error(),
				})
			}
		})
		updated, err := s.sessions.Get(sessionID)
		if err != nil {
			return SendResult{}, err
		}
		return SendResult{
			Outcome:  OutcomeAwaitingImage,
			Messages: []models.Message{userMsg},
			Session:  updated,
		}, nil
	}

	// Sending: take the per-session guard before any optimistic write so
	// a rejected turn leaves no trace in the log.
	if err := s.sessions.BeginGeneration(sessionID); err != nil {
		return SendResult{}, err
	}
	defer s.sessions.EndGeneration(sessionID)

	prompt := in.Text
	userMsg := newMessage(models.RoleUser, prompt)
	if in.Image != nil {
		userMsg.SourceImageURL = in.Image.URL
	}
	if err := s.sessions.AppendMessages(sessionID, userMsg); err != nil {
		return SendResult{}, err
	}
	if len(sess.Messages) <= 1 {
		if err := s.sessions.Retitle(sessionID, titleFromPrompt(prompt)); err != nil {
			return SendResult{}, err
		}
	}

	sentPrompt := prompt
	if strings.TrimSpace(sentPrompt) == "" {
		sentPrompt = defaultPrompt
	}
	result, genErr := s.generator.Generate(ctx, sentPrompt, image.Base64, image.MimeType)

	// Reconciling.
	var modelMsg models.Message
	if genErr != nil {
		logger.ErrorWithFields("generation failed, appending fallback message", logger.Fields{
			"session_id": sessionID,
			"error":      genErr.Error(),
		})
		modelMsg = newMessage(models.RoleModel, failureText)
		if err := s.sessions.AppendMessages(sessionID, modelMsg); err != nil {
			return SendResult{}, err
		}
	} else {
		text := defaultResultText
		if result.Text != nil {
			text = *result.Text
		}
		modelMsg = newMessage(models.RoleModel, text)
		if result.ImageURL != nil {
			modelMsg.ImageURL = *result.ImageURL
		}
		if err := s.sessions.AppendMessages(sessionID, modelMsg); err != nil {
			return SendResult{}, err
		}

		if result.ImageURL != nil {
			// The new result supersedes the carry-forward context and
			// lands in the gallery under the verbatim prompt.
			payload, perr := imagecodec.ExtractPayload(*result.ImageURL)
			if perr != nil {
				return SendResult{}, fmt.Errorf("malformed result image reference: %w", perr)
			}
			next := models.ImageContext{
				Base64:   payload,
				MimeType: "image/png",
				URL:      *result.ImageURL,
			}
			if err := s.sessions.SetLastImage(sessionID, next); err != nil {
				return SendResult{}, err
			}
			s.gallery.Add(*result.ImageURL, prompt)
		} else if in.Image != nil {
			// No result image: a fresh upload still becomes the context.
			// An established context is never regressed to nil.
			if err := s.sessions.SetLastImage(sessionID, *in.Image); err != nil {
				return SendResult{}, err
			}
		}
	}

	updated, err := s.sessions.Get(sessionID)
	if err != nil {
		return SendResult{}, err
	}
	return SendResult{
		Outcome:  OutcomeCompleted,
		Messages: []models.Message{userMsg, modelMsg},
		Session:  updated,
	}, nil
}

func newMessage(role, text string) models.Message {
	return models.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// titleFromPrompt applies the first-turn title policy: a truncated
// prompt prefix, or the fixed fallback for an empty prompt.
func titleFromPrompt(prompt string) string {
	if strings.TrimSpace(prompt) == "" {
		return fallbackTitle
	}
	return truncate(prompt, titleMaxRunes)
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// MessageToDTO maps a stored message to its API projection.
func MessageToDTO(m models.Message) dto.MessageDTO {
	return dto.MessageDTO{
		ID:             m.ID,
		Role:           m.Role,
		Text:           m.Text,
		ImageURL:       m.ImageURL,
		SourceImageURL: m.SourceImageURL,
		CreatedAt:      m.CreatedAt,
	}
}

// MessagesToDTO maps a message slice, keeping order.
func MessagesToDTO(msgs []models.Message) []dto.MessageDTO {
	out := make([]dto.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, MessageToDTO(m))
	}
	return out
}
