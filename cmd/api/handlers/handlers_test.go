package handlers_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"rechange/cmd/api/dto"
	"rechange/cmd/api/handlers"
	"rechange/cmd/api/services"
	"rechange/gateway"
	"rechange/repositories"
)

type stubGenerator struct {
	result   gateway.Result
	err      error
	calls    int
	lastMime string
}

func (g *stubGenerator) Generate(_ context.Context, _, _, mimeType string) (gateway.Result, error) {
	g.calls++
	g.lastMime = mimeType
	return g.result, g.err
}

type testEnv struct {
	engine   *gin.Engine
	sessions *repositories.SessionRepository
	gallery  *repositories.GalleryRepository
	gen      *stubGenerator
}

// newTestEnv wires the handlers directly, without config or swagger,
// so tests stay independent of the deployment wiring in router.New.
func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		sessions: repositories.NewSessionRepository(),
		gallery:  repositories.NewGalleryRepository(),
		gen:      &stubGenerator{},
	}

	sessionSvc := services.NewSessionService(env.sessions)
	chatSvc := services.NewChatService(env.sessions, env.gallery, env.gen, time.Millisecond)
	gallerySvc := services.NewGalleryService(env.gallery)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/sessions", handlers.CreateSessionHandler(sessionSvc))
	api.GET("/sessions", handlers.ListSessionsHandler(sessionSvc))
	api.GET("/sessions/:id", handlers.GetSessionHandler(sessionSvc))
	api.DELETE("/sessions/:id", handlers.DeleteSessionHandler(sessionSvc))
	api.POST("/sessions/:id/activate", handlers.ActivateSessionHandler(sessionSvc))
	api.PATCH("/sessions/:id", handlers.RetitleSessionHandler(sessionSvc))
	api.POST("/sessions/:id/messages", handlers.SendMessageHandler(chatSvc))
	api.POST("/generate", handlers.GenerateHandler(env.gen))
	api.GET("/gallery", handlers.ListGalleryHandler(gallerySvc))

	env.engine = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	e.engine.ServeHTTP(recorder, req)
	return recorder
}

func pngBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("failed to encode fixture png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestCreateAndListSessions(t *testing.T) {
	env := newTestEnv()

	created := env.do(t, http.MethodPost, "/api/v1/sessions", nil)
	if created.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", created.Code)
	}
	var session dto.SessionDTO
	if err := json.Unmarshal(created.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if session.ID == "" {
		t.Fatal("expected a session id")
	}

	listed := env.do(t, http.MethodGet, "/api/v1/sessions", nil)
	var list dto.ListSessionsResponse
	if err := json.Unmarshal(listed.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected bootstrap plus created session, got %d", len(list.Items))
	}
	if list.ActiveSessionID != session.ID {
		t.Fatal("expected created session to be active")
	}
	if list.Items[0].ID != session.ID {
		t.Fatal("expected created session first in the ordering")
	}
}

func TestGetMissingSessionReturns404(t *testing.T) {
	env := newTestEnv()

	recorder := env.do(t, http.MethodGet, "/api/v1/sessions/no-such-id", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	var resp dto.ErrorResponseDTO
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "session_not_found" {
		t.Fatalf("expected session_not_found, got %q", resp.Error)
	}
}

func TestActivateMissingSessionReturns404(t *testing.T) {
	env := newTestEnv()
	activeBefore := env.sessions.ActiveID()

	recorder := env.do(t, http.MethodPost, "/api/v1/sessions/no-such-id/activate", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if env.sessions.ActiveID() != activeBefore {
		t.Fatal("active pointer must survive a rejected switch")
	}
}

func TestDeleteLastSessionLeavesOneSession(t *testing.T) {
	env := newTestEnv()
	only := env.sessions.ActiveID()

	recorder := env.do(t, http.MethodDelete, "/api/v1/sessions/"+only, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	listed := env.do(t, http.MethodGet, "/api/v1/sessions", nil)
	var list dto.ListSessionsResponse
	if err := json.Unmarshal(listed.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("expected exactly one session, got %d", len(list.Items))
	}
	if list.Items[0].ID == only {
		t.Fatal("expected a synthesized session, not the deleted one")
	}
}

func TestSendMessageWithUpload(t *testing.T) {
	env := newTestEnv()
	text := "All done."
	imageURL := "data:image/png;base64,cmVzdWx0"
	env.gen.result = gateway.Result{Text: &text, ImageURL: &imageURL}
	sessionID := env.sessions.ActiveID()

	recorder := env.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", dto.SendMessageRequest{
		Text:        "restyle it",
		ImageBase64: pngBase64(t),
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp dto.SendMessageResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Outcome != "completed" {
		t.Fatalf("expected completed, got %q", resp.Outcome)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("expected user and model messages, got %d", len(resp.Messages))
	}
	if resp.Messages[1].ImageURL != imageURL {
		t.Fatal("expected the result image on the model message")
	}
	if resp.Session.LastImageURL != imageURL {
		t.Fatal("expected carry-forward to point at the result image")
	}
	if env.gen.calls != 1 {
		t.Fatalf("expected exactly one gateway call, got %d", env.gen.calls)
	}

	gallery := env.do(t, http.MethodGet, "/api/v1/gallery", nil)
	var items dto.ListGalleryResponse
	if err := json.Unmarshal(gallery.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items.Items) != 1 || items.Items[0].Prompt != "restyle it" {
		t.Fatalf("expected one gallery item with the verbatim prompt, got %+v", items.Items)
	}
}

func TestSendMessageIgnoresClientMimeType(t *testing.T) {
	env := newTestEnv()
	sessionID := env.sessions.ActiveID()

	// A client-supplied mimeType field is not part of the turn contract;
	// the type is sniffed from the payload.
	recorder := env.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", map[string]any{
		"text":        "restyle it",
		"imageBase64": pngBase64(t),
		"mimeType":    "image/jpeg",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if env.gen.calls != 1 {
		t.Fatalf("expected exactly one gateway call, got %d", env.gen.calls)
	}
	if env.gen.lastMime != "image/png" {
		t.Fatalf("expected the sniffed mime type image/png, got %q", env.gen.lastMime)
	}
}

func TestSendMessageRejectsInvalidUpload(t *testing.T) {
	env := newTestEnv()
	sessionID := env.sessions.ActiveID()

	recorder := env.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", dto.SendMessageRequest{
		Text:        "restyle it",
		ImageBase64: base64.StdEncoding.EncodeToString([]byte("not an image")),
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if env.gen.calls != 0 {
		t.Fatal("a rejected upload must never reach the gateway")
	}

	sess, _ := env.sessions.Get(sessionID)
	if len(sess.Messages) != 1 {
		t.Fatal("a rejected upload must not append messages")
	}
}

func TestSendMessageTextOnlyReturnsAwaitingImage(t *testing.T) {
	env := newTestEnv()
	sessionID := env.sessions.ActiveID()

	recorder := env.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", dto.SendMessageRequest{
		Text: "make it pop",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var resp dto.SendMessageResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Outcome != "awaiting_image" {
		t.Fatalf("expected awaiting_image, got %q", resp.Outcome)
	}
	if env.gen.calls != 0 {
		t.Fatal("gateway must not be called without an image")
	}
}

func TestGenerateProxiesGatewayResult(t *testing.T) {
	env := newTestEnv()
	text := "done"
	env.gen.result = gateway.Result{Text: &text}

	recorder := env.do(t, http.MethodPost, "/api/v1/generate", dto.GenerateRequest{
		Prompt:      "sharpen",
		ImageBase64: pngBase64(t),
		MimeType:    "image/png",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var resp dto.GenerateResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Text == nil || *resp.Text != "done" {
		t.Fatalf("expected text %q, got %+v", "done", resp.Text)
	}
	if resp.ImageURL != nil {
		t.Fatal("expected null imageUrl")
	}
}

func TestGenerateRequiresImage(t *testing.T) {
	env := newTestEnv()

	recorder := env.do(t, http.MethodPost, "/api/v1/generate", dto.GenerateRequest{Prompt: "sharpen"})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}
