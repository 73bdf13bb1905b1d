package gateway

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func inlinePart(data []byte) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{Data: data, MIMEType: "image/png"}}
}

func textPart(text string) *genai.Part {
	return &genai.Part{Text: text}
}

func responseWithParts(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: parts},
		}},
	}
}

func TestNormalizeTextAndImage(t *testing.T) {
	resp := responseWithParts(inlinePart([]byte{1, 2, 3}), textPart("done"))

	res := normalize(resp)

	assert.NotNil(t, res.Text)
	assert.Equal(t, "done", *res.Text)
	assert.NotNil(t, res.ImageURL)
	expected := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
	assert.Equal(t, expected, *res.ImageURL)
}

func TestNormalizeLastPartWinsPerKind(t *testing.T) {
	resp := responseWithParts(
		textPart("first text"),
		inlinePart([]byte("first image")),
		textPart("second text"),
		inlinePart([]byte("second image")),
	)

	res := normalize(resp)

	assert.NotNil(t, res.Text)
	assert.Equal(t, "second text", *res.Text)
	assert.NotNil(t, res.ImageURL)
	expected := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("second image"))
	assert.Equal(t, expected, *res.ImageURL)
}

func TestNormalizeMissingCandidatesIsEmptyResult(t *testing.T) {
	assert.Equal(t, Result{}, normalize(nil))
	assert.Equal(t, Result{}, normalize(&genai.GenerateContentResponse{}))
	assert.Equal(t, Result{}, normalize(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))
	assert.Equal(t, Result{}, normalize(responseWithParts()))
}

func TestNormalizeSkipsEmptyParts(t *testing.T) {
	resp := responseWithParts(nil, &genai.Part{}, inlinePart(nil), textPart(""))

	res := normalize(resp)

	assert.Nil(t, res.Text)
	assert.Nil(t, res.ImageURL)
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	client, err := New(t.Context(), "gemini-2.5-flash-image")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, client)
}
