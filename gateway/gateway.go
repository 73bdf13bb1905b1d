// Package gateway is the boundary to the hosted Gemini image model. It
// issues exactly one upstream call per Generate and normalizes the
// multi-part response into a flat text/image result. It never touches
// the session store or the gallery.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"rechange/internal/logger"
	"rechange/internal/trace"
	"rechange/imagecodec"
)

// Generated images come back as raw PNG bytes without a declared type.
const resultImageMimeType = "image/png"

// ErrMissingAPIKey is returned by New when no credential is configured.
// Failing here keeps a missing key from surfacing as an upstream 401
// on the first chat turn.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")

// Result is the normalized outcome of one generation call. Either field
// may be nil; both nil means the model produced no usable parts.
type Result struct {
	Text     *string
	ImageURL *string
}

type Client struct {
	genai *genai.Client
	model string
}

// New builds the process-wide gateway client. The API key is read from
// the environment; its absence is a configuration error, not a request
// error.
func New(ctx context.Context, model string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{genai: cl, model: model}, nil
}

// Generate sends the prompt and the encoded image upstream and returns
// the normalized result. Any failure means "no result produced": the
// caller must not treat a returned error as a partial result.
func (c *Client) Generate(ctx context.Context, prompt, imageBase64, mimeType string) (Result, error) {
	raw, err := imagecodec.DecodePayload(imageBase64)
	if err != nil {
		return Result{}, fmt.Errorf("decode image payload: %w", err)
	}

	requestID, spanID := trace.NextSpanID(ctx)
	start := time.Now()

	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{Data: raw, MIMEType: mimeType}},
			{Text: prompt},
		},
	}}
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	duration := time.Since(start)
	if err != nil {
		logger.ErrorWithFields("gemini generation failed", logger.Fields{
			"model":      c.model,
			"duration":   duration.String(),
			"request_id": requestID,
			"span_id":    spanID,
			"error":      err.Error(),
		})
		return Result{}, fmt.Errorf("generate content: %w", err)
	}

	res := normalize(resp)
	logger.InfoWithFields("gemini generation completed", logger.Fields{
		"model":      c.model,
		"duration":   duration.String(),
		"request_id": requestID,
		"span_id":    spanID,
		"has_text":   res.Text != nil,
		"has_image":  res.ImageURL != nil,
	})
	return res, nil
}

// normalize flattens candidates[0].content.parts into a Result. When a
// kind appears more than once the last part wins, for both inline data
// and text. Missing candidates, content or parts yield an empty Result
// rather than an error.
func normalize(resp *genai.GenerateContentResponse) Result {
	var out Result
	if resp == nil || len(resp.Candidates) == 0 {
		return out
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return out
	}
	for _, part := range content.Parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			payload := imagecodec.EncodePayload(part.InlineData.Data)
			url := imagecodec.DataURL(payload, resultImageMimeType)
			out.ImageURL = &url
		} else if part.Text != "" {
			text := part.Text
			out.Text = &text
		}
	}
	return out
}
