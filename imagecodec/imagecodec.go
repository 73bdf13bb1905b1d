// Package imagecodec converts binary images to the transport encoding
// used across the chat pipeline: a raw base64 payload for the model API
// and a data-URL reference for display. It is pure and stateless.
package imagecodec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
)

// ErrNotAnImage is returned when the supplied bytes are not a
// well-formed image in a supported format (PNG, JPEG, GIF).
var ErrNotAnImage = errors.New("payload is not a decodable image")

// ErrNoPayloadDelimiter is returned by ExtractPayload when the reference
// carries no comma delimiter. References not produced by DataURL have no
// defined payload portion, so the caller gets an error instead of a guess.
var ErrNoPayloadDelimiter = errors.New("data reference has no payload delimiter")

// Encode validates that data is a well-formed image and returns the pure
// base64 payload (no data-URL prefix) together with the sniffed MIME type.
func Encode(data []byte) (payload string, mimeType string, err error) {
	if _, _, derr := image.DecodeConfig(bytes.NewReader(data)); derr != nil {
		return "", "", fmt.Errorf("%w: %v", ErrNotAnImage, derr)
	}
	mimeType = http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", "", fmt.Errorf("%w: detected %s", ErrNotAnImage, mimeType)
	}
	return base64.StdEncoding.EncodeToString(data), mimeType, nil
}

// DataURL builds the displayable reference for an encoded payload.
func DataURL(payload, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, payload)
}

// ExtractPayload returns the payload portion of a data-URL reference,
// i.e. everything after the first comma.
func ExtractPayload(dataURL string) (string, error) {
	idx := strings.Index(dataURL, ",")
	if idx < 0 {
		return "", ErrNoPayloadDelimiter
	}
	return dataURL[idx+1:], nil
}

// EncodePayload encodes raw bytes as a base64 payload without image
// validation. Used for model output, which is trusted to be an image.
func EncodePayload(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodePayload decodes a base64 payload back into raw bytes.
func DecodePayload(payload string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(payload)
}
