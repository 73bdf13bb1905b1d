package dto

// SendMessageRequest is one chat turn. The image is optional; when
// omitted the session's carry-forward image is used. The MIME type is
// sniffed from the payload, not taken from the client.
type SendMessageRequest struct {
	Text        string `json:"text" example:"Make the jacket red"`
	ImageBase64 string `json:"imageBase64,omitempty"`
}

// SendMessageResponse reports the turn outcome and the messages the
// turn appended. An awaiting_image outcome appends its guidance message
// asynchronously, so only the user turn appears here.
type SendMessageResponse struct {
	Outcome  string       `json:"outcome" example:"completed"`
	Messages []MessageDTO `json:"messages"`
	Session  SessionDTO   `json:"session"`
}

// GenerateRequest is the raw gateway wire contract: prompt plus encoded
// image in, normalized result out.
type GenerateRequest struct {
	Prompt      string `json:"prompt"`
	ImageBase64 string `json:"imageBase64" binding:"required"`
	MimeType    string `json:"mimeType" binding:"required" example:"image/png"`
}

// GenerateResponse mirrors the upstream result; either field may be null.
type GenerateResponse struct {
	Text     *string `json:"text"`
	ImageURL *string `json:"imageUrl"`
}
