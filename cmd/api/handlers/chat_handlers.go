package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rechange/cmd/api/dto"
	"rechange/cmd/api/services"
)

// SendMessageHandler godoc
// @Summary      채팅 턴 전송
// @Description  세션에 한 턴을 전송한다. 이미지가 없으면 세션의 carry-forward
// @Description  이미지를 사용하고, 그것도 없으면 생성 호출 없이 안내 메시지를 남긴다.
// @Description  게이트웨이 실패는 HTTP 에러가 아니라 fallback 채팅 메시지로 나타난다.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "세션 ID"
// @Param        body  body      dto.SendMessageRequest  true  "chat turn"
// @Success      200   {object}  dto.SendMessageResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO  "이미 생성이 진행 중"
// @Router       /sessions/{id}/messages [post]
func SendMessageHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		in := services.SendInput{Text: req.Text}
		if req.ImageBase64 != "" {
			upload, err := services.DecodeUpload(req.ImageBase64)
			if err != nil {
				writeServiceError(c, err)
				return
			}
			in.Image = upload
		}

		result, err := chatSvc.Send(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.SendMessageResponse{
			Outcome:  result.Outcome,
			Messages: services.MessagesToDTO(result.Messages),
			Session:  services.SessionToDTO(result.Session),
		})
	}
}

// GenerateHandler godoc
// @Summary      단발 이미지 생성
// @Description  세션 상태를 건드리지 않는 생성 게이트웨이 프록시.
// @Description  {prompt, imageBase64, mimeType}를 받아 {text, imageUrl}을 반환한다.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GenerateRequest  true  "generation request"
// @Success      200   {object}  dto.GenerateResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Router       /generate [post]
func GenerateHandler(generator services.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		result, err := generator.Generate(c.Request.Context(), req.Prompt, req.ImageBase64, req.MimeType)
		if err != nil {
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "generation_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.GenerateResponse{
			Text:     result.Text,
			ImageURL: result.ImageURL,
		})
	}
}
