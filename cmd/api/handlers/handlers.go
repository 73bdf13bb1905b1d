package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rechange/cmd/api/dto"
	"rechange/cmd/api/services"
	"rechange/repositories"
)

// writeServiceError 는 서비스 계층의 sentinel 에러를 공통 에러 응답으로
// 변환한다. 매핑되지 않은 에러는 500으로 처리한다.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "session_not_found"})
	case errors.Is(err, repositories.ErrGenerationInFlight):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: "generation_in_flight"})
	case errors.Is(err, services.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_image"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
	}
}
